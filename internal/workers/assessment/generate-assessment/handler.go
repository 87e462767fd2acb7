// internal/workers/assessment/generate-assessment/handler.go
package generateassessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"esg-workers/internal/common/errors"
	"esg-workers/internal/common/logger"
	"esg-workers/internal/common/metrics"
	"esg-workers/internal/common/validation"
	"esg-workers/internal/esg/assess"
	"esg-workers/internal/esg/emission"
	"esg-workers/internal/esg/validate"
	"esg-workers/internal/store"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "generate-assessment"
)

// Handler runs the full assessment pipeline: resolve input (inline payload
// or company lookup with a read-through cache), assess, persist, index.
type Handler struct {
	config     *Config
	assessor   *assess.Assessor
	store      *store.AssessmentStore
	cache      *store.AssessmentCache
	indexer    *store.AssessmentIndexer
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

// NewHandler wires the pipeline. Redis and Elasticsearch are optional: with
// a nil client the cache or index step is skipped. The database may be nil
// only when every job carries an inline payload.
func NewHandler(config *Config, db *sql.DB, redisClient *redis.Client, esClient *elasticsearch.Client, log logger.Logger) (*Handler, error) {
	factors := emission.DefaultFactors().Merge(config.FactorOverrides)

	assessor, err := assess.New(assess.Config{
		Factors: factors,
		Validation: validate.Config{
			EstablishedYearCutoff: config.EstablishedYearCutoff,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build assessor: %w", err)
	}

	workerLog := log.WithFields(map[string]interface{}{"taskType": TaskType})
	h := &Handler{
		config:     config,
		assessor:   assessor,
		errHandler: errors.NewErrorHandler(workerLog),
		logger:     workerLog,
	}
	if db != nil {
		h.store = store.New(db, log)
	}
	if redisClient != nil {
		h.cache = store.NewAssessmentCache(redisClient, config.CacheTTL)
	}
	if esClient != nil {
		h.indexer = store.NewAssessmentIndexer(esClient, config.ResultIndex)
	}
	return h, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(job.Variables), &raw); err != nil {
		h.errHandler.HandleJobError(ctx, client, job, errors.NewInputSchemaInvalidError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	// Unrecognized input shapes fail loudly before any engine runs.
	schemaResult, err := validation.ValidateAssessmentInput(raw)
	if err != nil {
		h.errHandler.HandleJobError(ctx, client, job, errors.NewInputSchemaInvalidError(err.Error()))
		return
	}
	if !schemaResult.Valid {
		details := strings.Join(schemaResult.GetErrorMessages(), "; ")
		h.errHandler.HandleJobError(ctx, client, job, errors.NewInputSchemaInvalidError(details))
		return
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errHandler.HandleJobError(ctx, client, job, errors.NewInputSchemaInvalidError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Company != nil {
		a := h.assessor.Run(assess.Input{
			Company:    *input.Company,
			Locations:  input.Locations,
			Answers:    input.Answers,
			Tasks:      input.Tasks,
			Frameworks: input.Frameworks,
		})
		h.finish(ctx, input.CompanyID, a, false)
		return &Output{Assessment: a}, nil
	}

	if input.CompanyID == "" {
		return nil, errors.NewInputSchemaInvalidError("either company payload or companyId is required")
	}
	if h.store == nil {
		return nil, errors.NewAssessmentFailedError(fmt.Errorf("no database configured for company lookup"))
	}

	if h.cache != nil && !input.ForceRefresh {
		if cached, ok := h.cache.Get(ctx, input.CompanyID); ok {
			h.logger.Info("assessment served from cache", map[string]interface{}{
				"companyId":    input.CompanyID,
				"assessmentId": cached.ID,
			})
			return &Output{Assessment: cached, FromCache: true}, nil
		}
	}

	in, err := h.store.FetchInput(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	a := h.assessor.Run(in)

	if err := h.store.SaveAssessment(ctx, input.CompanyID, a); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, input.CompanyID, a); err != nil {
			h.logger.Warn("failed to cache assessment", map[string]interface{}{
				"companyId": input.CompanyID,
				"error":     err,
			})
		}
	}

	h.finish(ctx, input.CompanyID, a, true)
	return &Output{Assessment: a}, nil
}

// finish handles the best-effort tail of the pipeline: search indexing and
// metrics. Neither failure invalidates an already-computed assessment.
func (h *Handler) finish(ctx context.Context, companyID string, a assess.Assessment, persisted bool) {
	if h.indexer != nil {
		if err := h.indexer.Index(ctx, companyID, a); err != nil {
			h.logger.Warn("failed to index assessment", map[string]interface{}{
				"assessmentId": a.ID,
				"error":        err,
			})
		}
	}

	metrics.AssessmentsGenerated.WithLabelValues(string(a.Sector), strconv.FormatBool(a.Validation.IsValid)).Inc()
	metrics.AssessmentDataQuality.WithLabelValues(string(a.Sector)).Observe(a.Validation.QualityScore)

	h.logger.Info("assessment generated", map[string]interface{}{
		"assessmentId": a.ID,
		"companyId":    companyID,
		"sector":       a.Sector,
		"isValid":      a.Validation.IsValid,
		"overallScore": a.Scores.Overall,
		"persisted":    persisted,
	})
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
