// internal/workers/assessment/calculate-carbon-footprint/handler.go
package calculatecarbonfootprint

import (
	"context"
	"encoding/json"
	"fmt"

	"esg-workers/internal/common/logger"
	"esg-workers/internal/esg/benchmark"
	"esg-workers/internal/esg/emission"
	"esg-workers/internal/esg/footprint"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "calculate-carbon-footprint"
)

type Handler struct {
	config     *Config
	engine     *footprint.Engine
	comparator *benchmark.Comparator
	logger     logger.Logger
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	factors := emission.DefaultFactors().Merge(config.FactorOverrides)
	if err := factors.Validate(); err != nil {
		return nil, fmt.Errorf("emission factors: %w", err)
	}

	table := benchmark.DefaultTable()
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("benchmark table: %w", err)
	}

	return &Handler{
		config:     config,
		engine:     footprint.NewEngine(factors),
		comparator: benchmark.NewComparator(table),
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, "FOOTPRINT_CALCULATION_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// The benchmark comparison rides with the footprint: it needs the computed
// intensities and nothing else downstream does.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	fp := h.engine.Footprint(input.Locations, input.Company)
	cmp := h.comparator.Compare(input.Locations, fp, input.Company.Sector)

	h.logger.Info("carbon footprint calculated", map[string]interface{}{
		"company":        input.Company.Name,
		"totalAnnual":    fp.TotalAnnual,
		"scope1":         fp.Scope1,
		"scope2":         fp.Scope2,
		"overallRanking": cmp.OverallRanking,
	})

	return &Output{Footprint: fp, Benchmark: cmp}, nil
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

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
