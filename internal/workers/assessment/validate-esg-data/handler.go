// internal/workers/assessment/validate-esg-data/handler.go
package validateesgdata

import (
	"context"
	"encoding/json"
	"fmt"

	"esg-workers/internal/common/logger"
	"esg-workers/internal/esg/validate"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-esg-data"
)

type Handler struct {
	config    *Config
	validator *validate.Validator
	logger    logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		validator: validate.New(validate.Config{
			EstablishedYearCutoff: config.EstablishedYearCutoff,
		}),
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
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
		h.failJob(client, job, "VALIDATION_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// Validation of bad business data never errors: issues ride in the output so
// downstream gateways can branch on isValid.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	result := h.validator.Validate(input.Company, input.Locations, input.Answers, input.Tasks)

	h.logger.Info("validation finished", map[string]interface{}{
		"company":      input.Company.Name,
		"isValid":      result.IsValid,
		"completeness": result.CompletenessScore,
		"quality":      result.QualityScore,
		"errors":       result.Summary.Errors,
		"warnings":     result.Summary.Warnings,
	})

	return &Output{
		IsValid:           result.IsValid,
		CompletenessScore: result.CompletenessScore,
		QualityScore:      result.QualityScore,
		Issues:            result.Issues,
		Summary:           result.Summary,
	}, nil
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
