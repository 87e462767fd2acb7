// internal/workers/assessment/check-framework-compliance/handler.go
package checkframeworkcompliance

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"esg-workers/internal/common/logger"
	"esg-workers/internal/esg/compliance"
	"esg-workers/internal/esg/model"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "check-framework-compliance"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
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
		h.failJob(client, job, "COMPLIANCE_CHECK_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	frameworks := input.Frameworks
	if len(frameworks) == 0 {
		frameworks = collectFrameworks(input.Tasks, input.Answers)
	}

	rates := compliance.Rates(input.Tasks, frameworks)

	h.logger.Info("compliance rates calculated", map[string]interface{}{
		"frameworks": frameworks,
		"tasks":      len(input.Tasks),
	})

	return &Output{Compliance: rates, Frameworks: frameworks}, nil
}

// collectFrameworks gathers every framework tagged on a task or answer,
// tasks first, then answers in sorted question order so repeated runs see
// the same ordering.
func collectFrameworks(tasks []model.TaskRecord, answers map[string]model.AnswerRecord) []string {
	seen := map[string]bool{}
	var frameworks []string
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			frameworks = append(frameworks, f)
		}
	}

	for _, t := range tasks {
		for _, f := range t.Frameworks {
			add(f)
		}
	}

	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, f := range answers[k].Frameworks {
			add(f)
		}
	}
	return frameworks
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
