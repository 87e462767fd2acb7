// internal/common/camunda/worker.go
package camunda

import (
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.uber.org/zap"
)

// JobHandler processes one activated job. Completion and failure are reported
// through the job client inside the handler, so there is no return value.
type JobHandler func(client worker.JobClient, job entities.Job)

// Worker is a running job worker for a single task type. The underlying Zeebe
// connection is shared and owned by the Client.
type Worker struct {
	worker   worker.JobWorker
	logger   *zap.Logger
	taskType string
}

// WorkerOptions controls job polling for a single task type.
type WorkerOptions struct {
	MaxJobsActive int
	Timeout       time.Duration
}

// NewWorker opens a job worker on this client's connection and starts polling.
func (c *Client) NewWorker(taskType string, handler JobHandler, opts WorkerOptions, logger *zap.Logger) *Worker {
	builder := c.client.NewJobWorker().
		JobType(taskType).
		Handler(worker.JobHandler(handler)).
		MaxJobsActive(opts.MaxJobsActive)
	if opts.Timeout > 0 {
		builder = builder.Timeout(opts.Timeout)
	}

	jobWorker := builder.Open()

	logger.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", opts.MaxJobsActive),
		zap.Duration("timeout", opts.Timeout),
	)

	return &Worker{
		worker:   jobWorker,
		logger:   logger,
		taskType: taskType,
	}
}

// Stop drains and closes the worker. The shared client stays open.
func (w *Worker) Stop() {
	w.logger.Info("stopping worker", zap.String("taskType", w.taskType))
	w.worker.Close()
}
