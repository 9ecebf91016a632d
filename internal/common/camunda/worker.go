// internal/common/camunda/worker.go
package camunda

import (
	"time"

	"everaftr-workers/internal/common/config"
	"everaftr-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler handles one activated job and finishes it itself, by completing
// or failing it.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// Worker is an open job subscription for one task type.
type Worker struct {
	worker   worker.JobWorker
	logger   logger.Logger
	taskType string
}

// StartWorker opens a job worker for taskType with the per-worker limits from cfg.
func StartWorker(client zbc.Client, taskType string, cfg config.WorkerConfig, handler JobHandler, log logger.Logger) *Worker {
	maxJobs := cfg.MaxJobsActive
	if maxJobs <= 0 {
		maxJobs = 5
	}
	timeout := config.GetDuration(cfg.Timeout)
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(handler.Handle).
		MaxJobsActive(maxJobs).
		Timeout(timeout).
		Name(taskType + "-worker").
		Open()

	w := &Worker{
		worker:   jobWorker,
		logger:   log,
		taskType: taskType,
	}
	log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": maxJobs,
		"timeout":       timeout.String(),
	})
	return w
}

func (w *Worker) TaskType() string { return w.taskType }

// Stop closes the subscription and waits for in-flight jobs.
func (w *Worker) Stop() {
	w.logger.Info("stopping worker", map[string]interface{}{"taskType": w.taskType})
	w.worker.Close()
	w.worker.AwaitClose()
}
