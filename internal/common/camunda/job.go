// internal/common/camunda/job.go
package camunda

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/common/metrics"
	"everaftr-workers/internal/common/observability"
	"everaftr-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Deps are the collaborators every job handler shares. All fields are optional:
// a nil Validator accepts every document, a nil Obs records nothing and a nil
// Errors is replaced by one logging through the handler's logger.
type Deps struct {
	Validator *validation.Validator
	Errors    *errors.ErrorHandler
	Obs       *observability.Observability
}

// Decode validates the job variables against the schema of taskType and
// unmarshals them into dst.
func Decode(job entities.Job, taskType string, v *validation.Validator, dst interface{}) error {
	raw := []byte(job.GetVariables())
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if err := v.Validate(taskType, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.NewInputValidationFailedError(taskType, err.Error())
	}
	return nil
}

// Complete sends the complete command carrying output as job variables.
func Complete(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.GetKey()).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("create complete job command: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return fmt.Errorf("send complete job command: %w", err)
	}
	return nil
}

// Begin marks a job active and opens its span. The returned func must be
// deferred; it closes the span and releases the active gauge.
func (d Deps) Begin(ctx context.Context, taskType string, job entities.Job) (context.Context, func()) {
	metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()

	var span trace.Span
	if d.Obs != nil {
		ctx, span = d.Obs.StartSpan(ctx, taskType,
			attribute.Int64("job.key", job.GetKey()),
			attribute.Int64("process.instance.key", job.GetProcessInstanceKey()),
		)
	}
	return ctx, func() {
		if span != nil {
			span.End()
		}
		metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()
	}
}

// Succeeded completes the job and records the outcome. The command is sent
// even when the job's own deadline has passed.
func (d Deps) Succeeded(ctx context.Context, client worker.JobClient, job entities.Job, taskType string, start time.Time, output interface{}, log logger.Logger) {
	ctx = context.WithoutCancel(ctx)
	if err := Complete(ctx, client, job, output); err != nil {
		log.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
		})
		d.record(ctx, taskType, start, "complete_failed")
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(taskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(time.Since(start).Seconds())
	d.record(ctx, taskType, start, "completed")
}

// Failed reports err through the shared error handler, which decides between
// a retrying fail command and a BPMN error.
func (d Deps) Failed(ctx context.Context, client worker.JobClient, job entities.Job, taskType string, start time.Time, err error, log logger.Logger) {
	ctx = context.WithoutCancel(ctx)
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(taskType, string(stdErr.Code)).Inc()
	d.record(ctx, taskType, start, "failed")

	handler := d.Errors
	if handler == nil {
		handler = errors.NewErrorHandler(log)
	}
	handler.HandleJobError(ctx, client, job, stdErr)
}

func (d Deps) record(ctx context.Context, taskType string, start time.Time, status string) {
	if d.Obs == nil {
		return
	}
	d.Obs.RecordJobProcessed(ctx, taskType, status)
	d.Obs.RecordJobDuration(ctx, taskType, time.Since(start), status)
}
