// internal/workers/planner/update-checklist/handler.go
package updatechecklist

import (
	"context"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/planner"
	"everaftr-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "update-checklist"

type Handler struct {
	config   *Config
	deps     camunda.Deps
	sessions session.Store
	logger   logger.Logger
}

func NewHandler(config *Config, deps camunda.Deps, sessions session.Store, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		deps:     deps,
		sessions: sessions,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()
	ctx, done := h.deps.Begin(ctx, TaskType, job)
	defer done()

	var input Input
	if err := camunda.Decode(job, TaskType, h.deps.Validator, &input); err != nil {
		h.deps.Failed(ctx, client, job, TaskType, start, err, h.logger)
		return
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.deps.Failed(ctx, client, job, TaskType, start, err, h.logger)
		return
	}

	h.deps.Succeeded(ctx, client, job, TaskType, start, output, h.logger)
}

// Execute flips one checklist item and returns the refreshed view.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.ToggleID == "" {
		return nil, errors.NewInputValidationFailedError(TaskType, "toggleId is required")
	}

	w, err := planner.LoadWorkspace(ctx, h.sessions, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := w.Checklist.Toggle(input.ToggleID); err != nil {
		return nil, planner.JobError(err)
	}
	if err := planner.SaveWorkspace(ctx, h.sessions, input.SessionID, w); err != nil {
		return nil, err
	}

	view := w.Checklist.View()
	h.logger.Debug("checklist toggled", map[string]interface{}{
		"itemId":   input.ToggleID,
		"progress": view.RoundedProgress,
	})
	return &Output{SessionID: input.SessionID, Checklist: view}, nil
}
