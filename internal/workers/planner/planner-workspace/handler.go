// internal/workers/planner/planner-workspace/handler.go
package plannerworkspace

import (
	"context"
	"fmt"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/planner"
	"everaftr-workers/internal/savethedate"
	"everaftr-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "planner-workspace"

// Handler opens, reads, reseeds and closes a couple's planning workspace.
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	switch input.Action {
	case ActionOpen, "":
		w := planner.NewWorkspace()
		id, err := session.Start(ctx, h.sessions, session.KindWorkspace, w)
		if err != nil {
			return nil, err
		}
		h.logger.Info("workspace opened", map[string]interface{}{"sessionId": id})
		return h.view(id, w), nil

	case ActionGet:
		w, err := planner.LoadWorkspace(ctx, h.sessions, input.SessionID)
		if err != nil {
			return nil, err
		}
		return h.view(input.SessionID, w), nil

	case ActionReset:
		// the session must still exist; reset never resurrects an expired one
		if _, err := planner.LoadWorkspace(ctx, h.sessions, input.SessionID); err != nil {
			return nil, err
		}
		w := planner.NewWorkspace()
		if err := planner.SaveWorkspace(ctx, h.sessions, input.SessionID, w); err != nil {
			return nil, err
		}
		return h.view(input.SessionID, w), nil

	case ActionClose:
		if err := session.Close(ctx, h.sessions, session.KindWorkspace, input.SessionID); err != nil {
			return nil, err
		}
		h.logger.Info("workspace closed", map[string]interface{}{"sessionId": input.SessionID})
		return &Output{SessionID: input.SessionID, Closed: true}, nil
	}

	return nil, errors.NewInputValidationFailedError(TaskType, fmt.Sprintf("unknown action %q", input.Action))
}

func (h *Handler) view(id string, w *planner.Workspace) *Output {
	v := w.View()
	// the photo travels through attach-photo and render-card only
	v.SaveTheDate = savethedate.WithoutPhoto(v.SaveTheDate)
	return &Output{SessionID: id, Workspace: &v}
}
