// internal/workers/savethedate/edit-card/handler.go
package editcard

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

const TaskType = "edit-card"

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

// Execute applies a partial edit to the workspace card. An empty change set
// just returns the current card.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if id := input.Changes.TemplateID; id != nil && !savethedate.IsTemplate(*id) {
		return nil, errors.NewInputValidationFailedError(TaskType, fmt.Sprintf("unknown template %q", *id))
	}

	w, err := planner.LoadWorkspace(ctx, h.sessions, input.SessionID)
	if err != nil {
		return nil, err
	}

	input.Changes.Apply(&w.SaveTheDate)
	if err := planner.SaveWorkspace(ctx, h.sessions, input.SessionID, w); err != nil {
		return nil, err
	}

	d := w.SaveTheDate
	card := savethedate.BuildCard(d)
	h.logger.Debug("card edited", map[string]interface{}{
		"sessionId":  input.SessionID,
		"templateId": card.TemplateID,
	})
	return &Output{
		SessionID:        input.SessionID,
		SaveTheDate:      savethedate.WithoutPhoto(d),
		Card:             card,
		ShareMessage:     savethedate.ShareMessage(d),
		DownloadFileName: savethedate.DownloadFileName(d),
	}, nil
}
