// internal/workers/savethedate/render-card/handler.go
package rendercard

import (
	"context"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/models"
	"everaftr-workers/internal/planner"
	"everaftr-workers/internal/savethedate"
	"everaftr-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "render-card"

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
	d, err := h.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	scale := input.Scale
	if scale <= 0 {
		scale = h.config.Scale
	}

	began := time.Now()
	r, err := savethedate.RenderJob(ctx, d, scale, h.config.RenderTimeout)
	if err != nil {
		return nil, err
	}

	h.logger.Info("card rendered", map[string]interface{}{
		"templateId": r.Template,
		"width":      r.Width,
		"height":     r.Height,
		"bytes":      len(r.PNG),
		"photoUsed":  r.PhotoUsed,
		"elapsed":    time.Since(began).String(),
	})

	return &Output{
		ImageURL:   r.DataURL(),
		FileName:   savethedate.DownloadFileName(d),
		Width:      r.Width,
		Height:     r.Height,
		TemplateID: r.Template,
		PhotoUsed:  r.PhotoUsed,
		Card:       savethedate.BuildCard(d),
	}, nil
}

// resolve prefers the inline form over the workspace copy.
func (h *Handler) resolve(ctx context.Context, input *Input) (models.SaveTheDateData, error) {
	if input.SaveTheDate != nil {
		return *input.SaveTheDate, nil
	}
	if input.SessionID == "" {
		return models.SaveTheDateData{}, errors.NewInputValidationFailedError(TaskType, "saveTheDate or sessionId is required")
	}
	w, err := planner.LoadWorkspace(ctx, h.sessions, input.SessionID)
	if err != nil {
		return models.SaveTheDateData{}, err
	}
	return w.SaveTheDate, nil
}
