// internal/workers/guides/browse-traditions/handler.go
package browsetraditions

import (
	"context"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/guides"
	"everaftr-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "browse-traditions"

// Handler serves the traditions guide. It keeps no state; the expanded card
// travels in the process variables.
type Handler struct {
	config     *Config
	deps       camunda.Deps
	traditions []models.Tradition
	logger     logger.Logger
}

func NewHandler(config *Config, deps camunda.Deps, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		deps:       deps,
		traditions: guides.Traditions(),
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
	g := guides.Guide{ActiveID: input.ActiveID}
	if _, ok := g.Active(h.traditions); input.ActiveID != "" && !ok {
		h.logger.Debug("dropping unknown active tradition", map[string]interface{}{"activeId": input.ActiveID})
		g.ActiveID = ""
	}

	if input.ToggleID != "" {
		if err := g.Toggle(h.traditions, input.ToggleID); err != nil {
			return nil, errors.NewItemNotFoundError("tradition", input.ToggleID)
		}
	}

	out := &Output{Phases: guides.ByPhase(h.traditions), ActiveID: g.ActiveID}
	if t, ok := g.Active(h.traditions); ok {
		out.Active = &t
	}
	return out, nil
}
