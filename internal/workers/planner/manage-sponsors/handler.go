// internal/workers/planner/manage-sponsors/handler.go
package managesponsors

import (
	"context"
	"fmt"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/planner"
	"everaftr-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "manage-sponsors"

type Handler struct {
	config   *Config
	deps     camunda.Deps
	sessions session.Store
	newID    func() string
	logger   logger.Logger
}

func NewHandler(config *Config, deps camunda.Deps, sessions session.Store, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		deps:     deps,
		sessions: sessions,
		newID:    planner.NewSponsorID,
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
	w, err := planner.LoadWorkspace(ctx, h.sessions, input.SessionID)
	if err != nil {
		return nil, err
	}

	out := &Output{SessionID: input.SessionID}
	changed := true

	switch input.Action {
	case ActionList, "":
		changed = false
	case ActionAdd:
		sp := w.Sponsors.Add(h.newID())
		out.Added = &planner.SponsorView{Sponsor: sp, DisplayTitle: planner.DisplayTitle(sp)}
	case ActionToggleInvitation, ActionToggleGift, ActionAssign:
		if input.SponsorID == "" {
			return nil, errors.NewInputValidationFailedError(TaskType, "sponsorId is required")
		}
		err = h.apply(w.Sponsors, input)
	default:
		return nil, errors.NewInputValidationFailedError(TaskType, fmt.Sprintf("unknown action %q", input.Action))
	}
	if err != nil {
		return nil, planner.JobError(err)
	}

	if changed {
		if err := planner.SaveWorkspace(ctx, h.sessions, input.SessionID, w); err != nil {
			return nil, err
		}
		h.logger.Info("sponsors updated", map[string]interface{}{
			"action":    input.Action,
			"sponsorId": input.SponsorID,
			"count":     len(w.Sponsors.List),
		})
	}

	out.Sponsors = w.Sponsors.Views()
	return out, nil
}

func (h *Handler) apply(s *planner.Sponsors, input *Input) error {
	switch input.Action {
	case ActionToggleInvitation:
		return s.ToggleInvitation(input.SponsorID)
	case ActionToggleGift:
		return s.ToggleGift(input.SponsorID)
	default:
		return s.Assign(input.SponsorID, input.Assignment)
	}
}
