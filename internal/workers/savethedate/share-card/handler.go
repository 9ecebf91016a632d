// internal/workers/savethedate/share-card/handler.go
package sharecard

import (
	"context"
	"fmt"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/common/metrics"
	"everaftr-workers/internal/models"
	"everaftr-workers/internal/planner"
	"everaftr-workers/internal/savethedate"
	"everaftr-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "share-card"

type Handler struct {
	config   *Config
	deps     camunda.Deps
	sessions session.Store
	sharers  savethedate.Sharers
	logger   logger.Logger
}

func NewHandler(config *Config, deps camunda.Deps, sessions session.Store, sharers savethedate.Sharers, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		deps:     deps,
		sessions: sessions,
		sharers:  sharers,
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

// Execute shares the card on every requested channel. Channels run
// concurrently; a failed channel is reported in its result and does not fail
// the job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	sharers, err := h.selectSharers(input)
	if err != nil {
		return nil, err
	}
	d, err := h.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	scale := input.Scale
	if scale <= 0 {
		scale = h.config.Scale
	}
	message := savethedate.ShareMessage(d)

	// The card is rendered once for every channel that carries the image.
	var card *savethedate.Rendered
	var renderErr error
	if needsCard(input.Channels) {
		card, renderErr = savethedate.RenderJob(ctx, d, scale, h.config.RenderTimeout)
	}

	tasks := make([]*savethedate.Task[*savethedate.ShareReceipt], len(sharers))
	for i, sh := range sharers {
		if renderErr != nil && carriesCard(sh.Channel()) {
			continue
		}
		req := savethedate.ShareRequest{
			Data:       d,
			Message:    message,
			Recipients: input.Recipients.For(sh.Channel()),
			Card:       card,
			Scale:      scale,
		}
		tasks[i] = h.start(ctx, sh, req)
	}

	out := &Output{Message: message, Results: make([]ChannelResult, len(sharers))}
	for i, sh := range sharers {
		ch := sh.Channel()
		var receipt *savethedate.ShareReceipt
		var err error
		if tasks[i] == nil {
			err = renderErr
		} else {
			receipt, err = tasks[i].Wait(ctx)
		}
		out.Results[i] = h.result(ch, receipt, err)
		if err != nil {
			out.Failed++
		} else {
			out.Sent++
		}
	}

	h.logger.Info("card shared", map[string]interface{}{
		"channels": len(sharers),
		"sent":     out.Sent,
		"failed":   out.Failed,
	})
	return out, nil
}

func (h *Handler) start(ctx context.Context, sh savethedate.Sharer, req savethedate.ShareRequest) *savethedate.Task[*savethedate.ShareReceipt] {
	timeout := h.config.ShareTimeout
	return savethedate.Start(ctx, func(ctx context.Context) (*savethedate.ShareReceipt, error) {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return sh.Share(ctx, req)
	})
}

func (h *Handler) result(ch savethedate.Channel, receipt *savethedate.ShareReceipt, err error) ChannelResult {
	if err == nil {
		metrics.SharesSent.WithLabelValues(string(ch), StatusSent).Inc()
		return ChannelResult{Channel: ch, Status: StatusSent, Receipt: receipt}
	}

	metrics.SharesSent.WithLabelValues(string(ch), StatusFailed).Inc()
	stdErr, ok := errors.AsStandardError(err)
	if !ok {
		stdErr = errors.NewShareFailedError(string(ch), err)
	}
	h.logger.Warn("share failed", map[string]interface{}{
		"channel": ch,
		"code":    stdErr.Code,
		"error":   err.Error(),
	})
	return ChannelResult{
		Channel:   ch,
		Status:    StatusFailed,
		Receipt:   receipt,
		ErrorCode: string(stdErr.Code),
		Error:     stdErr.Details,
	}
}

// selectSharers resolves every requested channel before anything is sent.
func (h *Handler) selectSharers(input *Input) ([]savethedate.Sharer, error) {
	if len(input.Channels) == 0 {
		return nil, errors.NewInputValidationFailedError(TaskType, "at least one channel is required")
	}
	seen := map[savethedate.Channel]bool{}
	out := make([]savethedate.Sharer, 0, len(input.Channels))
	for _, ch := range input.Channels {
		if seen[ch] {
			continue
		}
		seen[ch] = true
		sh, err := h.sharers.Get(ch)
		if err != nil {
			return nil, errors.NewInputValidationFailedError(TaskType,
				fmt.Sprintf("channel %q is not available (configured: %v)", ch, h.sharers.Channels()))
		}
		out = append(out, sh)
	}
	return out, nil
}

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

// For returns the recipients of ch; link and file channels have none.
func (r Recipients) For(ch savethedate.Channel) []string {
	switch ch {
	case savethedate.ChannelEmail:
		return r.Email
	case savethedate.ChannelSMS:
		return r.SMS
	}
	return nil
}

func carriesCard(ch savethedate.Channel) bool {
	switch ch {
	case savethedate.ChannelDownload, savethedate.ChannelNative, savethedate.ChannelEmail:
		return true
	}
	return false
}

func needsCard(channels []savethedate.Channel) bool {
	for _, ch := range channels {
		if carriesCard(ch) {
			return true
		}
	}
	return false
}
