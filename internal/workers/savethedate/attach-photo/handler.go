// internal/workers/savethedate/attach-photo/handler.go
package attachphoto

import (
	"context"
	"encoding/base64"
	"strings"
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

const TaskType = "attach-photo"

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

// Execute attaches the photo to the workspace card. A rejected upload is a
// normal outcome: the job completes with Applied false and the reason.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	upload, err := decodeUpload(input)
	if err != nil {
		return nil, err
	}

	w, err := planner.LoadWorkspace(ctx, h.sessions, input.SessionID)
	if err != nil {
		return nil, err
	}

	res := savethedate.AttachPhoto(&w.SaveTheDate, upload)
	if res.Applied {
		if err := planner.SaveWorkspace(ctx, h.sessions, input.SessionID, w); err != nil {
			return nil, err
		}
	} else {
		h.logger.Warn("photo rejected", map[string]interface{}{
			"filename": input.Filename,
			"reason":   res.Reason,
		})
	}

	return &Output{
		SessionID: input.SessionID,
		Applied:   res.Applied,
		Reason:    res.Reason,
		HasPhoto:  res.PhotoURL != nil,
	}, nil
}

func decodeUpload(input *Input) (savethedate.Upload, error) {
	up := savethedate.Upload{Filename: input.Filename, ContentType: input.ContentType}
	if input.Data == "" {
		return up, nil
	}

	if strings.HasPrefix(input.Data, "data:") {
		mime, data, err := savethedate.DecodeDataURL(input.Data)
		if err != nil {
			return up, errors.NewInputValidationFailedError(TaskType, "data: "+err.Error())
		}
		if up.ContentType == "" {
			up.ContentType = mime
		}
		up.Data = data
		return up, nil
	}

	data, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		return up, errors.NewInputValidationFailedError(TaskType, "data is not valid base64")
	}
	up.Data = data
	return up, nil
}
