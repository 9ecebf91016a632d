// internal/workers/matchmaker/score-vendors/handler.go
package scorevendors

import (
	"context"
	"time"

	"everaftr-workers/internal/catalog"
	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/common/metrics"
	"everaftr-workers/internal/matchmaker"
	"everaftr-workers/internal/models"
	"everaftr-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "score-vendors"

type Handler struct {
	config   *Config
	deps     camunda.Deps
	catalog  catalog.Source
	sessions session.Store
	logger   logger.Logger
}

func NewHandler(config *Config, deps camunda.Deps, source catalog.Source, sessions session.Store, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		deps:     deps,
		catalog:  source,
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
	answers, err := h.answers(ctx, input)
	if err != nil {
		return nil, err
	}

	vendors, err := h.catalog.Vendors(ctx)
	if err != nil {
		if _, ok := errors.AsStandardError(err); ok {
			return nil, err
		}
		return nil, errors.NewCatalogUnavailableError(h.catalog.Name(), err)
	}

	matches := matchmaker.Rank(vendors, answers)
	if h.config.MaxMatches > 0 && len(matches) > h.config.MaxMatches {
		matches = matches[:h.config.MaxMatches]
	}
	metrics.MatchmakerMatches.Observe(float64(len(matches)))

	h.logger.Info("vendors scored", map[string]interface{}{
		"catalog": len(vendors),
		"matches": len(matches),
	})

	groups := matchmaker.GroupByCategory(matches)
	if groups == nil {
		groups = []matchmaker.Group{}
	}
	return &Output{Matches: matches, Groups: groups, Count: len(matches)}, nil
}

// answers prefers inline answers over the session.
func (h *Handler) answers(ctx context.Context, input *Input) (models.MatchmakerAnswers, error) {
	if input.Answers != nil {
		return *input.Answers, nil
	}
	if input.SessionID == "" {
		return models.MatchmakerAnswers{}, errors.NewInputValidationFailedError(TaskType, "answers or sessionId is required")
	}

	var quiz matchmaker.Quiz
	if err := session.Get(ctx, h.sessions, session.KindQuiz, input.SessionID, &quiz); err != nil {
		return models.MatchmakerAnswers{}, err
	}
	return quiz.Answers, nil
}
