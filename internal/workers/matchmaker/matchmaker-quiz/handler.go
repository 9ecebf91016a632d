// internal/workers/matchmaker/matchmaker-quiz/handler.go
package matchmakerquiz

import (
	"context"
	"fmt"
	"time"

	"everaftr-workers/internal/catalog"
	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/matchmaker"
	"everaftr-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "matchmaker-quiz"

type Handler struct {
	config   *Config
	deps     camunda.Deps
	sessions session.Store
	catalog  catalog.Source
	logger   logger.Logger
}

func NewHandler(config *Config, deps camunda.Deps, sessions session.Store, source catalog.Source, log logger.Logger) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	return &Handler{
		config:   config,
		deps:     deps,
		sessions: sessions,
		catalog:  source,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}, nil
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

// Execute drives one quiz transition. "start" opens a session and "close"
// discards it; every other action loads, mutates and saves the quiz.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	switch input.Action {
	case matchmaker.ActionStart:
		quiz := matchmaker.NewQuiz()
		id, err := session.Start(ctx, h.sessions, session.KindQuiz, quiz)
		if err != nil {
			return nil, err
		}
		h.logger.Debug("quiz session opened", map[string]interface{}{"sessionId": id})
		return h.view(ctx, id, quiz)

	case matchmaker.ActionClose:
		if err := session.Close(ctx, h.sessions, session.KindQuiz, input.SessionID); err != nil {
			return nil, err
		}
		return &Output{SessionID: input.SessionID, Closed: true}, nil
	}

	var quiz matchmaker.Quiz
	if err := session.Get(ctx, h.sessions, session.KindQuiz, input.SessionID, &quiz); err != nil {
		return nil, err
	}

	if err := apply(&quiz, input); err != nil {
		return nil, err
	}

	if err := session.Put(ctx, h.sessions, session.KindQuiz, input.SessionID, &quiz); err != nil {
		return nil, err
	}
	return h.view(ctx, input.SessionID, &quiz)
}

func apply(q *matchmaker.Quiz, input *Input) error {
	switch input.Action {
	case matchmaker.ActionSelect:
		if err := q.Select(input.Value); err != nil {
			return errors.NewInvalidQuizActionError(err.Error())
		}
	case matchmaker.ActionNext:
		q.Next()
	case matchmaker.ActionBack:
		q.Back()
	case matchmaker.ActionReset:
		q.Reset()
	default:
		return errors.NewInvalidQuizActionError(fmt.Sprintf("unknown action %q", input.Action))
	}
	return nil
}

func (h *Handler) view(ctx context.Context, id string, q *matchmaker.Quiz) (*Output, error) {
	out := &Output{
		SessionID:       id,
		Phase:           q.Phase(),
		ProgressLabel:   q.ProgressLabel(),
		ProgressPercent: q.ProgressPercent(),
		Answers:         q.Answers,
	}

	if step, ok := q.Current(); ok {
		out.Step = stepView(q, step)
		return out, nil
	}

	vendors, err := h.catalog.Vendors(ctx)
	if err != nil {
		if _, ok := errors.AsStandardError(err); ok {
			return nil, err
		}
		return nil, errors.NewCatalogUnavailableError(h.catalog.Name(), err)
	}
	out.Matches = matchmaker.Rank(vendors, q.Answers)
	out.Groups = matchmaker.GroupByCategory(out.Matches)
	return out, nil
}

func stepView(q *matchmaker.Quiz, step matchmaker.Step) *StepView {
	v := &StepView{
		Index:    q.Step,
		Title:    step.Title,
		Subtitle: step.Subtitle,
		Field:    step.Field,
		Multi:    step.Multi,
		Options:  make([]OptionView, len(step.Options)),
	}
	for i, o := range step.Options {
		v.Options[i] = OptionView{Label: o.Label, Value: o.Value, Selected: q.Selected(step, o.Value)}
	}
	return v
}
