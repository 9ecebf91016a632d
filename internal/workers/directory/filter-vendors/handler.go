// internal/workers/directory/filter-vendors/handler.go
package filtervendors

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"everaftr-workers/internal/catalog"
	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/common/metrics"
	"everaftr-workers/internal/directory"
	"everaftr-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "filter-vendors"

type Handler struct {
	config  *Config
	deps    camunda.Deps
	catalog catalog.Source
	logger  logger.Logger
}

func NewHandler(config *Config, deps camunda.Deps, source catalog.Source, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		deps:    deps,
		catalog: source,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

// Execute applies the optional toggle, validates the filter and runs it over
// the catalog.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	filter := input.Filter
	if input.Toggle != nil {
		var err error
		if filter, err = applyToggle(filter, *input.Toggle); err != nil {
			return nil, err
		}
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	vendors, err := h.catalog.Vendors(ctx)
	if err != nil {
		if _, ok := errors.AsStandardError(err); ok {
			return nil, err
		}
		return nil, errors.NewCatalogUnavailableError(h.catalog.Name(), err)
	}

	matched := directory.Filter(vendors, filter)
	metrics.DirectoryResults.Observe(float64(len(matched)))

	h.logger.Debug("directory filtered", map[string]interface{}{
		"source":  h.catalog.Name(),
		"catalog": len(vendors),
		"matched": len(matched),
		"active":  filter.IsActive(),
	})

	return &Output{
		Vendors:    directory.AnnotateAll(matched),
		Count:      len(matched),
		CountLabel: directory.CountLabel(len(matched)),
		Filter:     normalizeFilter(filter),
		Active:     filter.IsActive(),
		Source:     h.catalog.Name(),
	}, nil
}

func applyToggle(f directory.FilterState, t Toggle) (directory.FilterState, error) {
	switch t.Facet {
	case FacetCategory:
		f.Category = t.Value
	case FacetQuery:
		f.Query = t.Value
	case FacetBudgetTier:
		tier, err := strconv.Atoi(t.Value)
		if err != nil {
			return f, errors.NewInvalidFilterFormatError(fmt.Sprintf("budget tier %q is not a number", t.Value))
		}
		f.BudgetTiers = directory.Toggle(f.BudgetTiers, tier)
	case FacetLocation:
		f.Locations = directory.Toggle(f.Locations, t.Value)
	case FacetStyle:
		f.Styles = directory.Toggle(f.Styles, t.Value)
	default:
		return f, errors.NewInvalidFilterFormatError(fmt.Sprintf("unknown facet %q", t.Facet))
	}
	return f, nil
}

func validateFilter(f directory.FilterState) error {
	for _, tier := range f.BudgetTiers {
		if tier < models.MinBudgetTier || tier > models.MaxBudgetTier {
			return errors.NewInvalidFilterFormatError(fmt.Sprintf("budget tier %d is outside %d-%d",
				tier, models.MinBudgetTier, models.MaxBudgetTier))
		}
	}
	return nil
}

// normalizeFilter echoes empty facets as [] rather than null.
func normalizeFilter(f directory.FilterState) directory.FilterState {
	if f.BudgetTiers == nil {
		f.BudgetTiers = []int{}
	}
	if f.Locations == nil {
		f.Locations = []string{}
	}
	if f.Styles == nil {
		f.Styles = []string{}
	}
	if f.Category == "" {
		f.Category = catalog.CategoryAll
	}
	return f
}
