package validation

import (
	"fmt"
	"strings"

	"everaftr-workers/internal/common/errors"
	"everaftr-workers/pkg/registry"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Validator checks job variables against the input schemas of an activity registry.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles every non-empty input schema in reg.
func NewValidator(reg *registry.ActivityRegistry) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema)}
	for _, a := range reg.Activities {
		if len(a.InputSchema) == 0 {
			continue
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(a.InputSchema))
		if err != nil {
			return nil, fmt.Errorf("compile input schema for %s: %w", a.TaskType, err)
		}
		v.schemas[a.TaskType] = schema
	}
	return v, nil
}

// Has reports whether a schema is registered for taskType.
func (v *Validator) Has(taskType string) bool {
	if v == nil {
		return false
	}
	_, ok := v.schemas[taskType]
	return ok
}

// ValidateJSON validates a raw JSON document. Task types without a schema pass.
func (v *Validator) ValidateJSON(taskType string, document []byte) *ValidationResult {
	if !v.Has(taskType) {
		return &ValidationResult{Valid: true}
	}

	result, err := v.schemas[taskType].Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &ValidationResult{Errors: []ValidationError{{
			Field:   "(root)",
			Message: err.Error(),
			Code:    "INVALID_JSON",
		}}}
	}
	return convert(result)
}

// Validate is ValidateJSON returning a StandardError when the document is rejected.
// A nil Validator accepts everything.
func (v *Validator) Validate(taskType string, document []byte) error {
	res := v.ValidateJSON(taskType, document)
	if res.Valid {
		return nil
	}
	return errors.NewInputValidationFailedError(taskType, res.Summary()).
		WithMetadata("validationErrors", res.Errors)
}

func convert(result *gojsonschema.Result) *ValidationResult {
	out := &ValidationResult{Valid: result.Valid()}
	for _, re := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   re.Field(),
			Message: re.Description(),
			Code:    strings.ToUpper(re.Type()),
		})
	}
	return out
}

// Summary joins the errors as "field: message; ...".
func (r *ValidationResult) Summary() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}
