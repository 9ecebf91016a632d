// internal/planner/errors.go
package planner

import "fmt"

// NotFoundError reports an unknown item id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
