// internal/planner/jobs.go
package planner

import (
	"context"
	stderrors "errors"

	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/session"
)

// LoadWorkspace reads the workspace session id. Tools missing from an older
// stored document are reseeded.
func LoadWorkspace(ctx context.Context, s session.Store, id string) (*Workspace, error) {
	var w Workspace
	if err := session.Get(ctx, s, session.KindWorkspace, id, &w); err != nil {
		return nil, err
	}
	if w.Checklist == nil {
		w.Checklist = NewChecklist()
	}
	if w.Budget == nil {
		w.Budget = NewBudget()
	}
	if w.Sponsors == nil {
		w.Sponsors = NewSponsors()
	}
	return &w, nil
}

func SaveWorkspace(ctx context.Context, s session.Store, id string, w *Workspace) error {
	return session.Put(ctx, s, session.KindWorkspace, id, w)
}

// JobError maps planner failures onto StandardErrors; anything else passes
// through unchanged.
func JobError(err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return errors.NewItemNotFoundError(nf.Kind, nf.ID)
	}
	if stderrors.Is(err, ErrInvalidAssignment) {
		return errors.NewInputValidationFailedError("manage-sponsors", err.Error())
	}
	return err
}
