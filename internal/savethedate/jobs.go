// internal/savethedate/jobs.go
package savethedate

import (
	"context"
	stderrors "errors"
	"time"

	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/metrics"
	"everaftr-workers/internal/models"
)

// RenderJob renders d on a background Task bounded by timeout and reports the
// outcome as a StandardError. A zero timeout leaves only ctx as the bound.
func RenderJob(ctx context.Context, d models.SaveTheDateData, scale float64, timeout time.Duration) (*Rendered, error) {
	renderCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		renderCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	template := string(Lookup(d.TemplateID).ID)
	task := Start(renderCtx, func(ctx context.Context) (*Rendered, error) {
		return Render(ctx, d, scale)
	})

	r, err := task.Wait(ctx)
	switch {
	case err == nil:
		metrics.CardsRendered.WithLabelValues(template, "rendered").Inc()
		return r, nil
	case stderrors.Is(err, context.DeadlineExceeded):
		metrics.CardsRendered.WithLabelValues(template, "timeout").Inc()
		return nil, errors.NewCardRenderTimeoutError(template)
	default:
		metrics.CardsRendered.WithLabelValues(template, "failed").Inc()
		return nil, errors.NewCardRenderFailedError(err)
	}
}

// WithoutPhoto returns d with the photo data URL dropped, for echoing the
// form in job output.
func WithoutPhoto(d models.SaveTheDateData) models.SaveTheDateData {
	d.PhotoURL = nil
	return d
}
