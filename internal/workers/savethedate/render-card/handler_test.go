package rendercard

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/config"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/models"
	"everaftr-workers/internal/planner"
	"everaftr-workers/internal/savethedate"
	"everaftr-workers/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func sampleData() models.SaveTheDateData {
	d := models.NewSaveTheDateData()
	d.BrideName = "Maria Clara"
	d.GroomName = "Juan"
	d.WeddingDate = "2026-12-05"
	d.Venue = "Manila Cathedral"
	return d
}

func newTestHandler(t *testing.T, cfg *Config) (*Handler, session.Store) {
	store := session.NewMemoryStore(time.Hour)
	return NewHandler(cfg, camunda.Deps{}, store, logger.NewTestLogger(t)), store
}

func decodeImage(t *testing.T, url string) (int, int) {
	t.Helper()
	_, data, err := savethedate.DecodeDataURL(url)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

// ==========================
// Config Tests
// ==========================

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(config.WorkerConfig{Timeout: 45000}, config.RenderConfig{Timeout: 8000, Scale: 3})
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 8*time.Second, cfg.RenderTimeout)
	assert.Equal(t, 3.0, cfg.Scale)

	def := NewConfig(config.WorkerConfig{}, config.RenderConfig{})
	assert.Equal(t, DefaultConfig(), def)
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute_Templates(t *testing.T) {
	h, _ := newTestHandler(t, DefaultConfig())

	for _, id := range []models.TemplateID{
		models.TemplateClassicElegant,
		models.TemplateModernMinimal,
		models.TemplateFilipiniana,
		models.TemplateTropicalBeach,
	} {
		t.Run(string(id), func(t *testing.T) {
			d := sampleData()
			d.TemplateID = id

			out, err := h.Execute(context.Background(), &Input{SaveTheDate: &d, Scale: 1})
			require.NoError(t, err)
			assert.Equal(t, id, out.TemplateID)
			assert.Equal(t, savethedate.CardWidth, out.Width)
			assert.Equal(t, savethedate.CardHeight, out.Height)
			assert.False(t, out.PhotoUsed)
			assert.Equal(t, "save-the-date-maria-clara-juan.png", out.FileName)

			w, hgt := decodeImage(t, out.ImageURL)
			assert.Equal(t, out.Width, w)
			assert.Equal(t, out.Height, hgt)
		})
	}
}

func TestHandler_Execute_ScaleFallsBackToConfig(t *testing.T) {
	h, _ := newTestHandler(t, &Config{Timeout: time.Minute, RenderTimeout: time.Minute, Scale: 2})
	d := sampleData()

	out, err := h.Execute(context.Background(), &Input{SaveTheDate: &d})
	require.NoError(t, err)
	assert.Equal(t, 2*savethedate.CardWidth, out.Width)
	assert.Equal(t, 2*savethedate.CardHeight, out.Height)
}

func TestHandler_Execute_FromWorkspace(t *testing.T) {
	ctx := context.Background()
	h, store := newTestHandler(t, DefaultConfig())

	w := planner.NewWorkspace()
	w.SaveTheDate = sampleData()
	w.SaveTheDate.TemplateID = models.TemplateTropicalBeach
	id, err := session.Open(ctx, store, session.KindWorkspace, w)
	require.NoError(t, err)

	out, err := h.Execute(ctx, &Input{SessionID: id, Scale: 1})
	require.NoError(t, err)
	assert.Equal(t, models.TemplateTropicalBeach, out.TemplateID)
	assert.Equal(t, "M & J", out.Card.Monogram)
}

func TestHandler_Execute_Errors(t *testing.T) {
	d := sampleData()

	tests := []struct {
		name  string
		cfg   *Config
		input Input
		want  errors.ErrorCode
	}{
		{name: "nothing to render", cfg: DefaultConfig(), input: Input{}, want: errors.ErrCodeInputValidationFailed},
		{name: "expired session", cfg: DefaultConfig(), input: Input{SessionID: "gone"}, want: errors.ErrCodeSessionNotFound},
		{
			name:  "render deadline",
			cfg:   &Config{Timeout: time.Minute, RenderTimeout: time.Nanosecond, Scale: 2},
			input: Input{SaveTheDate: &d},
			want:  errors.ErrCodeCardRenderTimeout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, tt.cfg)
			input := tt.input
			_, err := h.Execute(context.Background(), &input)
			stdErr, ok := errors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, stdErr.Code)
		})
	}
}
