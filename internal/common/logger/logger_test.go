package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestMapToZapFields(t *testing.T) {
	assert.Nil(t, mapToZapFields(nil))

	fields := mapToZapFields(map[string]interface{}{
		"error":   errors.New("boom"),
		"vendors": 3,
	})
	assert.Len(t, fields, 2)
}

func TestNew_FallsBackToNopOnBadOutput(t *testing.T) {
	l := NewWithOutput("info", "json", "/nonexistent-dir/everaftr/out.log")
	assert.NotNil(t, l)
}

func TestAdapters(t *testing.T) {
	log := NewTestLogger(t).WithFields(map[string]interface{}{"taskType": "filter-vendors"})
	log.Info("hello", map[string]interface{}{"k": "v"})
	log.WithError(errors.New("x")).Warn("warned", nil)

	nop := NewNoOpLogger()
	nop.Error("ignored", nil)
}
