package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"everaftr-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	require.NoError(t, registry.Save(&registry.ActivityRegistry{
		Version: "1.0.0",
		Activities: []registry.Activity{{
			ID:          "update-checklist",
			DisplayName: "Update Checklist",
			Category:    "planner",
			TaskType:    "update-checklist",
			InputSchema: map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"sessionId", "toggleId"},
			},
		}},
	}, path))
	return path
}

func TestAddActivity(t *testing.T) {
	reg := &registry.ActivityRegistry{}
	require.NoError(t, addActivity(reg, registry.Activity{ID: "edit-card", TaskType: "edit-card"}))

	err := addActivity(reg, registry.Activity{ID: "edit-card", TaskType: "other"})
	assert.Error(t, err)

	err = addActivity(reg, registry.Activity{ID: "edit-card-v2", TaskType: "edit-card"})
	assert.ErrorContains(t, err, "already registered")
}

func TestUpdateActivity(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		check   func(t *testing.T, a registry.Activity)
		wantErr bool
	}{
		{name: "status", field: "status", value: "verified", check: func(t *testing.T, a registry.Activity) {
			assert.Equal(t, "verified", a.ImplementationStatus)
		}},
		{name: "retries", field: "retries", value: "5", check: func(t *testing.T, a registry.Activity) {
			assert.Equal(t, 5, a.Retries)
		}},
		{name: "tags", field: "tags", value: "planner, checklist,", check: func(t *testing.T, a registry.Activity) {
			assert.Equal(t, []string{"planner", "checklist"}, a.Tags)
		}},
		{name: "bad retries", field: "retries", value: "many", wantErr: true},
		{name: "unknown field", field: "owner", value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &registry.ActivityRegistry{Activities: []registry.Activity{{ID: "update-budget"}}}
			err := updateActivity(reg, "update-budget", tt.field, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, reg.Activities[0])
		})
	}

	assert.Error(t, updateActivity(&registry.ActivityRegistry{}, "missing", "status", "x"))
}

func TestRunValidate(t *testing.T) {
	assert.NoError(t, runValidate([]string{"-path", writeRegistry(t)}))
	assert.Error(t, runValidate([]string{"-path", filepath.Join(t.TempDir(), "none.json")}))
}

func TestRunSchemaCheck(t *testing.T) {
	path := writeRegistry(t)

	err := runSchemaCheck([]string{"-path", path, "-taskType", "update-checklist"},
		strings.NewReader(`{"sessionId":"w1","toggleId":"c1"}`))
	assert.NoError(t, err)

	err = runSchemaCheck([]string{"-path", path, "-taskType", "update-checklist"},
		strings.NewReader(`{"sessionId":"w1"}`))
	assert.Error(t, err)

	vars := filepath.Join(t.TempDir(), "vars.json")
	require.NoError(t, os.WriteFile(vars, []byte(`{"sessionId":"w1","toggleId":"c2"}`), 0o600))
	assert.NoError(t, runSchemaCheck([]string{"-path", path, "-taskType", "update-checklist", "-vars", vars}, nil))

	err = runSchemaCheck([]string{"-path", path, "-taskType", "render-card"}, strings.NewReader(`{}`))
	assert.ErrorContains(t, err, "no input schema")
}
