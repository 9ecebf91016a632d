// cmd/tools/worker-generator/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"everaftr-workers/pkg/registry"
)

// WorkerData is what the templates see.
type WorkerData struct {
	Name        string
	PackageName string
	Dir         string
	TaskType    string
	Description string
	Category    string
	Timeout     time.Duration
	Input       []Field
	Output      []Field
	ErrorCodes  []string
}

// Field is one generated struct field.
type Field struct {
	GoName   string
	GoType   string
	JSONName string
}

// schemaFields turns the top-level properties of a JSON schema into fields,
// sorted by JSON name so regeneration is stable.
func schemaFields(schema map[string]interface{}) []Field {
	props, _ := schema["properties"].(map[string]interface{})
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		details, _ := props[name].(map[string]interface{})
		fields = append(fields, Field{
			GoName:   goName(name),
			GoType:   goType(details["type"]),
			JSONName: name,
		})
	}
	return fields
}

// goType maps a JSON schema type to a Go type. A ["x","null"] union maps
// like x.
func goType(jsonType interface{}) string {
	if union, ok := jsonType.([]interface{}); ok {
		for _, t := range union {
			if s, ok := t.(string); ok && s != "null" {
				if len(union) > 2 {
					return "interface{}"
				}
				return goType(s)
			}
		}
		return "interface{}"
	}

	switch jsonType {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]interface{}"
	case "array":
		return "[]interface{}"
	default:
		return "interface{}"
	}
}

// goName upper-cases the first letter and the common initialisms used by the
// job variables (sessionId becomes SessionID).
func goName(prop string) string {
	if prop == "" {
		return prop
	}
	name := strings.ToUpper(prop[:1]) + prop[1:]
	for _, suffix := range []string{"Id", "Url"} {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix) + strings.ToUpper(suffix)
		}
	}
	return name
}

func packageName(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

func parseTimeout(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func newWorkerData(a *registry.Activity) WorkerData {
	return WorkerData{
		Name:        a.DisplayName,
		PackageName: packageName(a.ID),
		Dir:         a.ID,
		TaskType:    a.TaskType,
		Description: a.Description,
		Category:    strings.ToLower(a.Category),
		Timeout:     parseTimeout(a.Timeout),
		Input:       schemaFields(a.InputSchema),
		Output:      schemaFields(a.OutputSchema),
		ErrorCodes:  a.ErrorCodes,
	}
}

const configTemplate = `// internal/workers/{{ .Category }}/{{ .Dir }}/config.go
package {{ .PackageName }}

import (
	"time"

	"everaftr-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{Timeout: {{ duration .Timeout }}}
}

func NewConfig(wc config.WorkerConfig) *Config {
	cfg := DefaultConfig()
	if wc.Timeout > 0 {
		cfg.Timeout = config.GetDuration(wc.Timeout)
	}
	return cfg
}
`

const modelsTemplate = `// internal/workers/{{ .Category }}/{{ .Dir }}/models.go
package {{ .PackageName }}

type Input struct {
{{- range .Input }}
	{{ .GoName }} {{ .GoType }} ` + "`json:\"{{ .JSONName }}\"`" + `
{{- end }}
}

type Output struct {
{{- range .Output }}
	{{ .GoName }} {{ .GoType }} ` + "`json:\"{{ .JSONName }}\"`" + `
{{- end }}
}
`

const handlerTemplate = `// internal/workers/{{ .Category }}/{{ .Dir }}/handler.go
package {{ .PackageName }}

import (
	"context"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "{{ .TaskType }}"

type Handler struct {
	config *Config
	deps   camunda.Deps
	logger logger.Logger
}

func NewHandler(config *Config, deps camunda.Deps, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		deps:   deps,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

// Execute {{ lowerFirst .Description }}
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return nil, errors.NewBusinessRuleError(TaskType+" is not implemented", "generated scaffold")
}
`

const testTemplate = `package {{ .PackageName }}

import (
	"context"
	"testing"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantErr bool
	}{
		{name: "not implemented", input: Input{}, wantErr: true},
	}

	h := NewHandler(DefaultConfig(), camunda.Deps{}, logger.NewTestLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			out, err := h.Execute(context.Background(), &input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, out)
		})
	}
}
`

const registrationTemplate = `
Register the worker in cmd/worker-manager/main.go:

	{{ .PackageName }} "everaftr-workers/internal/workers/{{ .Category }}/{{ .Dir }}"

	{taskType: {{ .PackageName }}.TaskType, build: func(wc config.WorkerConfig) (camunda.JobHandler, error) {
		return {{ .PackageName }}.NewHandler({{ .PackageName }}.NewConfig(wc), deps, log), nil
	}},

and add it to configs/config.yaml:

	workers:
	  {{ .TaskType }}:
	    enabled: true
	    max_jobs_active: 5
	    timeout: {{ .Timeout.Milliseconds }}
	    max_retries: 3
`

var funcMap = template.FuncMap{
	"duration": func(d time.Duration) string {
		if d%time.Second == 0 {
			return fmt.Sprintf("%d * time.Second", d/time.Second)
		}
		return fmt.Sprintf("%d * time.Millisecond", d/time.Millisecond)
	},
	"lowerFirst": func(s string) string {
		if s == "" {
			return "runs the job."
		}
		return strings.ToLower(s[:1]) + s[1:]
	},
}

// generate writes the scaffold into dir. Existing files are left alone unless
// force is set.
func generate(data WorkerData, dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	files := []struct {
		name string
		tmpl string
	}{
		{"config.go", configTemplate},
		{"models.go", modelsTemplate},
		{"handler.go", handlerTemplate},
		{"handler_test.go", testTemplate},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil && !force {
			continue
		}

		tmpl, err := template.New(f.name).Funcs(funcMap).Parse(f.tmpl)
		if err != nil {
			return written, fmt.Errorf("parse template %s: %w", f.name, err)
		}
		out, err := os.Create(path)
		if err != nil {
			return written, fmt.Errorf("create %s: %w", path, err)
		}
		err = tmpl.Execute(out, data)
		out.Close()
		if err != nil {
			return written, fmt.Errorf("render %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func main() {
	activity := flag.String("activity", "", "Activity ID from registry (e.g., score-vendors)")
	outputDir := flag.String("output", "./internal/workers/", "Root directory for generated workers")
	registryPath := flag.String("registry", "configs/activity-registry.json", "Path to the activity registry JSON file")
	force := flag.Bool("force", false, "Overwrite existing files")
	flag.Parse()

	if *activity == "" {
		fmt.Println("Usage: worker-generator -activity <id> [-output <dir>] [-registry <path>] [-force]")
		os.Exit(1)
	}

	reg, err := registry.LoadRegistry(*registryPath)
	if err != nil {
		fmt.Printf("Error loading registry from %s: %v\n", *registryPath, err)
		os.Exit(1)
	}

	var found *registry.Activity
	for i := range reg.Activities {
		if reg.Activities[i].ID == *activity {
			found = &reg.Activities[i]
			break
		}
	}
	if found == nil {
		fmt.Printf("Activity '%s' not found in registry %s\n", *activity, *registryPath)
		os.Exit(1)
	}

	data := newWorkerData(found)
	dir := filepath.Join(*outputDir, data.Category, data.Dir)
	written, err := generate(data, dir, *force)
	for _, path := range written {
		fmt.Printf("Generated %s\n", path)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	_ = template.Must(template.New("registration").Parse(registrationTemplate)).Execute(os.Stdout, data)
}
