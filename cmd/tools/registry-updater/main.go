// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"everaftr-workers/internal/common/validation"
	"everaftr-workers/pkg/registry"
)

const defaultRegistryPath = "configs/activity-registry.json"

func main() {
	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "add":
		err = runAdd(os.Args[2:])
	case "update":
		err = runUpdate(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	case "schema-check":
		err = runSchemaCheck(os.Args[2:], os.Stdin)
	case "list":
		err = runList(os.Args[2:])
	case "help":
		help()
	default:
		help()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	id := fs.String("id", "", "Activity ID (e.g., score-vendors)")
	displayName := fs.String("displayName", "", "Display Name (e.g., Score Vendors)")
	description := fs.String("description", "", "Description")
	category := fs.String("category", "", "Category (directory, matchmaker, planner, savethedate, guides)")
	taskType := fs.String("taskType", "", "Zeebe task type; defaults to the id")
	version := fs.String("version", "1.0.0", "Version")
	status := fs.String("status", "planned", "Implementation Status (planned, in-progress, completed, verified)")
	timeout := fs.String("timeout", "10s", "Job timeout")
	retries := fs.Int("retries", 3, "Zeebe retries")
	tags := fs.String("tags", "", "Comma separated tags")
	_ = fs.Parse(args)

	if *id == "" || *displayName == "" || *description == "" || *category == "" {
		fs.Usage()
		return fmt.Errorf("id, displayName, description and category are required for add")
	}
	if *taskType == "" {
		*taskType = *id
	}

	reg, err := loadOrCreate(*path)
	if err != nil {
		return err
	}
	if err := addActivity(reg, registry.Activity{
		ID:                   *id,
		DisplayName:          *displayName,
		Description:          *description,
		Category:             *category,
		Version:              *version,
		TaskType:             *taskType,
		ImplementationStatus: *status,
		InputSchema:          map[string]interface{}{"type": "object"},
		OutputSchema:         map[string]interface{}{"type": "object"},
		ErrorCodes:           []string{},
		Timeout:              *timeout,
		Retries:              *retries,
		Tags:                 splitList(*tags),
	}); err != nil {
		return err
	}
	if err := registry.Save(reg, *path); err != nil {
		return err
	}
	fmt.Printf("Added activity: %s\n", *id)
	return nil
}

func runUpdate(args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	id := fs.String("id", "", "Activity ID to update")
	field := fs.String("field", "", "Field to update (status, version, displayName, description, category, taskType, timeout, retries, tags)")
	value := fs.String("value", "", "New value for the field")
	_ = fs.Parse(args)

	if *id == "" || *field == "" || *value == "" {
		fs.Usage()
		return fmt.Errorf("id, field and value are required for update")
	}

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := updateActivity(reg, *id, *field, *value); err != nil {
		return err
	}
	if err := registry.Save(reg, *path); err != nil {
		return err
	}
	fmt.Printf("Updated activity %s, field %s to %s\n", *id, *field, *value)
	return nil
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	_ = fs.Parse(args)

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Check(); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}
	// Every input schema must compile, otherwise the worker manager refuses to start.
	if _, err := validation.NewValidator(reg); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}

	fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}

// runSchemaCheck validates a job variables document against the input schema
// registered for a task type. "-" reads the document from stdin.
func runSchemaCheck(args []string, stdin io.Reader) error {
	fs := flag.NewFlagSet("schema-check", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	taskType := fs.String("taskType", "", "Task type whose input schema is used")
	vars := fs.String("vars", "-", "JSON variables file, or - for stdin")
	_ = fs.Parse(args)

	if *taskType == "" {
		fs.Usage()
		return fmt.Errorf("taskType is required for schema-check")
	}

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	v, err := validation.NewValidator(reg)
	if err != nil {
		return err
	}
	if !v.Has(*taskType) {
		return fmt.Errorf("no input schema registered for %s", *taskType)
	}

	var doc []byte
	if *vars == "-" {
		doc, err = io.ReadAll(stdin)
	} else {
		doc, err = os.ReadFile(*vars)
	}
	if err != nil {
		return fmt.Errorf("failed to read variables: %w", err)
	}

	res := v.ValidateJSON(*taskType, doc)
	if !res.Valid {
		for _, e := range res.Errors {
			fmt.Printf("  %s: %s (%s)\n", e.Field, e.Message, e.Code)
		}
		return fmt.Errorf("variables do not match the %s input schema", *taskType)
	}
	fmt.Printf("Variables match the %s input schema.\n", *taskType)
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	category := fs.String("category", "", "Only list this category")
	_ = fs.Parse(args)

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	acts := append([]registry.Activity(nil), reg.Activities...)
	sort.Slice(acts, func(i, j int) bool {
		if acts[i].Category != acts[j].Category {
			return acts[i].Category < acts[j].Category
		}
		return acts[i].ID < acts[j].ID
	})
	for _, a := range acts {
		if *category != "" && a.Category != *category {
			continue
		}
		fmt.Printf("%-12s %-20s %-12s %s\n", a.Category, a.TaskType, a.ImplementationStatus, a.Timeout)
	}
	return nil
}

func loadOrCreate(path string) (*registry.ActivityRegistry, error) {
	reg, err := registry.LoadRegistry(path)
	if err == nil {
		return reg, nil
	}
	if os.IsNotExist(err) {
		return &registry.ActivityRegistry{Version: "1.0.0", Activities: []registry.Activity{}}, nil
	}
	return nil, fmt.Errorf("failed to load registry: %w", err)
}

func addActivity(reg *registry.ActivityRegistry, a registry.Activity) error {
	for _, existing := range reg.Activities {
		if existing.ID == a.ID {
			return fmt.Errorf("activity with ID %s already exists", a.ID)
		}
		if existing.TaskType == a.TaskType {
			return fmt.Errorf("task type %s is already registered by %s", a.TaskType, existing.ID)
		}
	}
	reg.Activities = append(reg.Activities, a)
	return nil
}

func updateActivity(reg *registry.ActivityRegistry, id, field, value string) error {
	var a *registry.Activity
	for i := range reg.Activities {
		if reg.Activities[i].ID == id {
			a = &reg.Activities[i]
			break
		}
	}
	if a == nil {
		return fmt.Errorf("activity with ID %s not found", id)
	}

	switch field {
	case "status":
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "displayName":
		a.DisplayName = value
	case "description":
		a.Description = value
	case "category":
		a.Category = value
	case "taskType":
		a.TaskType = value
	case "timeout":
		a.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value: %w", err)
		}
		a.Retries = retries
	case "tags":
		a.Tags = splitList(value)
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func help() {
	fmt.Print(`
Usage: registry-updater <command> [flags]

Commands:
  add           Add a new activity to the registry
  update        Update an existing activity's field
  validate      Check the registry and compile every input schema
  schema-check  Validate job variables against a task type's input schema
  list          List registered activities
  help          Show this help message

Examples:
  registry-updater add -id score-vendors -displayName "Score Vendors" -description "Ranks vendors" -category matchmaker
  registry-updater update -id score-vendors -field status -value completed
  registry-updater validate -path configs/activity-registry.json
  echo '{"sessionId":"w1","toggleId":"c1"}' | registry-updater schema-check -taskType update-checklist

Use 'registry-updater <command> -h' for more information about a command.
`)
}
