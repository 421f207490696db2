package runner

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/taskfs/taskfs/engine/builtin"
	"github.com/taskfs/taskfs/engine/core"
	"github.com/taskfs/taskfs/engine/task"
)

// -----------------------------------------------------------------------------
// Pipeline definition
// -----------------------------------------------------------------------------

// Pipeline is the YAML shape for a declared task sequence.
type Pipeline struct {
	Layout task.Layout `yaml:"layout"`
	Tasks  []TaskSpec  `yaml:"tasks" validate:"min=1,dive"`
}

// TaskSpec declares one task. Kind selects the concrete type; the remaining
// fields apply per kind.
type TaskSpec struct {
	Kind     string `yaml:"kind"               validate:"required,oneof=split_file executable directory line_count"`
	Filename string `yaml:"filename,omitempty"`
	Chunks   int    `yaml:"chunks,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Message  string `yaml:"message,omitempty"`
	Path     string `yaml:"path,omitempty"`
}

// LoadPipeline parses and validates a pipeline file.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline file: %w", err)
	}
	if err := validator.New().Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid pipeline file: %w", err)
	}
	return &p, nil
}

// Build maps the declared specs onto concrete tasks.
func (p *Pipeline) Build() ([]task.Task, error) {
	tasks := make([]task.Task, 0, len(p.Tasks))
	for i, spec := range p.Tasks {
		t, err := spec.build(p.Layout)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (s TaskSpec) build(layout task.Layout) (task.Task, error) {
	switch s.Kind {
	case "split_file":
		chunks := s.Chunks
		if chunks == 0 {
			chunks = 1
		}
		return &builtin.SplitFile{Filename: s.Filename, Chunks: chunks, Layout: layout}, nil
	case "executable":
		return builtin.NewExecutable(s.Name, s.Message), nil
	case "directory":
		return &builtin.Directory{Path: s.Path}, nil
	case "line_count":
		return &builtin.LineCount{Filename: s.Filename, Layout: layout}, nil
	default:
		return nil, core.NewMisconfiguredError("kind", fmt.Sprintf("unknown task kind %q", s.Kind))
	}
}
