package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/anas-shakeel/imglib/internal/pipeline"
	"gopkg.in/yaml.v2"
)

// Pipeline describes one `apply` run: where to read, where to write and
// what to do in between.
type Pipeline struct {
	Input  string          `yaml:"input"`
	Output string          `yaml:"output"`
	Strict bool            `yaml:"strict"`
	Steps  []pipeline.Step `yaml:"steps"`
}

// Load reads and validates a pipeline definition from a YAML file.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration file '%s': %w", path, err)
	}
	slog.Debug("loaded pipeline", "path", path, "steps", len(p.Steps))
	return p, nil
}

// Parse decodes and validates a pipeline definition.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("invalid YAML: %s", strings.Join(typeErr.Errors, "; "))
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields Parse cannot check by type alone.
func (p *Pipeline) Validate() error {
	switch {
	case strings.TrimSpace(p.Input) == "":
		return errors.New("invalid pipeline: input is required")
	case strings.TrimSpace(p.Output) == "":
		return errors.New("invalid pipeline: output is required")
	case len(p.Steps) == 0:
		return errors.New("invalid pipeline: at least one step is required")
	}

	for i, step := range p.Steps {
		if step.Op == "" {
			return fmt.Errorf("invalid pipeline: step %d has no op", i+1)
		}
	}
	return pipeline.Validate(p.Steps)
}
