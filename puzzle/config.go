package puzzle

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed bugbyte.yaml
var bugByteYAML []byte

// ErrInvalidConfiguration wraps every reason a puzzle cannot be searched.
var ErrInvalidConfiguration = errors.New("puzzle: invalid configuration")

// Config is the on-disk description of a puzzle.
type Config struct {
	Name        string        `yaml:"name"`
	Vertices    int           `yaml:"vertices"`
	Edges       [][]int       `yaml:"edges"`
	SumTargets  map[int]int   `yaml:"sum_targets,omitempty"`
	PathTargets map[int][]int `yaml:"path_targets,omitempty"`
	Fixed       map[int]int   `yaml:"fixed,omitempty"` // edge id -> weight
	Decode      *DecodeConfig `yaml:"decode,omitempty"`
}

// DecodeConfig names the endpoints of the message path.
type DecodeConfig struct {
	Source   int    `yaml:"source"`
	Target   int    `yaml:"target"`
	Alphabet string `yaml:"alphabet,omitempty"`
}

// Parse decodes and validates a YAML puzzle. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfiguration)
		}
		return nil, fmt.Errorf("%w: parse yaml: %w", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads and parses a puzzle file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// BugByte returns the built-in 18-vertex, 24-edge puzzle.
func BugByte() *Config {
	cfg, err := Parse(bugByteYAML)
	if err != nil {
		panic(fmt.Sprintf("puzzle: embedded bugbyte.yaml: %v", err))
	}

	return cfg
}

// Validate checks ranges that do not need the graph. Loops, repeated edges
// and disconnected decode endpoints are caught later by New.
func (c *Config) Validate() error {
	if c.Vertices < 1 {
		return fmt.Errorf("%w: vertices must be >= 1, got %d", ErrInvalidConfiguration, c.Vertices)
	}
	if len(c.Edges) == 0 {
		return fmt.Errorf("%w: no edges", ErrInvalidConfiguration)
	}
	for i, e := range c.Edges {
		if len(e) != 2 {
			return fmt.Errorf("%w: edge %d has %d endpoints", ErrInvalidConfiguration, i, len(e))
		}
		if !c.hasVertex(e[0]) || !c.hasVertex(e[1]) {
			return fmt.Errorf("%w: edge %d %v out of range", ErrInvalidConfiguration, i, e)
		}
	}
	for v, t := range c.SumTargets {
		if !c.hasVertex(v) || t < 1 {
			return fmt.Errorf("%w: sum target %d at vertex %d", ErrInvalidConfiguration, t, v)
		}
	}
	for v, ts := range c.PathTargets {
		if !c.hasVertex(v) {
			return fmt.Errorf("%w: path targets at vertex %d", ErrInvalidConfiguration, v)
		}
		for _, t := range ts {
			if t < 1 {
				return fmt.Errorf("%w: path target %d at vertex %d", ErrInvalidConfiguration, t, v)
			}
		}
	}
	for id, w := range c.Fixed {
		if id < 0 || id >= len(c.Edges) || w < 1 || w > len(c.Edges) {
			return fmt.Errorf("%w: fixed edge %d = %d", ErrInvalidConfiguration, id, w)
		}
	}
	if d := c.Decode; d != nil && (!c.hasVertex(d.Source) || !c.hasVertex(d.Target)) {
		return fmt.Errorf("%w: decode endpoints %d -> %d", ErrInvalidConfiguration, d.Source, d.Target)
	}

	return nil
}

func (c *Config) hasVertex(v int) bool { return v >= 0 && v < c.Vertices }
