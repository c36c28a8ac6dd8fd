package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm   = "bubble"
	DefaultOrder       = "preorder"
	DefaultTheme       = "cyberpunk"
	DefaultSortMs      = 120
	DefaultSearchMs    = 300
	DefaultTraversalMs = 350
)

// Value is a float64 whose YAML null form means "absent": a hole in a
// tree level or an unset target. Absent values decode to NaN.
type Value float64

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*v = Value(math.NaN())
		return nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return err
	}
	*v = Value(f)
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	if math.IsNaN(float64(v)) {
		return nil, nil
	}
	return float64(v), nil
}

type Config struct {
	Algorithm string      `yaml:"algorithm"`
	Values    []Value     `yaml:"values"`
	Target    Value       `yaml:"target"`
	Order     string      `yaml:"order"`
	Delays    DelayConfig `yaml:"delays"`
	Theme     string      `yaml:"theme"`
}

type DelayConfig struct {
	SortMs      int `yaml:"sort_ms"`
	SearchMs    int `yaml:"search_ms"`
	TraversalMs int `yaml:"traversal_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Values:    []Value{5, 3, 8, 1, 9, 2, 7},
		Target:    Value(math.NaN()),
		Order:     DefaultOrder,
		Delays: DelayConfig{
			SortMs:      DefaultSortMs,
			SearchMs:    DefaultSearchMs,
			TraversalMs: DefaultTraversalMs,
		},
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Floats() []float64 {
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		out[i] = float64(v)
	}
	return out
}

func ToValues(values []float64) []Value {
	out := make([]Value, len(values))
	for i, f := range values {
		out[i] = Value(f)
	}
	return out
}

func (c *Config) TargetFloat() float64 {
	return float64(c.Target)
}

func (c *Config) DelayFor(family string) time.Duration {
	switch family {
	case "search":
		return time.Duration(c.Delays.SearchMs) * time.Millisecond
	case "traversal":
		return time.Duration(c.Delays.TraversalMs) * time.Millisecond
	default:
		return time.Duration(c.Delays.SortMs) * time.Millisecond
	}
}

// ParseValues reads a comma-separated number list. The tokens "_" and
// "null" stand for absent slots and parse to NaN.
func ParseValues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		tok := strings.TrimSpace(part)
		if tok == "" {
			continue
		}
		if tok == "_" || tok == "null" {
			out = append(out, math.NaN())
			continue
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", tok)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values given")
	}
	return out, nil
}

// ParseTarget reads a single number, or "_"/"null"/"" for no target.
func ParseTarget(s string) (float64, error) {
	tok := strings.TrimSpace(s)
	if tok == "" || tok == "_" || tok == "null" {
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("bad target %q", tok)
	}
	return f, nil
}

// FormatValues renders values in the form ParseValues reads back.
func FormatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			parts[i] = "_"
		} else {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return strings.Join(parts, ",")
}

func FormatTarget(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
