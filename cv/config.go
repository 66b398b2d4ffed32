package cv

import (
	"bytes"
	"io"

	"github.com/YuminosukeSato/glmnetcv/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the evaluator options.
//
//	measure: auc
//	grouped: true
//	keep: true
//	n_jobs: 4
//	n_folds: 10
//	random_state: 42
type Config struct {
	Measure     string  `yaml:"measure"`
	Grouped     *bool   `yaml:"grouped"`
	Keep        bool    `yaml:"keep"`
	NJobs       int     `yaml:"n_jobs"`
	NFolds      int     `yaml:"n_folds"`
	RandomState *uint64 `yaml:"random_state"`
}

// LoadConfig parses a YAML configuration. Unknown keys are rejected.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parse cv config")
	}
	if cfg.NFolds < 0 {
		return nil, errors.NewValidationError("n_folds", "must not be negative", cfg.NFolds)
	}
	return &cfg, nil
}

// Options converts the configuration into evaluator options. Zero values
// keep the defaults; an unknown measure name falls back to deviance with a warning.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Measure != "" {
		opts = append(opts, WithMeasureName(c.Measure))
	}
	if c.Grouped != nil {
		opts = append(opts, WithGrouped(*c.Grouped))
	}
	if c.Keep {
		opts = append(opts, WithKeep(true))
	}
	if c.NJobs != 0 {
		opts = append(opts, WithNJobs(c.NJobs))
	}
	if c.NFolds != 0 {
		opts = append(opts, WithNFolds(c.NFolds))
	}
	if c.RandomState != nil {
		opts = append(opts, WithRandomState(*c.RandomState))
	}
	return opts
}
