package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/drakos74/linear-learn/internal/abc"
	"github.com/drakos74/linear-learn/internal/descent"
	"github.com/drakos74/linear-learn/internal/linear"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const defaultLogEvery = 100

// Config holds the sections of the drivers. Only the configured sections are validated.
type Config struct {
	Train   *Train   `yaml:"train"`
	Descent *Descent `yaml:"descent"`
	ABC     *ABC     `yaml:"abc"`
	Metrics Metrics  `yaml:"metrics"`
}

// Train configures a training run.
type Train struct {
	linear.Config `yaml:",inline"`
	Dataset       Dataset `yaml:"dataset"`
	// LogEvery is the number of epochs between progress logs.
	LogEvery int `yaml:"log_every"`
}

// Dataset locates the training data.
type Dataset struct {
	Path   string `yaml:"path"`
	Header bool   `yaml:"header"`
	// Samples is an inline dataset used when no path is given.
	Samples *linear.Dataset `yaml:"samples"`
}

// Descent configures the polynomial minimization.
type Descent struct {
	descent.Config `yaml:",inline"`
	// Coefficients of the minimized polynomial c[0] + c[1]x + c[2]x^2 + ...
	Coefficients []float64 `yaml:"coefficients"`
	Start        float64   `yaml:"start"`
}

// ABC configures the binomial rate estimation.
type ABC struct {
	abc.Config `yaml:",inline"`
}

// Metrics configures the prometheus endpoint, disabled if the address is empty.
type Metrics struct {
	Addr string `yaml:"addr"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	DatasetPath string
	Seed        int64
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse config '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad loads the config from the given path and panics if it is not valid.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("could not load config from %s: %s", path, err.Error()))
	}
	log.Info().Str("path", path).Msg("loaded config")
	return cfg
}

// Parse decodes the YAML config, rejecting unknown keys, and applies the defaults.
func Parse(b []byte) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}
	cfg.defaults()
	return cfg, nil
}

func (c *Config) defaults() {
	if c.Train != nil {
		if c.Train.LogEvery <= 0 {
			c.Train.LogEvery = defaultLogEvery
		}
		c.Train.Config = c.Train.Config.WithDefaults()
	}
	if c.Descent != nil {
		d := descent.DefaultConfig()
		if c.Descent.StepSize == 0 {
			c.Descent.StepSize = d.StepSize
		}
		if c.Descent.Precision == 0 {
			c.Descent.Precision = d.Precision
		}
		if c.Descent.MaxIterations == 0 {
			c.Descent.MaxIterations = d.MaxIterations
		}
	}
	if c.ABC != nil && c.ABC.Interval == 0 {
		c.ABC.Interval = abc.DefaultConfig().Interval
	}
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DatasetPath != "" && c.Train != nil {
		c.Train.Dataset.Path = o.DatasetPath
		c.Train.Dataset.Samples = nil
	}
	if o.Seed != 0 && c.ABC != nil {
		c.ABC.Seed = o.Seed
	}
}

// Validate verifies the configured sections are runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Train == nil && c.Descent == nil && c.ABC == nil {
		return errors.New("at least one of train, descent or abc must be configured")
	}
	if c.Train != nil {
		if err := c.Train.Validate(); err != nil {
			return fmt.Errorf("train: %w", err)
		}
	}
	if c.Descent != nil {
		if err := c.Descent.Validate(); err != nil {
			return fmt.Errorf("descent: %w", err)
		}
	}
	if c.ABC != nil {
		if err := c.ABC.Validate(); err != nil {
			return fmt.Errorf("abc: %w", err)
		}
	}
	return nil
}

// Validate checks the hyperparameters and the dataset source.
func (t *Train) Validate() error {
	if err := t.Config.Validate(); err != nil {
		return err
	}
	if t.Dataset.Path == "" && t.Dataset.Samples == nil {
		return errors.New("dataset path or samples must be set")
	}
	return nil
}

// Validate checks the descent parameters and the polynomial.
func (d *Descent) Validate() error {
	if err := d.Config.Validate(); err != nil {
		return err
	}
	if len(d.Coefficients) < 2 {
		return fmt.Errorf("polynomial must have a degree of at least 1, got %d coefficients", len(d.Coefficients))
	}
	return nil
}
