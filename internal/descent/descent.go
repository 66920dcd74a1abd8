package descent

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

var (
	InvalidConfigErr = errors.New("invalid config")
	DivergedErr      = errors.New("diverged")
)

// Config defines the step of the descent and its stopping conditions.
type Config struct {
	StepSize      float64 `yaml:"step_size" json:"step_size"`
	Precision     float64 `yaml:"precision" json:"precision"`
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations"`
}

// DefaultConfig returns the step size 0.01, precision 1e-5 and 10000 iterations.
func DefaultConfig() Config {
	return Config{
		StepSize:      0.01,
		Precision:     0.00001,
		MaxIterations: 10000,
	}
}

// Validate checks all parameters are positive.
func (c Config) Validate() error {
	if !(c.StepSize > 0) || math.IsInf(c.StepSize, 0) {
		return fmt.Errorf("step size must be positive, got %v: %w", c.StepSize, InvalidConfigErr)
	}
	if !(c.Precision > 0) || math.IsInf(c.Precision, 0) {
		return fmt.Errorf("precision must be positive, got %v: %w", c.Precision, InvalidConfigErr)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d: %w", c.MaxIterations, InvalidConfigErr)
	}
	return nil
}

// Result is the outcome of a descent.
type Result struct {
	X          float64 `json:"x"`
	Iterations int     `json:"iterations"`
	// Converged is false if the descent stopped at the max iterations.
	Converged bool `json:"converged"`
}

// Minimize follows the negative derivative from start
// until the step gets smaller than the precision or the max iterations are reached.
func Minimize(derivative func(x float64) float64, start float64, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if math.IsNaN(start) || math.IsInf(start, 0) {
		return Result{}, fmt.Errorf("start must be finite, got %v: %w", start, InvalidConfigErr)
	}

	x := start
	step := math.Inf(1)
	var i int
	for i = 0; i < cfg.MaxIterations && step > cfg.Precision; i++ {
		prev := x
		x -= cfg.StepSize * derivative(prev)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Result{X: x, Iterations: i + 1}, fmt.Errorf("iteration %d from %v: %w", i+1, prev, DivergedErr)
		}
		step = math.Abs(x - prev)
	}

	result := Result{
		X:          x,
		Iterations: i,
		Converged:  step <= cfg.Precision,
	}
	log.Debug().
		Float64("start", start).
		Float64("x", x).
		Int("iterations", i).
		Bool("converged", result.Converged).
		Msg("descent")
	return result, nil
}
