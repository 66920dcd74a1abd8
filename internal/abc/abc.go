// Package abc estimates the rate of a binomial process with rejection sampling
// approximate bayesian computation.
package abc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	InvalidConfigErr   = errors.New("invalid config")
	NoAcceptedDrawsErr = errors.New("no accepted draws")
)

// Config defines the prior draws and the observed data.
type Config struct {
	// Draws is the number of rates drawn from the uniform prior.
	Draws int `yaml:"draws" json:"draws"`
	// Trials is the number of trials of the generative binomial model.
	Trials int `yaml:"trials" json:"trials"`
	// Observed is the observed number of successes.
	Observed int   `yaml:"observed" json:"observed"`
	Seed     int64 `yaml:"seed" json:"seed"`
	// Interval is the probability mass of the reported quantile interval, 0.95 if not set.
	Interval float64 `yaml:"interval" json:"interval"`
}

// DefaultConfig draws 10000 rates for 6 successes in 16 trials.
func DefaultConfig() Config {
	return Config{
		Draws:    10000,
		Trials:   16,
		Observed: 6,
		Interval: 0.95,
	}
}

// Validate checks the config can be sampled.
func (c Config) Validate() error {
	if c.Draws <= 0 {
		return fmt.Errorf("draws must be positive, got %d: %w", c.Draws, InvalidConfigErr)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d: %w", c.Trials, InvalidConfigErr)
	}
	if c.Observed < 0 || c.Observed > c.Trials {
		return fmt.Errorf("observed must be within [0,%d], got %d: %w", c.Trials, c.Observed, InvalidConfigErr)
	}
	if c.Interval != 0 && !(c.Interval > 0 && c.Interval < 1) {
		return fmt.Errorf("interval must be within (0,1), got %v: %w", c.Interval, InvalidConfigErr)
	}
	return nil
}

// Posterior summarizes the accepted rates.
type Posterior struct {
	Draws    int       `json:"draws"`
	Accepted int       `json:"accepted"`
	Mean     float64   `json:"mean"`
	Median   float64   `json:"median"`
	Lower    float64   `json:"lower"`
	Upper    float64   `json:"upper"`
	Samples  []float64 `json:"-"`
}

// Estimate draws rates from a uniform prior, simulates the binomial model for each
// and keeps the rates reproducing the observed successes.
func Estimate(cfg Config) (Posterior, error) {
	if err := cfg.Validate(); err != nil {
		return Posterior{}, err
	}
	interval := cfg.Interval
	if interval == 0 {
		interval = 0.95
	}

	src := rand.NewSource(uint64(cfg.Seed))
	prior := distuv.Uniform{Min: 0, Max: 1, Src: src}

	accepted := make([]float64, 0)
	for i := 0; i < cfg.Draws; i++ {
		rate := prior.Rand()
		model := distuv.Binomial{N: float64(cfg.Trials), P: rate, Src: src}
		if int(model.Rand()) == cfg.Observed {
			accepted = append(accepted, rate)
		}
	}

	if len(accepted) == 0 {
		return Posterior{Draws: cfg.Draws}, fmt.Errorf("%d draws for %d/%d: %w", cfg.Draws, cfg.Observed, cfg.Trials, NoAcceptedDrawsErr)
	}

	sort.Float64s(accepted)
	tail := (1 - interval) / 2
	posterior := Posterior{
		Draws:    cfg.Draws,
		Accepted: len(accepted),
		Mean:     stat.Mean(accepted, nil),
		Median:   stat.Quantile(0.5, stat.LinInterp, accepted, nil),
		Lower:    stat.Quantile(tail, stat.LinInterp, accepted, nil),
		Upper:    stat.Quantile(1-tail, stat.LinInterp, accepted, nil),
		Samples:  accepted,
	}

	log.Debug().
		Int("draws", cfg.Draws).
		Int("accepted", posterior.Accepted).
		Float64("mean", posterior.Mean).
		Msg("abc")
	return posterior, nil
}
