package run

import (
	"fmt"
	"time"

	"github.com/drakos74/linear-learn/internal/buffer"
	"github.com/drakos74/linear-learn/internal/config"
	"github.com/drakos74/linear-learn/internal/linear"
	lmath "github.com/drakos74/linear-learn/internal/math"
	"github.com/drakos74/linear-learn/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultLogEvery = 100

// Report is the outcome of a training run.
type Report struct {
	ID       string
	Config   linear.Config
	Samples  int
	Features int
	Weights  linear.Weights
	Costs    []float64
	Summary  Summary
	// Reference is the closed form least squares solution [bias, w...], if the variant fits least squares
	// and standardization is off.
	Reference []float64
	// Score is the accuracy on the training set for the classification variants
	// and the mean squared error for the regression.
	Score    float64
	Duration time.Duration
}

// Summary describes the cost history.
type Summary struct {
	Epochs int
	First  float64
	Last   float64
	Min    float64
	Max    float64
	Avg    float64
	// Change is the last minus the first cost.
	Change float64
	StDev  float64
	// EMA weighs the late epochs more than Avg.
	EMA float64
	// Trend is the slope of the cost over the last log interval.
	Trend float64
}

// Execute fits a trainer built from the config on the dataset.
// The metrics are optional.
func Execute(cfg config.Train, ds linear.Dataset, m *metrics.Metrics) (Report, error) {
	id := uuid.New().String()
	start := time.Now()
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = defaultLogEvery
	}

	trainer, err := linear.New(cfg.Config)
	if err != nil {
		return Report{}, fmt.Errorf("could not create trainer: %w", err)
	}
	variant := trainer.Config().Variant

	window := buffer.NewWindow(cfg.LogEvery, 1)
	trainer.Observe(func(epoch int, cost float64) {
		if b, ok := window.Push(epoch-1, cost); ok {
			progress(id, b)
		}
	})
	if m != nil {
		trainer.Observe(m.Observer(variant))
	}

	log.Info().
		Str("id", id).
		Str("variant", string(variant)).
		Float64("rate", cfg.LearningRate).
		Int("epochs", cfg.Epochs).
		Int("samples", ds.Size()).
		Msg("start training")

	if _, err := trainer.Fit(ds); err != nil {
		if m != nil {
			m.Fit(variant, metrics.Failed)
		}
		log.Error().Err(err).Str("id", id).Msg("training failed")
		return Report{}, err
	}
	if b, ok := window.Flush(); ok {
		progress(id, b)
	}
	if m != nil {
		m.Fit(variant, metrics.Success)
	}

	weights, err := trainer.Weights()
	if err != nil {
		return Report{}, err
	}
	costs := trainer.Costs()
	report := Report{
		ID:       id,
		Config:   trainer.Config(),
		Samples:  ds.Size(),
		Features: trainer.Dim(),
		Weights:  weights,
		Costs:    costs,
		Summary:  summarize(costs, cfg.LogEvery),
	}

	report.Score, err = score(trainer, ds)
	if err != nil {
		return Report{}, err
	}

	if (variant == linear.Regression || variant == linear.Adaline) && !cfg.Standardize {
		ref, err := lmath.LeastSquares(ds.X, ds.Y)
		if err != nil {
			log.Warn().Err(err).Str("id", id).Msg("could not compute closed form reference")
		} else {
			report.Reference = ref
		}
	}

	report.Duration = time.Since(start)
	log.Info().
		Str("id", id).
		Float64("cost", report.Summary.Last).
		Float64("score", report.Score).
		Dur("duration", report.Duration).
		Msg("training done")
	return report, nil
}

func progress(id string, b buffer.Bucket) {
	stats := b.Values().Stats()[0]
	log.Info().
		Str("id", id).
		Int("from", b.Index()+1).
		Int("to", b.Index()+b.Size()).
		Float64("avg", stats.Avg()).
		Float64("stdev", stats.StDev()).
		Float64("last", stats.Last()).
		Msg("epochs")
}

func summarize(costs []float64, window int) Summary {
	stats := buffer.NewStats()
	for _, c := range costs {
		stats.Push(c)
	}
	s := Summary{
		Epochs: stats.Count(),
		First:  stats.First(),
		Last:   stats.Last(),
		Min:    stats.Min(),
		Max:    stats.Max(),
		Avg:    stats.Avg(),
		Change: stats.Diff(),
		StDev:  stats.StDev(),
		EMA:    stats.EMA(),
	}
	tail := costs
	if len(tail) > window {
		tail = tail[len(tail)-window:]
	}
	if len(tail) > 1 {
		if c, err := lmath.Fit(lmath.Series(1, len(tail)), tail, 1); err == nil {
			s.Trend = c[1]
		}
	}
	return s
}

func score(trainer *linear.Trainer, ds linear.Dataset) (float64, error) {
	predictions, err := trainer.Predict(ds.X)
	if err != nil {
		return 0, err
	}
	if trainer.Config().Variant == linear.Regression {
		var sse float64
		for i, p := range predictions {
			e := ds.Y[i] - p
			sse += e * e
		}
		return sse / float64(len(predictions)), nil
	}
	var hits int
	for i, p := range predictions {
		if p == ds.Y[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(predictions)), nil
}
