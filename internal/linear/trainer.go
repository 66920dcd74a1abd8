package linear

import (
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
)

// Observer is notified with the cost of every completed epoch.
type Observer func(epoch int, cost float64)

// Trainer fits a linear decision function bias + Σ w_i x_i to a dataset.
// A trainer is not safe for concurrent use.
type Trainer struct {
	config     Config
	strategy   Strategy
	activation Activation
	classify   Activation
	observers  []Observer
	// state of the last successful fit
	weights *Weights
	costs   []float64
	scaler  *Scaler
}

// New creates a new trainer for the given config.
func New(cfg Config) (*Trainer, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Trainer{config: cfg}
	switch cfg.Variant {
	case Regression:
		t.strategy = leastSquares{rate: cfg.LearningRate, normalization: cfg.Normalization, reduction: cfg.Reduction}
		t.activation = Identity
		t.classify = Identity
	case Adaline:
		t.strategy = leastSquares{rate: cfg.LearningRate, normalization: cfg.Normalization, reduction: cfg.Reduction}
		t.activation = Identity
		t.classify = Step(cfg.Positive, cfg.Negative)
	case Logistic:
		t.strategy = logistic{rate: cfg.LearningRate, normalization: cfg.Normalization, reduction: cfg.Reduction}
		t.activation = Sigmoid
		t.classify = func(z float64) float64 {
			if Sigmoid(z) >= cfg.Threshold {
				return cfg.Positive
			}
			return cfg.Negative
		}
	case Perceptron:
		step := Step(cfg.Positive, cfg.Negative)
		t.strategy = perceptron{rate: cfg.LearningRate, classify: step}
		t.activation = Identity
		t.classify = step
	}
	return t, nil
}

// NewRegression creates a least squares regression trainer.
func NewRegression(rate float64, epochs int) (*Trainer, error) {
	return New(DefaultConfig(Regression, rate, epochs))
}

// NewAdaline creates an adaptive linear neuron trainer.
func NewAdaline(rate float64, epochs int) (*Trainer, error) {
	return New(DefaultConfig(Adaline, rate, epochs))
}

// NewLogistic creates a logistic regression trainer.
func NewLogistic(rate float64, epochs int) (*Trainer, error) {
	return New(DefaultConfig(Logistic, rate, epochs))
}

// NewPerceptron creates an online perceptron trainer.
func NewPerceptron(rate float64, epochs int) (*Trainer, error) {
	return New(DefaultConfig(Perceptron, rate, epochs))
}

// Observe registers an observer for the epochs of all subsequent fits.
func (t *Trainer) Observe(o Observer) *Trainer {
	t.observers = append(t.observers, o)
	return t
}

// Fit trains the model from zero weights for the configured number of epochs.
// A failed fit leaves the trainer untrained.
func (t *Trainer) Fit(ds Dataset) (*Trainer, error) {
	t.weights = nil
	t.costs = nil
	t.scaler = nil

	dim, err := ds.Validate()
	if err != nil {
		return nil, fmt.Errorf("could not fit %s model: %w", t.config.Variant, err)
	}

	ys, err := t.targets(ds.Y)
	if err != nil {
		return nil, fmt.Errorf("could not fit %s model: %w", t.config.Variant, err)
	}

	xs := ds.vectors()
	var scaler *Scaler
	if t.config.Standardize {
		scaler = NewScaler(xs)
		xs = scaler.transformAll(xs)
	}

	log.Debug().
		Str("variant", string(t.config.Variant)).
		Int("samples", len(xs)).
		Int("features", dim).
		Float64("rate", t.config.LearningRate).
		Int("epochs", t.config.Epochs).
		Msg("fit")

	weights := newWeights(dim)
	costs := make([]float64, 0, t.config.Epochs)
	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		cost := t.strategy.Epoch(weights, xs, ys)
		costs = append(costs, cost)
		for _, o := range t.observers {
			o(epoch, cost)
		}
	}

	t.weights = weights
	t.costs = costs
	t.scaler = scaler

	log.Debug().
		Str("variant", string(t.config.Variant)).
		Float64("cost", costs[len(costs)-1]).
		Str("weights", fmt.Sprintf("%+v", weights.Vector())).
		Msg("fitted")
	return t, nil
}

// targets checks the labels against the configured ones.
// The logistic variant trains on 1 for the positive and 0 for the negative label.
func (t *Trainer) targets(y []float64) ([]float64, error) {
	if t.config.Variant == Regression {
		return y, nil
	}
	ys := make([]float64, len(y))
	for i, label := range y {
		switch label {
		case t.config.Positive:
			ys[i] = label
			if t.config.Variant == Logistic {
				ys[i] = 1
			}
		case t.config.Negative:
			ys[i] = label
			if t.config.Variant == Logistic {
				ys[i] = 0
			}
		default:
			return nil, fmt.Errorf("sample %d has label %v, expected %v or %v: %w",
				i, label, t.config.Positive, t.config.Negative, InvalidLabelErr)
		}
	}
	return ys, nil
}

// Fitted returns true if the trainer holds the result of a successful fit.
func (t *Trainer) Fitted() bool {
	return t.weights != nil
}

// Config returns the config of the trainer, including the variant defaults.
func (t *Trainer) Config() Config {
	return t.config
}

// Dim returns the feature dimension of the fitted model, 0 if not fitted.
func (t *Trainer) Dim() int {
	if t.weights == nil {
		return 0
	}
	return t.weights.Dim()
}

// Weights returns a copy of the fitted weights.
func (t *Trainer) Weights() (Weights, error) {
	if t.weights == nil {
		return Weights{}, NotFittedErr
	}
	return t.weights.Copy(), nil
}

// Costs returns a copy of the cost history of the last fit.
func (t *Trainer) Costs() []float64 {
	costs := make([]float64, len(t.costs))
	copy(costs, t.costs)
	return costs
}

// Scaler returns the feature scaler of the last fit, nil if standardization is off.
func (t *Trainer) Scaler() *Scaler {
	return t.scaler
}

// Predict returns the prediction for each sample.
// Regression returns the raw output, the classification variants return one of the configured labels.
func (t *Trainer) Predict(samples [][]float64) ([]float64, error) {
	return t.apply(samples, t.classify)
}

// PredictOne returns the prediction for a single sample.
func (t *Trainer) PredictOne(x []float64) (float64, error) {
	z, err := t.netInput(x)
	if err != nil {
		return 0, err
	}
	return t.classify(z), nil
}

// Output returns the activation output for each sample e.g. the probability for the logistic variant.
func (t *Trainer) Output(samples [][]float64) ([]float64, error) {
	return t.apply(samples, t.activation)
}

// NetInput returns the linear combination before the activation for each sample.
func (t *Trainer) NetInput(samples [][]float64) ([]float64, error) {
	return t.apply(samples, Identity)
}

func (t *Trainer) apply(samples [][]float64, f Activation) ([]float64, error) {
	out := make([]float64, len(samples))
	for i, x := range samples {
		z, err := t.netInput(x)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = f(z)
	}
	return out, nil
}

func (t *Trainer) netInput(x []float64) (float64, error) {
	if t.weights == nil {
		return 0, NotFittedErr
	}
	if len(x) != t.weights.Dim() {
		return 0, fmt.Errorf("sample has %d features, model has %d: %w", len(x), t.weights.Dim(), DimensionMismatchErr)
	}
	v := xmath.Vector(x)
	if t.scaler != nil {
		v = t.scaler.Transform(v)
	}
	return t.weights.NetInput(v), nil
}
