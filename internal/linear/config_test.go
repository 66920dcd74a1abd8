package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {

	type test struct {
		cfg Config
		err bool
	}

	tests := map[string]test{
		"regression": {
			cfg: DefaultConfig(Regression, 0.01, 10),
		},
		"logistic": {
			cfg: DefaultConfig(Logistic, 0.1, 1),
		},
		"zero-epochs": {
			cfg: DefaultConfig(Regression, 0.01, 0),
			err: true,
		},
		"negative-epochs": {
			cfg: DefaultConfig(Perceptron, 0.01, -5),
			err: true,
		},
		"zero-rate": {
			cfg: DefaultConfig(Adaline, 0, 10),
			err: true,
		},
		"negative-rate": {
			cfg: DefaultConfig(Adaline, -0.1, 10),
			err: true,
		},
		"nan-rate": {
			cfg: DefaultConfig(Adaline, math.NaN(), 10),
			err: true,
		},
		"inf-rate": {
			cfg: DefaultConfig(Adaline, math.Inf(1), 10),
			err: true,
		},
		"unknown-variant": {
			cfg: DefaultConfig("svm", 0.01, 10),
			err: true,
		},
		"unknown-normalization": {
			cfg: Config{
				Variant:       Regression,
				LearningRate:  0.01,
				Epochs:        10,
				Normalization: "median",
			}.WithDefaults(),
			err: true,
		},
		"unknown-reduction": {
			cfg: Config{
				Variant:      Adaline,
				LearningRate: 0.01,
				Epochs:       10,
				Reduction:    "max",
			}.WithDefaults(),
			err: true,
		},
		"threshold-out-of-range": {
			cfg: Config{
				Variant:      Logistic,
				LearningRate: 0.01,
				Epochs:       10,
				Threshold:    1.5,
			}.WithDefaults(),
			err: true,
		},
		"same-labels": {
			cfg: Config{
				Variant:      Perceptron,
				LearningRate: 0.01,
				Epochs:       10,
				Positive:     1,
				Negative:     1,
			}.WithDefaults(),
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.err {
				assert.ErrorIs(t, err, InvalidHyperparameterErr)
				_, err = New(tt.cfg)
				assert.ErrorIs(t, err, InvalidHyperparameterErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {

	type test struct {
		variant   Variant
		reduction Reduction
		positive  float64
		negative  float64
		threshold float64
	}

	tests := map[string]test{
		"regression": {
			variant:   Regression,
			reduction: Half,
			positive:  1,
			negative:  -1,
		},
		"adaline": {
			variant:   Adaline,
			reduction: Average,
			positive:  1,
			negative:  -1,
		},
		"logistic": {
			variant:   Logistic,
			reduction: Total,
			positive:  1,
			negative:  0,
			threshold: 0.5,
		},
		"perceptron": {
			variant:   Perceptron,
			reduction: Total,
			positive:  1,
			negative:  -1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig(tt.variant, 0.01, 10)
			assert.Equal(t, Sum, cfg.Normalization)
			assert.Equal(t, tt.reduction, cfg.Reduction)
			assert.Equal(t, tt.positive, cfg.Positive)
			assert.Equal(t, tt.negative, cfg.Negative)
			assert.Equal(t, tt.threshold, cfg.Threshold)
		})
	}
}

func TestConstructionFailsEarly(t *testing.T) {
	_, err := NewRegression(0.01, 0)
	assert.ErrorIs(t, err, InvalidHyperparameterErr)
	_, err = NewLogistic(0, 100)
	assert.ErrorIs(t, err, InvalidHyperparameterErr)
}

func TestNormalization_Scale(t *testing.T) {
	assert.Equal(t, 1.0, Sum.scale(4))
	assert.Equal(t, 0.25, Mean.scale(4))
	assert.Equal(t, 0.5, DoubleMean.scale(4))
}

func TestReduction_Apply(t *testing.T) {
	assert.Equal(t, 8.0, Total.apply(8, 4))
	assert.Equal(t, 4.0, Half.apply(8, 4))
	assert.Equal(t, 2.0, Average.apply(8, 4))
}
