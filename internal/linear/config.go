package linear

import (
	"fmt"
	"math"
)

// Variant selects the update strategy, the activation and the prediction rule of a trainer.
type Variant string

const (
	// Regression fits a real valued target with batch least squares updates.
	Regression Variant = "regression"
	// Adaline fits with batch least squares updates and predicts thresholded labels.
	Adaline Variant = "adaline"
	// Logistic fits sigmoid outputs with batch log-likelihood updates.
	Logistic Variant = "logistic"
	// Perceptron updates after every sample and counts misclassifications per epoch.
	Perceptron Variant = "perceptron"
)

// Normalization scales the batch update by a factor depending on the sample count N.
type Normalization string

const (
	// Sum applies the summed update as is.
	Sum Normalization = "sum"
	// Mean divides the update by N.
	Mean Normalization = "mean"
	// DoubleMean multiplies the update by 2/N e.g. the gradient of the mean squared error.
	DoubleMean Normalization = "double-mean"
)

func (n Normalization) scale(samples int) float64 {
	switch n {
	case Mean:
		return 1 / float64(samples)
	case DoubleMean:
		return 2 / float64(samples)
	default:
		return 1
	}
}

// Reduction defines how the per sample losses are reduced into the epoch cost.
type Reduction string

const (
	// Total keeps the plain sum of the losses.
	Total Reduction = "sum"
	// Half halves the sum of the losses.
	Half Reduction = "half"
	// Average divides the sum of the losses by N.
	Average Reduction = "mean"
)

func (r Reduction) apply(sum float64, samples int) float64 {
	switch r {
	case Half:
		return sum / 2
	case Average:
		return sum / float64(samples)
	default:
		return sum
	}
}

// Config defines the hyperparameters of a trainer.
// Normalization only applies to the batch variants, Reduction is ignored by the perceptron,
// which always reports its misclassification count.
// Positive and Negative are the labels returned by classification predictions,
// leaving both at zero selects the defaults of the variant.
// Threshold is the probability cut-off of the logistic variant.
type Config struct {
	Variant       Variant       `yaml:"variant" json:"variant"`
	LearningRate  float64       `yaml:"learning_rate" json:"learning_rate"`
	Epochs        int           `yaml:"epochs" json:"epochs"`
	Normalization Normalization `yaml:"normalization" json:"normalization"`
	Reduction     Reduction     `yaml:"reduction" json:"reduction"`
	Standardize   bool          `yaml:"standardize" json:"standardize"`
	Threshold     float64       `yaml:"threshold" json:"threshold"`
	Positive      float64       `yaml:"positive" json:"positive"`
	Negative      float64       `yaml:"negative" json:"negative"`
}

// DefaultConfig creates the config the given variant runs with, if nothing else is specified.
func DefaultConfig(variant Variant, rate float64, epochs int) Config {
	return Config{
		Variant:      variant,
		LearningRate: rate,
		Epochs:       epochs,
	}.WithDefaults()
}

// WithDefaults fills the unset normalization, reduction, labels and threshold with the defaults of the variant.
func (c Config) WithDefaults() Config {
	if c.Normalization == "" {
		c.Normalization = Sum
	}
	if c.Positive == 0 && c.Negative == 0 {
		switch c.Variant {
		case Logistic:
			c.Positive, c.Negative = 1, 0
		default:
			c.Positive, c.Negative = 1, -1
		}
	}
	switch c.Variant {
	case Regression:
		if c.Reduction == "" {
			c.Reduction = Half
		}
	case Adaline:
		if c.Reduction == "" {
			c.Reduction = Average
		}
	case Logistic:
		if c.Reduction == "" {
			c.Reduction = Total
		}
		if c.Threshold == 0 {
			c.Threshold = 0.5
		}
	case Perceptron:
		if c.Reduction == "" {
			c.Reduction = Total
		}
	}
	return c
}

// Validate checks that the config can be used for training.
func (c Config) Validate() error {
	if !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 1) {
		return fmt.Errorf("learning rate must be positive, got %v: %w", c.LearningRate, InvalidHyperparameterErr)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d: %w", c.Epochs, InvalidHyperparameterErr)
	}
	switch c.Variant {
	case Regression, Adaline, Perceptron:
	case Logistic:
		if !(c.Threshold > 0 && c.Threshold < 1) {
			return fmt.Errorf("threshold must be within (0,1), got %v: %w", c.Threshold, InvalidHyperparameterErr)
		}
	default:
		return fmt.Errorf("unknown variant '%s': %w", c.Variant, InvalidHyperparameterErr)
	}
	switch c.Normalization {
	case Sum, Mean, DoubleMean:
	default:
		return fmt.Errorf("unknown normalization '%s': %w", c.Normalization, InvalidHyperparameterErr)
	}
	switch c.Reduction {
	case Total, Half, Average:
	default:
		return fmt.Errorf("unknown reduction '%s': %w", c.Reduction, InvalidHyperparameterErr)
	}
	if c.Variant != Regression && c.Positive == c.Negative {
		return fmt.Errorf("positive and negative labels must differ, got %v: %w", c.Positive, InvalidHyperparameterErr)
	}
	return nil
}
