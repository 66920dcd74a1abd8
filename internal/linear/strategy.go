package linear

import (
	"math"

	"github.com/drakos74/go-ex-machina/xmath"
)

// logEpsilon keeps the log-likelihood finite when a probability saturates to 0 or 1.
const logEpsilon = 1e-16

// Activation maps the net input to the model output.
type Activation func(z float64) float64

// Identity returns the net input untouched.
func Identity(z float64) float64 {
	return z
}

// Sigmoid squashes the net input into (0,1).
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Step returns an activation emitting the positive label for a non-negative net input
// and the negative one otherwise.
func Step(positive, negative float64) Activation {
	return func(z float64) float64 {
		if z >= 0 {
			return positive
		}
		return negative
	}
}

// Strategy applies one epoch of updates to the weights and returns the cost of the epoch.
type Strategy interface {
	Epoch(w *Weights, xs []xmath.Vector, ys []float64) float64
}

// leastSquares is the batch update of the linear regression and adaline variants.
// The cost is computed from the errors observed before the update.
type leastSquares struct {
	rate          float64
	normalization Normalization
	reduction     Reduction
}

func (s leastSquares) Epoch(w *Weights, xs []xmath.Vector, ys []float64) float64 {
	errs := make([]float64, len(xs))
	var sse float64
	for n, x := range xs {
		e := ys[n] - w.NetInput(x)
		errs[n] = e
		sse += e * e
	}
	update(w, xs, errs, s.rate*s.normalization.scale(len(xs)))
	return s.reduction.apply(sse, len(xs))
}

// logistic is the batch update on the sigmoid output.
// The cost is the negative log-likelihood of the updated weights.
type logistic struct {
	rate          float64
	normalization Normalization
	reduction     Reduction
}

func (s logistic) Epoch(w *Weights, xs []xmath.Vector, ys []float64) float64 {
	errs := make([]float64, len(xs))
	for n, x := range xs {
		errs[n] = ys[n] - Sigmoid(w.NetInput(x))
	}
	update(w, xs, errs, s.rate*s.normalization.scale(len(xs)))
	var nll float64
	for n, x := range xs {
		p := Sigmoid(w.NetInput(x))
		nll -= ys[n]*math.Log(p+logEpsilon) + (1-ys[n])*math.Log(1-p+logEpsilon)
	}
	return s.reduction.apply(nll, len(xs))
}

// perceptron updates the weights after every single sample.
// The cost is the number of samples that triggered an update.
type perceptron struct {
	rate     float64
	classify Activation
}

func (s perceptron) Epoch(w *Weights, xs []xmath.Vector, ys []float64) float64 {
	var misses int
	for n, x := range xs {
		u := s.rate * (ys[n] - s.classify(w.NetInput(x)))
		for i := range w.W {
			w.W[i] += u * x[i]
		}
		w.Bias += u
		if u != 0 {
			misses++
		}
	}
	return float64(misses)
}

// update applies w_i += scale * Σ e_n x_n,i and bias += scale * Σ e_n.
func update(w *Weights, xs []xmath.Vector, errs []float64, scale float64) {
	grad := xmath.Vec(w.Dim())
	for n, x := range xs {
		for i := range grad {
			grad[i] += errs[n] * x[i]
		}
	}
	for i := range w.W {
		w.W[i] += scale * grad[i]
	}
	w.Bias += scale * xmath.Vector(errs).Sum()
}
