package linear

import "github.com/drakos74/go-ex-machina/xmath"

// Weights holds the bias and the per feature weights of a linear model.
type Weights struct {
	Bias float64      `json:"bias"`
	W    xmath.Vector `json:"w"`
}

func newWeights(dim int) *Weights {
	return &Weights{W: xmath.Vec(dim)}
}

// Dim returns the number of feature weights.
func (w Weights) Dim() int {
	return len(w.W)
}

// NetInput returns bias + Σ w_i x_i for the given sample.
func (w Weights) NetInput(x xmath.Vector) float64 {
	return w.Bias + w.W.Dot(x)
}

// Copy returns a deep copy of the weights.
func (w Weights) Copy() Weights {
	return Weights{
		Bias: w.Bias,
		W:    w.W.Copy(),
	}
}

// Vector returns the weights as [bias, w_1, ... , w_D].
func (w Weights) Vector() []float64 {
	return append([]float64{w.Bias}, w.W...)
}
