package linear

import (
	"math"

	"github.com/drakos74/go-ex-machina/xmath"
	"gonum.org/v1/gonum/stat"
)

// Scaler standardizes features to zero mean and unit standard deviation.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// NewScaler learns the per feature mean and sample standard deviation of the given samples.
// Features without spread keep a unit scale.
func NewScaler(xs []xmath.Vector) *Scaler {
	dim := len(xs[0])
	s := &Scaler{
		Mean: make([]float64, dim),
		Std:  make([]float64, dim),
	}
	col := make([]float64, len(xs))
	for j := 0; j < dim; j++ {
		for i, x := range xs {
			col[i] = x[j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if len(xs) < 2 || std == 0 || math.IsNaN(std) || math.IsInf(std, 0) {
			std = 1
		}
		s.Mean[j] = mean
		s.Std[j] = std
	}
	return s
}

// Transform returns the standardized copy of x.
func (s *Scaler) Transform(x xmath.Vector) xmath.Vector {
	z := xmath.Vec(len(x))
	for j, v := range x {
		z[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return z
}

func (s *Scaler) transformAll(xs []xmath.Vector) []xmath.Vector {
	zs := make([]xmath.Vector, len(xs))
	for i, x := range xs {
		zs[i] = s.Transform(x)
	}
	return zs
}
