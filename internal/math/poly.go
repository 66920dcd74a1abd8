package math

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// UnderdeterminedErr is returned when there are fewer samples than coefficients to solve for.
var UnderdeterminedErr = errors.New("not enough samples")

// Fit fits the given series of x and y into a polynomial function of the given degree
// out put is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%d x values for %d y values", len(x), len(y))
	}
	return solve(vandermonde(x, degree), y)
}

// LeastSquares returns the closed form least squares solution [bias, w_1, ... , w_D]
// for the samples x and targets y.
func LeastSquares(x [][]float64, y []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("no samples: %w", UnderdeterminedErr)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%d samples for %d targets", len(x), len(y))
	}
	a, err := design(x)
	if err != nil {
		return nil, err
	}
	return solve(a, y)
}

func solve(a *mat.Dense, y []float64) ([]float64, error) {
	r, c := a.Dims()
	if r < c {
		return nil, fmt.Errorf("%d samples for %d coefficients: %w", r, c, UnderdeterminedErr)
	}

	b := mat.NewDense(len(y), 1, y)
	x := mat.NewDense(c, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	err := qr.SolveTo(x, false, b)

	v := x.ColView(0)
	cc := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		cc[i] = v.AtVec(i)
	}
	return cc, err
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

// design builds the design matrix with a leading intercept column.
func design(samples [][]float64) (*mat.Dense, error) {
	dim := len(samples[0])
	x := mat.NewDense(len(samples), dim+1, nil)
	for i, s := range samples {
		if len(s) != dim {
			return nil, fmt.Errorf("sample %d has %d features instead of %d", i, len(s), dim)
		}
		x.Set(i, 0, 1)
		for j, v := range s {
			x.Set(i, j+1, v)
		}
	}
	return x, nil
}

// Polynomial holds the coefficients c[0] + c[1]x + c[2]x^2 + ...
type Polynomial []float64

// Eval evaluates the polynomial at x.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Derivative returns the first derivative of the polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p) < 2 {
		return Polynomial{0}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d
}
