package linear

import (
	"math"
	"testing"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/stretchr/testify/assert"
)

func TestScaler(t *testing.T) {
	xs := []xmath.Vector{
		{1, 5},
		{3, 5},
	}
	s := NewScaler(xs)

	assert.Equal(t, []float64{2, 5}, s.Mean)
	assert.InDelta(t, math.Sqrt2, s.Std[0], 1e-9)
	// constant feature keeps a unit scale
	assert.Equal(t, 1.0, s.Std[1])

	z := s.Transform(xmath.Vector{3, 7})
	assert.InDelta(t, 1/math.Sqrt2, z[0], 1e-9)
	assert.InDelta(t, 2, z[1], 1e-9)

	// the input is left untouched
	assert.Equal(t, xmath.Vector{1, 5}, xs[0])
}

func TestScaler_SingleSample(t *testing.T) {
	s := NewScaler([]xmath.Vector{{4}})
	assert.Equal(t, []float64{4}, s.Mean)
	assert.Equal(t, []float64{1}, s.Std)
}

func TestActivation(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0))
	assert.InDelta(t, 1, Sigmoid(50), 1e-9)
	assert.InDelta(t, 0, Sigmoid(-50), 1e-9)

	step := Step(1, -1)
	assert.Equal(t, 1.0, step(0))
	assert.Equal(t, -1.0, step(-0.001))
	assert.Equal(t, 3.5, Identity(3.5))
}

func TestLogistic_CostIsFinite(t *testing.T) {
	trainer, err := NewLogistic(1000, 20)
	assert.NoError(t, err)
	_, err = trainer.Fit(Dataset{
		X: [][]float64{{-100}, {100}},
		Y: []float64{0, 1},
	})
	assert.NoError(t, err)
	for _, c := range trainer.Costs() {
		assert.False(t, math.IsInf(c, 0))
		assert.False(t, math.IsNaN(c))
	}
}
