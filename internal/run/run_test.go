package run

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/drakos74/linear-learn/internal/config"
	"github.com/drakos74/linear-learn/internal/linear"
	"github.com/drakos74/linear-learn/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {

	type test struct {
		cfg       config.Train
		ds        linear.Dataset
		reference bool
		score     func(t *testing.T, score float64)
	}

	tests := map[string]test{
		"regression": {
			cfg: config.Train{
				Config:   linear.DefaultConfig(linear.Regression, 0.01, 1000),
				LogEvery: 100,
			},
			ds: linear.Dataset{
				X: [][]float64{{1}, {2}, {3}},
				Y: []float64{2, 4, 6},
			},
			reference: true,
			score: func(t *testing.T, score float64) {
				assert.Less(t, score, 0.1)
			},
		},
		"perceptron": {
			cfg: config.Train{
				Config:   linear.DefaultConfig(linear.Perceptron, 0.1, 10),
				LogEvery: 3,
			},
			ds: linear.Dataset{
				X: [][]float64{{2, 2}, {3, 3}, {-1, -2}, {-2, -1}},
				Y: []float64{1, 1, -1, -1},
			},
			score: func(t *testing.T, score float64) {
				assert.Equal(t, 1.0, score)
			},
		},
		"logistic": {
			cfg: config.Train{
				Config: func() linear.Config {
					cfg := linear.DefaultConfig(linear.Logistic, 0.1, 500)
					cfg.Standardize = true
					return cfg
				}(),
			},
			ds: linear.Dataset{
				X: [][]float64{{0}, {10}},
				Y: []float64{0, 1},
			},
			score: func(t *testing.T, score float64) {
				assert.Equal(t, 1.0, score)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := metrics.New()
			require.NoError(t, err)

			report, err := Execute(tt.cfg, tt.ds, m)
			require.NoError(t, err)

			assert.NotEmpty(t, report.ID)
			assert.Equal(t, tt.cfg.Epochs, len(report.Costs))
			assert.Equal(t, len(tt.ds.X[0])+1, len(report.Weights.Vector()))
			assert.Equal(t, report.Costs[0], report.Summary.First)
			assert.Equal(t, report.Costs[len(report.Costs)-1], report.Summary.Last)
			assert.Equal(t, tt.cfg.Epochs, report.Summary.Epochs)
			assert.GreaterOrEqual(t, report.Summary.StDev, 0.0)
			assert.LessOrEqual(t, report.Summary.Min, report.Summary.Last)
			assert.GreaterOrEqual(t, report.Summary.Max, report.Summary.First)
			assert.Equal(t, tt.reference, report.Reference != nil)
			tt.score(t, report.Score)

			var out bytes.Buffer
			report.Render(&out)
			assert.True(t, strings.Contains(out.String(), report.ID))
			assert.True(t, strings.Contains(out.String(), string(tt.cfg.Variant)))
		})
	}
}

func TestExecute_Reference(t *testing.T) {
	report, err := Execute(config.Train{
		Config: linear.DefaultConfig(linear.Regression, 0.01, 2000),
	}, linear.Dataset{
		X: [][]float64{{0}, {1}, {2}, {3}},
		Y: []float64{1, 2, 3, 5},
	}, nil)
	require.NoError(t, err)

	require.Equal(t, 2, len(report.Reference))
	assert.InDelta(t, 0.8, report.Reference[0], 1e-9)
	assert.InDelta(t, 1.3, report.Reference[1], 1e-9)
	// the iterative solution approaches the closed form one
	w := report.Weights.Vector()
	assert.InDelta(t, report.Reference[0], w[0], 0.05)
	assert.InDelta(t, report.Reference[1], w[1], 0.05)
	// the cost flattens out
	assert.InDelta(t, 0, report.Summary.Trend, 1e-6)
}

func TestExecute_Failure(t *testing.T) {
	_, err := Execute(config.Train{
		Config: linear.DefaultConfig(linear.Adaline, 0.01, 10),
	}, linear.Dataset{}, nil)
	assert.True(t, errors.Is(err, linear.EmptyDatasetErr))

	_, err = Execute(config.Train{
		Config: linear.DefaultConfig(linear.Adaline, 0.01, 0),
	}, linear.Dataset{
		X: [][]float64{{1}},
		Y: []float64{1},
	}, nil)
	assert.True(t, errors.Is(err, linear.InvalidHyperparameterErr))
}

func TestSummarize(t *testing.T) {
	s := summarize([]float64{10, 8, 6, 4, 2}, 3)
	assert.Equal(t, 10.0, s.First)
	assert.Equal(t, 2.0, s.Last)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 10.0, s.Max)
	assert.InDelta(t, 6, s.Avg, 1e-9)
	assert.InDelta(t, -2, s.Trend, 1e-9)
	assert.Equal(t, 5, s.Epochs)
	assert.Equal(t, -8.0, s.Change)
	assert.InDelta(t, math.Sqrt(8), s.StDev, 1e-9)
	// the late epochs weigh more
	assert.Less(t, s.EMA, s.Avg)

	assert.Equal(t, Summary{}, summarize(nil, 3))
}
