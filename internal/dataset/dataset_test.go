package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/linear-learn/internal/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {

	type test struct {
		content string
		header  bool
		ds      linear.Dataset
	}

	tests := map[string]test{
		"single-feature": {
			content: "1.0,2.0\n2.0,4.0\n3.0,6.0\n",
			ds: linear.Dataset{
				X: [][]float64{{1}, {2}, {3}},
				Y: []float64{2, 4, 6},
			},
		},
		"header": {
			content: "x1,x2,label\n2.5,2.0,1\n-1.0,-2.5,-1\n",
			header:  true,
			ds: linear.Dataset{
				X: [][]float64{{2.5, 2}, {-1, -2.5}},
				Y: []float64{1, -1},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ds, err := Load(write(t, tt.content), tt.header)
			require.NoError(t, err)
			require.Equal(t, len(tt.ds.X), ds.Size())
			for i := range tt.ds.X {
				assert.InDeltaSlice(t, tt.ds.X[i], ds.X[i], 1e-9)
			}
			assert.InDeltaSlice(t, tt.ds.Y, ds.Y, 1e-9)
			_, err = ds.Validate()
			assert.NoError(t, err)
		})
	}
}

func TestLoad_Train(t *testing.T) {
	ds, err := Load(write(t, "1.0,2.0\n2.0,4.0\n3.0,6.0\n"), false)
	require.NoError(t, err)

	trainer, err := linear.NewRegression(0.01, 1000)
	require.NoError(t, err)
	_, err = trainer.Fit(ds)
	require.NoError(t, err)

	y, err := trainer.PredictOne([]float64{4})
	require.NoError(t, err)
	assert.InDelta(t, 8, y, 0.5)
}

func TestLoad_InvalidValue(t *testing.T) {
	_, err := Load(write(t, "a,1.0\n2.0,3.0\n"), false)
	assert.ErrorIs(t, err, InvalidValueErr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), false)
	assert.Error(t, err)
}
