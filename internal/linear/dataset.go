package linear

import (
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
)

// Dataset is an ordered set of samples X with their labels Y.
type Dataset struct {
	X [][]float64 `json:"x"`
	Y []float64   `json:"y"`
}

// Size returns the number of samples.
func (ds Dataset) Size() int {
	return len(ds.X)
}

// Validate checks the dataset is non-empty and rectangular and returns its feature dimension.
func (ds Dataset) Validate() (int, error) {
	if len(ds.X) == 0 {
		return 0, EmptyDatasetErr
	}
	if len(ds.Y) != len(ds.X) {
		return 0, fmt.Errorf("%d samples for %d labels: %w", len(ds.X), len(ds.Y), RaggedDatasetErr)
	}
	dim := len(ds.X[0])
	if dim == 0 {
		return 0, fmt.Errorf("samples have no features: %w", RaggedDatasetErr)
	}
	for i, x := range ds.X {
		if len(x) != dim {
			return 0, fmt.Errorf("sample %d has %d features instead of %d: %w", i, len(x), dim, RaggedDatasetErr)
		}
	}
	return dim, nil
}

// vectors views the samples as vectors, without copying them.
func (ds Dataset) vectors() []xmath.Vector {
	xs := make([]xmath.Vector, len(ds.X))
	for i, x := range ds.X {
		xs[i] = x
	}
	return xs
}
