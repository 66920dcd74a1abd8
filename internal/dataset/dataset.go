package dataset

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/drakos74/linear-learn/internal/linear"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
)

// InvalidValueErr is returned for a value that cannot be read as a number.
var InvalidValueErr = errors.New("invalid value")

// Load reads a comma separated file into a dataset.
// The last column is the label, all other columns are the features.
func Load(path string, header bool) (linear.Dataset, error) {
	instances, err := base.ParseCSVToInstances(path, header)
	if err != nil {
		return linear.Dataset{}, fmt.Errorf("could not parse '%s': %w", path, err)
	}
	ds, err := FromInstances(instances)
	if err != nil {
		return linear.Dataset{}, fmt.Errorf("could not read '%s': %w", path, err)
	}
	log.Info().
		Str("path", path).
		Int("samples", ds.Size()).
		Int("features", len(ds.X[0])).
		Msg("loaded dataset")
	return ds, nil
}

// FromInstances converts the instances into a dataset with the class attribute as the label.
func FromInstances(instances base.FixedDataGrid) (linear.Dataset, error) {
	features := base.NonClassAttributes(instances)
	classes := instances.AllClassAttributes()
	if len(classes) != 1 {
		return linear.Dataset{}, fmt.Errorf("expected one label column, found %d", len(classes))
	}
	if len(features) == 0 {
		return linear.Dataset{}, fmt.Errorf("no feature columns: %w", linear.RaggedDatasetErr)
	}

	attrs := append(append(make([]base.Attribute, 0, len(features)+1), features...), classes[0])
	specs := base.ResolveAttributes(instances, attrs)

	_, rows := instances.Size()
	if rows == 0 {
		return linear.Dataset{}, linear.EmptyDatasetErr
	}
	ds := linear.Dataset{
		X: make([][]float64, rows),
		Y: make([]float64, rows),
	}
	err := instances.MapOverRows(specs, func(values [][]byte, row int) (bool, error) {
		x := make([]float64, len(features))
		for i, v := range values {
			f, err := value(attrs[i], v)
			if err != nil {
				return false, fmt.Errorf("row %d column '%s': %w", row, attrs[i].GetName(), err)
			}
			if i < len(features) {
				x[i] = f
			} else {
				ds.Y[row] = f
			}
		}
		ds.X[row] = x
		return true, nil
	})
	if err != nil {
		return linear.Dataset{}, err
	}
	return ds, nil
}

func value(attr base.Attribute, v []byte) (float64, error) {
	if _, ok := attr.(*base.FloatAttribute); ok {
		return base.UnpackBytesToFloat(v), nil
	}
	s := attr.GetStringFromSysVal(v)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("'%s': %w", s, InvalidValueErr)
	}
	return f, nil
}
