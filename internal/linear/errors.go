package linear

import "errors"

var (
	InvalidHyperparameterErr = errors.New("invalid hyperparameter")
	EmptyDatasetErr          = errors.New("empty dataset")
	RaggedDatasetErr         = errors.New("ragged dataset")
	DimensionMismatchErr     = errors.New("dimension mismatch")
	NotFittedErr             = errors.New("model not fitted")
	InvalidLabelErr          = errors.New("invalid label")
)
