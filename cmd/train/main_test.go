package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/linear-learn/internal/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrain(t *testing.T) {

	type test struct {
		content string
		fails   bool
		err     error
	}

	tests := map[string]test{
		"inline-samples": {
			content: `
train:
  variant: perceptron
  learning_rate: 0.1
  epochs: 10
  dataset:
    samples:
      x: [[2, 2], [3, 3], [-1, -2], [-2, -1]]
      y: [1, 1, -1, -1]
`,
		},
		"invalid-labels": {
			content: `
train:
  variant: perceptron
  learning_rate: 0.1
  epochs: 10
  dataset:
    samples:
      x: [[-1], [1]]
      y: [0, 1]
`,
			fails: true,
			err:   linear.InvalidLabelErr,
		},
		"missing-dataset": {
			content: `
train:
  variant: adaline
  learning_rate: 0.01
  epochs: 10
  dataset:
    path: missing.csv
`,
			fails: true,
		},
		"no-train-section": {
			content: `
descent:
  coefficients: [2, 0, 0, -3, 1]
`,
			fails: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			err := train(path, "")
			if !tt.fails {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
