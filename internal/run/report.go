package run

import (
	"fmt"
	"io"
	"strings"

	"github.com/drakos74/linear-learn/internal/linear"
	lmath "github.com/drakos74/linear-learn/internal/math"
	"github.com/olekukonko/tablewriter"
)

// Render writes the report as a table.
func (r Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"property", "value"})
	table.SetAutoWrapText(false)

	table.Append([]string{"id", r.ID})
	table.Append([]string{"variant", string(r.Config.Variant)})
	table.Append([]string{"learning rate", lmath.Format(r.Config.LearningRate)})
	table.Append([]string{"epochs", fmt.Sprintf("%d", r.Summary.Epochs)})
	table.Append([]string{"normalization", string(r.Config.Normalization)})
	table.Append([]string{"samples", fmt.Sprintf("%d", r.Samples)})
	table.Append([]string{"features", fmt.Sprintf("%d", r.Features)})
	table.Append([]string{"weights", vector(r.Weights.Vector())})
	if r.Reference != nil {
		table.Append([]string{"closed form", vector(r.Reference)})
	}
	table.Append([]string{"cost first", lmath.Format(r.Summary.First)})
	table.Append([]string{"cost last", lmath.Format(r.Summary.Last)})
	table.Append([]string{"cost min", lmath.Format(r.Summary.Min)})
	table.Append([]string{"cost max", lmath.Format(r.Summary.Max)})
	table.Append([]string{"cost avg", lmath.Format(r.Summary.Avg)})
	table.Append([]string{"cost ema", lmath.Format(r.Summary.EMA)})
	table.Append([]string{"cost stdev", lmath.Format(r.Summary.StDev)})
	table.Append([]string{"cost change", lmath.Format(r.Summary.Change)})
	table.Append([]string{"cost trend", lmath.Format(r.Summary.Trend)})
	if r.Config.Variant == linear.Regression {
		table.Append([]string{"mse", lmath.Format(r.Score)})
	} else {
		table.Append([]string{"accuracy", lmath.Format(r.Score)})
	}
	table.Append([]string{"duration", r.Duration.String()})

	table.Render()
}

func vector(v []float64) string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = lmath.Format(f)
	}
	return "[" + strings.Join(s, " ") + "]"
}
