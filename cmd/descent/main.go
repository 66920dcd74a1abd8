package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/drakos74/linear-learn/internal/config"
	"github.com/drakos74/linear-learn/internal/descent"
	lmath "github.com/drakos74/linear-learn/internal/math"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	configPath := flag.String("config", "infra/config/descent.yaml", "path to the YAML config")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	if cfg.Descent == nil {
		log.Fatal().Str("config", *configPath).Msg("no descent section")
	}

	f := lmath.Polynomial(cfg.Descent.Coefficients)
	df := f.Derivative()
	result, err := descent.Minimize(df.Eval, cfg.Descent.Start, cfg.Descent.Config)
	if err != nil {
		log.Fatal().Err(err).Float64("start", cfg.Descent.Start).Msg("descent failed")
	}
	if !result.Converged {
		log.Warn().Int("iterations", result.Iterations).Msg("descent did not converge")
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"start", "minimum", "f(minimum)", "iterations", "converged"})
	table.Append([]string{
		lmath.Format(cfg.Descent.Start),
		fmt.Sprintf("%v", result.X),
		lmath.Format(f.Eval(result.X)),
		fmt.Sprintf("%d", result.Iterations),
		fmt.Sprintf("%v", result.Converged),
	})
	table.Render()
}
