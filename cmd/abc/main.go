package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/drakos74/linear-learn/internal/abc"
	"github.com/drakos74/linear-learn/internal/config"
	lmath "github.com/drakos74/linear-learn/internal/math"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NOTE : the posterior summary needs more than 1000 accepted draws to be reliable
const minAccepted = 1000

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	configPath := flag.String("config", "infra/config/abc.yaml", "path to the YAML config")
	seed := flag.Int64("seed", 0, "override the sampling seed")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	cfg.ApplyOverrides(config.Overrides{Seed: *seed})
	if cfg.ABC == nil {
		log.Fatal().Str("config", *configPath).Msg("no abc section")
	}

	posterior, err := abc.Estimate(cfg.ABC.Config)
	if err != nil {
		log.Fatal().Err(err).Msg("estimation failed")
	}
	if posterior.Accepted < minAccepted {
		log.Warn().
			Int("accepted", posterior.Accepted).
			Int("draws", posterior.Draws).
			Msg("few accepted draws, increase the number of draws")
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"draws", "accepted", "mean", "median", "interval"})
	table.Append([]string{
		fmt.Sprintf("%d", posterior.Draws),
		fmt.Sprintf("%d", posterior.Accepted),
		lmath.Format(posterior.Mean),
		lmath.Format(posterior.Median),
		fmt.Sprintf("%s - %s", lmath.Format(posterior.Lower), lmath.Format(posterior.Upper)),
	})
	table.Render()
}
