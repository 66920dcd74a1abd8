package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drakos74/linear-learn/internal/config"
	"github.com/drakos74/linear-learn/internal/dataset"
	"github.com/drakos74/linear-learn/internal/linear"
	"github.com/drakos74/linear-learn/internal/metrics"
	"github.com/drakos74/linear-learn/internal/run"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	configPath := flag.String("config", "infra/config/train.yaml", "path to the YAML config")
	dataPath := flag.String("data", "", "override the dataset path")
	flag.Parse()

	if err := train(*configPath, *dataPath); err != nil {
		log.Fatal().Err(err).Str("config", *configPath).Msg("training failed")
	}
}

func train(configPath, dataPath string) error {
	cfg := config.MustLoad(configPath)
	cfg.ApplyOverrides(config.Overrides{DatasetPath: dataPath})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Train == nil {
		return errors.New("no train section")
	}

	ds, err := load(cfg.Train.Dataset)
	if err != nil {
		return fmt.Errorf("could not load dataset: %w", err)
	}

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("could not create metrics: %w", err)
	}
	if cfg.Metrics.Addr != "" {
		srv := m.Serve(cfg.Metrics.Addr)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("could not shut down metrics server")
			}
		}()
	}

	report, err := run.Execute(*cfg.Train, ds, m)
	if err != nil {
		return err
	}
	report.Render(os.Stdout)

	if cfg.Metrics.Addr != "" {
		// keep the metrics available until interrupted
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
	}
	return nil
}

func load(cfg config.Dataset) (linear.Dataset, error) {
	if cfg.Path != "" {
		return dataset.Load(cfg.Path, cfg.Header)
	}
	return *cfg.Samples, nil
}
