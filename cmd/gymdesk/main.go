// cmd/gymdesk/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/gymdesk/gymdesk/internal/config"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/shell"
	"github.com/gymdesk/gymdesk/internal/store"
)

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	st, err := store.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer st.Close()

	g, err := gym.Open(st, cfg.Gym.Name,
		cfg.Gym.Capacity,
		decimal.NewFromFloat(cfg.Gym.FeeCZK),
		decimal.NewFromFloat(cfg.Gym.FeeUSD),
		decimal.NewFromFloat(cfg.Gym.ExchangeRate),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open gym")
	}

	sh := shell.New(g, os.Stdin, os.Stdout, log.Logger)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	var shellDone atomic.Bool

	eg.Go(func() error {
		log.Info().Str("gym", g.Name()).Int("capacity", g.Capacity()).Msg("Starting session")
		err := sh.Run(ctx)
		shellDone.Store(true)
		stop()
		return err
	})

	// Exit hook: on interrupt, flush the open session best-effort. The
	// shell may still be blocked on stdin, so this path exits directly;
	// gym operations are mutex-serialized, so the flush never interleaves
	// with a menu operation still in flight.
	eg.Go(func() error {
		<-ctx.Done()
		if shellDone.Load() {
			return nil
		}
		if err := g.LogOff(); err != nil {
			log.Error().Err(err).Msg("Final save failed")
			st.Close()
			os.Exit(1)
		}
		log.Info().Msg("Session saved")
		st.Close()
		os.Exit(0)
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Session terminated with error")
		os.Exit(1)
	}
}
