package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/peterkuimelis/gwx/internal/console"
	"github.com/peterkuimelis/gwx/internal/game"
	gwxlog "github.com/peterkuimelis/gwx/internal/log"
)

type PlayCmd struct {
	Quiet bool `short:"q" help:"Do not echo match events"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	logger := globals.newLogger()

	cfg, err := globals.matchConfig()
	if err != nil {
		return err
	}
	if c.Quiet {
		cfg.Logger = gwxlog.NewMemoryLogger()
	} else {
		cfg.Logger = gwxlog.NewTextLogger(os.Stdout)
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}
	logger.Debug("match started", "id", g.ID, "seed", g.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := console.New(g, os.Stdin, os.Stdout).Run(ctx); err != nil {
		return err
	}
	logger.Debug("match closed", "id", g.ID, "over", g.GameOver(), "rounds", g.CompletedRounds())
	return nil
}
