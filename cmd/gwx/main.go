package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/peterkuimelis/gwx/internal/game"
	"github.com/peterkuimelis/gwx/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Seed     int64  `help:"Seed for shuffling and starting players (0 = time based)" default:"0"`
	Decks    string `help:"Path to decks YAML file" default:"decks.yaml" type:"path"`
	Deck1    int    `help:"Deck number for player 1 (0 = built-in balanced deck)" default:"0"`
	Deck2    int    `help:"Deck number for player 2 (0 = built-in balanced deck)" default:"0"`
	P1       string `help:"Name of player 1" default:"Player 1"`
	P2       string `help:"Name of player 2" default:"Player 2"`
	LogLevel string `help:"Log level" default:"info" enum:"debug,info,warn,error"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a hot-seat match in the terminal"`
	MCP      MCPCmd           `cmd:"mcp" help:"Serve match tools over MCP stdio"`
	DeckList DecksCmd         `cmd:"decks" help:"List the decks in the decks file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gwx"),
		kong.Description("Two-player, best-of-three card battle"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// newLogger creates the process logger. It always writes to stderr so the
// MCP transport on stdout stays clean.
func (g *Globals) newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func (g *Globals) seed() int64 {
	return randutil.SeedOrClock(g.Seed)
}

// matchConfig builds the players and card pools for a new match.
func (g *Globals) matchConfig() (game.Config, error) {
	cfg := game.Config{
		Seed:    g.seed(),
		Players: [2]*game.Player{game.NewPlayer(g.P1), game.NewPlayer(g.P2)},
	}

	for p, n := range []int{g.Deck1, g.Deck2} {
		if n == 0 {
			cfg.Pools[p] = game.BalancedDeck()
			continue
		}
		_, cards, err := game.DeckByNumber(g.Decks, n)
		if err != nil {
			return cfg, fmt.Errorf("deck for %s: %w", cfg.Players[p].Name, err)
		}
		cfg.Pools[p] = cards
	}
	return cfg, nil
}
