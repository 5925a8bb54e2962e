package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/peterkuimelis/gwx/internal/game"
)

type DecksCmd struct {
	Cards bool `help:"Also list every card the registry knows"`
}

func (c *DecksCmd) Run(globals *Globals) error {
	df, err := game.LoadDeckFile(globals.Decks)
	if err != nil {
		return fmt.Errorf("load decks: %w", err)
	}
	return listDecks(os.Stdout, df, c.Cards)
}

func listDecks(w io.Writer, df *game.DeckFile, withCards bool) error {
	title := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	for i, d := range df.Decks {
		cards, err := d.Build()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %d cards\n", title.Render(fmt.Sprintf("%d. %s", i+1, d.Name)), len(cards))
	}
	if withCards {
		fmt.Fprintln(w, title.Render("Cards"))
		for _, name := range game.CardNames() {
			fmt.Fprintf(w, "  %s\n", game.MustLookupCard(name).Describe())
		}
	}
	return nil
}
