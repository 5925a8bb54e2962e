package view

import (
	"github.com/peterkuimelis/gwx/internal/game"
	"github.com/peterkuimelis/gwx/internal/log"
)

// StateView is the match state from one player's perspective.
type StateView struct {
	MatchID    string        `json:"match_id"`
	Round      int           `json:"round"`
	You        PlayerView    `json:"you"`
	Opponent   PlayerView    `json:"opponent"`
	Specials   []SpecialView `json:"specials,omitempty"`
	IsYourTurn bool          `json:"is_your_turn"`
	GameOver   bool          `json:"game_over"`
	Winner     string        `json:"winner,omitempty"`
	History    []RoundView   `json:"history,omitempty"`
}

// PlayerView shows one side of the board.
type PlayerView struct {
	Seat           int                    `json:"seat"`
	Name           string                 `json:"name"`
	Score          int                    `json:"score"`
	Victories      int                    `json:"victories"`
	Passed         bool                   `json:"passed"`
	HandCount      int                    `json:"hand_count"`
	Hand           []CardView             `json:"hand,omitempty"` // only for "you"
	DeckCount      int                    `json:"deck_count"`
	GraveyardCount int                    `json:"graveyard_count"`
	Rows           [game.RowCount]RowView `json:"rows"`
}

// RowView is one lane and the units in it.
type RowView struct {
	Row      int           `json:"row"`
	Strength int           `json:"strength"`
	Cards    []EngagedView `json:"cards"`
}

// EngagedView is a unit in play.
type EngagedView struct {
	Name  string `json:"name"`
	Base  int    `json:"base"`
	Value int    `json:"value"`
}

// CardView describes a card in hand. Index is 1-based for display.
type CardView struct {
	Index  int    `json:"index"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Value  int    `json:"value,omitempty"`
	Row    int    `json:"row"`
	Effect string `json:"effect,omitempty"`
}

// SpecialView is a special card active this round.
type SpecialView struct {
	Name     string `json:"name"`
	Owner    string `json:"owner"`
	Row      int    `json:"row"`
	Effect   string `json:"effect"`
	Priority int    `json:"priority"`
}

// RoundView is a finished round.
type RoundView struct {
	Round  int    `json:"round"`
	Scores [2]int `json:"scores"`
	Winner string `json:"winner,omitempty"`
}

// EventView is a simplified match event for clients.
type EventView struct {
	Seq     int    `json:"seq"`
	Round   int    `json:"round"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// BuildStateView creates a StateView from the perspective of the given seat.
func BuildStateView(g *game.Game, seat int) *StateView {
	sv := &StateView{
		MatchID:    g.ID,
		Round:      g.RoundNumber(),
		IsYourTurn: !g.GameOver() && g.CurrentSeat() == seat,
		GameOver:   g.GameOver(),
		You:        buildPlayerView(g, seat, true),
		Opponent:   buildPlayerView(g, 1-seat, false),
	}
	if w, ok := g.Winner(); ok {
		sv.Winner = w.Name
	}

	for _, sp := range g.SpecialCards() {
		eff := sp.Card.Card.Effect
		sv.Specials = append(sv.Specials, SpecialView{
			Name:     sp.Card.Card.Name,
			Owner:    g.Players[sp.Card.Owner].Name,
			Row:      sp.Row,
			Effect:   eff.Label,
			Priority: eff.Priority,
		})
	}

	for _, r := range g.History() {
		rv := RoundView{Round: r.Number, Scores: r.Scores}
		if r.Winner >= 0 {
			rv.Winner = g.Players[r.Winner].Name
		}
		sv.History = append(sv.History, rv)
	}

	return sv
}

func buildPlayerView(g *game.Game, seat int, isOwner bool) PlayerView {
	side := g.Side(seat)
	pv := PlayerView{
		Seat:           seat,
		Name:           side.Player.Name,
		Score:          g.Scores()[seat],
		Victories:      side.Victories,
		Passed:         g.Passed(seat),
		HandCount:      side.Hand.Len(),
		DeckCount:      side.Deck.Len(),
		GraveyardCount: len(side.Graveyard),
	}
	if isOwner {
		pv.Hand = HandView(g.Hand(seat))
	}
	for i, row := range g.Rows(seat) {
		rv := RowView{Row: row.ID, Strength: row.Strength(), Cards: []EngagedView{}}
		for _, c := range row.Cards {
			rv.Cards = append(rv.Cards, EngagedView{
				Name:  c.Name(),
				Base:  c.Instance.Card.Value,
				Value: c.CurrentValue,
			})
		}
		pv.Rows[i] = rv
	}
	return pv
}

// HandView lists cards in the order given, numbered from 1.
func HandView(cards []*game.CardInstance) []CardView {
	views := make([]CardView, 0, len(cards))
	for i, c := range cards {
		cv := CardView{
			Index: i + 1,
			ID:    c.ID,
			Name:  c.Card.Name,
			Type:  c.Card.CardType.String(),
			Row:   c.Card.TargetRow,
		}
		if c.Card.CardType == game.CardTypeUnit {
			cv.Value = c.Card.Value
		} else {
			cv.Effect = c.Card.Effect.Label
		}
		views = append(views, cv)
	}
	return views
}

// Event converts a logged event for clients.
func Event(e log.GameEvent) EventView {
	return EventView{
		Seq:     e.Seq,
		Round:   e.Round,
		Player:  e.Player,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

// Events converts a batch of logged events. The result is never nil.
func Events(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, Event(e))
	}
	return views
}
