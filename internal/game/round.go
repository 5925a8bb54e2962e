package game

import (
	"fmt"
	"slices"

	"github.com/peterkuimelis/gwx/internal/log"
)

// SpecialPlay is a special card played this round and the row it affects.
type SpecialPlay struct {
	Card *CardInstance
	Row  int
}

// Round holds the state of a single round: row occupancy, pass flags, whose
// turn it is and the specials played so far.
type Round struct {
	Number int

	players  [2]*Player
	rows     [2][RowCount]*Row
	passed   [2]bool
	current  int
	specials []SpecialPlay // oldest first
	logger   log.EventLogger
}

// NewRound starts round number with an empty row arena and starter to play.
func NewRound(number int, players [2]*Player, starter int, logger log.EventLogger) *Round {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Round{
		Number:  number,
		players: players,
		rows:    newRowArena(),
		current: starter,
		logger:  logger,
	}
}

// CurrentSeat returns the seat whose turn it is.
func (r *Round) CurrentSeat() int {
	return r.current
}

// OtherSeat returns the seat that is not the current one.
func (r *Round) OtherSeat() int {
	return 1 - r.current
}

// HasPassed reports whether seat has passed this round.
func (r *Round) HasPassed(seat int) bool {
	return r.passed[seat]
}

// HasEnded reports whether every player has passed.
func (r *Round) HasEnded() bool {
	return r.passed[0] && r.passed[1]
}

// Rows returns seat's rows, row 1 first.
func (r *Round) Rows(seat int) [RowCount]*Row {
	return r.rows[seat]
}

// Row returns seat's row with the given 1-based id.
func (r *Round) Row(seat, id int) *Row {
	return r.rows[seat][id-1]
}

// SpecialCards returns the specials played this round, oldest first.
func (r *Round) SpecialCards() []SpecialPlay {
	return append([]SpecialPlay(nil), r.specials...)
}

// PlayCard puts card into play for the current seat. Units join their own
// target row on the current seat's side and reject any other row; specials
// are recorded and affect the given row on both sides.
// Strengths are recomputed afterwards. The turn does not change.
func (r *Round) PlayCard(card *CardInstance, row int) error {
	if r.HasEnded() {
		return ErrRoundOver
	}
	if !ValidRow(row) {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidRow, row, RowCount)
	}
	if card.Card.CardType == CardTypeUnit && row != card.Card.TargetRow {
		return fmt.Errorf("%w: %s fights in row %d, not %d", ErrInvalidRow, card.Card.Name, card.Card.TargetRow, row)
	}

	seat := r.current
	name := r.players[seat].Name
	switch card.Card.CardType {
	case CardTypeUnit:
		target := r.Row(seat, row)
		target.Cards = append(target.Cards, newEngagedCard(card))
		r.logger.Log(log.NewPlayUnitEvent(r.Number, seat, name, card.Card.Name, card.Card.Value, row))
	case CardTypeSpecial:
		r.specials = append(r.specials, SpecialPlay{Card: card, Row: row})
		r.logger.Log(log.NewPlaySpecialEvent(r.Number, seat, name, card.Card.Name, card.Card.Effect.Label, row))
	}

	r.adjustCardStrengths()
	return nil
}

// Pass marks the current seat as passed and hands over the turn if the
// opponent is still playing.
func (r *Round) Pass() {
	r.passed[r.current] = true
	r.logger.Log(log.NewPassEvent(r.Number, r.current, r.players[r.current].Name))
	r.SwapPlayerIfPossible()
}

// SwapPlayerIfPossible gives the turn to the other seat unless it has passed.
func (r *Round) SwapPlayerIfPossible() {
	other := r.OtherSeat()
	if r.passed[other] {
		return
	}
	r.current = other
	r.logger.Log(log.NewTurnChangeEvent(r.Number, other, r.players[other].Name))
}

// ComputeScores sums the current strength of every card on each side.
func (r *Round) ComputeScores() [2]int {
	var scores [2]int
	for p := 0; p < 2; p++ {
		for _, row := range r.rows[p] {
			scores[p] += row.Strength()
		}
	}
	return scores
}

// FindWinner returns the seat with the strictly higher score. A tie has no
// winner.
func (r *Round) FindWinner() (int, bool) {
	scores := r.ComputeScores()
	switch {
	case scores[0] > scores[1]:
		return 0, true
	case scores[1] > scores[0]:
		return 1, true
	default:
		return -1, false
	}
}

// adjustCardStrengths recomputes every engaged card from its base value,
// then applies the round's specials in ascending priority. Specials with the
// same priority apply in the order they were played.
func (r *Round) adjustCardStrengths() {
	before := make(map[*EngagedCard]int)
	for p := 0; p < 2; p++ {
		for _, row := range r.rows[p] {
			for _, c := range row.Cards {
				before[c] = c.CurrentValue
				c.CurrentValue = c.Instance.Card.Value
			}
		}
	}

	ordered := slices.Clone(r.specials)
	slices.SortStableFunc(ordered, func(a, b SpecialPlay) int {
		return a.Card.Card.Effect.Priority - b.Card.Card.Effect.Priority
	})

	for _, sp := range ordered {
		eff := sp.Card.Card.Effect
		for p := 0; p < 2; p++ {
			for _, c := range r.Row(p, sp.Row).Cards {
				c.CurrentValue = eff.Apply(c.CurrentValue)
			}
		}
	}

	for p := 0; p < 2; p++ {
		for _, row := range r.rows[p] {
			for _, c := range row.Cards {
				old, ok := before[c]
				if ok && old != c.CurrentValue {
					r.logger.Log(log.NewStrengthChangeEvent(r.Number, p, c.Name(), old, c.CurrentValue))
				}
			}
		}
	}
}

// engagedInstances returns every card seat has on the board this round,
// units first in row order, then specials in play order.
func (r *Round) engagedInstances(seat int) []*CardInstance {
	var result []*CardInstance
	for _, row := range r.rows[seat] {
		for _, c := range row.Cards {
			result = append(result, c.Instance)
		}
	}
	for _, sp := range r.specials {
		if sp.Card.Owner == seat {
			result = append(result, sp.Card)
		}
	}
	return result
}
