package game

import (
	"errors"
	"fmt"
)

const (
	RowCount        = 3
	InitialHandSize = 8
	VictoriesToWin  = 2
	MaxRounds       = 3
)

var (
	ErrInvalidConfig = errors.New("invalid match configuration")
	ErrCardNotInHand = errors.New("card not in hand")
	ErrInvalidRow    = errors.New("invalid row")
	ErrMatchOver     = errors.New("match is over")
	ErrRoundOver     = errors.New("round is over")
	ErrUnknownCard   = errors.New("unknown card")
	ErrDeckNotFound  = errors.New("deck not found")
)

// --- Enums ---

type CardType int

const (
	CardTypeUnit CardType = iota
	CardTypeSpecial
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeUnit:
		return "Unit"
	case CardTypeSpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// --- Player ---

// Player is a participant's identity. Two players are the same player only if
// they are the same pointer.
type Player struct {
	Name string
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

func (p *Player) String() string {
	if p == nil {
		return "(nobody)"
	}
	return p.Name
}

// --- Card definition (static, from the catalog) ---

type Card struct {
	Name      string
	CardType  CardType
	Value     int     // base strength, units only
	TargetRow int     // 1..RowCount
	Effect    *Effect // specials only
}

func (c *Card) String() string {
	return c.Name
}

// NewUnit returns a unit card definition.
func NewUnit(name string, value, row int) *Card {
	return &Card{Name: name, CardType: CardTypeUnit, Value: value, TargetRow: row}
}

// NewSpecial returns a special card definition that applies eff to row.
func NewSpecial(name string, eff Effect, row int) *Card {
	return &Card{Name: name, CardType: CardTypeSpecial, TargetRow: row, Effect: &eff}
}

// Validate checks that the card can take part in a match.
func (c *Card) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil card", ErrInvalidConfig)
	}
	if !ValidRow(c.TargetRow) {
		return fmt.Errorf("%w: card %q targets row %d", ErrInvalidConfig, c.Name, c.TargetRow)
	}
	switch c.CardType {
	case CardTypeUnit:
		if c.Effect != nil {
			return fmt.Errorf("%w: unit %q carries an effect", ErrInvalidConfig, c.Name)
		}
	case CardTypeSpecial:
		if c.Effect == nil {
			return fmt.Errorf("%w: special %q has no effect", ErrInvalidConfig, c.Name)
		}
	default:
		return fmt.Errorf("%w: card %q has unknown type %d", ErrInvalidConfig, c.Name, c.CardType)
	}
	return nil
}

// Describe returns a short human-readable summary, e.g. "Knight (5, row 1)".
func (c *Card) Describe() string {
	if c.CardType == CardTypeSpecial {
		return fmt.Sprintf("%s [%s, row %d]", c.Name, c.Effect.Label, c.TargetRow)
	}
	return fmt.Sprintf("%s (%d, row %d)", c.Name, c.Value, c.TargetRow)
}

// ValidRow reports whether row identifies an existing row.
func ValidRow(row int) bool {
	return row >= 1 && row <= RowCount
}

// --- CardInstance (one dealt copy of a card within a match) ---

type CardInstance struct {
	Card  *Card
	ID    int // unique instance ID within a match
	Owner int // seat (0 or 1) that was dealt this card
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(empty)"
	}
	return fmt.Sprintf("#%d %s", ci.ID, ci.Card.Describe())
}
