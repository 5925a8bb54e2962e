package game

import "fmt"

// EffectKind identifies what an effect does to a card's current strength.
type EffectKind int

const (
	EffectSap    EffectKind = iota // strength becomes 1
	EffectSet                      // strength becomes Amount
	EffectBoost                    // strength increases by Amount
	EffectDouble                   // strength doubles
)

func (k EffectKind) String() string {
	switch k {
	case EffectSap:
		return "SAP"
	case EffectSet:
		return "SET"
	case EffectBoost:
		return "BOOST"
	case EffectDouble:
		return "DOUBLE"
	default:
		return "Unknown"
	}
}

// DefaultPriority is the application order used when an effect is built by
// one of the constructors below. Lower priorities apply first.
func DefaultPriority(k EffectKind) int {
	switch k {
	case EffectSap:
		return 0
	case EffectSet:
		return 1
	case EffectBoost:
		return 2
	case EffectDouble:
		return 3
	default:
		return 100
	}
}

// Effect is a named transformation of a card's current strength.
type Effect struct {
	Kind     EffectKind
	Label    string
	Priority int
	Amount   int // SET and BOOST only
}

// Apply returns the strength a card ends with when this effect is applied to
// a card whose strength is currently current.
func (e Effect) Apply(current int) int {
	switch e.Kind {
	case EffectSap:
		return 1
	case EffectSet:
		return e.Amount
	case EffectBoost:
		return current + e.Amount
	case EffectDouble:
		return current * 2
	default:
		return current
	}
}

func (e Effect) String() string {
	return fmt.Sprintf("%s(p%d)", e.Label, e.Priority)
}

// WithPriority returns a copy of e applied at priority p.
func (e Effect) WithPriority(p int) Effect {
	e.Priority = p
	return e
}

func Sap() Effect {
	return Effect{Kind: EffectSap, Label: "x", Priority: DefaultPriority(EffectSap)}
}

func SetTo(n int) Effect {
	return Effect{Kind: EffectSet, Label: fmt.Sprintf("=%d", n), Priority: DefaultPriority(EffectSet), Amount: n}
}

func Boost(n int) Effect {
	return Effect{Kind: EffectBoost, Label: fmt.Sprintf("+%d", n), Priority: DefaultPriority(EffectBoost), Amount: n}
}

func Double() Effect {
	return Effect{Kind: EffectDouble, Label: "x2", Priority: DefaultPriority(EffectDouble)}
}
