package log

// EventType enumerates all observable match events.
type EventType int

const (
	EventMatchStart EventType = iota
	EventDeal
	EventRoundStart
	EventPlayUnit
	EventPlaySpecial
	EventStrengthChange
	EventPass
	EventTurnChange
	EventRoundEnd
	EventRoundTie
	EventVictory
	EventMatchOver
)

func (e EventType) String() string {
	switch e {
	case EventMatchStart:
		return "MatchStart"
	case EventDeal:
		return "Deal"
	case EventRoundStart:
		return "RoundStart"
	case EventPlayUnit:
		return "PlayUnit"
	case EventPlaySpecial:
		return "PlaySpecial"
	case EventStrengthChange:
		return "StrengthChange"
	case EventPass:
		return "Pass"
	case EventTurnChange:
		return "TurnChange"
	case EventRoundEnd:
		return "RoundEnd"
	case EventRoundTie:
		return "RoundTie"
	case EventVictory:
		return "Victory"
	case EventMatchOver:
		return "MatchOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based, 0 before the first round starts)
	Player  int       // acting seat (0 or 1), -1 when no seat acts
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
