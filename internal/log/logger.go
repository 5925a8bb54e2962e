package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging match events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// Since returns the events logged after the given sequence number.
func (l *MemoryLogger) Since(seq int) []GameEvent {
	for i, e := range l.events {
		if e.Seq > seq {
			return l.events[i:]
		}
	}
	return nil
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	kind := e.Type.String()
	for len(kind) < 14 {
		kind += " "
	}
	return fmt.Sprintf("R%-2d %s| %s", e.Round, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewMatchStartEvent(id string, p0, p1 string, seed int64) GameEvent {
	return GameEvent{
		Player:  -1,
		Type:    EventMatchStart,
		Details: fmt.Sprintf("Match %s: %s vs %s (seed %d)", id, p0, p1, seed),
	}
}

func NewDealEvent(player int, name string, hand, deck int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDeal,
		Details: fmt.Sprintf("%s is dealt %d cards (%d left in deck)", name, hand, deck),
	}
}

func NewRoundStartEvent(round int, player int, name string) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventRoundStart,
		Details: fmt.Sprintf("=== Round %d (%s starts) ===", round, name),
	}
}

func NewPlayUnitEvent(round int, player int, name, cardName string, value, row int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventPlayUnit,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s (%d) to row %d", name, cardName, value, row),
	}
}

func NewPlaySpecialEvent(round int, player int, name, cardName, effect string, row int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventPlaySpecial,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s [%s] on row %d", name, cardName, effect, row),
	}
}

func NewStrengthChangeEvent(round int, owner int, cardName string, oldValue, newValue int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  owner,
		Type:    EventStrengthChange,
		Card:    cardName,
		Details: fmt.Sprintf("%s strength: %d → %d", cardName, oldValue, newValue),
	}
}

func NewPassEvent(round int, player int, name string) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventPass,
		Details: fmt.Sprintf("%s passes", name),
	}
}

func NewTurnChangeEvent(round int, player int, name string) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventTurnChange,
		Details: fmt.Sprintf("%s to play", name),
	}
}

func NewRoundEndEvent(round int, winner int, name string, score0, score1 int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  winner,
		Type:    EventRoundEnd,
		Details: fmt.Sprintf("Round %d won by %s (%d - %d)", round, name, score0, score1),
	}
}

func NewRoundTieEvent(round int, score0, score1 int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  -1,
		Type:    EventRoundTie,
		Details: fmt.Sprintf("Round %d is a tie (%d - %d)", round, score0, score1),
	}
}

func NewVictoryEvent(round int, winner int, name string, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  winner,
		Type:    EventVictory,
		Details: fmt.Sprintf("%s wins the match! (%s)", name, reason),
	}
}

func NewMatchOverEvent(round int, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  -1,
		Type:    EventMatchOver,
		Details: fmt.Sprintf("Match over without a winner (%s)", reason),
	}
}
