package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/peterkuimelis/gwx/internal/game"
	gwxlog "github.com/peterkuimelis/gwx/internal/log"
	"github.com/peterkuimelis/gwx/internal/view"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events   []view.EventView `json:"events"`
	State    *view.StateView  `json:"state,omitempty"`
	GameOver bool             `json:"game_over"`
	Winner   string           `json:"winner,omitempty"`
	Result   string           `json:"result,omitempty"`
}

// MatchOptions selects players and decks for a new session.
type MatchOptions struct {
	Seed      int64
	Players   [2]string
	Decks     [2]int // 1-indexed deck numbers; 0 = built-in balanced deck
	DecksFile string
}

// GameSession holds a single hot-seat match driven through MCP tools.
type GameSession struct {
	mu      sync.Mutex
	game    *game.Game
	events  *gwxlog.MemoryLogger
	lastSeq int
}

// NewGameSession builds the card pools and starts the match.
func NewGameSession(opts MatchOptions) (*GameSession, error) {
	var pools [2][]*game.Card
	for p := 0; p < 2; p++ {
		if opts.Decks[p] == 0 {
			pools[p] = game.BalancedDeck()
			continue
		}
		_, cards, err := game.DeckByNumber(opts.DecksFile, opts.Decks[p])
		if err != nil {
			return nil, fmt.Errorf("deck for player %d: %w", p+1, err)
		}
		pools[p] = cards
	}

	events := gwxlog.NewMemoryLogger()
	g, err := game.NewGame(game.Config{
		Seed:    opts.Seed,
		Players: [2]*game.Player{game.NewPlayer(opts.Players[0]), game.NewPlayer(opts.Players[1])},
		Pools:   pools,
		Logger:  events,
	})
	if err != nil {
		return nil, err
	}
	return &GameSession{game: g, events: events}, nil
}

// PlayCard plays the index-th (1-based) card of the current player's hand.
func (s *GameSession) PlayCard(index, row int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.GameOver() {
		return nil, game.ErrMatchOver
	}
	hand := s.game.Hand(s.game.CurrentSeat())
	if index < 1 || index > len(hand) {
		return nil, fmt.Errorf("%w: card %d (hand holds %d)", game.ErrCardNotInHand, index, len(hand))
	}
	if err := s.game.PlayCardAt(hand[index-1].ID, row); err != nil {
		return nil, err
	}
	return s.respond(), nil
}

// Pass passes for the current player.
func (s *GameSession) Pass() (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.Pass(); err != nil {
		return nil, err
	}
	return s.respond(), nil
}

// State returns the events since the last response and the current view.
func (s *GameSession) State() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.respond()
}

// Over reports whether the session's match has finished.
func (s *GameSession) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.GameOver()
}

// respond drains new events and builds a view for the player to move.
// Callers hold s.mu.
func (s *GameSession) respond() *ToolResponse {
	resp := &ToolResponse{Events: s.drainEvents()}

	seat := s.game.CurrentSeat()
	if s.game.GameOver() {
		seat = 0
		resp.GameOver = true
		resp.Result = "The match is a draw."
		if w, ok := s.game.Winner(); ok {
			resp.Winner = w.Name
			resp.Result = w.Name + " wins the match."
		}
	}
	resp.State = view.BuildStateView(s.game, seat)
	return resp
}

func (s *GameSession) drainEvents() []view.EventView {
	events := s.events.Since(s.lastSeq)
	if len(events) > 0 {
		s.lastSeq = events[len(events)-1].Seq
	}
	return view.Events(events)
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
