package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/peterkuimelis/gwx/internal/log"
	"github.com/peterkuimelis/gwx/internal/randutil"
)

// Config holds configuration for creating a new match.
type Config struct {
	Seed     int64
	Players  [2]*Player
	Pools    [2][]*Card // initial card pool per seat (card definitions)
	HandSize int        // cards dealt to each hand (0 = InitialHandSize)
	Logger   log.EventLogger
}

// RoundResult records how a finished round ended.
type RoundResult struct {
	Number int
	Scores [2]int
	Winner int // seat, or -1 for a tie
}

// Game orchestrates a match of up to MaxRounds rounds between two players.
// It is not safe for concurrent use; hosts serialize calls per match.
type Game struct {
	ID      string
	Seed    int64
	Players [2]*Player
	Logger  log.EventLogger

	sides        [2]*Side
	rng          *rand.Rand
	round        *Round
	roundCounter int // completed rounds
	over         bool
	winner       int // seat, or -1
	history      []RoundResult
	nextID       int
}

// NewGame validates cfg, deals both hands from the seeded generator, picks
// the starting player and opens round 1.
func NewGame(cfg Config) (*Game, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	handSize := cfg.HandSize
	if handSize == 0 {
		handSize = InitialHandSize
	}

	g := &Game{
		ID:      uuid.NewString(),
		Seed:    cfg.Seed,
		Players: cfg.Players,
		Logger:  logger,
		rng:     randutil.New(cfg.Seed),
		winner:  -1,
	}
	g.Logger.Log(log.NewMatchStartEvent(g.ID, cfg.Players[0].Name, cfg.Players[1].Name, cfg.Seed))

	for p := 0; p < 2; p++ {
		g.sides[p] = newSide(cfg.Players[p])
		g.deal(p, cfg.Pools[p], handSize)
	}

	g.newRound()
	return g, nil
}

func validateConfig(cfg Config) error {
	for p := 0; p < 2; p++ {
		if cfg.Players[p] == nil {
			return fmt.Errorf("%w: player %d is missing", ErrInvalidConfig, p+1)
		}
		if len(cfg.Pools[p]) == 0 {
			return fmt.Errorf("%w: %s has an empty card pool", ErrInvalidConfig, cfg.Players[p].Name)
		}
		for _, c := range cfg.Pools[p] {
			if err := c.Validate(); err != nil {
				return err
			}
		}
	}
	if cfg.Players[0] == cfg.Players[1] {
		return fmt.Errorf("%w: a match needs two distinct players", ErrInvalidConfig)
	}
	if cfg.HandSize < 0 {
		return fmt.Errorf("%w: hand size %d", ErrInvalidConfig, cfg.HandSize)
	}
	return nil
}

// deal shuffles seat's pool and splits it into hand and deck.
func (g *Game) deal(seat int, pool []*Card, handSize int) {
	side := g.sides[seat]
	instances := make([]*CardInstance, 0, len(pool))
	for _, card := range pool {
		g.nextID++
		instances = append(instances, &CardInstance{Card: card, ID: g.nextID, Owner: seat})
	}
	randutil.Shuffle(g.rng, instances)

	n := min(handSize, len(instances))
	side.Hand.add(instances[:n]...)
	side.Deck.cards = append(side.Deck.cards, instances[n:]...)
	side.PoolSize = len(instances)

	g.Logger.Log(log.NewDealEvent(seat, side.Player.Name, side.Hand.Len(), side.Deck.Len()))
}

func (g *Game) newRound() {
	starter := g.rng.IntN(2)
	g.round = NewRound(g.roundCounter+1, g.Players, starter, g.Logger)
	g.Logger.Log(log.NewRoundStartEvent(g.round.Number, starter, g.Players[starter].Name))
}

// PlayCard plays the card with the given instance ID from the current
// player's hand into the card's own target row.
func (g *Game) PlayCard(cardID int) error {
	return g.PlayCardAt(cardID, 0)
}

// PlayCardAt plays the card with the given instance ID from the current
// player's hand. Row 0 means the card's own target row; only specials may
// name a different one. If the player's hand is empty afterwards they pass;
// otherwise the turn goes to the opponent unless the opponent has passed.
func (g *Game) PlayCardAt(cardID, row int) error {
	if g.over {
		return ErrMatchOver
	}
	seat := g.round.CurrentSeat()
	hand := g.sides[seat].Hand
	card := hand.Find(cardID)
	if card == nil {
		return fmt.Errorf("%w: %s does not hold card #%d", ErrCardNotInHand, g.Players[seat].Name, cardID)
	}
	if row == 0 {
		row = card.Card.TargetRow
	}

	if err := g.round.PlayCard(card, row); err != nil {
		return err
	}
	hand.Remove(cardID)

	if hand.Len() == 0 {
		g.pass()
	} else {
		g.round.SwapPlayerIfPossible()
	}
	return nil
}

// Pass ends the current player's participation in this round.
func (g *Game) Pass() error {
	if g.over {
		return ErrMatchOver
	}
	g.pass()
	return nil
}

func (g *Game) pass() {
	g.round.Pass()
	if g.round.HasEnded() {
		g.endRound()
	}
}

func (g *Game) endRound() {
	r := g.round
	g.roundCounter++

	scores := r.ComputeScores()
	winner, ok := r.FindWinner()
	g.history = append(g.history, RoundResult{Number: r.Number, Scores: scores, Winner: winner})
	if ok {
		g.sides[winner].Victories++
		g.Logger.Log(log.NewRoundEndEvent(r.Number, winner, g.Players[winner].Name, scores[0], scores[1]))
	} else {
		g.Logger.Log(log.NewRoundTieEvent(r.Number, scores[0], scores[1]))
	}

	for p := 0; p < 2; p++ {
		g.sides[p].Graveyard = append(g.sides[p].Graveyard, r.engagedInstances(p)...)
	}

	if ok && g.sides[winner].Victories >= VictoriesToWin {
		g.finish(winner, fmt.Sprintf("%d rounds won", g.sides[winner].Victories))
		return
	}
	// The last round decides the match; a tied last round leaves it undecided.
	if g.roundCounter >= MaxRounds {
		if ok {
			g.finish(winner, fmt.Sprintf("won round %d", r.Number))
			return
		}
		g.over = true
		g.Logger.Log(log.NewMatchOverEvent(r.Number, fmt.Sprintf("round %d tied", r.Number)))
		return
	}

	g.newRound()
}

func (g *Game) finish(winner int, reason string) {
	g.over = true
	g.winner = winner
	g.Logger.Log(log.NewVictoryEvent(g.round.Number, winner, g.Players[winner].Name, reason))
}

// --- Queries ---

// GameOver reports whether the match has finished.
func (g *Game) GameOver() bool {
	return g.over
}

// Winner returns the match winner. A finished match may have no winner.
func (g *Game) Winner() (*Player, bool) {
	if g.winner < 0 {
		return nil, false
	}
	return g.Players[g.winner], true
}

// WinnerSeat returns the winning seat, or -1.
func (g *Game) WinnerSeat() int {
	return g.winner
}

// Round returns the active round, or the last one once the match is over.
func (g *Game) Round() *Round {
	return g.round
}

// RoundNumber returns the 1-based number of the active (or last) round.
func (g *Game) RoundNumber() int {
	return g.round.Number
}

// CompletedRounds returns how many rounds have finished.
func (g *Game) CompletedRounds() int {
	return g.roundCounter
}

// History returns the results of finished rounds, oldest first.
func (g *Game) History() []RoundResult {
	return append([]RoundResult(nil), g.history...)
}

// CurrentSeat returns the seat whose turn it is.
func (g *Game) CurrentSeat() int {
	return g.round.CurrentSeat()
}

// OtherSeat returns the seat waiting for its turn.
func (g *Game) OtherSeat() int {
	return g.round.OtherSeat()
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.round.CurrentSeat()]
}

// OtherPlayer returns the player waiting for their turn.
func (g *Game) OtherPlayer() *Player {
	return g.Players[g.round.OtherSeat()]
}

// Side returns everything seat owns across the match.
func (g *Game) Side(seat int) *Side {
	return g.sides[seat]
}

// Hand returns the cards in seat's hand.
func (g *Game) Hand(seat int) []*CardInstance {
	return g.sides[seat].Hand.Cards()
}

// Rows returns seat's rows in the active round.
func (g *Game) Rows(seat int) [RowCount]*Row {
	return g.round.Rows(seat)
}

// Scores returns both seats' current round scores.
func (g *Game) Scores() [2]int {
	return g.round.ComputeScores()
}

// Passed reports whether seat has passed in the active round.
func (g *Game) Passed(seat int) bool {
	return g.round.HasPassed(seat)
}

// Victories returns how many rounds seat has won.
func (g *Game) Victories(seat int) int {
	return g.sides[seat].Victories
}

// SpecialCards returns the specials played in the active round.
func (g *Game) SpecialCards() []SpecialPlay {
	return g.round.SpecialCards()
}

// SeatOf returns the seat p occupies, or -1.
func (g *Game) SeatOf(p *Player) int {
	for i, pl := range g.Players {
		if pl == p {
			return i
		}
	}
	return -1
}

// CardCount returns how many of seat's pool cards are accounted for in hand,
// on the board, in the deck and in the graveyard.
func (g *Game) CardCount(seat int) int {
	s := g.sides[seat]
	n := s.Hand.Len() + s.Deck.Len() + len(s.Graveyard)
	if !g.round.HasEnded() {
		n += len(g.round.engagedInstances(seat))
	}
	return n
}
