package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/gwx/internal/log"
)

// --- Test card helpers ---

func unit(name string, value, row int) *Card {
	return NewUnit(name, value, row)
}

func special(name string, eff Effect, row int) *Card {
	return NewSpecial(name, eff, row)
}

// instance wraps a card definition the way dealing would.
func instance(id, owner int, card *Card) *CardInstance {
	return &CardInstance{Card: card, ID: id, Owner: owner}
}

func testPlayers() [2]*Player {
	return [2]*Player{NewPlayer("Jack"), NewPlayer("Johnes")}
}

// newTestRound opens a round where seat 0 plays first.
func newTestRound() (*Round, *log.MemoryLogger) {
	logger := log.NewMemoryLogger()
	return NewRound(1, testPlayers(), 0, logger), logger
}

// newTestGame builds a match where both seats draw from copies of pool.
func newTestGame(t *testing.T, seed int64, pool []*Card) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g, err := NewGame(Config{
		Seed:    seed,
		Players: testPlayers(),
		Pools:   [2][]*Card{pool, pool},
		Logger:  logger,
	})
	require.NoError(t, err)
	return g, logger
}

// winRound makes seat take the active round with a single card.
func winRound(t *testing.T, g *Game, seat int) {
	t.Helper()
	number := g.RoundNumber()
	if g.CurrentSeat() != seat {
		require.NoError(t, g.Pass())
	}
	hand := g.Hand(seat)
	require.NotEmpty(t, hand)
	require.NoError(t, g.PlayCard(hand[0].ID))
	if g.CurrentSeat() != seat {
		require.NoError(t, g.Pass())
	}
	require.NoError(t, g.Pass())
	require.Equal(t, number, g.History()[len(g.History())-1].Number)
}

// tieRound has both players pass without playing.
func tieRound(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.Pass())
	require.NoError(t, g.Pass())
}

// requireConserved checks that no card of either pool was lost or duplicated.
func requireConserved(t *testing.T, g *Game) {
	t.Helper()
	for p := 0; p < 2; p++ {
		require.Equal(t, g.Side(p).PoolSize, g.CardCount(p), "seat %d", p)
	}
}

// handSum adds up the base values of a hand.
func handSum(cards []*CardInstance) int {
	total := 0
	for _, c := range cards {
		total += c.Card.Value
	}
	return total
}
