package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/gwx/internal/game"
	"github.com/peterkuimelis/gwx/internal/log"
)

func newMatch(t *testing.T) (*game.Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	pool := []*game.Card{
		game.MustLookupCard("Knight"),
		game.MustLookupCard("Archer"),
		game.MustLookupCard("Frost Snap"),
		game.MustLookupCard("Trebuchet"),
	}
	g, err := game.NewGame(game.Config{
		Seed:    3,
		Players: [2]*game.Player{game.NewPlayer("Jack"), game.NewPlayer("Johnes")},
		Pools:   [2][]*game.Card{pool, pool},
		Logger:  logger,
	})
	require.NoError(t, err)
	return g, logger
}

func TestBuildStateViewHidesOpponentHand(t *testing.T) {
	g, _ := newMatch(t)
	seat := g.CurrentSeat()

	sv := BuildStateView(g, seat)
	assert.True(t, sv.IsYourTurn)
	assert.Equal(t, seat, sv.You.Seat)
	assert.Len(t, sv.You.Hand, 4)
	assert.Empty(t, sv.Opponent.Hand)
	assert.Equal(t, 4, sv.Opponent.HandCount)
	assert.Equal(t, 1, sv.Round)

	other := BuildStateView(g, 1-seat)
	assert.False(t, other.IsYourTurn)
}

func TestBuildStateViewReflectsBoard(t *testing.T) {
	g, _ := newMatch(t)
	seat := g.CurrentSeat()
	var knight *game.CardInstance
	for _, c := range g.Hand(seat) {
		if c.Card.Name == "Knight" {
			knight = c
		}
	}
	require.NotNil(t, knight)
	require.NoError(t, g.PlayCard(knight.ID))

	sv := BuildStateView(g, seat)
	assert.Equal(t, 5, sv.You.Score)
	require.Len(t, sv.You.Rows[0].Cards, 1)
	assert.Equal(t, EngagedView{Name: "Knight", Base: 5, Value: 5}, sv.You.Rows[0].Cards[0])
	assert.Equal(t, 5, sv.Opponent.Score+sv.You.Score)
	assert.Len(t, sv.You.Hand, 3)
}

func TestHandViewNumbersFromOne(t *testing.T) {
	g, _ := newMatch(t)
	views := HandView(g.Hand(0))
	for i, v := range views {
		assert.Equal(t, i+1, v.Index)
		if v.Type == "Special" {
			assert.Equal(t, "x", v.Effect)
			assert.Zero(t, v.Value)
		}
	}
}

func TestStateViewJSON(t *testing.T) {
	g, _ := newMatch(t)
	data, err := json.Marshal(BuildStateView(g, 0))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "you")
	assert.Contains(t, decoded, "opponent")
	assert.Equal(t, false, decoded["game_over"])
}

func TestEventsNeverNil(t *testing.T) {
	assert.NotNil(t, Events(nil))

	_, logger := newMatch(t)
	views := Events(logger.Events())
	require.NotEmpty(t, views)
	assert.Equal(t, "MatchStart", views[0].Type)
	assert.Equal(t, 1, views[0].Seq)
}
