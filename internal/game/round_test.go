package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/gwx/internal/log"
)

func TestScoreIsSumOfBaseValuesWithoutSpecials(t *testing.T) {
	r, _ := newTestRound()
	require.NoError(t, r.PlayCard(instance(1, 0, unit("Three", 3, 1)), 1))
	require.NoError(t, r.PlayCard(instance(2, 0, unit("Five", 5, 3)), 3))

	assert.Equal(t, [2]int{8, 0}, r.ComputeScores())
}

func TestPlayCardDoesNotAdvanceTurn(t *testing.T) {
	r, _ := newTestRound()
	require.NoError(t, r.PlayCard(instance(1, 0, unit("Three", 3, 1)), 1))
	assert.Equal(t, 0, r.CurrentSeat())
}

func TestPlayCardRejectsBadRow(t *testing.T) {
	r, _ := newTestRound()
	for _, row := range []int{0, -1, RowCount + 1} {
		err := r.PlayCard(instance(1, 0, unit("Three", 3, 1)), row)
		assert.ErrorIs(t, err, ErrInvalidRow, "row %d", row)
	}
	assert.Equal(t, [2]int{0, 0}, r.ComputeScores())
}

func TestUnitRejectsForeignRow(t *testing.T) {
	r, logger := newTestRound()
	err := r.PlayCard(instance(1, 0, unit("Archer", 2, 2)), 1)
	assert.ErrorIs(t, err, ErrInvalidRow)
	assert.Zero(t, r.Row(0, 1).Len())
	assert.Empty(t, logger.EventsOfType(log.EventPlayUnit))
}

func TestUnitGoesToCurrentSeatRow(t *testing.T) {
	r, _ := newTestRound()
	r.Pass() // seat 0 passes, seat 1 to play
	require.Equal(t, 1, r.CurrentSeat())

	require.NoError(t, r.PlayCard(instance(1, 1, unit("Archer", 2, 2)), 2))
	assert.Equal(t, 1, r.Row(1, 2).Len())
	assert.Equal(t, 0, r.Row(0, 2).Len())
}

func TestSapAffectsTargetRowOnBothSides(t *testing.T) {
	r, _ := newTestRound()
	require.NoError(t, r.PlayCard(instance(1, 0, unit("Knight", 5, 1)), 1))
	require.NoError(t, r.PlayCard(instance(2, 0, unit("Archer", 2, 2)), 2))
	r.SwapPlayerIfPossible()
	require.NoError(t, r.PlayCard(instance(3, 1, unit("Champion", 8, 1)), 1))
	require.NoError(t, r.PlayCard(instance(4, 1, special("Frost Snap", Sap(), 1)), 1))

	assert.Equal(t, 1, r.Row(0, 1).Cards[0].CurrentValue)
	assert.Equal(t, 1, r.Row(1, 1).Cards[0].CurrentValue)
	assert.Equal(t, 2, r.Row(0, 2).Cards[0].CurrentValue)
	assert.Equal(t, [2]int{3, 1}, r.ComputeScores())
}

func TestSpecialKeepsAffectingLaterUnits(t *testing.T) {
	r, _ := newTestRound()
	require.NoError(t, r.PlayCard(instance(1, 0, special("Frost Snap", Sap(), 1)), 1))
	require.NoError(t, r.PlayCard(instance(2, 0, unit("Knight", 5, 1)), 1))

	assert.Equal(t, 1, r.Row(0, 1).Cards[0].CurrentValue)
	assert.Len(t, r.SpecialCards(), 1)
}

func TestEffectsApplyInPriorityOrderToRunningValue(t *testing.T) {
	const x = 3
	setX := SetTo(x).WithPriority(1)
	addOne := Boost(1).WithPriority(2)

	tests := []struct {
		name  string
		order []Effect
	}{
		{"played in priority order", []Effect{setX, addOne}},
		{"played in reverse order", []Effect{addOne, setX}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRound()
			require.NoError(t, r.PlayCard(instance(1, 0, unit("Knight", 5, 1)), 1))
			for i, eff := range tt.order {
				require.NoError(t, r.PlayCard(instance(10+i, 0, special("fx", eff, 1)), 1))
			}
			assert.Equal(t, x+1, r.Row(0, 1).Cards[0].CurrentValue)
		})
	}
}

func TestEqualPriorityKeepsPlayOrder(t *testing.T) {
	boost := Boost(1).WithPriority(5)
	double := Double().WithPriority(5)

	r, _ := newTestRound()
	require.NoError(t, r.PlayCard(instance(1, 0, unit("Knight", 5, 1)), 1))
	require.NoError(t, r.PlayCard(instance(2, 0, special("Rally", boost, 1)), 1))
	require.NoError(t, r.PlayCard(instance(3, 0, special("Horn", double, 1)), 1))
	assert.Equal(t, 12, r.Row(0, 1).Cards[0].CurrentValue)

	r, _ = newTestRound()
	require.NoError(t, r.PlayCard(instance(1, 0, unit("Knight", 5, 1)), 1))
	require.NoError(t, r.PlayCard(instance(3, 0, special("Horn", double, 1)), 1))
	require.NoError(t, r.PlayCard(instance(2, 0, special("Rally", boost, 1)), 1))
	assert.Equal(t, 11, r.Row(0, 1).Cards[0].CurrentValue)
}

func TestStrengthChangesAreLogged(t *testing.T) {
	r, logger := newTestRound()
	require.NoError(t, r.PlayCard(instance(1, 0, unit("Knight", 5, 1)), 1))
	require.NoError(t, r.PlayCard(instance(2, 0, special("Frost Snap", Sap(), 1)), 1))

	changes := logger.EventsOfType(log.EventStrengthChange)
	require.Len(t, changes, 1)
	assert.Equal(t, "Knight", changes[0].Card)
	assert.Equal(t, "Knight strength: 5 → 1", changes[0].Details)
}

func TestPassHandsTurnToPlayerStillInRound(t *testing.T) {
	r, _ := newTestRound()

	r.Pass()
	assert.True(t, r.HasPassed(0))
	assert.Equal(t, 1, r.CurrentSeat())
	assert.False(t, r.HasEnded())

	// Seat 1 keeps the turn: seat 0 has passed.
	r.SwapPlayerIfPossible()
	assert.Equal(t, 1, r.CurrentSeat())

	r.Pass()
	assert.True(t, r.HasEnded())
	assert.Equal(t, 1, r.CurrentSeat())
}

func TestPlayAfterRoundEndedIsRejected(t *testing.T) {
	r, _ := newTestRound()
	r.Pass()
	r.Pass()
	err := r.PlayCard(instance(1, 1, unit("Knight", 5, 1)), 1)
	assert.ErrorIs(t, err, ErrRoundOver)
}

func TestFindWinner(t *testing.T) {
	tests := []struct {
		name   string
		values [2]int
		winner int
		ok     bool
	}{
		{"seat 0 higher", [2]int{5, 3}, 0, true},
		{"seat 1 higher", [2]int{2, 8}, 1, true},
		{"tie", [2]int{4, 4}, -1, false},
		{"empty board", [2]int{0, 0}, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRound()
			for seat, v := range tt.values {
				if v == 0 {
					continue
				}
				r.current = seat
				require.NoError(t, r.PlayCard(instance(seat+1, seat, unit("u", v, 1)), 1))
			}
			winner, ok := r.FindWinner()
			assert.Equal(t, tt.winner, winner)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestComputeScoresIsIdempotent(t *testing.T) {
	r, _ := newTestRound()
	require.NoError(t, r.PlayCard(instance(1, 0, unit("Knight", 5, 1)), 1))
	require.NoError(t, r.PlayCard(instance(2, 0, special("Horn", Double(), 1)), 1))

	first := r.ComputeScores()
	assert.Equal(t, first, r.ComputeScores())
	assert.Equal(t, [2]int{10, 0}, first)
}
