package seatmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dubaitostars/starclient/internal/seatmap"
)

func TestForClassLayouts(t *testing.T) {
	tests := []struct {
		classType   string
		rows        int
		seatsPerRow int
		unavailable []string
	}{
		{seatmap.ClassFirst, 4, 2, []string{"A1"}},
		{seatmap.ClassBusiness, 6, 3, []string{"B2"}},
		{seatmap.ClassEconomy, 10, 6, []string{"C4", "F3", "H5"}},
		{"Charter", 8, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.classType, func(t *testing.T) {
			layout := seatmap.ForClass(tt.classType)
			assert.Equal(t, tt.rows, layout.Rows)
			assert.Equal(t, tt.seatsPerRow, layout.SeatsPerRow)
			assert.Len(t, layout.Unavailable, len(tt.unavailable))
			for _, label := range tt.unavailable {
				assert.True(t, layout.Unavailable[label], label)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	layout := seatmap.ForClass(seatmap.ClassEconomy)

	assert.Equal(t, "A1", layout.Label(0, 0))
	assert.Equal(t, "C4", layout.Label(2, 3))
	assert.Equal(t, "J6", layout.Label(9, 5))
}

func TestValidAndAvailable(t *testing.T) {
	layout := seatmap.ForClass(seatmap.ClassFirst)

	assert.True(t, layout.Valid("A1"))
	assert.True(t, layout.Valid("D2"))
	assert.False(t, layout.Valid("E1"), "row beyond the cabin")
	assert.False(t, layout.Valid("A3"), "seat beyond the row")
	assert.False(t, layout.Valid(""))

	assert.False(t, layout.Available("A1"), "pre-blocked seat")
	assert.True(t, layout.Available("A2"))
	assert.False(t, layout.Available("Z9"))
}

func TestToggleSelectsAndDeselects(t *testing.T) {
	sel := seatmap.NewSelection(seatmap.ForClass(seatmap.ClassBusiness), 0)

	seats, err := sel.Toggle("A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, seats)

	seats, err = sel.Toggle("C3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "C3"}, seats)
	assert.True(t, sel.Selected("A1"))

	seats, err = sel.Toggle("A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"C3"}, seats)
	assert.False(t, sel.Selected("A1"))
}

func TestToggleIgnoresUnavailable(t *testing.T) {
	sel := seatmap.NewSelection(seatmap.ForClass(seatmap.ClassBusiness), 0)

	seats, err := sel.Toggle("B2")
	require.NoError(t, err)
	assert.Empty(t, seats, "blocked seat never enters the selection")

	seats, err = sel.Toggle("Q9")
	require.NoError(t, err)
	assert.Empty(t, seats)
}

func TestToggleCapacityLimit(t *testing.T) {
	sel := seatmap.NewSelection(seatmap.ForClass(seatmap.ClassFirst), 2)

	_, err := sel.Toggle("A2")
	require.NoError(t, err)
	_, err = sel.Toggle("B1")
	require.NoError(t, err)

	seats, err := sel.Toggle("B2")
	assert.ErrorIs(t, err, seatmap.ErrTooManySeats)
	assert.Equal(t, []string{"A2", "B1"}, seats)

	// Deselecting still works at the limit.
	seats, err = sel.Toggle("A2")
	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, seats)
}

func TestSeatsReturnsCopy(t *testing.T) {
	sel := seatmap.NewSelection(seatmap.ForClass(seatmap.ClassFirst), 0)
	sel.Toggle("A2")

	seats := sel.Seats()
	seats[0] = "D2"
	assert.Equal(t, []string{"A2"}, sel.Seats())
}
