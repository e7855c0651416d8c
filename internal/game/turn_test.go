package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardroom/internal/card"
)

func dealt(t *testing.T, s string) *Turn {
	t.Helper()
	turn := NewTurn()
	for _, c := range cards(t, s) {
		turn.Deal(c)
	}
	return turn
}

func TestTurnHitUntilBust(t *testing.T) {
	turn := dealt(t, "10h 6c")
	require.Equal(t, AwaitingAction, turn.State())

	deck := card.NewStackedDeck(cards(t, "2d kc")...)

	c, err := turn.Hit(deck)
	require.NoError(t, err)
	assert.Equal(t, card.Two, c.Rank())
	assert.Equal(t, AwaitingAction, turn.State())
	assert.Equal(t, 18, turn.Total())

	_, err = turn.Hit(deck)
	require.NoError(t, err)
	assert.Equal(t, Busted, turn.State())
	assert.True(t, turn.Busted())

	_, err = turn.Hit(deck)
	assert.ErrorIs(t, err, ErrTurnOver)
	assert.ErrorIs(t, turn.Stay(), ErrTurnOver)
}

func TestTurnReaches21OnHit(t *testing.T) {
	turn := dealt(t, "10h 6c")
	_, err := turn.Hit(card.NewStackedDeck(cards(t, "5s")...))
	require.NoError(t, err)
	assert.Equal(t, Reached21, turn.State())
	assert.True(t, turn.State().Done())
}

func TestTurnOpening21(t *testing.T) {
	turn := dealt(t, "ah kd")
	assert.Equal(t, Reached21, turn.State())

	_, err := turn.Hit(card.NewStackedDeck(cards(t, "2s")...))
	assert.ErrorIs(t, err, ErrTurnOver)
}

func TestTurnStay(t *testing.T) {
	turn := dealt(t, "9h 8c")
	require.NoError(t, turn.Stay())
	assert.Equal(t, Standing, turn.State())
	assert.ErrorIs(t, turn.Stay(), ErrTurnOver)

	turn.Reset()
	assert.Equal(t, AwaitingAction, turn.State())
	assert.Zero(t, turn.Hand().Len())
}

func TestDealerPlay(t *testing.T) {
	testCases := []struct {
		name      string
		opening   string
		deck      string
		wantDrawn int
		wantState TurnState
		wantTotal int
	}{
		{"stands on 17", "10h 7c", "", 0, Standing, 17},
		{"soft 17 stands", "ah 6c", "", 0, Standing, 17},
		{"hits to 18", "9h 7c", "2d", 1, Standing, 18},
		{"hits to bust", "10h 6c", "8d", 1, Busted, 24},
		{"hits to 21", "10h 2c", "4d 5s", 2, Reached21, 21},
		{"opening 21", "ah qc", "", 0, Reached21, 21},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDealer(0)
			for _, c := range cards(t, tc.opening) {
				d.Deal(c)
			}
			drawn := d.Play(card.NewStackedDeck(cards(t, tc.deck)...))
			assert.Len(t, drawn, tc.wantDrawn)
			assert.Equal(t, tc.wantState, d.State())
			assert.Equal(t, tc.wantTotal, d.Total())
		})
	}
}

func TestPlayableSeats(t *testing.T) {
	seats := []Playable{NewUser("Ann"), NewDealer(17)}
	assert.Equal(t, "Ann", seats[0].Name())
	assert.Equal(t, "Dealer", seats[1].Name())

	deck := card.NewStackedDeck(cards(t, "10h 9c 10d 7s")...)
	for _, p := range seats {
		_, err := p.Hit(deck)
		require.NoError(t, err)
		_, err = p.Hit(deck)
		require.NoError(t, err)
	}
	assert.True(t, Outranks(seats[0], seats[1]))
	assert.False(t, Outranks(seats[1], seats[0]))
}
