package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowdownByCategory(t *testing.T) {
	winners, err := Showdown(
		hand(t, "2h kc 5d 9s 3d"),
		hand(t, "3h 3c 5d 3s 5h"),
		hand(t, "9h 9c 5d 8s 5h"),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, winners)
}

func TestShowdownBreaksTiesInsideCategory(t *testing.T) {
	winners, err := Showdown(
		hand(t, "2h 2c 5d 9s kd"),
		hand(t, "ah ac 5c 9d kh"),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, winners)
}

func TestShowdownSplit(t *testing.T) {
	winners, err := Showdown(
		hand(t, "8c 9d 10c 7h jc"),
		hand(t, "8h 9s 10d 7c js"),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, winners)
}

func TestShowdownInvalidHand(t *testing.T) {
	_, err := Showdown(hand(t, "8c 9d 10c 7h jc"), hand(t, "8h 9s"))
	assert.ErrorIs(t, err, ErrInvalidHand)

	winners, err := Showdown()
	require.NoError(t, err)
	assert.Empty(t, winners)
}

func TestDescribe(t *testing.T) {
	desc, err := Describe(hand(t, "10h jh qh kh ah"))
	require.NoError(t, err)
	assert.Contains(t, desc, "flush")

	_, err = Describe(hand(t, "10h jh"))
	assert.ErrorIs(t, err, ErrInvalidHand)
}
