package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestNewCardValidation() {
	testCases := []struct {
		name    string
		rank    Rank
		suit    Suit
		wantErr bool
	}{
		{name: "two of hearts", rank: Two, suit: Hearts},
		{name: "ace of spades", rank: Ace, suit: Spades},
		{name: "rank past ace", rank: Ace + 1, suit: Clubs, wantErr: true},
		{name: "unknown suit", rank: Ten, suit: Spades + 1, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := NewCard(tc.rank, tc.suit)
			if tc.wantErr {
				s.ErrorIs(err, ErrInvalidCard)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.rank, c.Rank())
			s.Equal(tc.suit, c.Suit())
		})
	}
}

func (s *CardTestSuite) TestString() {
	s.Equal("Jack of Hearts", MustNew(Jack, Hearts).String())
	s.Equal("10 of Clubs", MustNew(Ten, Clubs).String())
	s.Equal("J♥", MustNew(Jack, Hearts).Short())
	s.Equal("10♣", MustNew(Ten, Clubs).Short())
	s.Equal("A♠", MustNew(Ace, Spades).Short())
}

func (s *CardTestSuite) TestValueOrder() {
	for _, suit := range Suits {
		s.Less(MustNew(Jack, suit).Value(), MustNew(King, suit).Value())
	}
	s.Equal(0, Two.Value())
	s.Equal(12, Ace.Value())
	s.Equal(Ten.Value()+4, Ace.Value())
}

func (s *CardTestSuite) TestParseCard() {
	testCases := []struct {
		in   string
		want Card
	}{
		{"10h", MustNew(Ten, Hearts)},
		{"TH", MustNew(Ten, Hearts)},
		{"qs", MustNew(Queen, Spades)},
		{"A♠", MustNew(Ace, Spades)},
		{" 2d ", MustNew(Two, Diamonds)},
		{"Kc", MustNew(King, Clubs)},
	}

	for _, tc := range testCases {
		s.Run(tc.in, func() {
			c, err := ParseCard(tc.in)
			s.Require().NoError(err)
			s.Equal(tc.want, c)
		})
	}
}

func (s *CardTestSuite) TestParseCardInvalid() {
	for _, in := range []string{"", "h", "1h", "11s", "Zx", "10x", "AA"} {
		_, err := ParseCard(in)
		s.ErrorIs(err, ErrInvalidCard, in)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("10h, jh qh,kh  ah")
	require.NoError(t, err)
	require.Len(t, cards, 5)
	assert.Equal(t, MustNew(Ten, Hearts), cards[0])
	assert.Equal(t, MustNew(Ace, Hearts), cards[4])

	_, err = ParseCards("10h 1h")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCompare(t *testing.T) {
	jd := MustNew(Jack, Diamonds)
	js := MustNew(Jack, Spades)
	kh := MustNew(King, Hearts)

	assert.Zero(t, Compare(jd, js))
	assert.True(t, Less(jd, kh))
	assert.False(t, Less(kh, jd))
	assert.Negative(t, CompareWithSuit(jd, js))
	assert.Positive(t, CompareWithSuit(kh, js))
}

func TestHighestLowestWithSuit(t *testing.T) {
	jacks := []Card{MustNew(Jack, Diamonds), MustNew(Jack, Spades)}

	low, ok := Lowest(jacks, true)
	require.True(t, ok)
	assert.Equal(t, MustNew(Jack, Diamonds), low)

	high, ok := Highest(jacks, true)
	require.True(t, ok)
	assert.Equal(t, Spades, high.Suit())

	eights := []Card{MustNew(Eight, Diamonds), MustNew(Eight, Clubs), MustNew(Eight, Spades)}
	low, _ = Lowest(eights, true)
	high, _ = Highest(eights, true)
	assert.Equal(t, "8 of Diamonds", low.String())
	assert.Equal(t, "8 of Spades", high.String())
}

func TestHighestLowestRankOnly(t *testing.T) {
	cards := []Card{MustNew(Five, Clubs), MustNew(Ace, Hearts), MustNew(Two, Spades), MustNew(Ace, Diamonds)}

	high, ok := Highest(cards, false)
	require.True(t, ok)
	assert.Equal(t, MustNew(Ace, Hearts), high)

	low, ok := Lowest(cards, false)
	require.True(t, ok)
	assert.Equal(t, MustNew(Two, Spades), low)

	_, ok = Highest(nil, false)
	assert.False(t, ok)
}
