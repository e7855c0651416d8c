package card

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCard = errors.New("invalid card")

// Rank is the face value of a card. Ranks are ordered from Two up to Ace.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

var rankShort = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// Value is the position of r in the rank order, Two being 0.
func (r Rank) Value() int {
	return int(r)
}

// IsFace reports whether r is a Jack, Queen or King.
func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Short returns the one or two character rank used by Card.Short.
func (r Rank) Short() string {
	if !r.Valid() {
		return "?"
	}
	return rankShort[r]
}

// Suit has no ordering of its own; see CompareWithSuit for the tie-break order.
type Suit uint8

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

var Suits = []Suit{Hearts, Clubs, Diamonds, Spades}

var suitNames = []string{"Hearts", "Clubs", "Diamonds", "Spades"}

var suitSymbols = []string{"♥", "♣", "♦", "♠"}

func (s Suit) Valid() bool {
	return s <= Spades
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed reports whether s is Hearts or Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable playing card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard validates rank and suit and returns the card.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, uint8(rank))
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, uint8(suit))
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustNew is NewCard for constant inputs. It panics on an invalid card.
func MustNew(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// Value returns the rank position of the card, used for ordering and straights.
func (c Card) Value() int {
	return c.rank.Value()
}

// String returns the long form, e.g. "Jack of Hearts".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}

// Short returns the compact form, e.g. "J♥".
func (c Card) Short() string {
	return c.rank.Short() + c.suit.Symbol()
}

// ParseCard reads compact notation such as "10h", "QS", "A♠" or "th".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	suit, ok := parseSuit(runes[len(runes)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	rank, ok := parseRank(strings.ToUpper(string(runes[:len(runes)-1])))
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	return NewCard(rank, suit)
}

// ParseCards parses a list of cards separated by spaces or commas.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseRank(s string) (Rank, bool) {
	if s == "T" {
		return Ten, true
	}
	for i, name := range rankShort {
		if s == name {
			return Rank(i), true
		}
	}
	return 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 'h', 'H', '♥':
		return Hearts, true
	case 'c', 'C', '♣':
		return Clubs, true
	case 'd', 'D', '♦':
		return Diamonds, true
	case 's', 'S', '♠':
		return Spades, true
	}
	return 0, false
}
