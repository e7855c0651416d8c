package poker

import (
	"errors"
	"fmt"
	"strings"

	"cardroom/internal/card"
)

const HandSize = 5

var ErrInvalidHand = errors.New("invalid poker hand")

// Category is the class of a five card hand. Lower values are stronger.
type Category int

const (
	RoyalFlush Category = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

var categoryNames = map[Category]string{
	RoyalFlush:    "Royal flush",
	StraightFlush: "Straight flush",
	FourOfAKind:   "Four of a kind",
	FullHouse:     "Full house",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a kind",
	TwoPair:       "Two pair",
	Pair:          "Pair",
	HighCard:      "High card",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Beats reports whether c ranks above other.
func (c Category) Beats(other Category) bool {
	return c < other
}

// profile holds what every category check needs, computed once per hand.
type profile struct {
	counts   map[card.Rank]int
	flush    bool
	low      int
	high     int
	distinct int
}

func newProfile(cards []card.Card) profile {
	p := profile{
		counts: make(map[card.Rank]int, len(cards)),
		flush:  true,
		low:    cards[0].Value(),
		high:   cards[0].Value(),
	}

	for _, c := range cards {
		p.counts[c.Rank()]++
		if c.Suit() != cards[0].Suit() {
			p.flush = false
		}
		if v := c.Value(); v < p.low {
			p.low = v
		} else if v > p.high {
			p.high = v
		}
	}
	p.distinct = len(p.counts)
	return p
}

// straight is Ace-high only: A-2-3-4-5 does not count.
func (p profile) straight() bool {
	return p.distinct == HandSize && p.high-p.low == HandSize-1
}

// ranksWith counts the ranks that appear exactly n times.
func (p profile) ranksWith(n int) int {
	total := 0
	for _, count := range p.counts {
		if count == n {
			total++
		}
	}
	return total
}

// Evaluate classifies exactly five cards. The checks run from the strongest
// category down and the first match wins.
func Evaluate(cards []card.Card) (Category, error) {
	if len(cards) != HandSize {
		return HighCard, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHand, len(cards), HandSize)
	}

	p := newProfile(cards)
	straight := p.straight()

	switch {
	case p.flush && straight && p.low == card.Ten.Value():
		return RoyalFlush, nil
	case p.flush && straight:
		return StraightFlush, nil
	case p.ranksWith(4) == 1:
		return FourOfAKind, nil
	case p.ranksWith(3) == 1 && p.ranksWith(2) == 1:
		return FullHouse, nil
	case p.flush:
		return Flush, nil
	case straight:
		return Straight, nil
	case p.ranksWith(3) == 1:
		return ThreeOfAKind, nil
	case p.ranksWith(2) == 2:
		return TwoPair, nil
	case p.ranksWith(2) == 1:
		return Pair, nil
	}
	return HighCard, nil
}

// Deal draws a five card hand.
func Deal(d card.Drawer) []card.Card {
	cards := make([]card.Card, HandSize)
	for i := range cards {
		cards[i] = d.Draw()
	}
	return cards
}

// Hand is a classified five card hand.
type Hand struct {
	Cards    []card.Card
	Category Category
}

func NewHand(cards []card.Card) (Hand, error) {
	category, err := Evaluate(cards)
	if err != nil {
		return Hand{}, err
	}
	return Hand{
		Cards:    append([]card.Card(nil), cards...),
		Category: category,
	}, nil
}

func (h Hand) String() string {
	names := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		names[i] = c.String()
	}
	return "Hand is " + strings.Join(names, ", ") + "."
}
