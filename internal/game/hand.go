package game

import (
	"strings"

	"cardroom/internal/card"
)

// Hand is the ordered list of cards a player holds. Its total is derived
// from the full list on every call.
type Hand struct {
	cards []card.Card
}

func NewHand(cards ...card.Card) *Hand {
	h := &Hand{cards: make([]card.Card, 0, 10)}
	h.cards = append(h.cards, cards...)
	return h
}

func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in draw order.
func (h *Hand) Cards() []card.Card {
	return append([]card.Card(nil), h.cards...)
}

func (h *Hand) First() (card.Card, bool) {
	if len(h.cards) == 0 {
		return card.Card{}, false
	}
	return h.cards[0], true
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Total() int {
	return Total(h.cards)
}

func (h *Hand) Reset() {
	h.cards = h.cards[:0]
}

// String joins the cards as "a and b" or "a, b, and c".
func (h *Hand) String() string {
	names := make([]string, len(h.cards))
	for i, c := range h.cards {
		names[i] = c.String()
	}
	return JoinAnd(names)
}

func JoinAnd(items []string) string {
	if len(items) <= 2 {
		return strings.Join(items, " and ")
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
