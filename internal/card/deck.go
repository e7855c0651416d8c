package card

import (
	"math/rand"
	"time"
)

const DeckSize = 52

// Drawer is anything cards can be dealt from.
type Drawer interface {
	Draw() Card
}

// Deck is a shuffled 52-card deck. Cards are dealt from the end of the slice.
// An empty deck rebuilds and reshuffles itself, so Draw never fails, but a
// card can show up twice across a reshuffle.
type Deck struct {
	cards       []Card
	rng         *rand.Rand
	reshuffles  int
	onReshuffle func()
}

type DeckOption func(*Deck)

// WithRand makes shuffles reproducible.
func WithRand(rng *rand.Rand) DeckOption {
	return func(d *Deck) {
		d.rng = rng
	}
}

// WithOnReshuffle registers fn to be called every time an exhausted deck rebuilds itself.
func WithOnReshuffle(fn func()) DeckOption {
	return func(d *Deck) {
		d.onReshuffle = fn
	}
}

func NewDeck(opts ...DeckOption) *Deck {
	d := &Deck{}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d.fill()
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	d.cards = make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{rank: rank, suit: suit})
		}
	}
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.fill()
		d.Shuffle()
		d.reshuffles++
		if d.onReshuffle != nil {
			d.onReshuffle()
		}
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reshuffles counts how many times the deck ran out and rebuilt itself.
func (d *Deck) Reshuffles() int {
	return d.reshuffles
}

// FixedDeck deals a predetermined sequence, from the end like Deck.
// Drawing from an empty FixedDeck panics.
type FixedDeck struct {
	cards []Card
}

func NewFixedDeck(cards ...Card) *FixedDeck {
	return &FixedDeck{cards: append([]Card(nil), cards...)}
}

// NewStackedDeck returns a FixedDeck that deals cards in the order given.
func NewStackedDeck(cards ...Card) *FixedDeck {
	reversed := make([]Card, len(cards))
	for i, c := range cards {
		reversed[len(cards)-1-i] = c
	}
	return &FixedDeck{cards: reversed}
}

func (d *FixedDeck) Draw() Card {
	if len(d.cards) == 0 {
		panic("card: draw from empty fixed deck")
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card
}

func (d *FixedDeck) Remaining() int {
	return len(d.cards)
}
