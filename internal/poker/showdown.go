package poker

import (
	"fmt"

	"github.com/paulhankin/poker"

	"cardroom/internal/card"
)

var suitMap = map[card.Suit]poker.Suit{
	card.Clubs:    poker.Club,
	card.Diamonds: poker.Diamond,
	card.Hearts:   poker.Heart,
	card.Spades:   poker.Spade,
}

// toEngine converts a card to the evaluator library's representation,
// where Ace is rank 1 and Two..King are 2..13.
func toEngine(c card.Card) (poker.Card, error) {
	rank := poker.Rank(c.Rank().Value() + 2)
	if c.Rank() == card.Ace {
		rank = 1
	}
	pc, err := poker.MakeCard(suitMap[c.Suit()], rank)
	if err != nil {
		return pc, fmt.Errorf("convert %s: %w", c, err)
	}
	return pc, nil
}

func toEngineHand(cards []card.Card) ([5]poker.Card, error) {
	var hand [5]poker.Card
	if len(cards) != HandSize {
		return hand, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHand, len(cards), HandSize)
	}
	for i, c := range cards {
		pc, err := toEngine(c)
		if err != nil {
			return hand, err
		}
		hand[i] = pc
	}
	return hand, nil
}

// Describe returns a long description of the hand, such as
// "ace-high straight flush".
func Describe(cards []card.Card) (string, error) {
	hand, err := toEngineHand(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(hand[:])
}

// Showdown returns the indexes of the winning hands. Hands are ranked by
// Category first; inside a category the library strength breaks the tie.
// Several indexes are returned on a split.
func Showdown(hands ...[]card.Card) ([]int, error) {
	if len(hands) == 0 {
		return nil, nil
	}

	type scored struct {
		category Category
		strength int16
	}

	scores := make([]scored, len(hands))
	for i, cards := range hands {
		category, err := Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		engineHand, err := toEngineHand(cards)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		scores[i] = scored{category: category, strength: poker.Eval5(&engineHand)}
	}

	best := scores[0]
	winners := []int{0}
	for i := 1; i < len(scores); i++ {
		s := scores[i]
		switch {
		case s.category.Beats(best.category),
			s.category == best.category && s.strength > best.strength:
			best = s
			winners = []int{i}
		case s.category == best.category && s.strength == best.strength:
			winners = append(winners, i)
		}
	}
	return winners, nil
}
