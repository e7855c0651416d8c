package game

import "cardroom/internal/card"

const (
	TwentyOne = 21
	faceValue = 10
	aceBonus  = 10
)

// cardValue maps a rank to its blackjack value with aces counted as 1.
func cardValue(r card.Rank) int {
	switch {
	case r == card.Ace:
		return 1
	case r.IsFace():
		return faceValue
	default:
		return r.Value() + 2
	}
}

// Total counts every ace as 1, then promotes a single ace to 11 when the
// sum is still 11 or less. At most one ace is ever worth 11.
func Total(cards []card.Card) int {
	score := 0
	aces := 0

	for _, c := range cards {
		score += cardValue(c.Rank())
		if c.Rank() == card.Ace {
			aces++
		}
	}

	if aces > 0 && score <= TwentyOne-aceBonus {
		score += aceBonus
	}

	return score
}

func IsBust(cards []card.Card) bool {
	return Total(cards) > TwentyOne
}

func IsTwentyOne(cards []card.Card) bool {
	return Total(cards) == TwentyOne
}

// IsBlackjack reports a two card 21.
func IsBlackjack(cards []card.Card) bool {
	return len(cards) == 2 && IsTwentyOne(cards)
}
