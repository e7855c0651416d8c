package card

// suitOrder is only used to break ties between cards of equal rank.
var suitOrder = map[Suit]int{
	Diamonds: 0,
	Clubs:    1,
	Hearts:   2,
	Spades:   3,
}

// Compare orders cards by rank only. Cards of equal rank compare equal
// whatever their suit.
func Compare(a, b Card) int {
	return a.Value() - b.Value()
}

// CompareWithSuit orders by rank, then by suit (Diamonds < Clubs < Hearts < Spades).
func CompareWithSuit(a, b Card) int {
	if d := Compare(a, b); d != 0 {
		return d
	}
	return suitOrder[a.suit] - suitOrder[b.suit]
}

func Less(a, b Card) bool {
	return Compare(a, b) < 0
}

// Highest returns the highest card of cards. When withSuit is false the first
// of several equally ranked cards wins.
func Highest(cards []Card, withSuit bool) (Card, bool) {
	return pick(cards, withSuit, func(d int) bool { return d > 0 })
}

// Lowest is the counterpart of Highest.
func Lowest(cards []Card, withSuit bool) (Card, bool) {
	return pick(cards, withSuit, func(d int) bool { return d < 0 })
}

func pick(cards []Card, withSuit bool, better func(int) bool) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}

	cmp := Compare
	if withSuit {
		cmp = CompareWithSuit
	}

	best := cards[0]
	for _, c := range cards[1:] {
		if better(cmp(c, best)) {
			best = c
		}
	}
	return best, true
}
