package game

import (
	"errors"
	"fmt"

	"cardroom/internal/card"
)

var ErrTurnOver = errors.New("turn is over")

type TurnState int

const (
	AwaitingAction TurnState = iota
	Busted
	Standing
	Reached21
)

func (s TurnState) String() string {
	switch s {
	case AwaitingAction:
		return "awaiting action"
	case Busted:
		return "busted"
	case Standing:
		return "standing"
	case Reached21:
		return "reached 21"
	}
	return fmt.Sprintf("TurnState(%d)", int(s))
}

// Done reports whether s is terminal.
func (s TurnState) Done() bool {
	return s != AwaitingAction
}

// Turn is one player's hand plus where that player stands in the turn.
type Turn struct {
	hand  *Hand
	state TurnState
}

func NewTurn() *Turn {
	return &Turn{hand: NewHand()}
}

// Deal adds an opening card. An opening 21 ends the turn.
func (t *Turn) Deal(c card.Card) {
	t.hand.Add(c)
	t.settle()
}

func (t *Turn) Hit(d card.Drawer) (card.Card, error) {
	if t.state.Done() {
		return card.Card{}, fmt.Errorf("hit: %w (%s)", ErrTurnOver, t.state)
	}

	c := d.Draw()
	t.hand.Add(c)
	t.settle()
	return c, nil
}

func (t *Turn) Stay() error {
	if t.state.Done() {
		return fmt.Errorf("stay: %w (%s)", ErrTurnOver, t.state)
	}
	t.state = Standing
	return nil
}

func (t *Turn) settle() {
	if t.state.Done() {
		return
	}
	switch total := t.hand.Total(); {
	case total > TwentyOne:
		t.state = Busted
	case total == TwentyOne:
		t.state = Reached21
	}
}

func (t *Turn) State() TurnState {
	return t.state
}

func (t *Turn) Busted() bool {
	return t.state == Busted
}

func (t *Turn) Total() int {
	return t.hand.Total()
}

func (t *Turn) Hand() *Hand {
	return t.hand
}

func (t *Turn) Reset() {
	t.hand.Reset()
	t.state = AwaitingAction
}
