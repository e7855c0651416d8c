package game

import "cardroom/internal/card"

// Playable is what the table needs from anyone holding a hand.
type Playable interface {
	Name() string
	Hit(d card.Drawer) (card.Card, error)
	Stay() error
	Busted() bool
	Total() int
	Hand() *Hand
	State() TurnState
}

type participant struct {
	*Turn
	name string
}

func newParticipant(name string) *participant {
	return &participant{Turn: NewTurn(), name: name}
}

func (p *participant) Name() string {
	return p.name
}

func (p *participant) String() string {
	return p.name
}

// Outranks compares totals only; busts are the caller's concern.
func Outranks(a, b Playable) bool {
	return a.Total() > b.Total()
}

// User is the human seat. Its hits and stays come from the console.
type User struct {
	*participant
}

func NewUser(name string) *User {
	return &User{participant: newParticipant(name)}
}

const (
	DefaultDealerStandsOn = 17
	dealerName            = "Dealer"
)

type Dealer struct {
	*participant
	standsOn int
}

func NewDealer(standsOn int) *Dealer {
	if standsOn <= 0 {
		standsOn = DefaultDealerStandsOn
	}
	return &Dealer{participant: newParticipant(dealerName), standsOn: standsOn}
}

func (d *Dealer) StandsOn() int {
	return d.standsOn
}

// Play hits until the total reaches the stand threshold and returns the
// cards drawn.
func (d *Dealer) Play(deck card.Drawer) []card.Card {
	var drawn []card.Card
	for !d.State().Done() && d.Total() < d.standsOn {
		c, err := d.Hit(deck)
		if err != nil {
			break
		}
		drawn = append(drawn, c)
	}
	if !d.State().Done() {
		_ = d.Stay()
	}
	return drawn
}

var (
	_ Playable = (*User)(nil)
	_ Playable = (*Dealer)(nil)
)
