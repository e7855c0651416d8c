package player

import "sort"

// Player is a seat's running record across rounds of a match.
type Player struct {
	Name   string
	Points int
	Wins   int
	Losses int
	Draws  int
	Games  int
}

type Stats struct {
	Name    string
	Points  int
	Wins    int
	Games   int
	WinRate float64
}

func New(name string) *Player {
	return &Player{Name: name}
}

func (p *Player) AddWin() {
	p.Points++
	p.Wins++
	p.Games++
}

func (p *Player) AddLoss() {
	p.Losses++
	p.Games++
}

func (p *Player) AddDraw() {
	p.Draws++
	p.Games++
}

// ResetPoints starts a new match. Win/loss history is kept.
func (p *Player) ResetPoints() {
	p.Points = 0
}

func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}

func (p *Player) Stats() Stats {
	return Stats{
		Name:    p.Name,
		Points:  p.Points,
		Wins:    p.Wins,
		Games:   p.Games,
		WinRate: p.WinRate(),
	}
}

// Board keeps the players of one session in registration order.
type Board struct {
	players []*Player
}

func NewBoard() *Board {
	return &Board{}
}

// Join returns the player registered under name, creating it if needed.
func (b *Board) Join(name string) *Player {
	if p := b.Get(name); p != nil {
		return p
	}
	p := New(name)
	b.players = append(b.players, p)
	return p
}

func (b *Board) Get(name string) *Player {
	for _, p := range b.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Top returns up to limit players ordered by points, then wins.
func (b *Board) Top(limit int) []Stats {
	stats := make([]Stats, 0, len(b.players))
	for _, p := range b.players {
		stats = append(stats, p.Stats())
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Points != stats[j].Points {
			return stats[i].Points > stats[j].Points
		}
		return stats[i].Wins > stats[j].Wins
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
