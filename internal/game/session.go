package game

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"cardroom/internal/card"
	"cardroom/internal/player"
)

var ErrNoRound = errors.New("no round in progress")

type Outcome int

const (
	OutcomeNone Outcome = iota
	UserWins
	DealerWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case UserWins:
		return "user wins"
	case DealerWins:
		return "dealer wins"
	case Tie:
		return "tie"
	}
	return "none"
}

const (
	DefaultMatchPoints = 5
	DefaultPlayerName  = "You"
)

type Settings struct {
	PlayerName     string
	MatchPoints    int
	DealerStandsOn int
}

type SessionOption func(*Session)

// WithDeckFactory sets how each round gets its deck.
func WithDeckFactory(fn func() card.Drawer) SessionOption {
	return func(s *Session) {
		s.newDeck = fn
	}
}

func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session is one twenty-one match between a user and the dealer. It owns
// the deck and both seats; nothing is shared between sessions.
type Session struct {
	ID          uuid.UUID
	User        *User
	Dealer      *Dealer
	Board       *player.Board
	MatchPoints int

	userScore   *player.Player
	dealerScore *player.Player
	newDeck     func() card.Drawer
	deck        card.Drawer
	round       int
	outcome     Outcome
	logger      *slog.Logger
}

func NewSession(settings Settings, opts ...SessionOption) *Session {
	if settings.PlayerName == "" || settings.PlayerName == dealerName {
		settings.PlayerName = DefaultPlayerName
	}
	if settings.MatchPoints <= 0 {
		settings.MatchPoints = DefaultMatchPoints
	}

	s := &Session{
		ID:          uuid.New(),
		User:        NewUser(settings.PlayerName),
		Dealer:      NewDealer(settings.DealerStandsOn),
		Board:       player.NewBoard(),
		MatchPoints: settings.MatchPoints,
		newDeck:     func() card.Drawer { return card.NewDeck() },
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.userScore = s.Board.Join(s.User.Name())
	s.dealerScore = s.Board.Join(s.Dealer.Name())
	s.logger = s.logger.With("session", s.ID.String())
	return s
}

// StartRound takes a fresh deck and deals two cards to the user, then two
// to the dealer.
func (s *Session) StartRound() {
	s.round++
	s.outcome = OutcomeNone
	s.deck = s.newDeck()
	s.User.Reset()
	s.Dealer.Reset()

	for _, p := range []*participant{s.User.participant, s.User.participant, s.Dealer.participant, s.Dealer.participant} {
		p.Deal(s.deck.Draw())
	}

	s.logger.Debug("round started",
		"round", s.round,
		"user_total", s.User.Total(),
		"dealer_total", s.Dealer.Total())
}

func (s *Session) Round() int {
	return s.round
}

func (s *Session) UserHit() (card.Card, error) {
	if s.deck == nil {
		return card.Card{}, ErrNoRound
	}
	return s.User.Hit(s.deck)
}

func (s *Session) UserStay() error {
	if s.deck == nil {
		return ErrNoRound
	}
	return s.User.Stay()
}

// DealerTurn plays the dealer's hand once the user has finished, unless
// the user busted.
func (s *Session) DealerTurn() []card.Card {
	if s.deck == nil || !s.User.State().Done() || s.User.Busted() {
		return nil
	}
	drawn := s.Dealer.Play(s.deck)
	s.logger.Debug("dealer played", "drawn", len(drawn), "total", s.Dealer.Total(), "state", s.Dealer.State().String())
	return drawn
}

// Settle decides the round and records it on the board. Calling it again
// in the same round returns the same outcome without recording twice.
// Before both turns are over it returns OutcomeNone and records nothing.
func (s *Session) Settle() Outcome {
	if s.outcome != OutcomeNone {
		return s.outcome
	}
	if !s.roundOver() {
		return OutcomeNone
	}

	switch {
	case s.User.Busted():
		s.outcome = DealerWins
	case s.Dealer.Busted(), Outranks(s.User, s.Dealer):
		s.outcome = UserWins
	case Outranks(s.Dealer, s.User):
		s.outcome = DealerWins
	default:
		s.outcome = Tie
	}

	switch s.outcome {
	case UserWins:
		s.userScore.AddWin()
		s.dealerScore.AddLoss()
	case DealerWins:
		s.dealerScore.AddWin()
		s.userScore.AddLoss()
	case Tie:
		s.userScore.AddDraw()
		s.dealerScore.AddDraw()
	}

	s.logger.Info("round settled",
		"round", s.round,
		"outcome", s.outcome.String(),
		"user_total", s.User.Total(),
		"dealer_total", s.Dealer.Total())
	return s.outcome
}

// roundOver is true once the user busted or both seats finished their turn.
func (s *Session) roundOver() bool {
	if s.deck == nil || !s.User.State().Done() {
		return false
	}
	return s.User.Busted() || s.Dealer.State().Done()
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Winner is the seat that took the round, nil on a tie or before Settle.
func (s *Session) Winner() Playable {
	switch s.outcome {
	case UserWins:
		return s.User
	case DealerWins:
		return s.Dealer
	}
	return nil
}

func (s *Session) UserPoints() int {
	return s.userScore.Points
}

func (s *Session) DealerPoints() int {
	return s.dealerScore.Points
}

// GrandMaster returns whoever reached the match points first.
func (s *Session) GrandMaster() (Playable, bool) {
	switch {
	case s.userScore.Points >= s.MatchPoints:
		return s.User, true
	case s.dealerScore.Points >= s.MatchPoints:
		return s.Dealer, true
	}
	return nil, false
}

// DealerOnMatchPoint reports that the dealer needs one more round to win the match.
func (s *Session) DealerOnMatchPoint() bool {
	return s.dealerScore.Points == s.MatchPoints-1 && s.userScore.Points != s.MatchPoints
}

func (s *Session) ResetMatch() {
	s.userScore.ResetPoints()
	s.dealerScore.ResetPoints()
	s.round = 0
	s.outcome = OutcomeNone
	s.logger.Info("match reset")
}
