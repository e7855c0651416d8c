package console

import (
	"fmt"

	"cardroom/internal/card"
	"cardroom/internal/game"
	"cardroom/internal/poker"
)

// ============== TWENTY-ONE ==============

// RunTwentyOne plays matches until the player declines another one.
func (c *Console) RunTwentyOne(s *game.Session) error {
	c.box("Twenty One", fmt.Sprintf(
		"Welcome to Twenty One!\n"+
			"First player to %d points is the GRAND MASTER!\n"+
			"Hit or stay, but don't go bust!", s.MatchPoints))

	for {
		if err := c.playMatch(s); err != nil {
			return err
		}

		again, err := c.prompt.Confirm("Do you want to play again?")
		if err != nil {
			return fmt.Errorf("play again prompt: %w", err)
		}
		if !again {
			break
		}
		s.ResetMatch()
	}

	table, err := formatScoreboard(s.Board.Top(10))
	if err != nil {
		return fmt.Errorf("render scoreboard: %w", err)
	}
	c.println(table)
	c.println("Thanks for playing Twenty-one! Goodbye!")
	return nil
}

func (c *Console) playMatch(s *game.Session) error {
	for {
		if err := c.playRound(s); err != nil {
			return err
		}
		if gm, ok := s.GrandMaster(); ok {
			c.println(formatScore(s))
			c.success(formatGrandMaster(gm))
			return nil
		}
	}
}

func (c *Console) playRound(s *game.Session) error {
	c.section(fmt.Sprintf("Round %d", s.Round()+1))
	c.println(formatScore(s))
	if s.DealerOnMatchPoint() {
		c.warn("Be careful! The Dealer is 1 point away from being GRAND MASTER!")
	}

	s.StartRound()
	c.println(formatOpening(s.User, s.Dealer))

	if err := c.userTurn(s); err != nil {
		return err
	}

	if s.User.Busted() {
		c.println("You busted! Dealer wins!")
		s.Settle()
		return nil
	}
	c.println(formatStay(s.User))

	s.DealerTurn()
	c.println(formatHand(s.Dealer))
	if s.Dealer.Busted() {
		c.println(fmt.Sprintf("Dealer busted with %d!", s.Dealer.Total()))
	} else {
		c.println(formatStay(s.Dealer))
	}

	c.info(formatRoundWinner(s.Settle(), s.User))
	return nil
}

func (c *Console) userTurn(s *game.Session) error {
	for !s.User.State().Done() {
		choice, err := c.prompt.Select("Would you like to hit or stay?", turnOptions)
		if err != nil {
			return fmt.Errorf("turn prompt: %w", err)
		}

		switch choice {
		case actionHit:
			if _, err := s.UserHit(); err != nil {
				return err
			}
			c.println(formatHand(s.User))
		case actionStay:
			if err := s.UserStay(); err != nil {
				return err
			}
		default:
			c.warn("Sorry, that's not a valid response.")
		}
	}
	return nil
}

// ============== POKER ==============

// EvaluateHand prints the category of one given hand.
func (c *Console) EvaluateHand(cards []card.Card) error {
	h, err := poker.NewHand(cards)
	if err != nil {
		return err
	}

	c.println(h.String())
	c.println(fmt.Sprintf("%s: %s", CardLabels(h.Cards), h.Category))
	if desc, err := poker.Describe(h.Cards); err == nil {
		c.info(desc)
	} else {
		c.logger.Debug("describe failed", "error", err)
	}
	return nil
}

// RunPoker deals the configured number of hands from one shared deck for
// each round and shows who wins.
func (c *Console) RunPoker(d card.Drawer, rounds int) error {
	for round := 1; round <= rounds; round++ {
		c.section(fmt.Sprintf("Deal %d", round))

		hands := make([]poker.Hand, c.cfg.PokerHands)
		dealt := make([][]card.Card, c.cfg.PokerHands)
		for i := range hands {
			dealt[i] = poker.Deal(d)
			h, err := poker.NewHand(dealt[i])
			if err != nil {
				return err
			}
			hands[i] = h
		}

		winners, err := poker.Showdown(dealt...)
		if err != nil {
			return fmt.Errorf("showdown: %w", err)
		}

		table, err := formatPokerTable(hands, winners, c.cfg.SuitTieBreak)
		if err != nil {
			return fmt.Errorf("render hands: %w", err)
		}
		c.println(table)

		c.logger.Debug("deal finished", "round", round, "winners", winners)
		switch {
		case len(winners) == 0:
			continue
		case len(winners) > 1:
			c.info(fmt.Sprintf("Split pot between %d hands with %s", len(winners), hands[winners[0]].Category))
		default:
			c.success(fmt.Sprintf("Seat %d wins with %s", winners[0]+1, hands[winners[0]].Category))
		}
	}
	return nil
}
