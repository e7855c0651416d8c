package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"cardroom/internal/card"
	"cardroom/internal/game"
	"cardroom/internal/player"
	"cardroom/internal/poker"
)

// CardLabel is the compact card, red suits colored.
func CardLabel(c card.Card) string {
	if c.Suit().IsRed() {
		return pterm.LightRed(c.Short())
	}
	return c.Short()
}

func CardLabels(cards []card.Card) string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = CardLabel(c)
	}
	return strings.Join(labels, " ")
}

func possessive(name string) string {
	if name == game.DefaultPlayerName {
		return "Your"
	}
	return name + "'s"
}

func formatOpening(user *game.User, dealer *game.Dealer) string {
	up, _ := dealer.Hand().First()
	return fmt.Sprintf("%s hand: %s, dealer: %s.",
		possessive(user.Name()), user.Hand(), up)
}

func formatHand(p game.Playable) string {
	return fmt.Sprintf("%s hand: %s. TOTAL: %d.", possessive(p.Name()), p.Hand(), p.Total())
}

func formatStay(p game.Playable) string {
	return fmt.Sprintf("%s total is %d.", possessive(p.Name()), p.Total())
}

func formatScore(s *game.Session) string {
	return fmt.Sprintf("%s points: %d. Dealer points: %d.",
		possessive(s.User.Name()), s.UserPoints(), s.DealerPoints())
}

func formatRoundWinner(o game.Outcome, user game.Playable) string {
	switch o {
	case game.UserWins:
		if user.Name() == game.DefaultPlayerName {
			return "You win!"
		}
		return user.Name() + " wins!"
	case game.DealerWins:
		return "Dealer wins!"
	}
	return "It's a tie!"
}

func formatGrandMaster(p game.Playable) string {
	if p.Name() == game.DefaultPlayerName {
		return "You are the GRAND MASTER!!!"
	}
	return p.Name() + " is the GRAND MASTER!!!"
}

func formatScoreboard(stats []player.Stats) (string, error) {
	data := pterm.TableData{{"Player", "Points", "Wins", "Games", "Win rate"}}
	for _, s := range stats {
		data = append(data, []string{
			s.Name,
			strconv.Itoa(s.Points),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Games),
			fmt.Sprintf("%.0f%%", s.WinRate),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func formatPokerTable(hands []poker.Hand, winners []int, suitTieBreak bool) (string, error) {
	won := make(map[int]bool, len(winners))
	for _, w := range winners {
		won[w] = true
	}

	data := pterm.TableData{{"Seat", "Hand", "Category", "High", "Low", ""}}
	for i, h := range hands {
		high, _ := card.Highest(h.Cards, suitTieBreak)
		low, _ := card.Lowest(h.Cards, suitTieBreak)
		mark := ""
		if won[i] {
			mark = "winner"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			CardLabels(h.Cards),
			h.Category.String(),
			CardLabel(high),
			CardLabel(low),
			mark,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
