// Command simulate deals hands from fresh decks, scores them and prints the
// results from weakest to strongest.
package main

import (
	"fmt"
	"log"
	"strings"

	"trumphand/internal/config"
	"trumphand/internal/game"
	"trumphand/internal/shared"

	"github.com/pterm/pterm"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	batch, err := game.Simulate(cfg.Rounds, cfg.HandSize, cfg.DeckFactory())
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	if err := render(batch); err != nil {
		log.Fatalf("Failed to render results: %v", err)
	}
}

func render(batch game.Batch) error {
	pterm.DefaultHeader.Printfln("%d hands of %d cards", len(batch.Rounds), batch.HandSize)

	data := pterm.TableData{{"Hand", "Trump", "Score"}}
	for _, r := range batch.Rounds {
		data = append(data, []string{
			colorHand(r.Hand),
			colorSuit(r.Trump, r.Trump.String()),
			fmt.Sprintf("%.2f", r.Score),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(data).Render(); err != nil {
		return err
	}

	if best, ok := batch.Best(); ok {
		pterm.Success.Printfln("Best hand: %s", best)
	}
	return nil
}

func colorHand(hand shared.Hand) string {
	tokens := make([]string, len(hand))
	for i, c := range hand {
		token := colorSuit(c.Suit, c.String())
		if c.Trump {
			token = pterm.Bold.Sprint(token)
		}
		tokens[i] = token
	}
	return "[" + strings.Join(tokens, ", ") + "]"
}

func colorSuit(suit shared.Suit, s string) string {
	switch suit {
	case shared.Heart, shared.Diamond:
		return pterm.LightRed(s)
	default:
		return pterm.White(s)
	}
}
