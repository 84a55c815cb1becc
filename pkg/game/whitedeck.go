package game

import (
	"fmt"
	"math/rand"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/google/uuid"
)

// WhiteCardDeck pools three sources into one draw pile — custom cards,
// generated blank cards, and default cards — then shuffles. Grounded on
// original_source/game_service/src/game/white_card_deck.rs.
type WhiteCardDeck struct {
	drawPile    []cards.WhiteCard
	discardPile []cards.WhiteCard
	rng         *rand.Rand
}

// NewWhiteCardDeck pools custom, generated-blank, then default cards (in
// that order, before shuffling) and returns the assembled deck.
func NewWhiteCardDeck(custom, def []cards.WhiteCard, blankCfg BlankWhiteCardConfig, rng *rand.Rand) *WhiteCardDeck {
	blankCount := blankCardCountToAdd(len(custom)+len(def), blankCfg)

	pool := make([]cards.WhiteCard, 0, len(custom)+blankCount+len(def))
	pool = append(pool, custom...)
	for i := 0; i < blankCount; i++ {
		pool = append(pool, cards.WhiteCard{Kind: cards.WhiteCardBlank, InstanceID: uuid.NewString()})
	}
	pool = append(pool, def...)

	d := &WhiteCardDeck{drawPile: pool, rng: rng}
	d.shuffleDraw()
	return d
}

// blankCardCountToAdd implements the CardCount(k)/Percentage(p) rule from
// §4.B: percentage N = floor(nonBlankCount * p / (1 - p)).
func blankCardCountToAdd(nonBlankCount int, cfg BlankWhiteCardConfig) int {
	if cfg.Behavior == BlankDisabled || cfg.Amount.Unset {
		return 0
	}
	if cfg.Amount.IsCount {
		if cfg.Amount.Count <= 0 {
			return 0
		}
		return cfg.Amount.Count
	}
	p := cfg.Amount.Percentage
	if p <= 0 {
		return 0
	}
	return int(float64(nonBlankCount) * p / (1 - p))
}

func (d *WhiteCardDeck) shuffleDraw() {
	d.rng.Shuffle(len(d.drawPile), func(i, j int) {
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	})
}

// totalCards is draw+discard, used to determine whether DrawMany can be
// satisfied without reshuffling beforehand.
func (d *WhiteCardDeck) totalCards() int {
	return len(d.drawPile) + len(d.discardPile)
}

// DrawMany returns exactly k cards, reshuffling discard back into draw if
// the draw pile runs short. It fails only if the deck as a whole holds
// fewer than k cards, which cannot happen for legal in-game requests
// (invariant 6 in §3).
func (d *WhiteCardDeck) DrawMany(k int) ([]cards.WhiteCard, error) {
	if k < 0 {
		return nil, internalError("negative draw count %d", k)
	}
	if d.totalCards() < k {
		return nil, internalError("deck exhausted: need %d cards, have %d", k, d.totalCards())
	}

	out := make([]cards.WhiteCard, 0, k)
	for len(out) < k {
		if len(d.drawPile) == 0 {
			d.drawPile, d.discardPile = d.discardPile, d.drawPile
			d.shuffleDraw()
		}
		n := len(d.drawPile) - 1
		out = append(out, d.drawPile[n])
		d.drawPile = d.drawPile[:n]
	}
	return out, nil
}

// DiscardMany sanitizes each card (clearing blank open text) before placing
// it in the discard pile, so reissued blanks never reveal past plays.
func (d *WhiteCardDeck) DiscardMany(cs []cards.WhiteCard) {
	for _, c := range cs {
		d.discardPile = append(d.discardPile, c.Sanitized())
	}
}

// ShuffleAndReset drains discard into draw and reshuffles. Idempotent.
func (d *WhiteCardDeck) ShuffleAndReset() {
	if len(d.discardPile) > 0 {
		d.drawPile = append(d.drawPile, d.discardPile...)
		d.discardPile = d.discardPile[:0]
	}
	d.shuffleDraw()
}

func (d *WhiteCardDeck) String() string {
	return fmt.Sprintf("WhiteCardDeck{draw=%d discard=%d}", len(d.drawPile), len(d.discardPile))
}
