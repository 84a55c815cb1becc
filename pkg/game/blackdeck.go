package game

import (
	"math/rand"

	"github.com/blankcards/gameservice/pkg/cards"
)

// BlackCardDeck is a single-pile deck of black cards split into a draw pile
// (top at the back) and a discard pile. Grounded on the teacher's
// pkg/poker/deck.go Deck, generalized from a fixed 52-card deck to an
// arbitrary pooled set of prompt cards that reshuffles from discard instead
// of being immutable for the process lifetime.
type BlackCardDeck struct {
	drawPile    []cards.BlackCard
	discardPile []cards.BlackCard
	rng         *rand.Rand
}

// NewBlackCardDeck pools all is into the draw pile and shuffles. It fails
// if the pool is empty: a game cannot run without at least one black card.
func NewBlackCardDeck(all []cards.BlackCard, rng *rand.Rand) (*BlackCardDeck, error) {
	if len(all) == 0 {
		return nil, invalidArgument("at least one black card is required")
	}
	d := &BlackCardDeck{
		drawPile: append([]cards.BlackCard(nil), all...),
		rng:      rng,
	}
	d.shuffleDraw()
	return d, nil
}

func (d *BlackCardDeck) shuffleDraw() {
	d.rng.Shuffle(len(d.drawPile), func(i, j int) {
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	})
}

// Current returns the top of the draw pile. It is only meaningful once the
// deck has cards, which ShuffleAndReset / NewBlackCardDeck guarantee.
func (d *BlackCardDeck) Current() (cards.BlackCard, bool) {
	if len(d.drawPile) == 0 {
		return cards.BlackCard{}, false
	}
	return d.drawPile[len(d.drawPile)-1], true
}

// Advance moves the current top card to discard. If the draw pile would
// then be empty, it is immediately refilled by shuffling the discard pile
// back in, so Current never observes an empty deck mid-game.
func (d *BlackCardDeck) Advance() {
	if len(d.drawPile) == 0 {
		return
	}
	n := len(d.drawPile) - 1
	top := d.drawPile[n]
	d.drawPile = d.drawPile[:n]
	d.discardPile = append(d.discardPile, top)

	if len(d.drawPile) == 0 {
		d.drawPile, d.discardPile = d.discardPile, d.drawPile
		d.shuffleDraw()
	}
}

// ShuffleAndReset drains the discard pile back into the draw pile and
// reshuffles. Idempotent when discard is already empty.
func (d *BlackCardDeck) ShuffleAndReset() {
	if len(d.discardPile) > 0 {
		d.drawPile = append(d.drawPile, d.discardPile...)
		d.discardPile = d.discardPile[:0]
	}
	d.shuffleDraw()
}
