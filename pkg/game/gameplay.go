package game

import (
	"github.com/blankcards/gameservice/pkg/cards"
)

// WhiteCardGameplayManager holds each player's hand and this round's staged
// ("played") submission. Grounded on
// original_source/game_service/src/game/white_card_gameplay_manager.rs.
type WhiteCardGameplayManager struct {
	// handsAndPlayed holds the full combined hand (visible hand + staged
	// cards), in draw order, per player.
	handsAndPlayed map[cards.PlayerID][]cards.WhiteCard
	// played holds only the staged subset, for players who submitted this
	// round.
	played map[cards.PlayerID][]cards.WhiteCard
	// order preserves player insertion order for deterministic iteration.
	order []cards.PlayerID

	deck     *WhiteCardDeck
	handSize int
}

func NewWhiteCardGameplayManager(deck *WhiteCardDeck, handSize int) *WhiteCardGameplayManager {
	return &WhiteCardGameplayManager{
		handsAndPlayed: make(map[cards.PlayerID][]cards.WhiteCard),
		played:         make(map[cards.PlayerID][]cards.WhiteCard),
		deck:           deck,
		handSize:       handSize,
	}
}

// AddPlayer is idempotent: it creates an empty hand for id if absent.
func (m *WhiteCardGameplayManager) AddPlayer(id cards.PlayerID) {
	if _, ok := m.handsAndPlayed[id]; ok {
		return
	}
	m.handsAndPlayed[id] = nil
	m.order = append(m.order, id)
}

// RemovePlayer discards id's combined hand and staged cards back to the
// deck and erases any staged entry.
func (m *WhiteCardGameplayManager) RemovePlayer(id cards.PlayerID) {
	if hand, ok := m.handsAndPlayed[id]; ok {
		m.deck.DiscardMany(hand)
	}
	delete(m.handsAndPlayed, id)
	delete(m.played, id)
	for i, pid := range m.order {
		if pid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// VisibleHand returns id's hand minus any cards currently staged, by
// identity.
func (m *WhiteCardGameplayManager) VisibleHand(id cards.PlayerID) []cards.WhiteCard {
	hand := m.handsAndPlayed[id]
	staged := m.played[id]
	if len(staged) == 0 {
		return append([]cards.WhiteCard(nil), hand...)
	}
	out := make([]cards.WhiteCard, 0, len(hand))
	for _, c := range hand {
		if !containsIdentifier(staged, c) {
			out = append(out, c)
		}
	}
	return out
}

func containsIdentifier(set []cards.WhiteCard, c cards.WhiteCard) bool {
	for _, s := range set {
		if cards.SameIdentifier(s, c) {
			return true
		}
	}
	return false
}

// HasPlayed reports whether id has a staged submission this round.
func (m *WhiteCardGameplayManager) HasPlayed(id cards.PlayerID) bool {
	_, ok := m.played[id]
	return ok
}

// PlayCards validates and stages cs as id's submission for blackCard,
// replacing any prior staging for id. Grounded on §4.C's play_cards
// contract.
func (m *WhiteCardGameplayManager) PlayCards(id cards.PlayerID, cs []cards.WhiteCard, blackCard cards.BlackCard, blankBehavior BlankBehavior) error {
	if len(cs) != int(blackCard.AnswerFields) {
		return invalidArgument("expected %d cards, got %d", blackCard.AnswerFields, len(cs))
	}

	visible := m.VisibleHand(id)

	resolved := make([]cards.WhiteCard, 0, len(cs))
	for _, submitted := range cs {
		if submitted.Kind == cards.WhiteCardBlank {
			if blankBehavior != BlankOpenText {
				return invalidArgument("blank cards are not enabled for this game")
			}
			if submitted.InstanceID == "" || submitted.OpenText == "" {
				return invalidArgument("blank cards require a non-empty instance id and open text")
			}
		} else if submitted.ID == "" {
			return invalidArgument("card identifier must not be empty")
		}

		found, ok := findInHand(visible, submitted)
		if !ok {
			return invalidArgument("card %s is not in player's hand", submitted.Identifier())
		}
		if submitted.Kind == cards.WhiteCardBlank {
			found.OpenText = submitted.OpenText
		}
		resolved = append(resolved, found)
	}

	m.played[id] = resolved
	return nil
}

func findInHand(hand []cards.WhiteCard, submitted cards.WhiteCard) (cards.WhiteCard, bool) {
	for _, c := range hand {
		if cards.SameIdentifier(c, submitted) {
			return c, true
		}
	}
	return cards.WhiteCard{}, false
}

// Unplay clears id's staged entry without discarding; the cards return to
// the visible hand.
func (m *WhiteCardGameplayManager) Unplay(id cards.PlayerID) error {
	if _, ok := m.played[id]; !ok {
		return invalidArgument("player has not played this round")
	}
	delete(m.played, id)
	return nil
}

// AutoPlayForBots stages the first answer_fields cards of each bot's hand
// that has not yet submitted and has enough cards, for blackCard.
func (m *WhiteCardGameplayManager) AutoPlayForBots(blackCard cards.BlackCard, bots []cards.PlayerID) {
	n := int(blackCard.AnswerFields)
	for _, id := range bots {
		if m.HasPlayed(id) {
			continue
		}
		hand := m.handsAndPlayed[id]
		if len(hand) < n {
			continue
		}
		m.played[id] = append([]cards.WhiteCard(nil), hand[:n]...)
	}
}

// ReturnPlayedToHands clears all staged sets without discarding.
func (m *WhiteCardGameplayManager) ReturnPlayedToHands() {
	m.played = make(map[cards.PlayerID][]cards.WhiteCard)
}

// PlayedEntry is one player's staged submission, for view/round-end
// projection.
type PlayedEntry struct {
	Player cards.PlayerID
	Cards  []cards.WhiteCard
}

// GetPlayedCards returns every staged entry in player-insertion order.
func (m *WhiteCardGameplayManager) GetPlayedCards() []PlayedEntry {
	out := make([]PlayedEntry, 0, len(m.played))
	for _, id := range m.order {
		if cs, ok := m.played[id]; ok {
			out = append(out, PlayedEntry{Player: id, Cards: append([]cards.WhiteCard(nil), cs...)})
		}
	}
	return out
}

// CommitRoundAndRefill removes every staged card from its owner's hand and
// discards it, clears staging, then tops every remaining hand back up to
// handSize.
func (m *WhiteCardGameplayManager) CommitRoundAndRefill() error {
	for id, staged := range m.played {
		hand := m.handsAndPlayed[id]
		remaining := hand[:0:0]
		for _, c := range hand {
			if !containsIdentifier(staged, c) {
				remaining = append(remaining, c)
			}
		}
		m.handsAndPlayed[id] = remaining
		m.deck.DiscardMany(staged)
	}
	m.played = make(map[cards.PlayerID][]cards.WhiteCard)

	for _, id := range m.order {
		hand := m.handsAndPlayed[id]
		need := m.handSize - len(hand)
		if need <= 0 {
			continue
		}
		drawn, err := m.deck.DrawMany(need)
		if err != nil {
			return err
		}
		m.handsAndPlayed[id] = append(hand, drawn...)
	}
	return nil
}

// DiscardAllHands returns every hand to the deck, used on the NotRunning
// transition.
func (m *WhiteCardGameplayManager) DiscardAllHands() {
	for id, hand := range m.handsAndPlayed {
		m.deck.DiscardMany(hand)
		m.handsAndPlayed[id] = nil
	}
	m.played = make(map[cards.PlayerID][]cards.WhiteCard)
}
