package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/blankcards/gameservice/pkg/cards"
)

// Player is a participant within a single game: either a real user or a
// bot, carrying its join order and running score.
type Player struct {
	ID          cards.PlayerID
	DisplayName string // real users: account display name; bots: catalog/custom name
	JoinTime    time.Time
	Score       int
}

// PlayerManager maintains the real/bot rosters and the queued joiners that
// accumulate mid-round, plus owner and judge election. Grounded on
// original_source/game_service/src/game/player_manager.rs.
type PlayerManager struct {
	realPlayers  []Player
	botPlayers   []Player
	queuedReal   []Player
	queuedBot    []Player
	judgeIndex   *int
	rng          *rand.Rand
}

func NewPlayerManager(rng *rand.Rand) *PlayerManager {
	return &PlayerManager{rng: rng}
}

// Owner is the first entry of realPlayers (computed, never stored); the
// zero value and ok=false mean no real players remain.
func (m *PlayerManager) Owner() (Player, bool) {
	if len(m.realPlayers) == 0 {
		return Player{}, false
	}
	return m.realPlayers[0], true
}

func (m *PlayerManager) IsOwner(userName string) bool {
	owner, ok := m.Owner()
	return ok && owner.ID.Kind == cards.RealUser && owner.ID.Name == userName
}

func (m *PlayerManager) RealPlayers() []Player {
	return append([]Player(nil), m.realPlayers...)
}

func (m *PlayerManager) BotPlayers() []Player {
	return append([]Player(nil), m.botPlayers...)
}

func (m *PlayerManager) QueuedPlayers() []Player {
	out := make([]Player, 0, len(m.queuedReal)+len(m.queuedBot))
	out = append(out, m.queuedReal...)
	out = append(out, m.queuedBot...)
	return out
}

func (m *PlayerManager) RealPlayerCount() int { return len(m.realPlayers) }
func (m *PlayerManager) TotalActiveCount() int {
	return len(m.realPlayers) + len(m.botPlayers)
}

// GetPlayer finds an active (non-queued) player by id.
func (m *PlayerManager) GetPlayer(id cards.PlayerID) (Player, bool) {
	for _, p := range m.realPlayers {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range m.botPlayers {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

func (m *PlayerManager) IsActive(id cards.PlayerID) bool {
	_, ok := m.GetPlayer(id)
	return ok
}

func (m *PlayerManager) IsQueued(id cards.PlayerID) bool {
	for _, p := range m.queuedReal {
		if p.ID == id {
			return true
		}
	}
	for _, p := range m.queuedBot {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IncrementScore adds 1 to id's score if present (real or bot).
func (m *PlayerManager) IncrementScore(id cards.PlayerID) {
	for i := range m.realPlayers {
		if m.realPlayers[i].ID == id {
			m.realPlayers[i].Score++
			return
		}
	}
	for i := range m.botPlayers {
		if m.botPlayers[i].ID == id {
			m.botPlayers[i].Score++
			return
		}
	}
}

func (m *PlayerManager) GetScore(id cards.PlayerID) int {
	p, ok := m.GetPlayer(id)
	if !ok {
		return 0
	}
	return p.Score
}

func (m *PlayerManager) ResetScores() {
	for i := range m.realPlayers {
		m.realPlayers[i].Score = 0
	}
	for i := range m.botPlayers {
		m.botPlayers[i].Score = 0
	}
}

// AddPlayer adds p directly to the active roster (real or bot per its ID
// kind), appended in join order.
func (m *PlayerManager) AddPlayer(p Player) {
	if p.ID.Kind == cards.RealUser {
		m.realPlayers = append(m.realPlayers, p)
	} else {
		m.botPlayers = append(m.botPlayers, p)
	}
}

// AddQueuedPlayer adds p to the appropriate queue, to be promoted on the
// next DrainQueue.
func (m *PlayerManager) AddQueuedPlayer(p Player) {
	if p.ID.Kind == cards.RealUser {
		m.queuedReal = append(m.queuedReal, p)
	} else {
		m.queuedBot = append(m.queuedBot, p)
	}
}

// DrainQueue appends queuedReal into realPlayers and queuedBot into
// botPlayers, preserving order, then clears both queues.
func (m *PlayerManager) DrainQueue() {
	m.realPlayers = append(m.realPlayers, m.queuedReal...)
	m.botPlayers = append(m.botPlayers, m.queuedBot...)
	m.queuedReal = nil
	m.queuedBot = nil
}

// SetRandomJudge picks a uniform-random index into realPlayers.
func (m *PlayerManager) SetRandomJudge() {
	if len(m.realPlayers) == 0 {
		m.judgeIndex = nil
		return
	}
	i := m.rng.Intn(len(m.realPlayers))
	m.judgeIndex = &i
}

// AdvanceJudge moves the judge index forward by one, wrapping modulo the
// current real-player count.
func (m *PlayerManager) AdvanceJudge() {
	if m.judgeIndex == nil || len(m.realPlayers) == 0 {
		m.judgeIndex = nil
		return
	}
	next := (*m.judgeIndex + 1) % len(m.realPlayers)
	m.judgeIndex = &next
}

// GetJudge returns the current judge, if any.
func (m *PlayerManager) GetJudge() (Player, bool) {
	if m.judgeIndex == nil || *m.judgeIndex >= len(m.realPlayers) {
		return Player{}, false
	}
	return m.realPlayers[*m.judgeIndex], true
}

func (m *PlayerManager) IsJudge(id cards.PlayerID) bool {
	judge, ok := m.GetJudge()
	return ok && judge.ID == id
}

// RemovePlayer removes id from the active rosters and queues. For real
// players it applies the judge-index wrap rule from invariant 2 (§3):
// empty roster clears the judge; a judge index that now equals the new
// roster length wraps to 0; otherwise it is left unchanged. An unchanged
// index keeps the same judge when the removed player sat after the judge;
// when the removed player sat before the judge (or was the judge), entries
// shift down by one and the index then names the next player in the roster.
func (m *PlayerManager) RemovePlayer(id cards.PlayerID) {
	if id.Kind == cards.RealUser {
		m.realPlayers = removeByID(m.realPlayers, id)
		m.queuedReal = removeByID(m.queuedReal, id)

		if len(m.realPlayers) == 0 {
			m.judgeIndex = nil
		} else if m.judgeIndex != nil && *m.judgeIndex == len(m.realPlayers) {
			zero := 0
			m.judgeIndex = &zero
		}
		return
	}
	m.botPlayers = removeByID(m.botPlayers, id)
	m.queuedBot = removeByID(m.queuedBot, id)
}

func removeByID(list []Player, id cards.PlayerID) []Player {
	out := list[:0:0]
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// UnusedDefaultBotName returns a uniform-random catalog name not currently
// in use by any active or queued bot, or ("", false) if the catalog is
// exhausted. Unlike the original source (which loops forever on
// exhaustion), this enforces the spec's explicit "none available" contract
// by enumerating the unused subset rather than retry-sampling.
func (m *PlayerManager) UnusedDefaultBotName() (string, bool) {
	used := make(map[string]bool, len(m.botPlayers)+len(m.queuedBot))
	for _, p := range m.botPlayers {
		used[p.DisplayName] = true
	}
	for _, p := range m.queuedBot {
		used[p.DisplayName] = true
	}

	var free []string
	for _, name := range defaultArtificialPlayerNames {
		if !used[name] {
			free = append(free, name)
		}
	}
	if len(free) == 0 {
		return "", false
	}
	return free[m.rng.Intn(len(free))], true
}

func (m *PlayerManager) BotNameInUse(name string) bool {
	for _, p := range m.botPlayers {
		if p.DisplayName == name {
			return true
		}
	}
	for _, p := range m.queuedBot {
		if p.DisplayName == name {
			return true
		}
	}
	return false
}

// LastBot returns the most recently added bot (active, preferred) or
// queued bot, for RemoveArtificialPlayer's "empty id removes newest" rule.
func (m *PlayerManager) LastBot() (Player, bool) {
	if len(m.botPlayers) > 0 {
		return m.botPlayers[len(m.botPlayers)-1], true
	}
	if len(m.queuedBot) > 0 {
		return m.queuedBot[len(m.queuedBot)-1], true
	}
	return Player{}, false
}

func (m *PlayerManager) UserNames() []string {
	names := make([]string, 0, len(m.realPlayers))
	for _, p := range m.realPlayers {
		names = append(names, p.ID.Name)
	}
	return names
}

func trimmedOrEmpty(s string) string {
	return strings.TrimSpace(s)
}
