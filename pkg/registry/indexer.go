// Package registry holds the live-game registry (GameIndexer) and its
// background eviction sweeper.
package registry

import (
	"sync"
	"time"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/blankcards/gameservice/pkg/game"
)

// GameIndexer is a single list of games kept sorted by create time (ties
// broken by insertion order), guarded by one mutex that transitively
// protects every Game reachable through it (§5). Grounded on
// original_source/game_service/src/game/game_indexer.rs.
//
// The mutex is exposed directly via Lock/Unlock rather than hidden behind
// per-method locking: every RPC handler and the background sweeper must
// hold it for the full duration of a lookup-then-mutate sequence, so a
// coarser contract (lock once per RPC, call several indexer methods while
// held) is the correct fit, matching §5's "single mutex guards the
// registry and every game reachable through it."
type GameIndexer struct {
	mu    sync.Mutex
	games []*game.Game
}

func NewGameIndexer() *GameIndexer {
	return &GameIndexer{}
}

func (idx *GameIndexer) Lock()   { idx.mu.Lock() }
func (idx *GameIndexer) Unlock() { idx.mu.Unlock() }

// Insert reverse-scans to find the insertion point preserving create-time
// order. In practice this is near-O(1) because creation time is monotonic,
// so new games almost always append at the end. Caller must hold the lock.
func (idx *GameIndexer) Insert(g *game.Game) {
	i := len(idx.games)
	for i > 0 && idx.games[i-1].CreateTime().After(g.CreateTime()) {
		i--
	}
	idx.games = append(idx.games, nil)
	copy(idx.games[i+1:], idx.games[i:])
	idx.games[i] = g
}

// FindByGameID returns the game with the given id. Caller must hold the
// lock.
func (idx *GameIndexer) FindByGameID(id string) (*game.Game, bool) {
	for _, g := range idx.games {
		if g.GameID() == id {
			return g, true
		}
	}
	return nil, false
}

// FindByPlayerID returns the game containing the given player, if any.
// Caller must hold the lock.
func (idx *GameIndexer) FindByPlayerID(id cards.PlayerID) (*game.Game, bool) {
	for _, g := range idx.games {
		if g.ContainsPlayer(id) {
			return g, true
		}
	}
	return nil, false
}

// All returns every game currently registered, in create-time order.
// Caller must hold the lock.
func (idx *GameIndexer) All() []*game.Game {
	return append([]*game.Game(nil), idx.games...)
}

// RemoveByGameID removes the game with the given id, if present. Caller
// must hold the lock.
func (idx *GameIndexer) RemoveByGameID(id string) {
	for i, g := range idx.games {
		if g.GameID() == id {
			idx.games = append(idx.games[:i], idx.games[i+1:]...)
			return
		}
	}
}

// EvictIdle retains only games whose last-activity time is within
// threshold of now, returning the ids removed. Caller must hold the lock.
func (idx *GameIndexer) EvictIdle(now time.Time, threshold time.Duration) []string {
	var evicted []string
	kept := idx.games[:0:0]
	for _, g := range idx.games {
		if now.Sub(g.LastActivityTime()) >= threshold {
			evicted = append(evicted, g.GameID())
			continue
		}
		kept = append(kept, g)
	}
	idx.games = kept
	return evicted
}
