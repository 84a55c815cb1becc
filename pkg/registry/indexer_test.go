package registry

import (
	"math/rand"
	"testing"
	"time"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/blankcards/gameservice/pkg/game"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, gameID, owner string, createTime time.Time) *game.Game {
	t.Helper()
	cfg, err := game.NewValidatedGameConfig(game.GameConfig{
		DisplayName:         "table",
		MaxPlayers:          6,
		EndCondition:        game.EndCondition{Endless: true},
		HandSize:            3,
		CustomCardpackNames: []string{"mine"},
	})
	require.NoError(t, err)

	black := []cards.BlackCard{{ID: "b1", Text: "___", AnswerFields: 1}}
	white := []cards.WhiteCard{
		{Kind: cards.WhiteCardCustom, ID: "w1", Text: "one"},
		{Kind: cards.WhiteCardCustom, ID: "w2", Text: "two"},
		{Kind: cards.WhiteCardCustom, ID: "w3", Text: "three"},
		{Kind: cards.WhiteCardCustom, ID: "w4", Text: "four"},
	}

	g, err := game.NewGame(game.NewGameParams{
		GameID:      gameID,
		Config:      cfg,
		OwnerName:   owner,
		CustomBlack: black,
		CustomWhite: white,
		Rng:         rand.New(rand.NewSource(1)),
		Now:         createTime,
	})
	require.NoError(t, err)
	return g
}

func TestInsertPreservesCreateTimeOrder(t *testing.T) {
	idx := NewGameIndexer()
	base := time.Now()

	g1 := newTestGame(t, "g1", "u1", base.Add(2*time.Second))
	g2 := newTestGame(t, "g2", "u2", base)
	g3 := newTestGame(t, "g3", "u3", base.Add(time.Second))

	idx.Lock()
	idx.Insert(g1)
	idx.Insert(g2)
	idx.Insert(g3)
	all := idx.All()
	idx.Unlock()

	require.Len(t, all, 3)
	require.Equal(t, []string{"g2", "g3", "g1"}, []string{all[0].GameID(), all[1].GameID(), all[2].GameID()})
}

func TestInsertTiesBrokenByInsertionOrder(t *testing.T) {
	idx := NewGameIndexer()
	same := time.Now()

	g1 := newTestGame(t, "g1", "u1", same)
	g2 := newTestGame(t, "g2", "u2", same)

	idx.Lock()
	idx.Insert(g1)
	idx.Insert(g2)
	all := idx.All()
	idx.Unlock()

	require.Equal(t, "g1", all[0].GameID())
	require.Equal(t, "g2", all[1].GameID())
}

func TestFindByGameID(t *testing.T) {
	idx := NewGameIndexer()
	g := newTestGame(t, "g1", "u1", time.Now())

	idx.Lock()
	idx.Insert(g)
	idx.Unlock()

	idx.Lock()
	found, ok := idx.FindByGameID("g1")
	idx.Unlock()
	require.True(t, ok)
	require.Same(t, g, found)

	idx.Lock()
	_, ok = idx.FindByGameID("missing")
	idx.Unlock()
	require.False(t, ok)
}

func TestFindByPlayerID(t *testing.T) {
	idx := NewGameIndexer()
	now := time.Now()
	g1 := newTestGame(t, "g1", "u1", now)
	g2 := newTestGame(t, "g2", "u2", now)

	idx.Lock()
	idx.Insert(g1)
	idx.Insert(g2)
	idx.Unlock()

	idx.Lock()
	found, ok := idx.FindByPlayerID(cards.NewRealUser("u2"))
	idx.Unlock()
	require.True(t, ok)
	require.Same(t, g2, found)

	idx.Lock()
	_, ok = idx.FindByPlayerID(cards.NewRealUser("nobody"))
	idx.Unlock()
	require.False(t, ok)
}

func TestRemoveByGameID(t *testing.T) {
	idx := NewGameIndexer()
	now := time.Now()
	g1 := newTestGame(t, "g1", "u1", now)
	g2 := newTestGame(t, "g2", "u2", now.Add(time.Second))

	idx.Lock()
	idx.Insert(g1)
	idx.Insert(g2)
	idx.RemoveByGameID("g1")
	all := idx.All()
	idx.Unlock()

	require.Len(t, all, 1)
	require.Equal(t, "g2", all[0].GameID())
}

func TestRemoveByGameIDMissingIsNoop(t *testing.T) {
	idx := NewGameIndexer()
	g := newTestGame(t, "g1", "u1", time.Now())

	idx.Lock()
	idx.Insert(g)
	idx.RemoveByGameID("nonexistent")
	all := idx.All()
	idx.Unlock()

	require.Len(t, all, 1)
}

func TestEvictIdle(t *testing.T) {
	idx := NewGameIndexer()
	base := time.Now()

	fresh := newTestGame(t, "fresh", "u1", base)
	stale := newTestGame(t, "stale", "u2", base)

	idx.Lock()
	idx.Insert(fresh)
	idx.Insert(stale)
	idx.Unlock()

	// Touch fresh well after stale's last activity, so only stale crosses
	// the threshold.
	require.NoError(t, fresh.Join("u3", base.Add(3*time.Hour)))

	now := base.Add(4 * time.Hour)
	idx.Lock()
	evicted := idx.EvictIdle(now, game.IdleEvictionThreshold)
	all := idx.All()
	idx.Unlock()

	require.ElementsMatch(t, []string{"stale"}, evicted)
	require.Len(t, all, 1)
	require.Equal(t, "fresh", all[0].GameID())
}

func TestEvictIdleKeepsEverythingBelowThreshold(t *testing.T) {
	idx := NewGameIndexer()
	now := time.Now()
	g := newTestGame(t, "g1", "u1", now)

	idx.Lock()
	idx.Insert(g)
	evicted := idx.EvictIdle(now.Add(time.Minute), game.IdleEvictionThreshold)
	all := idx.All()
	idx.Unlock()

	require.Empty(t, evicted)
	require.Len(t, all, 1)
}
