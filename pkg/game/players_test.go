package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/stretchr/testify/require"
)

func TestUnusedDefaultBotNameExhaustion(t *testing.T) {
	m := NewPlayerManager(rand.New(rand.NewSource(1)))
	for i, name := range defaultArtificialPlayerNames {
		m.AddPlayer(Player{ID: cards.NewArtificialPlayer("bot" + string(rune('a'+i))), DisplayName: name})
	}
	_, ok := m.UnusedDefaultBotName()
	require.False(t, ok, "catalog should be exhausted once every name is in use")
}

func TestUnusedDefaultBotNamePicksFromRemaining(t *testing.T) {
	m := NewPlayerManager(rand.New(rand.NewSource(1)))
	for i := 0; i < len(defaultArtificialPlayerNames)-1; i++ {
		m.AddPlayer(Player{ID: cards.NewArtificialPlayer("bot" + string(rune('a'+i))), DisplayName: defaultArtificialPlayerNames[i]})
	}
	name, ok := m.UnusedDefaultBotName()
	require.True(t, ok)
	require.Equal(t, defaultArtificialPlayerNames[len(defaultArtificialPlayerNames)-1], name)
}

func TestJudgeWrapsOnRemovalAtTail(t *testing.T) {
	m := NewPlayerManager(rand.New(rand.NewSource(1)))
	p1 := Player{ID: cards.NewRealUser("u1"), JoinTime: time.Now()}
	p2 := Player{ID: cards.NewRealUser("u2"), JoinTime: time.Now()}
	p3 := Player{ID: cards.NewRealUser("u3"), JoinTime: time.Now()}
	m.AddPlayer(p1)
	m.AddPlayer(p2)
	m.AddPlayer(p3)

	m.judgeIndex = new(int)
	*m.judgeIndex = 2 // u3 is judge

	m.RemovePlayer(p3.ID)

	judge, ok := m.GetJudge()
	require.True(t, ok)
	require.Equal(t, p1.ID, judge.ID, "removing the judge at the roster's tail should wrap the index to 0")
}

func TestJudgeClearedWhenRosterEmptied(t *testing.T) {
	m := NewPlayerManager(rand.New(rand.NewSource(1)))
	p1 := Player{ID: cards.NewRealUser("u1")}
	m.AddPlayer(p1)
	m.SetRandomJudge()

	m.RemovePlayer(p1.ID)
	_, ok := m.GetJudge()
	require.False(t, ok)
}

func TestAdvanceJudgeWrapsModuloRosterSize(t *testing.T) {
	m := NewPlayerManager(rand.New(rand.NewSource(1)))
	p1 := Player{ID: cards.NewRealUser("u1")}
	p2 := Player{ID: cards.NewRealUser("u2")}
	m.AddPlayer(p1)
	m.AddPlayer(p2)

	zero := 1
	m.judgeIndex = &zero // u2 is judge

	m.AdvanceJudge()
	judge, ok := m.GetJudge()
	require.True(t, ok)
	require.Equal(t, p1.ID, judge.ID)
}

func TestDrainQueuePreservesInsertionOrder(t *testing.T) {
	m := NewPlayerManager(rand.New(rand.NewSource(1)))
	m.AddPlayer(Player{ID: cards.NewRealUser("u1")})
	m.AddQueuedPlayer(Player{ID: cards.NewRealUser("u2")})
	m.AddQueuedPlayer(Player{ID: cards.NewRealUser("u3")})

	m.DrainQueue()

	require.Empty(t, m.QueuedPlayers())
	names := m.UserNames()
	require.Equal(t, []string{"u1", "u2", "u3"}, names)
}
