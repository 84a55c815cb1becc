package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, mutate func(*GameConfig)) *ValidatedGameConfig {
	t.Helper()
	cfg := GameConfig{
		DisplayName:          "Friday Night",
		MaxPlayers:           6,
		EndCondition:         EndCondition{Endless: true},
		HandSize:             3,
		CustomCardpackNames:  []string{"mine"},
		DefaultCardpackNames: nil,
		BlankWhiteCardConfig: BlankWhiteCardConfig{Behavior: BlankDisabled},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	v, err := NewValidatedGameConfig(cfg)
	require.NoError(t, err)
	return v
}

func blackCards(n int, answerFields cards.AnswerFields) []cards.BlackCard {
	out := make([]cards.BlackCard, n)
	for i := range out {
		out[i] = cards.BlackCard{ID: "b" + itoa(i), Text: "blank ___", AnswerFields: answerFields}
	}
	return out
}

func whiteCards(n int) []cards.WhiteCard {
	out := make([]cards.WhiteCard, n)
	for i := range out {
		out[i] = cards.WhiteCard{Kind: cards.WhiteCardCustom, ID: "w" + itoa(i), Text: "thing " + itoa(i)}
	}
	return out
}

func itoa(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	return itoa(i/10) + string(digits[i%10])
}

func newTestGame(t *testing.T, owner string, mutate func(*GameConfig)) *Game {
	t.Helper()
	cfg := testConfig(t, mutate)
	g, err := NewGame(NewGameParams{
		GameID:       "game-1",
		Config:       cfg,
		OwnerName:    owner,
		CustomBlack:  blackCards(10, 1),
		CustomWhite:  whiteCards(50),
		Rng:          rand.New(rand.NewSource(1)),
		Now:          time.Now(),
	})
	require.NoError(t, err)
	return g
}

func playNonJudges(t *testing.T, g *Game, now time.Time) {
	t.Helper()
	bc, ok := g.currentBlackCard()
	require.True(t, ok)
	judge, hasJudge := g.playerManager.GetJudge()
	for _, p := range g.playerManager.RealPlayers() {
		if hasJudge && p.ID == judge.ID {
			continue
		}
		hand := g.gameplay.VisibleHand(p.ID)
		require.GreaterOrEqual(t, len(hand), int(bc.AnswerFields))
		err := g.PlayCards(p.ID.Name, hand[:bc.AnswerFields], now)
		require.NoError(t, err)
	}
}

// Scenario 1 — happy path endless (§8).
func TestHappyPathEndless(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", func(c *GameConfig) { c.EndCondition = EndCondition{Endless: true} })
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.Join("u3", now))
	require.NoError(t, g.Start("u1", now))
	require.Equal(t, StagePlayPhase, g.Stage())

	for i := 0; i < 100; i++ {
		for _, p := range g.playerManager.RealPlayers() {
			require.Len(t, g.gameplay.VisibleHand(p.ID), g.config.HandSize(), "round %d player %s", i, p.ID.Name)
		}

		playNonJudges(t, g, now)
		require.Equal(t, StageJudgePhase, g.Stage())

		judge, ok := g.playerManager.GetJudge()
		require.True(t, ok)
		judgeBefore := judge.ID
		err := g.VoteCard(judge.ID.Name, 1, now)
		require.NoError(t, err)
		require.Equal(t, StageRoundEndPhase, g.Stage())

		err = g.VoteStartNextRound(now)
		require.NoError(t, err)
		require.Equal(t, StagePlayPhase, g.Stage())

		newJudge, ok := g.playerManager.GetJudge()
		require.True(t, ok)
		require.NotEqual(t, judgeBefore, newJudge.ID)
	}
}

// Scenario 2 — mid-round judge leave (§8).
func TestJudgeLeavesMidRound(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.Join("u3", now))
	require.NoError(t, g.Start("u1", now))

	judge, ok := g.playerManager.GetJudge()
	require.True(t, ok)

	// One non-judge plays before the judge leaves; their staged cards must
	// return to their hand, not vanish.
	var played cards.PlayerID
	for _, p := range g.playerManager.RealPlayers() {
		if p.ID == judge.ID {
			continue
		}
		hand := g.gameplay.VisibleHand(p.ID)
		require.NoError(t, g.PlayCards(p.ID.Name, hand[:1], now))
		played = p.ID
		handBefore := len(g.gameplay.VisibleHand(p.ID))
		require.Equal(t, g.config.HandSize()-1, handBefore)
		break
	}

	require.NoError(t, g.Leave(judge.ID.Name, now))
	require.Equal(t, StageRoundEndPhase, g.Stage())
	require.Len(t, g.gameplay.VisibleHand(played), g.config.HandSize())

	require.NoError(t, g.Join("u4", now))
	require.NoError(t, g.VoteStartNextRound(now))
	require.Equal(t, StagePlayPhase, g.Stage())
}

// Scenario 3 — bot fill and auto-stop at max score (§8).
func TestBotFillAndAutoStop(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", func(c *GameConfig) {
		c.EndCondition = EndCondition{MaxScore: 1}
	})
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.AddArtificialPlayer("u1", "Bot1", now))
	require.NoError(t, g.Start("u1", now))
	require.Equal(t, StagePlayPhase, g.Stage())

	bot, ok := func() (cards.PlayerID, bool) {
		for _, p := range g.playerManager.BotPlayers() {
			return p.ID, true
		}
		return cards.PlayerID{}, false
	}()
	require.True(t, ok)
	require.True(t, g.gameplay.HasPlayed(bot), "bot should auto-play on entering PlayPhase")

	playNonJudges(t, g, now)
	require.Equal(t, StageJudgePhase, g.Stage())

	judge, _ := g.playerManager.GetJudge()
	require.NoError(t, g.VoteCard(judge.ID.Name, 1, now))
	require.Equal(t, StageNotRunning, g.Stage(), "reaching max_score should cascade to NotRunning")
}

// Scenario 4 — ban flow (§8).
func TestBanFlow(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.BanUser("u1", "u2", now))
	require.False(t, g.ContainsPlayer(cards.NewRealUser("u2")))
	require.True(t, g.UserIsBanned("u2"))

	err := g.Join("u2", now)
	require.Error(t, err)
	require.Equal(t, CodeInvalidArgument, CodeOf(err))

	require.NoError(t, g.UnbanUser("u1", "u2", now))
	require.NoError(t, g.Join("u2", now))
}

// Scenario 5 — queueing during a round (§8).
func TestQueueingDuringRound(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.Join("u3", now))
	require.NoError(t, g.Start("u1", now))

	require.NoError(t, g.Join("u4", now))
	view := g.View("u4")
	require.Empty(t, view.Hand)
	require.Len(t, view.QueuedPlayers, 1)
	found := false
	for _, p := range view.Players {
		if p.ID.Name == "u4" {
			found = true
		}
	}
	require.False(t, found)

	playNonJudges(t, g, now)
	judge, _ := g.playerManager.GetJudge()
	require.NoError(t, g.VoteCard(judge.ID.Name, 1, now))
	require.NoError(t, g.VoteStartNextRound(now))

	require.Len(t, g.gameplay.VisibleHand(cards.NewRealUser("u4")), g.config.HandSize())
	view = g.View("u4")
	require.Empty(t, view.QueuedPlayers)
}

// Scenario 6 — idle eviction is covered in pkg/registry, which owns
// last-activity-time comparisons against the indexer; see indexer_test.go.

func TestPlayCardsRejectsWrongCount(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", func(c *GameConfig) {
		c.CustomCardpackNames = []string{"mine"}
	})
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.Join("u3", now))
	require.NoError(t, g.Start("u1", now))

	judge, _ := g.playerManager.GetJudge()
	var nonJudge cards.PlayerID
	for _, p := range g.playerManager.RealPlayers() {
		if p.ID != judge.ID {
			nonJudge = p.ID
			break
		}
	}
	hand := g.gameplay.VisibleHand(nonJudge)
	stageBefore := g.Stage()
	err := g.PlayCards(nonJudge.Name, hand[:2], now) // answer_fields is 1
	require.Error(t, err)
	require.Equal(t, stageBefore, g.Stage())
	require.Equal(t, hand, g.gameplay.VisibleHand(nonJudge), "rejected play must not mutate the hand")
}

func TestJudgeCannotPlay(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.Join("u3", now))
	require.NoError(t, g.Start("u1", now))

	judge, _ := g.playerManager.GetJudge()
	hand := g.gameplay.VisibleHand(judge.ID)
	err := g.PlayCards(judge.ID.Name, hand[:1], now)
	require.Error(t, err)
}

func TestPlayThenUnplayRestoresHand(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.Join("u3", now))
	require.NoError(t, g.Start("u1", now))

	judge, _ := g.playerManager.GetJudge()
	var nonJudge cards.PlayerID
	for _, p := range g.playerManager.RealPlayers() {
		if p.ID != judge.ID {
			nonJudge = p.ID
			break
		}
	}
	before := g.gameplay.VisibleHand(nonJudge)
	require.NoError(t, g.PlayCards(nonJudge.Name, before[:1], now))
	require.NoError(t, g.UnplayCards(nonJudge.Name, now))
	require.ElementsMatch(t, before, g.gameplay.VisibleHand(nonJudge))
}

func TestRoundNonceStableWithinRoundChangesAcrossJudge(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.Join("u3", now))
	require.NoError(t, g.Start("u1", now))

	d1 := g.roundNonceDigest()
	d2 := g.roundNonceDigest()
	require.Equal(t, d1, d2, "nonce must be stable across repeated calls within a round")

	order1 := g.pseudorandomOrderedPlayedCards()
	order2 := g.pseudorandomOrderedPlayedCards()
	require.Equal(t, order1, order2)

	judge, _ := g.playerManager.GetJudge()
	require.NoError(t, g.Leave(judge.ID.Name, now))
	d3 := g.roundNonceDigest()
	require.NotEqual(t, d1, d3, "nonce must change when the judge changes mid-round")
}

func TestStopWhileNotRunningErrors(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	err := g.Stop("u1", now)
	require.Error(t, err)
}

func TestStartWhileRunningErrors(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	require.NoError(t, g.Join("u2", now))
	require.NoError(t, g.Join("u3", now))
	require.NoError(t, g.Start("u1", now))
	err := g.Start("u1", now)
	require.Error(t, err)
}

func TestOwnerCannotKickOrBanSelf(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	require.Error(t, g.KickUser("u1", "u1", now))
	require.Error(t, g.BanUser("u1", "u1", now))
}

func TestLastActivityTimeNeverRegresses(t *testing.T) {
	now := time.Now()
	g := newTestGame(t, "u1", nil)
	before := g.LastActivityTime()
	require.NoError(t, g.Join("u2", now.Add(time.Second)))
	require.False(t, g.LastActivityTime().Before(before))
}
