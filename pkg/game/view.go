package game

import (
	"time"

	"github.com/blankcards/gameservice/pkg/cards"
)

// PlayerView is a roster entry as seen by a viewer: identity, display name,
// join order, and score.
type PlayerView struct {
	ID          cards.PlayerID
	DisplayName string
	JoinTime    time.Time
	Score       int
}

// PlayedCardView is one entry of the round's played-set, redacted
// per-stage: PlayPhase hides card text, JudgePhase hides the submitter.
type PlayedCardView struct {
	Player *cards.PlayerID
	Cards  []cards.WhiteCard
}

// GameView is the per-user projection returned by every mutating RPC
// except LeaveGame (which returns Empty), and by GetGameView. Grounded on original_source/game_service/src/game/game.rs
// get_user_view.
type GameView struct {
	GameID           string
	DisplayName      string
	Stage            Stage
	CreateTime       time.Time
	LastActivityTime time.Time

	Hand          []cards.WhiteCard
	Players       []PlayerView
	QueuedPlayers []PlayerView
	BannedUsers   []string
	Owner         cards.PlayerID
	Judge         *cards.PlayerID
	Winner        *cards.PlayerID

	CurrentBlackCard *cards.BlackCard
	WhitePlayed      []PlayedCardView

	ChatMessages []ChatMessage
	PastRounds   []PastRound
}

func toPlayerView(p Player) PlayerView {
	return PlayerView{ID: p.ID, DisplayName: p.DisplayName, JoinTime: p.JoinTime, Score: p.Score}
}

// View projects the game's current state for userName. userName need not
// be an active member; a non-member lookup still returns a view, just with
// an empty hand.
func (g *Game) View(userName string) GameView {
	viewerID := cards.NewRealUser(userName)

	players := make([]PlayerView, 0, g.playerManager.RealPlayerCount())
	for _, p := range g.playerManager.RealPlayers() {
		players = append(players, toPlayerView(p))
	}
	for _, p := range g.playerManager.BotPlayers() {
		players = append(players, toPlayerView(p))
	}

	queued := make([]PlayerView, 0)
	for _, p := range g.playerManager.QueuedPlayers() {
		queued = append(queued, toPlayerView(p))
	}

	var hand []cards.WhiteCard
	if g.gameplay != nil && g.playerManager.IsActive(viewerID) {
		hand = g.gameplay.VisibleHand(viewerID)
	}

	owner, _ := g.playerManager.Owner()
	var judgeID *cards.PlayerID
	if j, ok := g.playerManager.GetJudge(); ok {
		id := j.ID
		judgeID = &id
	}

	var blackCard *cards.BlackCard
	if g.IsRunning() {
		if bc, ok := g.blackDeck.Current(); ok {
			blackCard = &bc
		}
	}

	var whitePlayed []PlayedCardView
	if g.IsRunning() {
		ordered := g.pseudorandomOrderedPlayedCards()
		whitePlayed = make([]PlayedCardView, len(ordered))
		for i, entry := range ordered {
			whitePlayed[i] = redactPlayedEntry(entry, g.stage)
		}
	}

	return GameView{
		GameID:           g.gameID,
		DisplayName:      g.config.DisplayName(),
		Stage:            g.stage,
		CreateTime:       g.createTime,
		LastActivityTime: g.lastActivityTime,
		Hand:             hand,
		Players:          players,
		QueuedPlayers:    queued,
		BannedUsers:      append([]string(nil), g.bannedUsers...),
		Owner:            owner.ID,
		Judge:            judgeID,
		Winner:           g.winner,
		CurrentBlackCard: blackCard,
		WhitePlayed:      whitePlayed,
		ChatMessages:     g.chat.Snapshot(),
		PastRounds:       append([]PastRound(nil), g.pastRounds...),
	}
}

// redactPlayedEntry applies the per-stage visibility rule from §4.G's view
// projection: PlayPhase reveals who played but not what; JudgePhase reveals
// what was played but not who; RoundEndPhase (and any other stage) reveals
// both.
func redactPlayedEntry(entry PlayedEntry, stage Stage) PlayedCardView {
	switch stage {
	case StagePlayPhase:
		id := entry.Player
		return PlayedCardView{Player: &id}
	case StageJudgePhase:
		return PlayedCardView{Cards: entry.Cards}
	default:
		id := entry.Player
		return PlayedCardView{Player: &id, Cards: entry.Cards}
	}
}
