// Package game implements the live, in-memory game engine: deck and hand
// management, player rosters, the play/judge/round-end state machine, and
// the per-user view projection. It performs no I/O and knows nothing of
// gRPC; the façade in pkg/server is the only caller.
package game

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/decred/slog"
	"github.com/google/uuid"
)

// PastRound is one completed round's record.
type PastRound struct {
	BlackCard   cards.BlackCard
	WhitePlayed []PlayedEntry // in the round's pseudorandom display order
	Judge       cards.PlayerID
	Winner      *cards.PlayerID
}

// NewGameParams bundles everything a Game needs at construction: the
// validated config, the already-fetched card pools (fetching is the
// façade's job, not the engine's — §5), the owner's identity, and a
// non-deterministic RNG for shuffles, judge selection, and bot naming.
type NewGameParams struct {
	GameID      string
	Config      *ValidatedGameConfig
	OwnerName   string
	CustomBlack []cards.BlackCard
	DefaultBlack []cards.BlackCard
	CustomWhite []cards.WhiteCard
	DefaultWhite []cards.WhiteCard
	Rng         *rand.Rand
	Log         slog.Logger // optional
	Now         time.Time
}

// Game is the orchestrator described in §4.G: it owns every other
// component and is the sole entry point the RPC façade calls into.
type Game struct {
	gameID           string
	config           *ValidatedGameConfig
	createTime       time.Time
	lastActivityTime time.Time

	stage Stage
	log   slog.Logger

	chat       *ChatMessageHandler
	pastRounds []PastRound

	playerManager *PlayerManager
	bannedUsers   []string
	winner        *cards.PlayerID

	blackDeck *BlackCardDeck
	whiteDeck *WhiteCardDeck
	gameplay  *WhiteCardGameplayManager
	textQuery *TextQueryHandler

	rng *rand.Rand
}

// NewGame assembles a game in the NotRunning stage with the owner as its
// first real player. All card fetching must have already happened; NewGame
// performs no I/O.
func NewGame(p NewGameParams) (*Game, error) {
	allBlack := append(append([]cards.BlackCard(nil), p.CustomBlack...), p.DefaultBlack...)
	blackDeck, err := NewBlackCardDeck(allBlack, p.Rng)
	if err != nil {
		return nil, err
	}

	whiteDeck := NewWhiteCardDeck(p.CustomWhite, p.DefaultWhite, p.Config.BlankConfig(), p.Rng)

	texts := make([]string, 0, len(p.CustomWhite)+len(p.DefaultWhite))
	for _, c := range p.CustomWhite {
		texts = append(texts, c.Text)
	}
	for _, c := range p.DefaultWhite {
		texts = append(texts, c.Text)
	}

	g := &Game{
		gameID:           p.GameID,
		config:           p.Config,
		createTime:       p.Now,
		lastActivityTime: p.Now,
		stage:            StageNotRunning,
		log:              p.Log,
		chat:             NewChatMessageHandler(MaxChatMessages),
		playerManager:    NewPlayerManager(p.Rng),
		blackDeck:        blackDeck,
		whiteDeck:        whiteDeck,
		textQuery:        NewTextQueryHandler(texts),
		rng:              p.Rng,
	}
	g.gameplay = NewWhiteCardGameplayManager(whiteDeck, p.Config.HandSize())

	owner := Player{ID: cards.NewRealUser(p.OwnerName), DisplayName: p.OwnerName, JoinTime: p.Now}
	g.playerManager.AddPlayer(owner)
	g.gameplay.AddPlayer(owner.ID)

	return g, nil
}

func (g *Game) GameID() string                { return g.gameID }
func (g *Game) Config() *ValidatedGameConfig   { return g.config }
func (g *Game) Stage() Stage                   { return g.stage }
func (g *Game) CreateTime() time.Time          { return g.createTime }
func (g *Game) LastActivityTime() time.Time    { return g.lastActivityTime }
func (g *Game) IsRunning() bool                { return g.stage != StageNotRunning }
func (g *Game) RoundInProgress() bool          { return g.IsRunning() && g.stage != StageRoundEndPhase }

func (g *Game) touch(now time.Time) {
	g.lastActivityTime = now
}

// IsFull reports whether the active+queued headcount has reached
// config.MaxPlayers.
func (g *Game) IsFull() bool {
	total := g.playerManager.TotalActiveCount() + len(g.playerManager.QueuedPlayers())
	return total >= g.config.MaxPlayers()
}

func (g *Game) ContainsPlayer(id cards.PlayerID) bool {
	return g.playerManager.IsActive(id) || g.playerManager.IsQueued(id)
}

func (g *Game) IsEmpty() bool {
	return g.playerManager.RealPlayerCount() == 0
}

func (g *Game) UserIsBanned(userName string) bool {
	for _, n := range g.bannedUsers {
		if n == userName {
			return true
		}
	}
	return false
}

// HasEnoughPlayersToPlay requires at least 2 real players and at least
// MinPlayersToPlay total (§4.G).
func (g *Game) HasEnoughPlayersToPlay() bool {
	return g.playerManager.RealPlayerCount() >= 2 &&
		g.playerManager.TotalActiveCount() >= MinPlayersToPlay
}

// ---- Membership ----

// Join adds a user to the game: immediately if no round is in progress, or
// to the queue otherwise (§3 invariant 4).
func (g *Game) Join(userName string, now time.Time) error {
	if g.IsFull() {
		return invalidArgument("game is full")
	}
	id := cards.NewRealUser(userName)
	if g.ContainsPlayer(id) {
		return invalidArgument("user is already in this game")
	}
	if g.UserIsBanned(userName) {
		return invalidArgument("user is banned from this game")
	}

	g.addPlayerToGame(Player{ID: id, DisplayName: userName, JoinTime: now})
	g.touch(now)
	return nil
}

func (g *Game) addPlayerToGame(p Player) {
	if !g.RoundInProgress() {
		g.playerManager.AddPlayer(p)
		g.gameplay.AddPlayer(p.ID)
		return
	}
	g.playerManager.AddQueuedPlayer(p)
}

// Leave removes userName from the game, handling the judge-leaves-mid-round
// case (§4.G transition table).
func (g *Game) Leave(userName string, now time.Time) error {
	id := cards.NewRealUser(userName)
	if !g.ContainsPlayer(id) {
		return invalidArgument("user is not in this game")
	}
	g.removePlayer(id, now)
	g.stopIfNotEnoughPlayers(now)
	g.touch(now)
	return nil
}

func (g *Game) removePlayer(id cards.PlayerID, now time.Time) {
	if g.IsRunning() && g.stage != StageRoundEndPhase && g.playerManager.IsJudge(id) {
		g.gameplay.ReturnPlayedToHands()
		g.transitionTo(StageRoundEndPhase)
	}
	g.playerManager.RemovePlayer(id)
	g.gameplay.RemovePlayer(id)
}

func (g *Game) stopIfNotEnoughPlayers(now time.Time) {
	if g.IsRunning() && !g.HasEnoughPlayersToPlay() {
		g.forceStop(now)
	}
}

// ---- Owner-gated roster management ----

func requireOwner(g *Game, userName string) error {
	if !g.playerManager.IsOwner(userName) {
		return invalidArgument("only the owner may perform this action")
	}
	return nil
}

// AddArtificialPlayer adds a bot, using displayName if non-empty and not
// already taken, or an unused catalog name otherwise.
func (g *Game) AddArtificialPlayer(userName, displayName string, now time.Time) error {
	if err := requireOwner(g, userName); err != nil {
		return err
	}
	if g.IsFull() {
		return invalidArgument("game is full")
	}

	name := trimmedOrEmpty(displayName)
	if name == "" {
		picked, ok := g.playerManager.UnusedDefaultBotName()
		if !ok {
			return invalidArgument("no default artificial player names are available")
		}
		name = picked
	} else if g.playerManager.BotNameInUse(name) {
		return invalidArgument("an artificial player with that name already exists")
	}

	bot := Player{ID: cards.NewArtificialPlayer(uuid.NewString()), DisplayName: name, JoinTime: now}
	g.addPlayerToGame(bot)
	g.touch(now)
	return nil
}

// RemoveArtificialPlayer removes the bot with botID, or the most recently
// added bot if botID is empty.
func (g *Game) RemoveArtificialPlayer(userName, botID string, now time.Time) error {
	if err := requireOwner(g, userName); err != nil {
		return err
	}

	var id cards.PlayerID
	if botID == "" {
		last, ok := g.playerManager.LastBot()
		if !ok {
			return invalidArgument("no artificial players to remove")
		}
		id = last.ID
	} else {
		id = cards.NewArtificialPlayer(botID)
		if !g.ContainsPlayer(id) {
			return invalidArgument("no such artificial player")
		}
	}

	g.removePlayer(id, now)
	g.stopIfNotEnoughPlayers(now)
	g.touch(now)
	return nil
}

// KickUser removes trollUserName from the game. The owner cannot kick
// themselves.
func (g *Game) KickUser(userName, trollUserName string, now time.Time) error {
	if err := requireOwner(g, userName); err != nil {
		return err
	}
	if userName == trollUserName {
		return invalidArgument("cannot kick yourself")
	}
	return g.Leave(trollUserName, now)
}

// BanUser kicks (if present) and bans trollUserName. The owner cannot ban
// themselves.
func (g *Game) BanUser(userName, trollUserName string, now time.Time) error {
	if err := requireOwner(g, userName); err != nil {
		return err
	}
	if userName == trollUserName {
		return invalidArgument("cannot ban yourself")
	}
	if g.UserIsBanned(trollUserName) {
		return invalidArgument("user is already banned")
	}

	id := cards.NewRealUser(trollUserName)
	if g.ContainsPlayer(id) {
		g.removePlayer(id, now)
		g.stopIfNotEnoughPlayers(now)
	}
	g.bannedUsers = append(g.bannedUsers, trollUserName)
	g.touch(now)
	return nil
}

func (g *Game) UnbanUser(userName, trollUserName string, now time.Time) error {
	if err := requireOwner(g, userName); err != nil {
		return err
	}
	for i, n := range g.bannedUsers {
		if n == trollUserName {
			g.bannedUsers = append(g.bannedUsers[:i], g.bannedUsers[i+1:]...)
			g.touch(now)
			return nil
		}
	}
	return invalidArgument("user is not banned")
}

// ---- Round state machine ----

// Start transitions NotRunning -> PlayPhase.
func (g *Game) Start(userName string, now time.Time) error {
	if err := requireOwner(g, userName); err != nil {
		return err
	}
	if g.IsRunning() {
		return invalidArgument("game is already running")
	}
	if !g.HasEnoughPlayersToPlay() {
		return invalidArgument("need at least %d players to start. Add some artificial users or wait for more people to join", MinPlayersToPlay)
	}

	g.pastRounds = nil
	g.blackDeck.ShuffleAndReset()
	g.whiteDeck.ShuffleAndReset()
	g.playerManager.ResetScores()
	g.winner = nil

	g.gameplay.ReturnPlayedToHands()
	if err := g.gameplay.CommitRoundAndRefill(); err != nil {
		return err
	}

	g.playerManager.SetRandomJudge()
	g.transitionTo(StagePlayPhase)
	g.autoPlayForBots()
	g.touch(now)
	return nil
}

// Stop transitions any running stage back to NotRunning.
func (g *Game) Stop(userName string, now time.Time) error {
	if err := requireOwner(g, userName); err != nil {
		return err
	}
	if !g.IsRunning() {
		return invalidArgument("game is not running")
	}
	g.forceStop(now)
	return nil
}

// forceStop is the unconditional, idempotent variant used internally by
// player-count enforcement.
func (g *Game) forceStop(now time.Time) {
	if !g.IsRunning() {
		return
	}
	g.gameplay.DiscardAllHands()
	promoted := g.playerManager.QueuedPlayers()
	g.playerManager.DrainQueue()
	for _, qp := range promoted {
		g.gameplay.AddPlayer(qp.ID)
	}
	g.winner = nil
	g.transitionTo(StageNotRunning)
	g.touch(now)
}

func (g *Game) currentBlackCard() (cards.BlackCard, bool) {
	if !g.IsRunning() {
		return cards.BlackCard{}, false
	}
	return g.blackDeck.Current()
}

func (g *Game) allNonJudgeRealPlayersHavePlayed() bool {
	judge, hasJudge := g.playerManager.GetJudge()
	for _, p := range g.playerManager.RealPlayers() {
		if hasJudge && p.ID == judge.ID {
			continue
		}
		if !g.gameplay.HasPlayed(p.ID) {
			return false
		}
	}
	return true
}

func (g *Game) autoPlayForBots() {
	bc, ok := g.currentBlackCard()
	if !ok {
		return
	}
	bots := make([]cards.PlayerID, 0, len(g.playerManager.BotPlayers()))
	for _, b := range g.playerManager.BotPlayers() {
		bots = append(bots, b.ID)
	}
	g.gameplay.AutoPlayForBots(bc, bots)
}

// PlayCards stages cs for userName during PlayPhase.
func (g *Game) PlayCards(userName string, cs []cards.WhiteCard, now time.Time) error {
	if g.stage != StagePlayPhase {
		return invalidArgument("cards may only be played during the play phase")
	}
	id := cards.NewRealUser(userName)
	if !g.playerManager.IsActive(id) {
		return invalidArgument("user is not in this game")
	}
	if g.playerManager.IsJudge(id) {
		return invalidArgument("the judge cannot play cards")
	}
	if g.gameplay.HasPlayed(id) {
		return invalidArgument("user has already played this round")
	}

	bc, ok := g.currentBlackCard()
	if !ok {
		return internalError("no current black card")
	}
	if err := g.gameplay.PlayCards(id, cs, bc, g.config.BlankConfig().Behavior); err != nil {
		return err
	}

	if g.allNonJudgeRealPlayersHavePlayed() {
		g.transitionTo(StageJudgePhase)
	}
	g.touch(now)
	return nil
}

// UnplayCards withdraws userName's staged submission during PlayPhase.
func (g *Game) UnplayCards(userName string, now time.Time) error {
	if g.stage != StagePlayPhase {
		return invalidArgument("cards may only be unplayed during the play phase")
	}
	id := cards.NewRealUser(userName)
	if err := g.gameplay.Unplay(id); err != nil {
		return err
	}
	g.touch(now)
	return nil
}

// roundNonceDigest is the 32-byte seed described in §4.G: a SHA-256 digest
// over the game id, the number of completed rounds, and the current
// judge's debug form. Grounded on
// original_source/game_service/src/game/game.rs get_round_nonce_digest.
func (g *Game) roundNonceDigest() [32]byte {
	judgeDebug := ""
	if j, ok := g.playerManager.GetJudge(); ok {
		judgeDebug = fmt.Sprintf("%+v", j.ID)
	}
	input := fmt.Sprintf("%s%d%s", g.gameID, len(g.pastRounds), judgeDebug)
	return sha256.Sum256([]byte(input))
}

// pseudorandomOrderedPlayedCards returns the current staged submissions
// shuffled by a deterministic RNG seeded from the round nonce, so repeated
// view calls within the same round observe an identical order, but the
// order changes whenever the round advances or the judge changes — the
// second, independent RNG described in the design notes.
func (g *Game) pseudorandomOrderedPlayedCards() []PlayedEntry {
	entries := g.gameplay.GetPlayedCards()
	digest := g.roundNonceDigest()

	var seed int64
	for i := 0; i < 8; i++ {
		seed = seed<<8 | int64(digest[i])
	}
	displayRng := rand.New(rand.NewSource(seed))
	displayRng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	return entries
}

// VoteCard is the judge's choice during JudgePhase: choice is 1-based into
// the pseudorandom display order.
func (g *Game) VoteCard(userName string, choice int, now time.Time) error {
	if g.stage != StageJudgePhase {
		return invalidArgument("votes may only be cast during the judge phase")
	}
	id := cards.NewRealUser(userName)
	if !g.playerManager.IsJudge(id) {
		return invalidArgument("only the judge may vote")
	}

	ordered := g.pseudorandomOrderedPlayedCards()
	if choice < 1 || choice > len(ordered) {
		return invalidArgument("choice %d is out of range [1, %d]", choice, len(ordered))
	}
	winner := ordered[choice-1].Player
	g.winner = &winner

	g.playerManager.IncrementScore(winner)
	g.transitionTo(StageRoundEndPhase)
	g.touch(now)

	if g.playerHasWon(winner) {
		g.forceStop(now)
	}
	return nil
}

func (g *Game) playerHasWon(id cards.PlayerID) bool {
	cond := g.config.EndCondition()
	if cond.Endless {
		return false
	}
	return g.playerManager.GetScore(id) >= cond.MaxScore
}

// VoteStartNextRound advances RoundEndPhase -> PlayPhase. Per the source's
// documented behavior (§9 design notes), the caller's identity is
// deliberately not checked: any real player present may trigger the next
// round.
func (g *Game) VoteStartNextRound(now time.Time) error {
	if g.stage != StageRoundEndPhase {
		return invalidArgument("the next round cannot start until the current one ends")
	}

	bc, ok := g.currentBlackCard()
	if !ok {
		return internalError("no current black card")
	}
	judge, _ := g.playerManager.GetJudge()
	g.pastRounds = append(g.pastRounds, PastRound{
		BlackCard:   bc,
		WhitePlayed: g.pseudorandomOrderedPlayedCards(),
		Judge:       judge.ID,
		Winner:      g.winner,
	})

	g.playerManager.AdvanceJudge()
	g.winner = nil
	promoted := g.playerManager.QueuedPlayers()
	g.playerManager.DrainQueue()
	for _, qp := range promoted {
		g.gameplay.AddPlayer(qp.ID)
	}
	g.blackDeck.Advance()
	if err := g.gameplay.CommitRoundAndRefill(); err != nil {
		return err
	}
	g.autoPlayForBots()
	g.transitionTo(StagePlayPhase)
	g.touch(now)
	return nil
}

// ---- Chat ----

// PostMessage appends a chat message from a current real member.
func (g *Game) PostMessage(userName, text string, now time.Time) error {
	id := cards.NewRealUser(userName)
	if !g.playerManager.IsActive(id) && !g.playerManager.IsQueued(id) {
		return invalidArgument("user must be in the game to post a message")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return invalidArgument("message text must not be empty")
	}
	g.chat.Add(ChatMessage{User: userName, Text: trimmed, CreateTime: now})
	g.touch(now)
	return nil
}

// ---- Search projection ----

// GameInfo is the lightweight projection used by SearchGames.
type GameInfo struct {
	GameID           string
	DisplayName      string
	PlayerCount      int
	Owner            string
	IsRunning        bool
	CreateTime       time.Time
	LastActivityTime time.Time
	MaxPlayers       int
}

func (g *Game) Info() GameInfo {
	owner, _ := g.playerManager.Owner()
	return GameInfo{
		GameID:           g.gameID,
		DisplayName:      g.config.DisplayName(),
		PlayerCount:      g.playerManager.TotalActiveCount(),
		Owner:            owner.ID.Name,
		IsRunning:        g.IsRunning(),
		CreateTime:       g.createTime,
		LastActivityTime: g.lastActivityTime,
		MaxPlayers:       g.config.MaxPlayers(),
	}
}

// SearchWhiteCardTexts delegates to the text query handler.
func (g *Game) SearchWhiteCardTexts(filter string, pageSize, skip int) (texts []string, hasNextPage bool, totalSize int) {
	t, has := g.textQuery.Query(filter, pageSize, skip)
	return t, has, g.textQuery.TotalSize()
}
