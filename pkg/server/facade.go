package server

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blankcards/gameservice/pkg/cards"
	gm "github.com/blankcards/gameservice/pkg/game"
	"github.com/blankcards/gameservice/pkg/rpc/gamerpc"
	"go.uber.org/zap"
)

// defaultSearchPageSize is used by ListWhiteCardTexts when the caller
// supplies a zero page_size (a negative one is rejected).
const defaultSearchPageSize = 20

// newShuffleRNG seeds the non-deterministic RNG each Game uses for deck
// shuffles, random-judge selection and default-bot-name picks (§9 design
// notes: this RNG never shares state with the seeded display-order RNG
// inside Game itself).
func newShuffleRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func realUserNamesFromView(v gm.GameView) []string {
	names := make([]string, 0, len(v.Players))
	for _, p := range v.Players {
		if p.ID.Kind == cards.RealUser {
			names = append(names, p.ID.Name)
		}
	}
	return names
}

// alreadyInAGame reports whether userName is a member of any game in the
// registry. Caller must hold the registry lock.
func (s *Server) alreadyInAGame(userName string) bool {
	_, ok := s.indexer.FindByPlayerID(cards.NewRealUser(userName))
	return ok
}

// CreateGame validates the request, fetches card content and the owner's
// upstream profile (all I/O happens before the registry lock is taken,
// §5), then inserts a freshly assembled Game.
func (s *Server) CreateGame(ctx context.Context, req *gamerpc.CreateGameRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}

	cfg, err := gm.NewValidatedGameConfig(gameConfigFromWire(req.GameConfig))
	if err != nil {
		return nil, toStatus(err)
	}

	if _, err := s.userFetcher.GetUser(ctx, req.UserName); err != nil {
		return nil, err
	}

	customBlack, customWhite, err := s.cardFetcher.GetCustomCards(ctx, cfg.CustomCardpackNames())
	if err != nil {
		return nil, err
	}
	defaultBlack, defaultWhite, err := s.cardFetcher.GetDefaultCards(ctx, cfg.DefaultCardpackNames())
	if err != nil {
		return nil, err
	}

	s.indexer.Lock()
	if s.alreadyInAGame(req.UserName) {
		s.indexer.Unlock()
		return nil, status.Error(codes.InvalidArgument, "user is already in a game")
	}

	g, err := gm.NewGame(gm.NewGameParams{
		GameID:       newGameID(),
		Config:       cfg,
		OwnerName:    req.UserName,
		CustomBlack:  customBlack,
		DefaultBlack: defaultBlack,
		CustomWhite:  customWhite,
		DefaultWhite: defaultWhite,
		Rng:          newShuffleRNG(),
		Log:          s.log,
		Now:          s.now(),
	})
	if err != nil {
		s.indexer.Unlock()
		return nil, toStatus(err)
	}
	s.indexer.Insert(g)
	view := g.View(req.UserName)
	s.indexer.Unlock()

	s.notify(ctx, realUserNamesFromView(view))
	return gameViewToWire(view), nil
}

// StartGame transitions NotRunning -> PlayPhase for the owner's game.
func (s *Server) StartGame(ctx context.Context, req *gamerpc.StartGameRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.Start(req.UserName, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// StopGame transitions any running stage back to NotRunning.
func (s *Server) StopGame(ctx context.Context, req *gamerpc.StopGameRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.Stop(req.UserName, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// JoinGame adds the caller to game_id, immediately or onto the queue
// depending on whether a round is in progress (§3 invariant 4).
func (s *Server) JoinGame(ctx context.Context, req *gamerpc.JoinGameRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("game_id", req.GameID); err != nil {
		return nil, err
	}

	if _, err := s.userFetcher.GetUser(ctx, req.UserName); err != nil {
		return nil, err
	}

	s.indexer.Lock()
	if s.alreadyInAGame(req.UserName) {
		s.indexer.Unlock()
		return nil, status.Error(codes.InvalidArgument, "user is already in a game")
	}
	g, ok := s.indexer.FindByGameID(req.GameID)
	if !ok {
		s.indexer.Unlock()
		return nil, notFoundErr("game", req.GameID)
	}
	err := g.Join(req.UserName, s.now())
	view := g.View(req.UserName)
	s.indexer.Unlock()

	if err != nil {
		return nil, toStatus(err)
	}
	s.notify(ctx, realUserNamesFromView(view))
	return gameViewToWire(view), nil
}

// LeaveGame removes the caller from whichever game they are in.
func (s *Server) LeaveGame(ctx context.Context, req *gamerpc.LeaveGameRequest) (*gamerpc.Empty, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	_, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.Leave(req.UserName, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &gamerpc.Empty{}, nil
}

// KickUser removes troll_user_name from the owner's game.
func (s *Server) KickUser(ctx context.Context, req *gamerpc.KickUserRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("troll_user_name", req.TrollUserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.KickUser(req.UserName, req.TrollUserName, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// BanUser kicks (if present) and bans troll_user_name from the owner's game.
func (s *Server) BanUser(ctx context.Context, req *gamerpc.BanUserRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("troll_user_name", req.TrollUserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.BanUser(req.UserName, req.TrollUserName, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// UnbanUser reverses a prior BanUser.
func (s *Server) UnbanUser(ctx context.Context, req *gamerpc.UnbanUserRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("troll_user_name", req.TrollUserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.UnbanUser(req.UserName, req.TrollUserName, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// PlayCards stages the caller's submission for the current round.
func (s *Server) PlayCards(ctx context.Context, req *gamerpc.PlayCardsRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	cs := whiteCardsFromWire(req.Cards)
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.PlayCards(req.UserName, cs, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// UnplayCards withdraws the caller's staged submission.
func (s *Server) UnplayCards(ctx context.Context, req *gamerpc.UnplayCardsRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.UnplayCards(req.UserName, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// VoteCard is the judge's pick of the winning played-set for the round.
func (s *Server) VoteCard(ctx context.Context, req *gamerpc.VoteCardRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	if req.Choice <= 0 {
		return nil, status.Error(codes.InvalidArgument, "choice must be positive")
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.VoteCard(req.UserName, int(req.Choice), s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// VoteStartNextRound advances RoundEndPhase -> PlayPhase. The caller's
// identity routes the request to the right game but is otherwise ignored
// by the state machine (§9: any real player present may trigger this).
func (s *Server) VoteStartNextRound(ctx context.Context, req *gamerpc.VoteStartNextRoundRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.VoteStartNextRound(s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// AddArtificialPlayer adds a bot to the owner's game.
func (s *Server) AddArtificialPlayer(ctx context.Context, req *gamerpc.AddArtificialPlayerRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.AddArtificialPlayer(req.UserName, req.DisplayName, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// RemoveArtificialPlayer removes a bot from the owner's game, or the most
// recently added one if artificial_player_id is empty.
func (s *Server) RemoveArtificialPlayer(ctx context.Context, req *gamerpc.RemoveArtificialPlayerRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.RemoveArtificialPlayer(req.UserName, req.ArtificialPlayerID, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// CreateChatMessage posts a chat message as a current real member.
func (s *Server) CreateChatMessage(ctx context.Context, req *gamerpc.CreateChatMessageRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	view, err := s.withGameByPlayer(ctx, req.UserName, func(g *gm.Game) error {
		return g.PostMessage(req.UserName, req.Text, s.now())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// GetGameView returns the caller's current view of whichever game they
// are in, without mutating anything.
func (s *Server) GetGameView(ctx context.Context, req *gamerpc.GetGameViewRequest) (*gamerpc.GameView, error) {
	if err := requireNonEmpty("user_name", req.UserName); err != nil {
		return nil, err
	}
	view, err := s.viewByPlayer(req.UserName)
	if err != nil {
		return nil, toStatus(err)
	}
	return gameViewToWire(view), nil
}

// ---- search / stage filter ----

const (
	stageFilterUnspecified = ""
	stageFilterNone        = "none"
	stageFilterStopped     = "stopped"
	stageFilterRunning     = "running"
)

func parseStageFilter(raw string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(raw))
	switch f {
	case stageFilterNone, stageFilterStopped, stageFilterRunning:
		return f, nil
	case stageFilterUnspecified, "unspecified":
		return "", status.Error(codes.InvalidArgument, "game_stage_filter must not be unspecified")
	default:
		return "", status.Errorf(codes.InvalidArgument, "unrecognized game_stage_filter %q", raw)
	}
}

func stageMatches(filter string, isRunning bool) bool {
	switch filter {
	case stageFilterStopped:
		return !isRunning
	case stageFilterRunning:
		return isRunning
	default: // stageFilterNone
		return true
	}
}

// SearchGames filters the registry by display-name substring, minimum free
// slots, and running-stage, logging the query via the high-volume audit
// logger kept distinct from per-game subsystem logs (§4.I).
func (s *Server) SearchGames(ctx context.Context, req *gamerpc.SearchGamesRequest) (*gamerpc.SearchGamesResponse, error) {
	if err := requireNonNegative("min_available_player_slots", req.MinAvailablePlayerSlots); err != nil {
		return nil, err
	}
	filter, err := parseStageFilter(req.GameStageFilter)
	if err != nil {
		return nil, err
	}

	s.indexer.Lock()
	all := s.indexer.All()
	infos := make([]gamerpc.GameInfo, 0, len(all))
	for _, g := range all {
		info := g.Info()
		if req.Query != "" && !strings.Contains(info.DisplayName, req.Query) {
			continue
		}
		if info.MaxPlayers-info.PlayerCount < int(req.MinAvailablePlayerSlots) {
			continue
		}
		if !stageMatches(filter, info.IsRunning) {
			continue
		}
		infos = append(infos, gameInfoToWire(info))
	}
	s.indexer.Unlock()

	if s.auditLog != nil {
		s.auditLog.Info("search_games",
			zap.String("query", req.Query),
			zap.Int32("min_available_player_slots", req.MinAvailablePlayerSlots),
			zap.String("game_stage_filter", filter),
			zap.Int("results", len(infos)),
		)
	}
	return &gamerpc.SearchGamesResponse{Games: infos}, nil
}

func parsePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	skip, err := strconv.Atoi(token)
	if err != nil || skip < 0 {
		return 0, status.Errorf(codes.InvalidArgument, "invalid page_token %q", token)
	}
	return skip, nil
}

// ListWhiteCardTexts paginates the game's full white-card text pool by
// substring filter (§4.F). The page token is the plain decimal skip index
// (§9: acknowledged non-opaque, accepted as-is for compatibility).
func (s *Server) ListWhiteCardTexts(ctx context.Context, req *gamerpc.ListWhiteCardTextsRequest) (*gamerpc.ListWhiteCardTextsResponse, error) {
	if err := requireNonEmpty("game_id", req.GameID); err != nil {
		return nil, err
	}
	if err := requireNonNegative("page_size", req.PageSize); err != nil {
		return nil, err
	}
	pageSize := int(req.PageSize)
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}
	skip, err := parsePageToken(req.PageToken)
	if err != nil {
		return nil, err
	}

	s.indexer.Lock()
	g, ok := s.indexer.FindByGameID(req.GameID)
	if !ok {
		s.indexer.Unlock()
		return nil, notFoundErr("game", req.GameID)
	}
	texts, hasNext, total := g.SearchWhiteCardTexts(req.Filter, pageSize, skip)
	s.indexer.Unlock()

	resp := &gamerpc.ListWhiteCardTextsResponse{
		CardTexts: texts,
		TotalSize: int32(total),
	}
	if hasNext {
		resp.NextPageToken = strconv.Itoa(skip + len(texts))
	}
	return resp, nil
}
