package server

import (
	"context"
	"sync"
	"testing"

	"github.com/decred/slog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/blankcards/gameservice/pkg/collaborators"
	"github.com/blankcards/gameservice/pkg/registry"
	"github.com/blankcards/gameservice/pkg/rpc/gamerpc"
)

type fakeCardFetcher struct{}

func (fakeCardFetcher) GetCustomCards(ctx context.Context, cardpackNames []string) ([]cards.BlackCard, []cards.WhiteCard, error) {
	black := []cards.BlackCard{
		{ID: "b1", Text: "___ ruined the party.", AnswerFields: 1},
		{ID: "b2", Text: "___ and ___.", AnswerFields: 1},
	}
	white := make([]cards.WhiteCard, 0, 30)
	for i := 0; i < 30; i++ {
		white = append(white, cards.WhiteCard{Kind: cards.WhiteCardCustom, ID: "w" + string(rune('a'+i%26)) + string(rune('0'+i/26)), Text: "card"})
	}
	return black, white, nil
}

func (fakeCardFetcher) GetDefaultCards(ctx context.Context, defaultCardpackNames []string) ([]cards.BlackCard, []cards.WhiteCard, error) {
	return nil, nil, nil
}

type fakeUserFetcher struct {
	missing map[string]bool
}

func (f fakeUserFetcher) GetUser(ctx context.Context, userName string) (collaborators.User, error) {
	if f.missing[userName] {
		return collaborators.User{}, status.Errorf(codes.NotFound, "user %q not found", userName)
	}
	return collaborators.User{Name: userName, DisplayName: userName}, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls [][]string
}

func (f *fakeNotifier) GameUpdated(ctx context.Context, userNames []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string(nil), userNames...))
}

func newTestServer() (*Server, *fakeNotifier) {
	notifier := &fakeNotifier{}
	srv := NewServer(registry.NewGameIndexer(), fakeCardFetcher{}, fakeUserFetcher{}, notifier, slog.Disabled, zap.NewNop())
	return srv, notifier
}

func defaultGameConfig() gamerpc.GameConfig {
	return gamerpc.GameConfig{
		DisplayName:         "Friday Night",
		MaxPlayers:          6,
		Endless:             true,
		HandSize:            3,
		CustomCardpackNames: []string{"base"},
	}
}

func TestCreateGameHappyPath(t *testing.T) {
	srv, notifier := newTestServer()
	ctx := context.Background()

	view, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.NoError(t, err)
	require.NotEmpty(t, view.GameID)
	require.Equal(t, "NotRunning", view.Stage)
	require.Len(t, view.Players, 1)
	require.Equal(t, "alice", view.Owner)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.calls, 1)
}

func TestCreateGameRejectsMissingUserName(t *testing.T) {
	srv, _ := newTestServer()
	_, err := srv.CreateGame(context.Background(), &gamerpc.CreateGameRequest{GameConfig: defaultGameConfig()})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}

func TestCreateGameRejectsInvalidConfig(t *testing.T) {
	srv, _ := newTestServer()
	cfg := defaultGameConfig()
	cfg.HandSize = 1 // below MinHandSize
	_, err := srv.CreateGame(context.Background(), &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: cfg})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}

func TestCreateGamePropagatesUpstreamNotFound(t *testing.T) {
	notifier := &fakeNotifier{}
	srv := NewServer(registry.NewGameIndexer(), fakeCardFetcher{}, fakeUserFetcher{missing: map[string]bool{"ghost": true}}, notifier, slog.Disabled, zap.NewNop())

	_, err := srv.CreateGame(context.Background(), &gamerpc.CreateGameRequest{UserName: "ghost", GameConfig: defaultGameConfig()})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.NotFound, st.Code())
}

func TestCreateGameRejectsDoubleMembership(t *testing.T) {
	srv, _ := newTestServer()
	ctx := context.Background()
	_, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.NoError(t, err)

	_, err = srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}

func TestJoinAndLeaveGame(t *testing.T) {
	srv, _ := newTestServer()
	ctx := context.Background()

	view, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.NoError(t, err)

	joined, err := srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "bob", GameID: view.GameID})
	require.NoError(t, err)
	require.Len(t, joined.Players, 2)

	_, err = srv.LeaveGame(ctx, &gamerpc.LeaveGameRequest{UserName: "bob"})
	require.NoError(t, err)

	_, err = srv.GetGameView(ctx, &gamerpc.GetGameViewRequest{UserName: "bob"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.NotFound, st.Code())
}

func TestJoinGameMissingGame(t *testing.T) {
	srv, _ := newTestServer()
	_, err := srv.JoinGame(context.Background(), &gamerpc.JoinGameRequest{UserName: "bob", GameID: "nonexistent"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.NotFound, st.Code())
}

func TestFullRoundLifecycleThroughFacade(t *testing.T) {
	srv, _ := newTestServer()
	ctx := context.Background()

	view, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.NoError(t, err)
	gameID := view.GameID

	_, err = srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "bob", GameID: gameID})
	require.NoError(t, err)
	_, err = srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "carol", GameID: gameID})
	require.NoError(t, err)

	view, err = srv.StartGame(ctx, &gamerpc.StartGameRequest{UserName: "alice"})
	require.NoError(t, err)
	require.Equal(t, "PlayPhase", view.Stage)

	judgeName := view.JudgeID
	var players []string
	for _, p := range view.Players {
		players = append(players, p.ID)
	}
	require.Len(t, players, 3)

	var lastView *gamerpc.GameView
	for _, name := range players {
		if name == judgeName {
			continue
		}
		v, err := srv.GetGameView(ctx, &gamerpc.GetGameViewRequest{UserName: name})
		require.NoError(t, err)
		require.NotEmpty(t, v.Hand)
		v2, err := srv.PlayCards(ctx, &gamerpc.PlayCardsRequest{UserName: name, Cards: v.Hand[:1]})
		require.NoError(t, err)
		lastView = v2
	}
	require.Equal(t, "JudgePhase", lastView.Stage)

	v, err := srv.VoteCard(ctx, &gamerpc.VoteCardRequest{UserName: judgeName, Choice: 1})
	require.NoError(t, err)
	require.Equal(t, "RoundEndPhase", v.Stage)

	v, err = srv.VoteStartNextRound(ctx, &gamerpc.VoteStartNextRoundRequest{UserName: judgeName})
	require.NoError(t, err)
	require.Equal(t, "PlayPhase", v.Stage)
}

func TestBanThenRejoinRejected(t *testing.T) {
	srv, _ := newTestServer()
	ctx := context.Background()

	view, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.NoError(t, err)
	gameID := view.GameID

	_, err = srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "troll", GameID: gameID})
	require.NoError(t, err)

	_, err = srv.BanUser(ctx, &gamerpc.BanUserRequest{UserName: "alice", TrollUserName: "troll"})
	require.NoError(t, err)

	_, err = srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "troll", GameID: gameID})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}

func TestSearchGamesFiltersByStageAndQuery(t *testing.T) {
	srv, _ := newTestServer()
	ctx := context.Background()

	cfg := defaultGameConfig()
	cfg.DisplayName = "Chill Room"
	_, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: cfg})
	require.NoError(t, err)

	cfg2 := defaultGameConfig()
	cfg2.DisplayName = "Hype Room"
	_, err = srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "bob", GameConfig: cfg2})
	require.NoError(t, err)

	resp, err := srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{Query: "Chill", GameStageFilter: "none"})
	require.NoError(t, err)
	require.Len(t, resp.Games, 1)
	require.Equal(t, "Chill Room", resp.Games[0].DisplayName)

	resp, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{GameStageFilter: "running"})
	require.NoError(t, err)
	require.Empty(t, resp.Games)

	resp, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{GameStageFilter: "stopped"})
	require.NoError(t, err)
	require.Len(t, resp.Games, 2)
}

func TestSearchGamesRejectsUnspecifiedFilter(t *testing.T) {
	srv, _ := newTestServer()
	_, err := srv.SearchGames(context.Background(), &gamerpc.SearchGamesRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}

func TestListWhiteCardTextsPaginates(t *testing.T) {
	srv, _ := newTestServer()
	ctx := context.Background()

	view, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.NoError(t, err)

	resp, err := srv.ListWhiteCardTexts(ctx, &gamerpc.ListWhiteCardTextsRequest{GameID: view.GameID, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, resp.CardTexts, 10)
	require.Equal(t, int32(30), resp.TotalSize)
	require.NotEmpty(t, resp.NextPageToken)

	resp2, err := srv.ListWhiteCardTexts(ctx, &gamerpc.ListWhiteCardTextsRequest{
		GameID:    view.GameID,
		PageSize:  10,
		PageToken: resp.NextPageToken,
	})
	require.NoError(t, err)
	require.Len(t, resp2.CardTexts, 10)
}

func TestListWhiteCardTextsMissingGame(t *testing.T) {
	srv, _ := newTestServer()
	_, err := srv.ListWhiteCardTexts(context.Background(), &gamerpc.ListWhiteCardTextsRequest{GameID: "nope"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.NotFound, st.Code())
}

func TestAddAndRemoveArtificialPlayer(t *testing.T) {
	srv, _ := newTestServer()
	ctx := context.Background()

	view, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.NoError(t, err)
	_ = view

	v, err := srv.AddArtificialPlayer(ctx, &gamerpc.AddArtificialPlayerRequest{UserName: "alice", DisplayName: "Bottington"})
	require.NoError(t, err)
	require.Len(t, v.Players, 2)

	v, err = srv.RemoveArtificialPlayer(ctx, &gamerpc.RemoveArtificialPlayerRequest{UserName: "alice"})
	require.NoError(t, err)
	require.Len(t, v.Players, 1)
}

func TestCreateChatMessage(t *testing.T) {
	srv, _ := newTestServer()
	ctx := context.Background()

	_, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "alice", GameConfig: defaultGameConfig()})
	require.NoError(t, err)

	v, err := srv.CreateChatMessage(ctx, &gamerpc.CreateChatMessageRequest{UserName: "alice", Text: "hello room"})
	require.NoError(t, err)
	require.Len(t, v.ChatMessages, 1)
	require.Equal(t, "hello room", v.ChatMessages[0].Text)
}
