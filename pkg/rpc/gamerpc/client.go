package gamerpc

import (
	"context"

	"google.golang.org/grpc"
)

// GameServiceClient is the client-side contract generated code would
// normally produce.
type GameServiceClient interface {
	CreateGame(ctx context.Context, in *CreateGameRequest, opts ...grpc.CallOption) (*GameView, error)
	StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*GameView, error)
	StopGame(ctx context.Context, in *StopGameRequest, opts ...grpc.CallOption) (*GameView, error)
	JoinGame(ctx context.Context, in *JoinGameRequest, opts ...grpc.CallOption) (*GameView, error)
	LeaveGame(ctx context.Context, in *LeaveGameRequest, opts ...grpc.CallOption) (*Empty, error)
	KickUser(ctx context.Context, in *KickUserRequest, opts ...grpc.CallOption) (*GameView, error)
	BanUser(ctx context.Context, in *BanUserRequest, opts ...grpc.CallOption) (*GameView, error)
	UnbanUser(ctx context.Context, in *UnbanUserRequest, opts ...grpc.CallOption) (*GameView, error)
	PlayCards(ctx context.Context, in *PlayCardsRequest, opts ...grpc.CallOption) (*GameView, error)
	UnplayCards(ctx context.Context, in *UnplayCardsRequest, opts ...grpc.CallOption) (*GameView, error)
	VoteCard(ctx context.Context, in *VoteCardRequest, opts ...grpc.CallOption) (*GameView, error)
	VoteStartNextRound(ctx context.Context, in *VoteStartNextRoundRequest, opts ...grpc.CallOption) (*GameView, error)
	AddArtificialPlayer(ctx context.Context, in *AddArtificialPlayerRequest, opts ...grpc.CallOption) (*GameView, error)
	RemoveArtificialPlayer(ctx context.Context, in *RemoveArtificialPlayerRequest, opts ...grpc.CallOption) (*GameView, error)
	CreateChatMessage(ctx context.Context, in *CreateChatMessageRequest, opts ...grpc.CallOption) (*GameView, error)
	GetGameView(ctx context.Context, in *GetGameViewRequest, opts ...grpc.CallOption) (*GameView, error)
	SearchGames(ctx context.Context, in *SearchGamesRequest, opts ...grpc.CallOption) (*SearchGamesResponse, error)
	ListWhiteCardTexts(ctx context.Context, in *ListWhiteCardTextsRequest, opts ...grpc.CallOption) (*ListWhiteCardTextsResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient wraps cc the way generated code's NewXxxClient would.
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, c *gameServiceClient, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsonCodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) CreateGame(ctx context.Context, in *CreateGameRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[CreateGameRequest, GameView](ctx, c, "CreateGame", in, opts...)
}
func (c *gameServiceClient) StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[StartGameRequest, GameView](ctx, c, "StartGame", in, opts...)
}
func (c *gameServiceClient) StopGame(ctx context.Context, in *StopGameRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[StopGameRequest, GameView](ctx, c, "StopGame", in, opts...)
}
func (c *gameServiceClient) JoinGame(ctx context.Context, in *JoinGameRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[JoinGameRequest, GameView](ctx, c, "JoinGame", in, opts...)
}
func (c *gameServiceClient) LeaveGame(ctx context.Context, in *LeaveGameRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[LeaveGameRequest, Empty](ctx, c, "LeaveGame", in, opts...)
}
func (c *gameServiceClient) KickUser(ctx context.Context, in *KickUserRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[KickUserRequest, GameView](ctx, c, "KickUser", in, opts...)
}
func (c *gameServiceClient) BanUser(ctx context.Context, in *BanUserRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[BanUserRequest, GameView](ctx, c, "BanUser", in, opts...)
}
func (c *gameServiceClient) UnbanUser(ctx context.Context, in *UnbanUserRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[UnbanUserRequest, GameView](ctx, c, "UnbanUser", in, opts...)
}
func (c *gameServiceClient) PlayCards(ctx context.Context, in *PlayCardsRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[PlayCardsRequest, GameView](ctx, c, "PlayCards", in, opts...)
}
func (c *gameServiceClient) UnplayCards(ctx context.Context, in *UnplayCardsRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[UnplayCardsRequest, GameView](ctx, c, "UnplayCards", in, opts...)
}
func (c *gameServiceClient) VoteCard(ctx context.Context, in *VoteCardRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[VoteCardRequest, GameView](ctx, c, "VoteCard", in, opts...)
}
func (c *gameServiceClient) VoteStartNextRound(ctx context.Context, in *VoteStartNextRoundRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[VoteStartNextRoundRequest, GameView](ctx, c, "VoteStartNextRound", in, opts...)
}
func (c *gameServiceClient) AddArtificialPlayer(ctx context.Context, in *AddArtificialPlayerRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[AddArtificialPlayerRequest, GameView](ctx, c, "AddArtificialPlayer", in, opts...)
}
func (c *gameServiceClient) RemoveArtificialPlayer(ctx context.Context, in *RemoveArtificialPlayerRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[RemoveArtificialPlayerRequest, GameView](ctx, c, "RemoveArtificialPlayer", in, opts...)
}
func (c *gameServiceClient) CreateChatMessage(ctx context.Context, in *CreateChatMessageRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[CreateChatMessageRequest, GameView](ctx, c, "CreateChatMessage", in, opts...)
}
func (c *gameServiceClient) GetGameView(ctx context.Context, in *GetGameViewRequest, opts ...grpc.CallOption) (*GameView, error) {
	return invoke[GetGameViewRequest, GameView](ctx, c, "GetGameView", in, opts...)
}
func (c *gameServiceClient) SearchGames(ctx context.Context, in *SearchGamesRequest, opts ...grpc.CallOption) (*SearchGamesResponse, error) {
	return invoke[SearchGamesRequest, SearchGamesResponse](ctx, c, "SearchGames", in, opts...)
}
func (c *gameServiceClient) ListWhiteCardTexts(ctx context.Context, in *ListWhiteCardTextsRequest, opts ...grpc.CallOption) (*ListWhiteCardTextsResponse, error) {
	return invoke[ListWhiteCardTextsRequest, ListWhiteCardTextsResponse](ctx, c, "ListWhiteCardTexts", in, opts...)
}
