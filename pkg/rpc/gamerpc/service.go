package gamerpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GameServiceServer is the server-side contract generated code would
// normally produce from gamerpc.proto's service GameService.
type GameServiceServer interface {
	CreateGame(context.Context, *CreateGameRequest) (*GameView, error)
	StartGame(context.Context, *StartGameRequest) (*GameView, error)
	StopGame(context.Context, *StopGameRequest) (*GameView, error)
	JoinGame(context.Context, *JoinGameRequest) (*GameView, error)
	LeaveGame(context.Context, *LeaveGameRequest) (*Empty, error)
	KickUser(context.Context, *KickUserRequest) (*GameView, error)
	BanUser(context.Context, *BanUserRequest) (*GameView, error)
	UnbanUser(context.Context, *UnbanUserRequest) (*GameView, error)
	PlayCards(context.Context, *PlayCardsRequest) (*GameView, error)
	UnplayCards(context.Context, *UnplayCardsRequest) (*GameView, error)
	VoteCard(context.Context, *VoteCardRequest) (*GameView, error)
	VoteStartNextRound(context.Context, *VoteStartNextRoundRequest) (*GameView, error)
	AddArtificialPlayer(context.Context, *AddArtificialPlayerRequest) (*GameView, error)
	RemoveArtificialPlayer(context.Context, *RemoveArtificialPlayerRequest) (*GameView, error)
	CreateChatMessage(context.Context, *CreateChatMessageRequest) (*GameView, error)
	GetGameView(context.Context, *GetGameViewRequest) (*GameView, error)
	SearchGames(context.Context, *SearchGamesRequest) (*SearchGamesResponse, error)
	ListWhiteCardTexts(context.Context, *ListWhiteCardTextsRequest) (*ListWhiteCardTextsResponse, error)
}

// UnimplementedGameServiceServer embeds into concrete implementations so
// future additions to the interface do not break compilation, matching the
// UnimplementedXxxServer convention of generated code.
type UnimplementedGameServiceServer struct{}

func (UnimplementedGameServiceServer) CreateGame(context.Context, *CreateGameRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateGame not implemented")
}
func (UnimplementedGameServiceServer) StartGame(context.Context, *StartGameRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method StartGame not implemented")
}
func (UnimplementedGameServiceServer) StopGame(context.Context, *StopGameRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method StopGame not implemented")
}
func (UnimplementedGameServiceServer) JoinGame(context.Context, *JoinGameRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method JoinGame not implemented")
}
func (UnimplementedGameServiceServer) LeaveGame(context.Context, *LeaveGameRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method LeaveGame not implemented")
}
func (UnimplementedGameServiceServer) KickUser(context.Context, *KickUserRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method KickUser not implemented")
}
func (UnimplementedGameServiceServer) BanUser(context.Context, *BanUserRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method BanUser not implemented")
}
func (UnimplementedGameServiceServer) UnbanUser(context.Context, *UnbanUserRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method UnbanUser not implemented")
}
func (UnimplementedGameServiceServer) PlayCards(context.Context, *PlayCardsRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayCards not implemented")
}
func (UnimplementedGameServiceServer) UnplayCards(context.Context, *UnplayCardsRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method UnplayCards not implemented")
}
func (UnimplementedGameServiceServer) VoteCard(context.Context, *VoteCardRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method VoteCard not implemented")
}
func (UnimplementedGameServiceServer) VoteStartNextRound(context.Context, *VoteStartNextRoundRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method VoteStartNextRound not implemented")
}
func (UnimplementedGameServiceServer) AddArtificialPlayer(context.Context, *AddArtificialPlayerRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method AddArtificialPlayer not implemented")
}
func (UnimplementedGameServiceServer) RemoveArtificialPlayer(context.Context, *RemoveArtificialPlayerRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveArtificialPlayer not implemented")
}
func (UnimplementedGameServiceServer) CreateChatMessage(context.Context, *CreateChatMessageRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateChatMessage not implemented")
}
func (UnimplementedGameServiceServer) GetGameView(context.Context, *GetGameViewRequest) (*GameView, error) {
	return nil, status.Error(codes.Unimplemented, "method GetGameView not implemented")
}
func (UnimplementedGameServiceServer) SearchGames(context.Context, *SearchGamesRequest) (*SearchGamesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchGames not implemented")
}
func (UnimplementedGameServiceServer) ListWhiteCardTexts(context.Context, *ListWhiteCardTextsRequest) (*ListWhiteCardTextsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListWhiteCardTexts not implemented")
}

const serviceName = "gamerpc.GameService"

func unaryHandler[Req, Resp any](method func(context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(ctx, req)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName}
		handler := func(ctx context.Context, req any) (any, error) {
			return method(ctx, req.(*Req))
		}
		return interceptor(ctx, req, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc generated code would emit for
// GameService, wired by hand against GameServiceServer.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc("CreateGame", func(s any) func(context.Context, *CreateGameRequest) (*GameView, error) {
			return s.(GameServiceServer).CreateGame
		}),
		methodDesc("StartGame", func(s any) func(context.Context, *StartGameRequest) (*GameView, error) {
			return s.(GameServiceServer).StartGame
		}),
		methodDesc("StopGame", func(s any) func(context.Context, *StopGameRequest) (*GameView, error) {
			return s.(GameServiceServer).StopGame
		}),
		methodDesc("JoinGame", func(s any) func(context.Context, *JoinGameRequest) (*GameView, error) {
			return s.(GameServiceServer).JoinGame
		}),
		methodDesc("LeaveGame", func(s any) func(context.Context, *LeaveGameRequest) (*Empty, error) {
			return s.(GameServiceServer).LeaveGame
		}),
		methodDesc("KickUser", func(s any) func(context.Context, *KickUserRequest) (*GameView, error) {
			return s.(GameServiceServer).KickUser
		}),
		methodDesc("BanUser", func(s any) func(context.Context, *BanUserRequest) (*GameView, error) {
			return s.(GameServiceServer).BanUser
		}),
		methodDesc("UnbanUser", func(s any) func(context.Context, *UnbanUserRequest) (*GameView, error) {
			return s.(GameServiceServer).UnbanUser
		}),
		methodDesc("PlayCards", func(s any) func(context.Context, *PlayCardsRequest) (*GameView, error) {
			return s.(GameServiceServer).PlayCards
		}),
		methodDesc("UnplayCards", func(s any) func(context.Context, *UnplayCardsRequest) (*GameView, error) {
			return s.(GameServiceServer).UnplayCards
		}),
		methodDesc("VoteCard", func(s any) func(context.Context, *VoteCardRequest) (*GameView, error) {
			return s.(GameServiceServer).VoteCard
		}),
		methodDesc("VoteStartNextRound", func(s any) func(context.Context, *VoteStartNextRoundRequest) (*GameView, error) {
			return s.(GameServiceServer).VoteStartNextRound
		}),
		methodDesc("AddArtificialPlayer", func(s any) func(context.Context, *AddArtificialPlayerRequest) (*GameView, error) {
			return s.(GameServiceServer).AddArtificialPlayer
		}),
		methodDesc("RemoveArtificialPlayer", func(s any) func(context.Context, *RemoveArtificialPlayerRequest) (*GameView, error) {
			return s.(GameServiceServer).RemoveArtificialPlayer
		}),
		methodDesc("CreateChatMessage", func(s any) func(context.Context, *CreateChatMessageRequest) (*GameView, error) {
			return s.(GameServiceServer).CreateChatMessage
		}),
		methodDesc("GetGameView", func(s any) func(context.Context, *GetGameViewRequest) (*GameView, error) {
			return s.(GameServiceServer).GetGameView
		}),
		methodDesc("SearchGames", func(s any) func(context.Context, *SearchGamesRequest) (*SearchGamesResponse, error) {
			return s.(GameServiceServer).SearchGames
		}),
		methodDesc("ListWhiteCardTexts", func(s any) func(context.Context, *ListWhiteCardTextsRequest) (*ListWhiteCardTextsResponse, error) {
			return s.(GameServiceServer).ListWhiteCardTexts
		}),
	},
	Metadata: "gamerpc.proto",
}

func methodDesc[Req, Resp any](name string, bind func(any) func(context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			return unaryHandler(bind(srv))(srv, ctx, dec, interceptor)
		},
	}
}

// RegisterGameServiceServer registers srv against s, the way generated
// code's RegisterXxxServer function would.
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
