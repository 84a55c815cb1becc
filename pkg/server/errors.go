package server

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	gm "github.com/blankcards/gameservice/pkg/game"
)

func notFoundErr(kind, id string) error {
	return status.Errorf(codes.NotFound, "%s %q not found", kind, id)
}

// toStatus maps a game-engine error to its gRPC status 1:1 (§7). Errors
// that already carry a gRPC status (e.g. upstream CardFetcher/UserFetcher
// errors) pass through unchanged; any other error, including plain
// non-engine errors such as context cancellation, maps to Internal.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch gm.CodeOf(err) {
	case gm.CodeInvalidArgument:
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprintf("internal error: %v", err))
	}
}
