// Package collaborators defines the external-service contracts the Game
// service depends on but does not implement: card content, user lookup,
// and change notification (§4.J). Only the interfaces live here — concrete
// implementations (gRPC-backed card/user fetchers, AMQP notifier) are
// wired in cmd/gameserver.
package collaborators

import (
	"context"

	"github.com/blankcards/gameservice/pkg/cards"
)

// User is the subset of the upstream user profile the game engine needs.
type User struct {
	Name        string
	DisplayName string
}

// CardFetcher retrieves card content from the upstream API service. Both
// methods must paginate internally and return the complete set (§4.J);
// errors propagate unchanged to the RPC caller.
type CardFetcher interface {
	GetCustomCards(ctx context.Context, cardpackNames []string) (black []cards.BlackCard, white []cards.WhiteCard, err error)
	GetDefaultCards(ctx context.Context, defaultCardpackNames []string) (black []cards.BlackCard, white []cards.WhiteCard, err error)
}

// UserFetcher resolves a user name to its upstream profile.
type UserFetcher interface {
	GetUser(ctx context.Context, userName string) (User, error)
}

// Notifier fans out a best-effort "game changed" notification. Failures
// must be logged by the implementation, never surfaced to the RPC caller
// (§7).
type Notifier interface {
	GameUpdated(ctx context.Context, userNames []string)
}
