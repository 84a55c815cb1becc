// Package server implements the RPC façade (§4.I): it validates request
// envelopes, resolves the target game via the registry, invokes Game
// methods under the registry's single mutex, and fires best-effort
// notifications after releasing it. Grounded on the teacher's
// pkg/server/lobby.go lock-resolve-mutate-notify pattern, generalized from
// per-table poker RPCs to per-game card-party RPCs.
package server

import (
	"context"
	"time"

	"github.com/decred/slog"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/blankcards/gameservice/pkg/collaborators"
	gm "github.com/blankcards/gameservice/pkg/game"
	"github.com/blankcards/gameservice/pkg/registry"
	"github.com/blankcards/gameservice/pkg/rpc/gamerpc"
)

// Server implements gamerpc.GameServiceServer against an in-memory
// GameIndexer and the external collaborators (§4.J).
type Server struct {
	gamerpc.UnimplementedGameServiceServer

	indexer     *registry.GameIndexer
	cardFetcher collaborators.CardFetcher
	userFetcher collaborators.UserFetcher
	notifier    collaborators.Notifier

	log      slog.Logger // per-mutation subsystem logger, teacher-style
	auditLog *zap.Logger // high-volume SearchGames request audit trail
}

func NewServer(indexer *registry.GameIndexer, cardFetcher collaborators.CardFetcher, userFetcher collaborators.UserFetcher, notifier collaborators.Notifier, log slog.Logger, auditLog *zap.Logger) *Server {
	return &Server{
		indexer:     indexer,
		cardFetcher: cardFetcher,
		userFetcher: userFetcher,
		notifier:    notifier,
		log:         log,
		auditLog:    auditLog,
	}
}

// withGameByID resolves a game by id under the registry lock, applies fn,
// extracts viewerUserName's view (still under the lock — §5 forbids
// extracting a view outside the critical section), and removes the game if
// it is now empty. On success, the best-effort notification fires only
// after the lock is released, per §4.I steps 2-5.
func (s *Server) withGameByID(ctx context.Context, gameID, viewerUserName string, fn func(*gm.Game) error) (gm.GameView, error) {
	s.indexer.Lock()
	g, ok := s.indexer.FindByGameID(gameID)
	if !ok {
		s.indexer.Unlock()
		return gm.GameView{}, notFoundErr("game", gameID)
	}
	err := fn(g)
	view := g.View(viewerUserName)
	names := realUserNames(g)
	if g.IsEmpty() {
		s.indexer.RemoveByGameID(g.GameID())
	}
	s.indexer.Unlock()

	if err == nil {
		s.notify(ctx, names)
	}
	return view, err
}

// withGameByPlayer resolves a game containing userName under the registry
// lock and applies the same post-mutation protocol as withGameByID, using
// userName itself as the view's viewer.
func (s *Server) withGameByPlayer(ctx context.Context, userName string, fn func(*gm.Game) error) (gm.GameView, error) {
	s.indexer.Lock()
	g, ok := s.indexer.FindByPlayerID(cards.NewRealUser(userName))
	if !ok {
		s.indexer.Unlock()
		return gm.GameView{}, notFoundErr("game for user", userName)
	}
	err := fn(g)
	view := g.View(userName)
	names := realUserNames(g)
	if g.IsEmpty() {
		s.indexer.RemoveByGameID(g.GameID())
	}
	s.indexer.Unlock()

	if err == nil {
		s.notify(ctx, names)
	}
	return view, err
}

// viewByID extracts viewerUserName's view of gameID without mutating,
// still under the registry lock for the same reason as withGameByID.
func (s *Server) viewByID(gameID, viewerUserName string) (gm.GameView, error) {
	s.indexer.Lock()
	defer s.indexer.Unlock()
	g, ok := s.indexer.FindByGameID(gameID)
	if !ok {
		return gm.GameView{}, notFoundErr("game", gameID)
	}
	return g.View(viewerUserName), nil
}

// viewByPlayer extracts userName's own view of the game they are in.
func (s *Server) viewByPlayer(userName string) (gm.GameView, error) {
	s.indexer.Lock()
	defer s.indexer.Unlock()
	g, ok := s.indexer.FindByPlayerID(cards.NewRealUser(userName))
	if !ok {
		return gm.GameView{}, notFoundErr("game for user", userName)
	}
	return g.View(userName), nil
}

func realUserNames(g *gm.Game) []string {
	return realUserNamesFromView(g.View(""))
}

func (s *Server) notify(ctx context.Context, userNames []string) {
	if s.notifier == nil || len(userNames) == 0 {
		return
	}
	s.notifier.GameUpdated(ctx, userNames)
}

func (s *Server) now() time.Time {
	return time.Now()
}

func newGameID() string {
	return uuid.NewString()
}
