package registry

import (
	"context"
	"time"

	"github.com/decred/slog"
)

// Sweeper is the single periodic background task described in §5: it
// acquires the registry mutex once a minute, evicts idle games, releases,
// and stops when its context is cancelled. Grounded on the teacher's
// background-goroutine idiom (pkg/server/server.go's saveTableStateAsync)
// generalized from a fire-and-forget save into a ticking lifecycle task,
// since the original source's clokwerk scheduler has no direct Go
// ecosystem analogue in the examples — a time.Ticker loop is the idiomatic
// replacement.
type Sweeper struct {
	indexer   *GameIndexer
	interval  time.Duration
	threshold time.Duration
	log       slog.Logger
}

func NewSweeper(indexer *GameIndexer, interval, threshold time.Duration, log slog.Logger) *Sweeper {
	return &Sweeper{indexer: indexer, interval: interval, threshold: threshold, log: log}
}

// Run blocks, sweeping every interval until ctx is cancelled. It is meant
// to be launched in its own goroutine from the server's startup path and
// is never invoked from an RPC handler.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweepOnce(now)
		}
	}
}

func (s *Sweeper) sweepOnce(now time.Time) {
	s.indexer.Lock()
	evicted := s.indexer.EvictIdle(now, s.threshold)
	s.indexer.Unlock()

	if s.log != nil && len(evicted) > 0 {
		s.log.Infof("evicted %d idle game(s): %v", len(evicted), evicted)
	}
}
