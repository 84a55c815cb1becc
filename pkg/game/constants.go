package game

import "time"

// Bounds on ValidatedGameConfig, grounded on shared/src/constants.rs.
const (
	MinPlayerLimit = 2
	MaxPlayerLimit = 100

	MinScoreLimit = 1
	MaxScoreLimit = 100

	MinHandSize = 3
	MaxHandSize = 20

	// MinPlayersToPlay is the combined real+bot headcount required to
	// start a round.
	MinPlayersToPlay = 3

	MaxBlankPercentage = 0.8
	MaxBlankCardCount  = 10000

	MaxChatMessages = 100

	// IdleEvictionThreshold is the default duration a game may sit
	// without activity before the sweeper reclaims it.
	IdleEvictionThreshold = 4 * time.Hour
)
