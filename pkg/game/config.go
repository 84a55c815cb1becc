package game

import "strings"

// EndCondition is exactly one of MaxScore(k) or Endless.
type EndCondition struct {
	Endless  bool
	MaxScore int // valid only when !Endless
}

// BlankBehavior controls whether a WhiteCardDeck is seeded with
// player-authored blank white cards, and if so how they are filled in.
type BlankBehavior int

const (
	BlankDisabled BlankBehavior = iota
	BlankOpenText
)

// BlankAmount is exactly one of CardCount(k) or Percentage(p); Unset means
// the config carries no amount (legal only alongside BlankDisabled).
type BlankAmount struct {
	Unset      bool
	IsCount    bool // true: Count is meaningful; false: Percentage is
	Count      int
	Percentage float64
}

// BlankWhiteCardConfig configures how many synthetic blank white cards a
// WhiteCardDeck is seeded with.
type BlankWhiteCardConfig struct {
	Behavior BlankBehavior
	Amount   BlankAmount
}

// GameConfig is the raw, unvalidated wire-level configuration for a game.
type GameConfig struct {
	DisplayName           string
	MaxPlayers            int
	EndCondition           EndCondition
	HandSize              int
	CustomCardpackNames   []string
	DefaultCardpackNames  []string
	BlankWhiteCardConfig  BlankWhiteCardConfig
}

// ValidatedGameConfig is an immutable, bounds-checked configuration,
// constructed once at game creation. Every method that consults it takes a
// reference and never re-validates.
type ValidatedGameConfig struct {
	displayName          string
	maxPlayers           int
	endCondition         EndCondition
	handSize             int
	customCardpackNames  []string
	defaultCardpackNames []string
	blankConfig          BlankWhiteCardConfig
}

func (c *ValidatedGameConfig) DisplayName() string            { return c.displayName }
func (c *ValidatedGameConfig) MaxPlayers() int                { return c.maxPlayers }
func (c *ValidatedGameConfig) EndCondition() EndCondition      { return c.endCondition }
func (c *ValidatedGameConfig) HandSize() int                  { return c.handSize }
func (c *ValidatedGameConfig) CustomCardpackNames() []string  { return c.customCardpackNames }
func (c *ValidatedGameConfig) DefaultCardpackNames() []string { return c.defaultCardpackNames }
func (c *ValidatedGameConfig) BlankConfig() BlankWhiteCardConfig {
	return c.blankConfig
}

// NewValidatedGameConfig validates raw, enforcing the bounds from §4.K.
func NewValidatedGameConfig(cfg GameConfig) (*ValidatedGameConfig, error) {
	displayName := strings.TrimSpace(cfg.DisplayName)
	if displayName == "" {
		return nil, invalidArgument("display_name must not be empty")
	}

	if cfg.MaxPlayers < MinPlayerLimit || cfg.MaxPlayers > MaxPlayerLimit {
		return nil, invalidArgument("max_players must be in [%d, %d]", MinPlayerLimit, MaxPlayerLimit)
	}

	if !cfg.EndCondition.Endless {
		if cfg.EndCondition.MaxScore < MinScoreLimit || cfg.EndCondition.MaxScore > MaxScoreLimit {
			return nil, invalidArgument("max_score must be in [%d, %d]", MinScoreLimit, MaxScoreLimit)
		}
	}

	if cfg.HandSize < MinHandSize || cfg.HandSize > MaxHandSize {
		return nil, invalidArgument("hand_size must be in [%d, %d]", MinHandSize, MaxHandSize)
	}

	custom := nonEmptyStrings(cfg.CustomCardpackNames)
	def := nonEmptyStrings(cfg.DefaultCardpackNames)
	if len(custom) == 0 && len(def) == 0 {
		return nil, invalidArgument("at least one cardpack name is required")
	}

	blank := cfg.BlankWhiteCardConfig
	switch blank.Behavior {
	case BlankDisabled:
		blank.Amount = BlankAmount{Unset: true}
	case BlankOpenText:
		if blank.Amount.Unset {
			return nil, invalidArgument("blank_white_cards_added must be present when blanks are enabled")
		}
		if blank.Amount.IsCount {
			if blank.Amount.Count < 0 || blank.Amount.Count > MaxBlankCardCount {
				return nil, invalidArgument("blank card count must be in [0, %d]", MaxBlankCardCount)
			}
		} else {
			if blank.Amount.Percentage < 0 || blank.Amount.Percentage > MaxBlankPercentage {
				return nil, invalidArgument("blank percentage must be in [0, %.2f]", MaxBlankPercentage)
			}
		}
	default:
		return nil, invalidArgument("unrecognized blank_white_card_config.behavior")
	}

	return &ValidatedGameConfig{
		displayName:          displayName,
		maxPlayers:           cfg.MaxPlayers,
		endCondition:         cfg.EndCondition,
		handSize:             cfg.HandSize,
		customCardpackNames:  custom,
		defaultCardpackNames: def,
		blankConfig:          blank,
	}, nil
}

func nonEmptyStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
