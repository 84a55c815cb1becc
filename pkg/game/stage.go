package game

// Stage is one of the four states in the game's round state machine.
type Stage int

const (
	StageNotRunning Stage = iota
	StagePlayPhase
	StageJudgePhase
	StageRoundEndPhase
)

func (s Stage) String() string {
	switch s {
	case StageNotRunning:
		return "NotRunning"
	case StagePlayPhase:
		return "PlayPhase"
	case StageJudgePhase:
		return "JudgePhase"
	case StageRoundEndPhase:
		return "RoundEndPhase"
	default:
		return "Unknown"
	}
}

// transitionTo updates the stage and records the transition if a logger is
// attached. The mutation effects of a transition (dealing hands, clearing
// the winner, auto-playing bots, ...) live in the RPC-facing methods that
// call transitionTo, not in the stage itself.
func (g *Game) transitionTo(s Stage) {
	g.stage = s
	if g.log != nil {
		g.log.Debugf("game %s: transitioned to %s", g.gameID, s)
	}
}
