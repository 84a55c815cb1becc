package server

import (
	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/blankcards/gameservice/pkg/game"
	"github.com/blankcards/gameservice/pkg/rpc/gamerpc"
)

func blackCardFromWire(w gamerpc.BlackCard) cards.BlackCard {
	return cards.BlackCard{ID: w.ID, Text: w.Text, AnswerFields: cards.AnswerFields(w.AnswerFields)}
}

func blackCardToWire(c cards.BlackCard) gamerpc.BlackCard {
	return gamerpc.BlackCard{ID: c.ID, Text: c.Text, AnswerFields: int32(c.AnswerFields)}
}

func whiteCardFromWire(w gamerpc.WhiteCard) cards.WhiteCard {
	kind := cards.WhiteCardCustom
	switch w.Kind {
	case "default":
		kind = cards.WhiteCardDefault
	case "blank":
		kind = cards.WhiteCardBlank
	}
	return cards.WhiteCard{Kind: kind, ID: w.ID, Text: w.Text, InstanceID: w.InstanceID, OpenText: w.OpenText}
}

func whiteCardToWire(c cards.WhiteCard) gamerpc.WhiteCard {
	kind := "custom"
	switch c.Kind {
	case cards.WhiteCardDefault:
		kind = "default"
	case cards.WhiteCardBlank:
		kind = "blank"
	}
	return gamerpc.WhiteCard{Kind: kind, ID: c.ID, Text: c.Text, InstanceID: c.InstanceID, OpenText: c.OpenText}
}

func whiteCardsFromWire(ws []gamerpc.WhiteCard) []cards.WhiteCard {
	out := make([]cards.WhiteCard, len(ws))
	for i, w := range ws {
		out[i] = whiteCardFromWire(w)
	}
	return out
}

func whiteCardsToWire(cs []cards.WhiteCard) []gamerpc.WhiteCard {
	out := make([]gamerpc.WhiteCard, len(cs))
	for i, c := range cs {
		out[i] = whiteCardToWire(c)
	}
	return out
}

func playerIDToWireKindID(id cards.PlayerID) (kind, name string) {
	if id.Kind == cards.ArtificialPlayer {
		return "artificial", id.Name
	}
	return "real", id.Name
}

func gameConfigFromWire(w gamerpc.GameConfig) game.GameConfig {
	behavior := game.BlankDisabled
	if w.BlankBehavior == "open_text" {
		behavior = game.BlankOpenText
	}

	amount := game.BlankAmount{Unset: behavior == game.BlankDisabled}
	if !amount.Unset {
		amount.IsCount = w.BlankAmountIsCount
		amount.Count = int(w.BlankAmountCount)
		amount.Percentage = w.BlankAmountPercentage
	}

	return game.GameConfig{
		DisplayName:          w.DisplayName,
		MaxPlayers:           int(w.MaxPlayers),
		EndCondition:         game.EndCondition{Endless: w.Endless, MaxScore: int(w.MaxScore)},
		HandSize:             int(w.HandSize),
		CustomCardpackNames:  w.CustomCardpackNames,
		DefaultCardpackNames: w.DefaultCardpackNames,
		BlankWhiteCardConfig: game.BlankWhiteCardConfig{Behavior: behavior, Amount: amount},
	}
}

func playerViewToWire(p game.PlayerView) gamerpc.PlayerView {
	kind, id := playerIDToWireKindID(p.ID)
	return gamerpc.PlayerView{
		Kind:         kind,
		ID:           id,
		DisplayName:  p.DisplayName,
		JoinTimeUnix: p.JoinTime.Unix(),
		Score:        int32(p.Score),
	}
}

func playerViewsToWire(ps []game.PlayerView) []gamerpc.PlayerView {
	out := make([]gamerpc.PlayerView, len(ps))
	for i, p := range ps {
		out[i] = playerViewToWire(p)
	}
	return out
}

func playedCardViewToWire(p game.PlayedCardView) gamerpc.PlayedCardView {
	out := gamerpc.PlayedCardView{Cards: whiteCardsToWire(p.Cards)}
	if p.Player != nil {
		out.HasPlayer = true
		out.PlayerKind, out.PlayerID = playerIDToWireKindID(*p.Player)
	}
	return out
}

func playedCardViewsToWire(ps []game.PlayedCardView) []gamerpc.PlayedCardView {
	out := make([]gamerpc.PlayedCardView, len(ps))
	for i, p := range ps {
		out[i] = playedCardViewToWire(p)
	}
	return out
}

func pastRoundToWire(r game.PastRound) gamerpc.PastRound {
	judgeKind, judgeID := playerIDToWireKindID(r.Judge)
	out := gamerpc.PastRound{
		BlackCard:   blackCardToWire(r.BlackCard),
		WhitePlayed: playedCardViewsToWire(r.WhitePlayed),
		JudgeKind:   judgeKind,
		JudgeID:     judgeID,
	}
	if r.Winner != nil {
		out.HasWinner = true
		out.WinnerKind, out.WinnerID = playerIDToWireKindID(*r.Winner)
	}
	return out
}

func pastRoundsToWire(rs []game.PastRound) []gamerpc.PastRound {
	out := make([]gamerpc.PastRound, len(rs))
	for i, r := range rs {
		out[i] = pastRoundToWire(r)
	}
	return out
}

func chatMessageToWire(m game.ChatMessage) gamerpc.ChatMessage {
	return gamerpc.ChatMessage{User: m.User, Text: m.Text, CreateTimeUnix: m.CreateTime.Unix()}
}

func chatMessagesToWire(ms []game.ChatMessage) []gamerpc.ChatMessage {
	out := make([]gamerpc.ChatMessage, len(ms))
	for i, m := range ms {
		out[i] = chatMessageToWire(m)
	}
	return out
}

func gameViewToWire(v game.GameView) *gamerpc.GameView {
	_, ownerID := playerIDToWireKindID(v.Owner)

	out := &gamerpc.GameView{
		GameID:               v.GameID,
		DisplayName:          v.DisplayName,
		Stage:                v.Stage.String(),
		CreateTimeUnix:       v.CreateTime.Unix(),
		LastActivityTimeUnix: v.LastActivityTime.Unix(),
		Hand:                 whiteCardsToWire(v.Hand),
		Players:              playerViewsToWire(v.Players),
		QueuedPlayers:        playerViewsToWire(v.QueuedPlayers),
		BannedUsers:          v.BannedUsers,
		Owner:                ownerID,
		WhitePlayed:          playedCardViewsToWire(v.WhitePlayed),
		ChatMessages:         chatMessagesToWire(v.ChatMessages),
		PastRounds:           pastRoundsToWire(v.PastRounds),
	}
	if v.Judge != nil {
		out.HasJudge = true
		out.JudgeKind, out.JudgeID = playerIDToWireKindID(*v.Judge)
	}
	if v.Winner != nil {
		out.HasWinner = true
		out.WinnerKind, out.WinnerID = playerIDToWireKindID(*v.Winner)
	}
	if v.CurrentBlackCard != nil {
		out.HasCurrentBlackCard = true
		out.CurrentBlackCard = blackCardToWire(*v.CurrentBlackCard)
	}
	return out
}

func gameInfoToWire(i game.GameInfo) gamerpc.GameInfo {
	return gamerpc.GameInfo{
		GameID:               i.GameID,
		DisplayName:          i.DisplayName,
		PlayerCount:          int32(i.PlayerCount),
		MaxPlayers:           int32(i.MaxPlayers),
		Owner:                i.Owner,
		IsRunning:            i.IsRunning,
		CreateTimeUnix:       i.CreateTime.Unix(),
		LastActivityTimeUnix: i.LastActivityTime.Unix(),
	}
}
