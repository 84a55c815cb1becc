// Package gamerpc is the hand-written Go binding for gamerpc.proto (§6).
// It is dispatched over a real google.golang.org/grpc server/client using
// a JSON wire codec (codec.go) instead of generated protobuf bindings,
// since no protoc toolchain runs while building this module. Field names
// and shapes track the .proto file exactly.
package gamerpc

type Empty struct{}

type BlackCard struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	AnswerFields int32  `json:"answer_fields"`
}

type WhiteCard struct {
	Kind       string `json:"kind"` // "custom" | "default" | "blank"
	ID         string `json:"id,omitempty"`
	Text       string `json:"text,omitempty"`
	InstanceID string `json:"instance_id,omitempty"`
	OpenText   string `json:"open_text,omitempty"`
}

type GameConfig struct {
	DisplayName           string   `json:"display_name"`
	MaxPlayers            int32    `json:"max_players"`
	Endless               bool     `json:"endless"`
	MaxScore              int32    `json:"max_score"`
	HandSize              int32    `json:"hand_size"`
	CustomCardpackNames   []string `json:"custom_cardpack_names"`
	DefaultCardpackNames  []string `json:"default_cardpack_names"`
	BlankBehavior         string   `json:"blank_behavior"` // "disabled" | "open_text"
	BlankAmountIsCount    bool     `json:"blank_amount_is_count"`
	BlankAmountCount      int32    `json:"blank_amount_count"`
	BlankAmountPercentage float64  `json:"blank_amount_percentage"`
}

type PlayerView struct {
	Kind        string `json:"kind"` // "real" | "artificial"
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	JoinTimeUnix int64 `json:"join_time_unix"`
	Score       int32  `json:"score"`
}

type PlayedCardView struct {
	HasPlayer  bool        `json:"has_player"`
	PlayerKind string      `json:"player_kind,omitempty"`
	PlayerID   string      `json:"player_id,omitempty"`
	Cards      []WhiteCard `json:"cards,omitempty"`
}

type PastRound struct {
	BlackCard   BlackCard        `json:"black_card"`
	WhitePlayed []PlayedCardView `json:"white_played"`
	JudgeKind   string           `json:"judge_kind"`
	JudgeID     string           `json:"judge_id"`
	HasWinner   bool             `json:"has_winner"`
	WinnerKind  string           `json:"winner_kind,omitempty"`
	WinnerID    string           `json:"winner_id,omitempty"`
}

type ChatMessage struct {
	User           string `json:"user"`
	Text           string `json:"text"`
	CreateTimeUnix int64  `json:"create_time_unix"`
}

type GameView struct {
	GameID               string `json:"game_id"`
	DisplayName          string `json:"display_name"`
	Stage                string `json:"stage"`
	CreateTimeUnix       int64  `json:"create_time_unix"`
	LastActivityTimeUnix int64  `json:"last_activity_time_unix"`

	Hand          []WhiteCard  `json:"hand"`
	Players       []PlayerView `json:"players"`
	QueuedPlayers []PlayerView `json:"queued_players"`
	BannedUsers   []string     `json:"banned_users"`
	Owner         string       `json:"owner"`
	HasJudge      bool         `json:"has_judge"`
	JudgeKind     string       `json:"judge_kind,omitempty"`
	JudgeID       string       `json:"judge_id,omitempty"`
	HasWinner     bool         `json:"has_winner"`
	WinnerKind    string       `json:"winner_kind,omitempty"`
	WinnerID      string       `json:"winner_id,omitempty"`

	HasCurrentBlackCard bool             `json:"has_current_black_card"`
	CurrentBlackCard    BlackCard        `json:"current_black_card,omitempty"`
	WhitePlayed         []PlayedCardView `json:"white_played"`

	ChatMessages []ChatMessage `json:"chat_messages"`
	PastRounds   []PastRound   `json:"past_rounds"`
}

type GameInfo struct {
	GameID               string `json:"game_id"`
	DisplayName          string `json:"display_name"`
	PlayerCount          int32  `json:"player_count"`
	MaxPlayers           int32  `json:"max_players"`
	Owner                string `json:"owner"`
	IsRunning            bool   `json:"is_running"`
	CreateTimeUnix       int64  `json:"create_time_unix"`
	LastActivityTimeUnix int64  `json:"last_activity_time_unix"`
}

type CreateGameRequest struct {
	UserName   string     `json:"user_name"`
	GameConfig GameConfig `json:"game_config"`
}

type StartGameRequest struct{ UserName string `json:"user_name"` }
type StopGameRequest struct{ UserName string `json:"user_name"` }

type JoinGameRequest struct {
	UserName string `json:"user_name"`
	GameID   string `json:"game_id"`
}

type LeaveGameRequest struct{ UserName string `json:"user_name"` }

type KickUserRequest struct {
	UserName      string `json:"user_name"`
	TrollUserName string `json:"troll_user_name"`
}

type BanUserRequest struct {
	UserName      string `json:"user_name"`
	TrollUserName string `json:"troll_user_name"`
}

type UnbanUserRequest struct {
	UserName      string `json:"user_name"`
	TrollUserName string `json:"troll_user_name"`
}

type PlayCardsRequest struct {
	UserName string      `json:"user_name"`
	Cards    []WhiteCard `json:"cards"`
}

type UnplayCardsRequest struct{ UserName string `json:"user_name"` }

type VoteCardRequest struct {
	UserName string `json:"user_name"`
	Choice   int32  `json:"choice"`
}

type VoteStartNextRoundRequest struct{ UserName string `json:"user_name"` }

type AddArtificialPlayerRequest struct {
	UserName    string `json:"user_name"`
	DisplayName string `json:"display_name"`
}

type RemoveArtificialPlayerRequest struct {
	UserName           string `json:"user_name"`
	ArtificialPlayerID string `json:"artificial_player_id"`
}

type CreateChatMessageRequest struct {
	UserName string `json:"user_name"`
	Text     string `json:"text"`
}

type GetGameViewRequest struct{ UserName string `json:"user_name"` }

type SearchGamesRequest struct {
	Query                   string `json:"query"`
	MinAvailablePlayerSlots int32  `json:"min_available_player_slots"`
	GameStageFilter         string `json:"game_stage_filter"`
}

type SearchGamesResponse struct {
	Games []GameInfo `json:"games"`
}

type ListWhiteCardTextsRequest struct {
	GameID    string `json:"game_id"`
	Filter    string `json:"filter"`
	PageSize  int32  `json:"page_size"`
	PageToken string `json:"page_token"`
}

type ListWhiteCardTextsResponse struct {
	CardTexts     []string `json:"card_texts"`
	NextPageToken string   `json:"next_page_token"`
	TotalSize     int32    `json:"total_size"`
}
