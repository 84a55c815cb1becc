// Package apirpc is the hand-written Go binding for the upstream API
// service's card and user lookup RPCs (§1 "explicitly out of scope" /
// §4.J CardFetcher, UserFetcher). The API service itself — persistence,
// full-text indexing, OAuth — lives in a separate repository; this
// package only describes the wire shapes the Game service's collaborator
// implementations (pkg/apiclient) speak to reach it. Same hand-rolled
// JSON-over-gRPC approach as pkg/rpc/gamerpc, for the same reason: no
// protoc toolchain runs while building this module.
package apirpc

type BlackCard struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	AnswerFields int32  `json:"answer_fields"`
}

type WhiteCard struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// GetCustomCardsRequest asks for one page of a cardpack's black+white
// cards. CardFetcher.GetCustomCards loops this until NextPageToken is
// empty, per §4.J's "must paginate internally" contract.
type GetCustomCardsRequest struct {
	CardpackNames []string `json:"cardpack_names"`
	PageToken     string   `json:"page_token"`
}

type GetCustomCardsResponse struct {
	Black         []BlackCard `json:"black"`
	White         []WhiteCard `json:"white"`
	NextPageToken string      `json:"next_page_token"`
}

type GetDefaultCardsRequest struct {
	DefaultCardpackNames []string `json:"default_cardpack_names"`
	PageToken            string   `json:"page_token"`
}

type GetDefaultCardsResponse struct {
	Black         []BlackCard `json:"black"`
	White         []WhiteCard `json:"white"`
	NextPageToken string      `json:"next_page_token"`
}

type GetUserRequest struct {
	UserName string `json:"user_name"`
}

type GetUserResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}
