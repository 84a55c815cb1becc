// Package apiclient implements collaborators.CardFetcher and
// collaborators.UserFetcher (§4.J) over a gRPC connection to the upstream
// API service. Both card-fetching methods loop over pages internally so
// the Game service always sees the complete set, per §4.J's "must
// paginate internally and return all cards."
package apiclient

import (
	"context"
	"fmt"

	"github.com/blankcards/gameservice/pkg/cards"
	"github.com/blankcards/gameservice/pkg/collaborators"
	"github.com/blankcards/gameservice/pkg/rpc/apirpc"
)

// Client adapts a CardUserServiceClient to the game engine's collaborator
// contracts.
type Client struct {
	rpc apirpc.CardUserServiceClient
}

func New(rpc apirpc.CardUserServiceClient) *Client {
	return &Client{rpc: rpc}
}

var _ collaborators.CardFetcher = (*Client)(nil)
var _ collaborators.UserFetcher = (*Client)(nil)

func blackCardsFromWire(ws []apirpc.BlackCard) []cards.BlackCard {
	out := make([]cards.BlackCard, len(ws))
	for i, w := range ws {
		out[i] = cards.BlackCard{ID: w.ID, Text: w.Text, AnswerFields: cards.AnswerFields(w.AnswerFields)}
	}
	return out
}

func whiteCardsFromWire(ws []apirpc.WhiteCard, kind cards.WhiteCardKind) []cards.WhiteCard {
	out := make([]cards.WhiteCard, len(ws))
	for i, w := range ws {
		out[i] = cards.WhiteCard{Kind: kind, ID: w.ID, Text: w.Text}
	}
	return out
}

// GetCustomCards fetches every custom black and white card across
// cardpackNames, paginating until the upstream service stops returning a
// next_page_token.
func (c *Client) GetCustomCards(ctx context.Context, cardpackNames []string) ([]cards.BlackCard, []cards.WhiteCard, error) {
	var black []cards.BlackCard
	var white []cards.WhiteCard
	token := ""
	for {
		resp, err := c.rpc.GetCustomCards(ctx, &apirpc.GetCustomCardsRequest{
			CardpackNames: cardpackNames,
			PageToken:     token,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("get custom cards: %w", err)
		}
		black = append(black, blackCardsFromWire(resp.Black)...)
		white = append(white, whiteCardsFromWire(resp.White, cards.WhiteCardCustom)...)
		if resp.NextPageToken == "" {
			break
		}
		token = resp.NextPageToken
	}
	return black, white, nil
}

// GetDefaultCards is GetCustomCards's counterpart for curated cardpacks.
func (c *Client) GetDefaultCards(ctx context.Context, defaultCardpackNames []string) ([]cards.BlackCard, []cards.WhiteCard, error) {
	var black []cards.BlackCard
	var white []cards.WhiteCard
	token := ""
	for {
		resp, err := c.rpc.GetDefaultCards(ctx, &apirpc.GetDefaultCardsRequest{
			DefaultCardpackNames: defaultCardpackNames,
			PageToken:            token,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("get default cards: %w", err)
		}
		black = append(black, blackCardsFromWire(resp.Black)...)
		white = append(white, whiteCardsFromWire(resp.White, cards.WhiteCardDefault)...)
		if resp.NextPageToken == "" {
			break
		}
		token = resp.NextPageToken
	}
	return black, white, nil
}

// GetUser resolves userName to its upstream profile.
func (c *Client) GetUser(ctx context.Context, userName string) (collaborators.User, error) {
	resp, err := c.rpc.GetUser(ctx, &apirpc.GetUserRequest{UserName: userName})
	if err != nil {
		return collaborators.User{}, err
	}
	return collaborators.User{Name: resp.Name, DisplayName: resp.DisplayName}, nil
}
