package apirpc

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const jsonCodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)   { return json.Marshal(v) }
func (jsonCodec) Unmarshal(b []byte, v any) error { return json.Unmarshal(b, v) }
func (jsonCodec) Name() string                    { return jsonCodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

const serviceName = "apirpc.CardUserService"

// CardUserServiceClient is the client-side contract generated code would
// normally produce for the upstream API service's card and user lookups.
type CardUserServiceClient interface {
	GetCustomCards(ctx context.Context, in *GetCustomCardsRequest, opts ...grpc.CallOption) (*GetCustomCardsResponse, error)
	GetDefaultCards(ctx context.Context, in *GetDefaultCardsRequest, opts ...grpc.CallOption) (*GetDefaultCardsResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
}

type cardUserServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCardUserServiceClient(cc grpc.ClientConnInterface) CardUserServiceClient {
	return &cardUserServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, c *cardUserServiceClient, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsonCodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cardUserServiceClient) GetCustomCards(ctx context.Context, in *GetCustomCardsRequest, opts ...grpc.CallOption) (*GetCustomCardsResponse, error) {
	return invoke[GetCustomCardsRequest, GetCustomCardsResponse](ctx, c, "GetCustomCards", in, opts...)
}
func (c *cardUserServiceClient) GetDefaultCards(ctx context.Context, in *GetDefaultCardsRequest, opts ...grpc.CallOption) (*GetDefaultCardsResponse, error) {
	return invoke[GetDefaultCardsRequest, GetDefaultCardsResponse](ctx, c, "GetDefaultCards", in, opts...)
}
func (c *cardUserServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserRequest, GetUserResponse](ctx, c, "GetUser", in, opts...)
}
