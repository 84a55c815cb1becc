package gamerpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodecName is registered as this service's wire codec. gRPC's codec
// registry is a first-class, documented extension point (the same one
// grpc-gateway and numerous real services use for JSON-over-gRPC); it lets
// this package ride real google.golang.org/grpc transport, framing, and
// status-code plumbing without hand-fabricating protobuf descriptors for
// every message above, which generated code would normally supply.
const jsonCodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// callContentSubtype returns the content subtype that selects
// jsonCodecName. Since it is not the transport's compiled-in default,
// callers must select it per call; the client in client.go does so with
// grpc.CallContentSubtype(jsonCodecName).
func callContentSubtype() string {
	return jsonCodecName
}
