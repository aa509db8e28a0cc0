// Package api holds the gRPC contract of the bank simulator: request and
// response messages, service descriptors, server interfaces and clients.
// Messages travel as JSON through a codec registered with grpc/encoding, so
// callers must use grpc.CallContentSubtype(CodecName). The clients in this
// package set it on every call.
package api

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("api/codec: marshal %T error %w", v, err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("api/codec: unmarshal %T error %w", v, err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
