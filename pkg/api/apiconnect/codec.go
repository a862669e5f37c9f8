// Package apiconnect wires the splitter.v1 services onto Connect handlers and
// clients. Every handler and client speaks the JSON codec defined here.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// CodecName is the Connect codec name; requests use Content-Type application/json.
const CodecName = "json"

type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return CodecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON returns the option that installs the JSON codec. It satisfies both
// connect.HandlerOption and connect.ClientOption.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
