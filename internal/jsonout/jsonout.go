// Package jsonout encodes command output as JSON through sonic.
package jsonout

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Encoder is a JSON encoder.
type Encoder = sonic.Encoder

// Marshal encodes a Go value as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// NewEncoder creates a streaming encoder using the current API config.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}

// SetConfig replaces the API config.
func SetConfig(config *sonic.Config) {
	api = config.Froze()
}
