package platform

import (
	"encoding/json"

	"github.com/go-drift/skeleton/pkg/errors"
)

// MessageCodec decodes event payloads sent by the host.
type MessageCodec interface {
	// Decode converts bytes received from the host to a Go value.
	Decode(data []byte) (any, error)
}

// JsonCodec implements MessageCodec using JSON encoding.
type JsonCodec struct{}

// Decode deserializes JSON bytes to a Go value.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultCodec is the codec used by HandleMessage.
var DefaultCodec MessageCodec = JsonCodec{}

// HandleMessage decodes an encoded appearance event with DefaultCodec and
// applies it like HandleEvent. Undecodable payloads are reported and ignored.
func (a *AppearanceService) HandleMessage(data []byte) {
	event, err := DefaultCodec.Decode(data)
	if err != nil {
		errors.ReportError("platform.AppearanceService.HandleMessage", errors.KindParsing, err)
		return
	}
	a.HandleEvent(event)
}
