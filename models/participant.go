package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedParticipant is returned when an identity payload is not a
// two-element string array.
var ErrMalformedParticipant = errors.New("malformed participant info")

// ParticipantInfo is the identity a joiner sends back after it has applied
// the favorites snapshot. On the wire it is the array [nickname, color-pair].
type ParticipantInfo struct {
	Nick string
	// Color is the stroke/fill pair, e.g. "#FF0000,#0000FF".
	Color string
}

func (p ParticipantInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{p.Nick, p.Color})
}

func (p *ParticipantInfo) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedParticipant, err)
	}
	if len(arr) != 2 {
		return fmt.Errorf("%w: expected 2 elements, got %d", ErrMalformedParticipant, len(arr))
	}

	p.Nick = arr[0]
	p.Color = arr[1]
	return nil
}

// Colors splits Color into its stroke and fill parts.
func (p ParticipantInfo) Colors() (stroke, fill string) {
	stroke, fill, _ = strings.Cut(p.Color, ",")
	return strings.TrimSpace(stroke), strings.TrimSpace(fill)
}
