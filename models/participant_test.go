package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantInfo_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(ParticipantInfo{Nick: "Alice", Color: "#FF0000,#0000FF"})
	require.NoError(t, err)
	assert.Equal(t, `["Alice","#FF0000,#0000FF"]`, string(b))
}

func TestParticipantInfo_UnmarshalJSON(t *testing.T) {
	var p ParticipantInfo
	require.NoError(t, json.Unmarshal([]byte(`["Bob", "#00FF00,#000000"]`), &p))
	assert.Equal(t, ParticipantInfo{Nick: "Bob", Color: "#00FF00,#000000"}, p)
}

func TestParticipantInfo_UnmarshalJSON_Malformed(t *testing.T) {
	for _, in := range []string{`["only-nick"]`, `{"nick":"x"}`, `["a","b","c"]`, `[1,2]`} {
		var p ParticipantInfo
		err := json.Unmarshal([]byte(in), &p)
		assert.ErrorIs(t, err, ErrMalformedParticipant, in)
	}
}

func TestParticipantInfo_Colors(t *testing.T) {
	tests := []struct {
		color      string
		wantStroke string
		wantFill   string
	}{
		{"#FF0000,#0000FF", "#FF0000", "#0000FF"},
		{"#FF0000, #0000FF", "#FF0000", "#0000FF"},
		{"#FF0000", "#FF0000", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		stroke, fill := ParticipantInfo{Color: tt.color}.Colors()
		assert.Equal(t, tt.wantStroke, stroke, tt.color)
		assert.Equal(t, tt.wantFill, fill, tt.color)
	}
}
