package presenter

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/models"
)

func newTestConsole(width int) (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewConsole(&buf, width, models.AlertLater, logger.Nop()), &buf
}

func TestConsole_NotifyAlertAcknowledges(t *testing.T) {
	c, buf := newTestConsole(0)

	acked := 0
	c.NotifyAlert("Share Favorites", "Downloading favorites... please wait.", func() { acked++ })
	c.NotifyAlert("Share Favorites", "no callback", nil)

	assert.Equal(t, 1, acked)
	assert.Contains(t, buf.String(), "Downloading favorites... please wait.")
	assert.Contains(t, buf.String(), "Share Favorites")
}

func TestConsole_RestartAlertAnswers(t *testing.T) {
	tests := []struct {
		name   string
		answer models.AlertResponse
	}{
		{"later", models.AlertLater},
		{"restart", models.AlertRestart},
		{"cancel", models.AlertCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewConsole(&buf, 0, tt.answer, logger.Nop())

			var got []models.AlertResponse
			c.RestartAlert("Warning", "Changes require restart", func(r models.AlertResponse) { got = append(got, r) })

			assert.Equal(t, []models.AlertResponse{tt.answer}, got)
			assert.Contains(t, buf.String(), "Changes require restart")
			assert.Contains(t, buf.String(), "> "+tt.answer.String())
		})
	}
}

func TestConsole_WaitingCursor(t *testing.T) {
	c, buf := newTestConsole(0)

	c.RestoreCursor()
	assert.Empty(t, buf.String())

	c.ShowWaiting()
	c.RestoreCursor()
	assert.Contains(t, buf.String(), "waiting...")
	assert.Contains(t, buf.String(), "ready")
}

func TestConsole_RevealIcon(t *testing.T) {
	c, buf := newTestConsole(0)

	c.RevealIcon("/usr/share/sugar/activities/Foo.activity/activity/foo.svg")
	c.RevealIcon("/tmp/bar.svg")

	assert.Equal(t, []string{
		"/usr/share/sugar/activities/Foo.activity/activity/foo.svg",
		"/tmp/bar.svg",
	}, c.Revealed())
	assert.Contains(t, buf.String(), "foo")
	assert.NotContains(t, buf.String(), ".svg")
}

func TestConsole_RosterRows(t *testing.T) {
	c, buf := newTestConsole(2)

	for _, nick := range []string{"Ann", "Bob", "Cid", "Dee", "Eve"} {
		c.AddBuddy(models.ParticipantInfo{Nick: nick, Color: "#FF0000,#0000FF"})
	}

	rows := c.Roster()
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 2)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 1)
	assert.Equal(t, "Eve", rows[2][0].Nick)
	assert.Contains(t, buf.String(), "Eve")
}

func TestConsole_DefaultRosterWidth(t *testing.T) {
	c, _ := newTestConsole(-1)

	for i := 0; i < DefaultRosterWidth+1; i++ {
		c.AddBuddy(models.ParticipantInfo{Nick: "p"})
	}

	rows := c.Roster()
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], DefaultRosterWidth)
}

func TestConsole_RemovePlaceholder(t *testing.T) {
	c, buf := newTestConsole(0)

	c.RemovePlaceholder()

	assert.Contains(t, buf.String(), "session ready")
}

func TestLoggingSession_Logout(t *testing.T) {
	s := NewLoggingSession(logger.Nop())

	assert.NoError(t, s.Logout(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Logout(ctx), context.Canceled)
}
