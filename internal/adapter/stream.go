package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/share-favorites/models"
)

// SendText implements [transport.Tubes]. The text is written as one frame on
// the stream; a broadcast rejected by the hub comes back as an error frame
// and is logged by the read loop.
func (h *hubTubes) SendText(ctx context.Context, tubeID, text string) error {
	select {
	case <-h.done:
		return ErrStreamClosed
	default:
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(h.cfg.Timeout())
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.conn.SetWriteDeadline(deadline)
	if err := h.conn.WriteJSON(models.HubFrame{Type: models.FrameText, TubeID: tubeID, Text: text}); err != nil {
		return fmt.Errorf("write text frame: %w", err)
	}
	return nil
}

func (h *hubTubes) readLoop() {
	for {
		_, data, err := h.conn.ReadMessage()
		if err != nil {
			select {
			case <-h.done:
			default:
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.logger.Error().Err(err).Msg("hub stream closed unexpectedly")
				} else {
					h.logger.Info().Err(err).Msg("hub stream ended")
				}
			}
			return
		}

		var frame models.HubFrame
		if err = json.Unmarshal(data, &frame); err != nil {
			h.logger.Warn().Err(err).Msg("malformed hub frame")
			continue
		}
		h.dispatch(frame)
	}
}

func (h *hubTubes) dispatch(frame models.HubFrame) {
	switch frame.Type {
	case models.FrameTubeAdded:
		if frame.Tube == nil {
			h.logger.Warn().Msg("tube_added frame without tube")
			return
		}
		for _, l := range h.snapshotListeners() {
			l.TubeAdded(*frame.Tube)
		}
	case models.FrameText:
		for _, l := range h.snapshotListeners() {
			l.TextReceived(frame.TubeID, frame.Sender, frame.Text)
		}
	case models.FrameError:
		h.logger.Warn().Str("tube", frame.TubeID).Str("error", frame.Text).Msg("hub rejected text")
	default:
		h.logger.Debug().Str("frame", frame.Type).Msg("ignoring hub frame")
	}
}
