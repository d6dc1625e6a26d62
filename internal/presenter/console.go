// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presenter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/service"
	"github.com/MKhiriev/share-favorites/models"
)

// DefaultRosterWidth is the number of participants per roster row when none
// is configured.
const DefaultRosterWidth = 5

// Console is a terminal [service.Presenter]. Notices are acknowledged as soon
// as they are printed and restart questions get a fixed answer.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	rosterWidth   int
	restartAnswer models.AlertResponse

	waiting  bool
	revealed []string
	roster   [][]models.ParticipantInfo

	logger *logger.Logger
}

var _ service.Presenter = (*Console)(nil)

// NewConsole writes to out. A non-positive rosterWidth uses
// [DefaultRosterWidth].
func NewConsole(out io.Writer, rosterWidth int, restartAnswer models.AlertResponse, log *logger.Logger) *Console {
	if rosterWidth <= 0 {
		rosterWidth = DefaultRosterWidth
	}

	return &Console{
		out:           out,
		rosterWidth:   rosterWidth,
		restartAnswer: restartAnswer,
		logger:        log,
	}
}

func (c *Console) RemovePlaceholder() {
	c.print(statusStyle.Render("session ready"))
}

func (c *Console) ShowWaiting() {
	c.mu.Lock()
	c.waiting = true
	c.mu.Unlock()

	c.print(statusStyle.Render("waiting..."))
}

func (c *Console) RestoreCursor() {
	c.mu.Lock()
	wasWaiting := c.waiting
	c.waiting = false
	c.mu.Unlock()

	if wasWaiting {
		c.print(statusStyle.Render("ready"))
	}
}

// NotifyAlert prints the notice and acknowledges it right away.
func (c *Console) NotifyAlert(title, msg string, onAck func()) {
	c.print(renderAlert(title, msg))
	c.logger.Debug().Str("title", title).Msg("notice acknowledged")

	if onAck != nil {
		onAck()
	}
}

// RestartAlert prints the question and answers it with the configured
// response.
func (c *Console) RestartAlert(title, msg string, onResponse func(models.AlertResponse)) {
	c.print(renderAlert(title, msg+" ["+models.AlertCancel.String()+" / "+
		models.AlertLater.String()+" / "+models.AlertRestart.String()+"]"))
	c.print(statusStyle.Render("> " + c.restartAnswer.String()))

	if onResponse != nil {
		onResponse(c.restartAnswer)
	}
}

func (c *Console) RevealIcon(path string) {
	c.mu.Lock()
	c.revealed = append(c.revealed, path)
	c.mu.Unlock()

	c.print(iconStyle.Render("★ " + strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))))
}

// AddBuddy packs the participant into the last roster row, opening a new row
// when that one is full, and prints the roster.
func (c *Console) AddBuddy(participant models.ParticipantInfo) {
	c.mu.Lock()
	last := len(c.roster) - 1
	if last < 0 || len(c.roster[last]) >= c.rosterWidth {
		c.roster = append(c.roster, make([]models.ParticipantInfo, 0, c.rosterWidth))
		last++
	}
	c.roster[last] = append(c.roster[last], participant)
	view := renderRoster(c.roster)
	c.mu.Unlock()

	c.print(view)
}

// Roster returns a copy of the roster rows.
func (c *Console) Roster() [][]models.ParticipantInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([][]models.ParticipantInfo, len(c.roster))
	for i, row := range c.roster {
		rows[i] = append([]models.ParticipantInfo(nil), row...)
	}
	return rows
}

// Revealed returns the icon paths revealed so far, in order.
func (c *Console) Revealed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.revealed...)
}

func (c *Console) print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintln(c.out, s); err != nil {
		c.logger.Warn().Err(err).Msg("failed to write to console")
	}
}

func renderAlert(title, msg string) string {
	return alertBoxStyle.Render(titleStyle.Render(title) + "\n" + msg)
}

func renderRoster(rows [][]models.ParticipantInfo) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, p := range row {
			stroke, fill := p.Colors()
			cells = append(cells, buddyStyle(stroke, fill).Render(p.Nick))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return rosterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
