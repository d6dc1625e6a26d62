package presenter

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
	alertBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	iconStyle     = lipgloss.NewStyle().PaddingLeft(2)
	rosterStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// buddyStyle paints a nickname with the participant's stroke and fill colors.
func buddyStyle(stroke, fill string) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if stroke != "" {
		s = s.Foreground(lipgloss.Color(stroke))
	}
	if fill != "" {
		s = s.Background(lipgloss.Color(fill))
	}
	return s
}
