package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/linkshelf/internal/catalog"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// detailModal shows one record with its full download link.
type detailModal struct {
	rec catalog.Record
}

func newDetailModal(rec catalog.Record) *detailModal {
	return &detailModal{rec: rec}
}

// Update closes on any key.
func (d *detailModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return d, nil, true
	}
	return d, nil, false
}

func (d *detailModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	modalWidth := clamp(width-8, 30, 100)

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)).Width(10)
	row := func(name, value string, style lipgloss.Style) string {
		return label.Render(name) + style.Render(value)
	}

	size := styles.Text
	if catalog.IsLarge(d.rec.Size) {
		size = styles.DangerText
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(d.rec.Region))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", modalWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(row("Quadkey", d.rec.Quadkey, styles.InfoText))
	b.WriteString("\n")
	b.WriteString(row("Size", d.rec.Size, size))
	b.WriteString("\n")
	b.WriteString(row("Updated", d.rec.Updated, styles.Text))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Direct download URL"))
	b.WriteString("\n")
	// URLs have no spaces, so break them by hand to keep them whole on screen.
	b.WriteString(styles.AccentText.Render(hardWrap(d.rec.URL, modalWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("any key to close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// hardWrap splits s into lines of at most width runes.
func hardWrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	var lines []string
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	lines = append(lines, string(runes))
	return strings.Join(lines, "\n")
}
