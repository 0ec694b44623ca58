package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/linkshelf/internal/catalog"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	content := fitLine(m.buildStatusContent(styles, bg), m.width-2)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		Render(content)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("linkshelf", styles.Logo))

	parts = append(parts,
		bg.Render("Records:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", len(m.snapshot.Visible), m.snapshot.Total), styles.Text),
	)

	count, bytes, hidden := m.selectionSummary()
	selStyle := styles.MutedText
	if count > 0 {
		selStyle = styles.SuccessText
	}
	sel := bg.Render("Selected:", styles.MutedText) + bg.Space() +
		bg.Render(fmt.Sprintf("%d", count), selStyle)
	if count > 0 && !compact {
		sel += bg.Space() + bg.Render("(~"+catalog.FormatBytes(bytes)+")", styles.MutedText)
	}
	if hidden > 0 {
		sel += bg.Space() + bg.Render(fmt.Sprintf("+%d hidden", hidden), styles.FaintText)
	}
	parts = append(parts, sel)

	parts = append(parts,
		bg.Render("Sort:", styles.MutedText)+bg.Space()+
			bg.Render(sortLabel(m.snapshot.Sort), styles.AccentText),
	)

	switch {
	case m.snapshot.Busy:
		p := m.snapshot.Progress
		parts = append(parts,
			bg.Render("Exporting", styles.WarningText.Bold(true))+bg.Space()+
				m.progress.ViewAs(p.Percent())+bg.Space()+
				bg.Render(fmt.Sprintf("%d of %d", p.Processed, p.Total), styles.Text),
		)
	case m.snapshot.LastSaved != "" && !compact:
		parts = append(parts,
			bg.Render("Last:", styles.MutedText)+bg.Space()+
				bg.Render(truncateMiddle(m.snapshot.LastSaved, 48), styles.SuccessText),
		)
	}

	if timeStr := m.formatTimestamp(); timeStr != "" && !compact {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	return strings.Join(parts, sep)
}

// selectionSummary counts the selected rows among the visible ones, their
// approximate size, and how many selected rows the filter hides.
func (m Model) selectionSummary() (count int, bytes float64, hidden int) {
	for _, rec := range m.snapshot.Visible {
		if m.snapshot.IsSelected(rec.Quadkey) {
			count++
			bytes += catalog.ParseSize(rec.Size)
		}
	}
	hidden = len(m.snapshot.Selected) - count
	return count, bytes, hidden
}

func sortLabel(st catalog.SortState) string {
	if !st.Active() {
		return "none"
	}
	return st.Field.String() + " " + sortArrow(st, st.Field)
}

// formatTimestamp formats the last change time with relative indicator.
func (m Model) formatTimestamp() string {
	ts := m.snapshot.LastUpdated
	if ts.IsZero() {
		return ""
	}

	timeSince := time.Since(ts)
	timeStr := ts.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"l", "Catalog"},
			{"esc", "Back"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"/", "Filter"},
			{"space", "Toggle"},
			{"a", "All"},
			{"1-4", "Sort"},
			{"x", "Export"},
			{"X", "Dialog"},
			{"o", "Link"},
			{"l", "Log"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(fitLine(strings.Join(segments, sep), m.width-2))
}

// renderStatusLine renders the bottom line: the filter input while editing,
// otherwise the current alert.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var line string
	switch {
	case m.filtering:
		line = bg.Render("Filter", styles.AccentText) + bg.Space() + m.filterInput.View()
	case m.alert.text != "":
		line = bg.Render(m.alert.text, alertStyle(styles, m.alert.level))
	}

	return styles.Footer.Width(m.width).Render(fitLine(line, m.width-2))
}

func alertStyle(styles Styles, level alertLevel) lipgloss.Style {
	switch level {
	case alertSuccess:
		return styles.SuccessText
	case alertWarn:
		return styles.WarningText.Bold(true)
	case alertDanger:
		return styles.DangerText
	default:
		return styles.InfoText
	}
}
