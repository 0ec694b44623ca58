package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/linkshelf/internal/catalog"
	"github.com/five82/linkshelf/internal/selection"
)

const dialogRows = 12

// exportDialog picks records for one export. It starts with every record it
// was opened with selected and keeps its own selection, separate from the
// table's.
type exportDialog struct {
	records   []catalog.Record
	selected  *selection.Set
	search    textinput.Model
	searching bool
	cursor    int
	busy      bool
	progress  catalog.Progress
	bar       progress.Model
	message   string
}

func newExportDialog(records []catalog.Record, theme Theme) *exportDialog {
	recs := make([]catalog.Record, len(records))
	copy(recs, records)

	si := textinput.New()
	si.Prompt = "quadkey: "
	si.Placeholder = "search"
	si.CharLimit = 32

	return &exportDialog{
		records:  recs,
		selected: selection.New(catalog.Quadkeys(recs)...),
		search:   si,
		bar:      newProgressBar(theme),
	}
}

// shown returns the records matching the quadkey search.
func (d *exportDialog) shown() []catalog.Record {
	q := d.search.Value()
	if q == "" {
		return d.records
	}
	var out []catalog.Record
	for _, r := range d.records {
		if strings.Contains(r.Quadkey, q) {
			out = append(out, r)
		}
	}
	return out
}

// chosen returns every selected record, including ones the search hides.
func (d *exportDialog) chosen() []catalog.Record {
	var out []catalog.Record
	for _, r := range d.records {
		if d.selected.IsSelected(r.Quadkey) {
			out = append(out, r)
		}
	}
	return out
}

func (d *exportDialog) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case exportProgressMsg:
		d.progress = catalog.Progress(msg)
		return d, nil, false

	case exportDoneMsg:
		d.busy = false
		if msg.err == nil {
			return d, nil, true
		}
		d.message = alertText(msg.err)
		return d, nil, false

	case tea.KeyMsg:
		if d.busy {
			return d, nil, false
		}
		if d.searching {
			return d.handleSearchKey(msg, keys)
		}
		return d.handleKey(msg, keys)
	}
	return d, nil, false
}

func (d *exportDialog) handleSearchKey(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Confirm):
		d.searching = false
		d.search.Blur()
		return d, nil, false
	case key.Matches(msg, keys.Escape):
		d.searching = false
		d.search.Blur()
		d.search.SetValue("")
		d.cursor = 0
		return d, nil, false
	}

	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	d.cursor = clamp(d.cursor, 0, max(len(d.shown())-1, 0))
	return d, cmd, false
}

func (d *exportDialog) handleKey(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	shown := d.shown()
	d.message = ""

	switch {
	case key.Matches(msg, keys.Escape):
		if d.search.Value() != "" {
			d.search.SetValue("")
			d.cursor = 0
			return d, nil, false
		}
		return d, nil, true

	case key.Matches(msg, keys.Filter):
		d.searching = true
		return d, d.search.Focus(), false

	case key.Matches(msg, keys.Toggle):
		if d.cursor < len(shown) {
			d.selected.Toggle(shown[d.cursor].Quadkey)
		}

	case key.Matches(msg, keys.ToggleAll):
		d.selected.ToggleAll(catalog.Quadkeys(shown))

	case key.Matches(msg, keys.Confirm):
		recs := d.chosen()
		if len(recs) == 0 {
			d.message = msgEmptySelection
			return d, nil, false
		}
		d.busy = true
		d.progress = catalog.Progress{Total: len(recs)}
		return d, func() tea.Msg { return exportRequestMsg{records: recs, keepSelection: true} }, false

	case key.Matches(msg, keys.Down):
		d.cursor = clamp(d.cursor+1, 0, max(len(shown)-1, 0))
	case key.Matches(msg, keys.Up):
		d.cursor = clamp(d.cursor-1, 0, max(len(shown)-1, 0))
	case key.Matches(msg, keys.Top):
		d.cursor = 0
	case key.Matches(msg, keys.Bottom):
		d.cursor = max(len(shown)-1, 0)
	}
	return d, nil, false
}

func (d *exportDialog) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	modalWidth := clamp(width-8, 40, 72)
	inner := modalWidth - 6

	shown := d.shown()
	chosen := d.chosen()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Export links"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d of %d selected, ~%s",
		len(chosen), len(d.records), catalog.FormatBytes(catalog.TotalSize(chosen)))))
	b.WriteString("\n\n")

	if d.searching || d.search.Value() != "" {
		b.WriteString(d.search.View())
		b.WriteString("\n\n")
	}

	start := clamp(d.cursor-dialogRows/2, 0, max(len(shown)-dialogRows, 0))
	end := min(start+dialogRows, len(shown))
	if len(shown) == 0 {
		b.WriteString(styles.MutedText.Render(msgNoMatches))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		rec := shown[i]
		on := d.selected.IsSelected(rec.Quadkey)
		line := padRight(checkbox(on), colCheckWidth) +
			padRight(rec.Quadkey, colQuadkeyWidth) +
			padRight(truncate(rec.Region, inner-colCheckWidth-colQuadkeyWidth-colSizeWidth-1), inner-colCheckWidth-colQuadkeyWidth-colSizeWidth-1) + " " +
			padLeft(rec.Size, colSizeWidth)
		style := styles.Text
		if i == d.cursor {
			style = styles.Selected
		} else if on {
			style = styles.Checked.Bold(false)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if d.busy {
		d.bar.Width = max(inner-16, 10)
		b.WriteString(d.bar.ViewAs(d.progress.Percent()))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d of %d", d.progress.Processed, d.progress.Total)))
		b.WriteString("\n")
	} else if d.message != "" {
		b.WriteString(styles.WarningText.Bold(true).Render(d.message))
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("space toggle · a all · / search · enter export · esc cancel"))

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
