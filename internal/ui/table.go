package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/linkshelf/internal/catalog"
)

// tableRows is the number of record rows that fit inside the catalog box.
// Header, command bar and status line sit outside it; borders and the column
// header sit inside.
func (m Model) tableRows() int {
	return max(m.height-chromeRows-2, 1)
}

// currentRecord returns the record under the cursor.
func (m Model) currentRecord() (catalog.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Visible) {
		return catalog.Record{}, false
	}
	return m.snapshot.Visible[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.ensureCursorVisible()
}

// ensureCursorVisible clamps the cursor to the visible rows and scrolls the
// window so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	n := len(m.snapshot.Visible)
	if n == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	m.cursor = clamp(m.cursor, 0, n-1)

	rows := m.tableRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = clamp(m.offset, 0, max(n-rows, 0))
}

// columnWidths splits the inner box width between the columns. Updated is
// dropped on narrow terminals.
type columnWidths struct {
	region  int
	updated int
}

func (m Model) columns(inner int) columnWidths {
	showUpdated := m.width >= LayoutUpdatedWidth
	fixed := colCheckWidth + colQuadkeyWidth + 1 + colSizeWidth + 1
	w := columnWidths{}
	if showUpdated {
		w.updated = colUpdatedWidth
		fixed += 1 + colUpdatedWidth
	}
	w.region = max(inner-fixed, colRegionMin)
	return w
}

// sortArrow returns the header marker for field.
func sortArrow(st catalog.SortState, field catalog.SortField) string {
	if st.Field != field {
		return "↕"
	}
	switch st.Direction {
	case catalog.DirectionAsc:
		return "▲"
	case catalog.DirectionDesc:
		return "▼"
	default:
		return "↕"
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// renderCatalog renders the boxed record table.
func (m Model) renderCatalog() string {
	contentHeight := m.height - 3 // header, command bar, status line
	inner := m.width - 2

	title := fmt.Sprintf("Catalog (%d/%d)", len(m.snapshot.Visible), m.snapshot.Total)
	if m.snapshot.Query != "" {
		title += " /" + truncate(m.snapshot.Query, 18)
	}

	var content string
	if len(m.snapshot.Visible) == 0 {
		styles := m.theme.Styles()
		empty := lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.TableBg)).
			Render(styles.MutedText.Background(lipgloss.Color(m.theme.TableBg)).Render(msgNoMatches))
		content = m.renderColumnHeader(inner) + "\n" +
			lipgloss.Place(inner, max(contentHeight-3, 1), lipgloss.Center, lipgloss.Center, empty,
				lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.TableBg)))
	} else {
		content = m.renderColumnHeader(inner) + "\n" + m.renderRows(inner)
	}

	return m.renderTitledBox(title, content, m.width, contentHeight)
}

func (m Model) renderColumnHeader(inner int) string {
	bgColor := m.theme.TableBg
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	cols := m.columns(inner)
	st := m.snapshot.Sort

	label := func(name string, field catalog.SortField) string {
		return name + " " + sortArrow(st, field)
	}

	headStyle := styles.AccentText.Bold(true)
	parts := []string{
		bg.Render(padRight(checkbox(m.snapshot.AllSelected), colCheckWidth), styles.MutedText),
		bg.Render(padRight(label("Region", catalog.FieldRegion), cols.region), headStyle),
		bg.Render(padRight(label("Quadkey", catalog.FieldQuadkey), colQuadkeyWidth), headStyle),
		bg.Render(padLeft(label("Size", catalog.FieldSize), colSizeWidth), headStyle),
	}
	if cols.updated > 0 {
		parts = append(parts, bg.Render(padRight(label("Updated", catalog.FieldUpdated), cols.updated), headStyle))
	}

	line := parts[0] + strings.Join(parts[1:], bg.Space())
	return lipgloss.NewStyle().Background(lipgloss.Color(bgColor)).Width(inner).Render(line)
}

// renderRows renders the window of rows starting at offset.
func (m Model) renderRows(inner int) string {
	rows := m.tableRows()
	end := min(m.offset+rows, len(m.snapshot.Visible))

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		rec := m.snapshot.Visible[i]
		selected := i == m.cursor
		bgColor := m.theme.TableBg
		if selected {
			bgColor = m.theme.CursorBg
		}
		content := m.formatRow(rec, inner, bgColor, selected)
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(bgColor)).
			Width(inner).
			Render(content))
	}
	return strings.Join(lines, "\n")
}

// formatRow formats one record. The cursor row uses CursorText throughout
// for contrast.
func (m Model) formatRow(rec catalog.Record, inner int, bgColor string, cursor bool) string {
	bg := NewBgStyle(bgColor)
	cols := m.columns(inner)
	checked := m.snapshot.IsSelected(rec.Quadkey)

	var checkStyle, regionStyle, quadStyle, sizeStyle, dateStyle lipgloss.Style
	if cursor {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.CursorText))
		checkStyle, regionStyle, quadStyle, sizeStyle, dateStyle = sel, sel, sel, sel, sel
		if catalog.IsLarge(rec.Size) {
			sizeStyle = sel.Bold(true)
		}
	} else {
		styles := m.theme.Styles()
		checkStyle = styles.MutedText
		if checked {
			checkStyle = styles.Checked
		}
		regionStyle = styles.Text
		quadStyle = styles.InfoText
		sizeStyle = styles.Text
		if catalog.IsLarge(rec.Size) {
			sizeStyle = styles.DangerText
		}
		dateStyle = styles.MutedText
	}

	parts := []string{
		bg.Render(padRight(checkbox(checked), colCheckWidth), checkStyle),
		bg.Render(padRight(truncate(rec.Region, cols.region), cols.region), regionStyle),
		bg.Render(padRight(rec.Quadkey, colQuadkeyWidth), quadStyle),
		bg.Render(padLeft(rec.Size, colSizeWidth), sizeStyle),
	}
	if cols.updated > 0 {
		parts = append(parts, bg.Render(padRight(rec.Updated, cols.updated), dateStyle))
	}
	return parts[0] + strings.Join(parts[1:], bg.Space())
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bg := NewBgStyle(m.theme.TableBg)
	bgColor := lipgloss.Color(m.theme.TableBg)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BorderActive))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	paddedLines := make([]string, 0, max(boxHeight, 0))
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
