package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/linkshelf/internal/logtail"
)

// initLogViewport initializes the log viewport.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(max(m.width-4, 1), max(m.height-5, 1))
	m.logViewport.Style = lipgloss.NewStyle()
}

// updateLogViewport resizes the viewport and reloads its content. The view
// follows the newest line unless the user scrolled up.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	atBottom := m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0

	// Box height = m.height - 3 (header, cmdbar, status line); inner = box - 2.
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = max(m.height-5, 1)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.TableBg))
	m.logViewport.SetContent(m.renderLogContent())

	if atBottom {
		m.logViewport.GotoBottom()
	}
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	title := "Activity"
	if path := m.cfg.LogPath; path != "" {
		title += " " + truncateMiddle(path, max(m.width/2, 10))
	}
	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.height-3)
}

// renderLogContent colors each formatted line by its level.
func (m *Model) renderLogContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.TableBg)
	bg := NewBgStyle(m.theme.TableBg)

	if len(m.logLines) == 0 {
		return bg.Render("No activity yet", styles.MutedText)
	}

	lines := make([]string, len(m.logLines))
	for i, raw := range m.logLines {
		lines[i] = m.colorizeLine(raw, styles, bg)
	}
	return strings.Join(lines, "\n")
}

// colorizeLine styles a formatted "HH:MM:SS LEVEL message fields" line.
func (m *Model) colorizeLine(line string, styles Styles, bg BgStyle) string {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 3 || len(fields[0]) != len("15:04:05") {
		return bg.Render(line, styles.Text)
	}
	return bg.Render(fields[0], styles.FaintText) + bg.Space() +
		bg.Render(padRight(fields[1], 5), m.levelStyle(fields[1], styles)) + bg.Space() +
		bg.Render(fields[2], styles.Text)
}

func (m *Model) levelStyle(level string, styles Styles) lipgloss.Style {
	switch strings.ToUpper(level) {
	case "ERROR", "FATAL", "PANIC":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG", "TRACE":
		return styles.FaintText
	default:
		return styles.InfoText
	}
}

// handleLogsKey processes keyboard input for logs view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewCatalog
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
	}
	return m, nil
}

// refreshLogs reads the tail of the log file in the background.
func (m *Model) refreshLogs() tea.Cmd {
	path := m.cfg.LogPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logLinesMsg(logtail.FormatLines(lines))
	}
}
