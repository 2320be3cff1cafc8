package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	boardScoreLimit = 100
	boardSideWidth  = 24
	// Below this width the layout list collapses into a tab strip.
	boardWideMin = 90
)

var (
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
)

// ScoreboardModel shows the stored results of one layout at a time.
// Like the menu, it leaves quitting to the session.
type ScoreboardModel struct {
	layouts []registry.GameInfo
	index   int
	store   *storage.Store
	entries []storage.ScoreEntry
	summary *storage.GameStats
	table   table.Model
	help    help.Model
	keys    BoardKeyMap
	width   int
	height  int
	quit    bool
	back    bool
}

// NewScoreboardModel creates a board opened on the first registered layout.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		layouts: registry.List(),
		store:   store,
		help:    help.New(),
		keys:    DefaultBoardKeyMap(),
	}
	m.resize(width, height)
	m.selectLayout(0)
	return m
}

func (m *ScoreboardModel) wide() bool {
	return m.width >= boardWideMin
}

// resize rebuilds the table for a new terminal size.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	avail := width - 4
	if m.wide() {
		avail -= boardSideWidth + 3
	}
	dateWidth := 14
	if avail > 53 {
		dateWidth += min(avail-53, 6)
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 7},
			{Title: "Result", Width: 8},
			{Title: "Frames", Width: 8},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		// Title, stats, borders and help take ten rows.
		table.WithHeight(max(height-10, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(styles)
	m.table.SetRows(scoreRows(m.entries))
}

// selectLayout moves the layout cursor by delta, wrapping around, and
// reloads its results.
func (m *ScoreboardModel) selectLayout(delta int) {
	if len(m.layouts) == 0 {
		return
	}
	n := len(m.layouts)
	m.index = ((m.index+delta)%n + n) % n

	m.entries, m.summary = nil, nil
	if m.store != nil {
		id := m.layouts[m.index].ID
		if entries, err := m.store.TopScores(id, boardScoreLimit); err == nil {
			m.entries = entries
		}
		if summary, err := m.store.Stats(id); err == nil {
			m.summary = summary
		}
	}
	m.table.SetRows(scoreRows(m.entries))
	m.table.GotoTop()
}

func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		result := "lost"
		if e.Won {
			result = "cleared"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			result,
			strconv.Itoa(e.Frames),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles layout switching and forwards scrolling to the table.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.selectLayout(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectLayout(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.layouts) > 0 {
		title += " - " + m.layouts[m.index].Title
	}

	var b strings.Builder
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuSubtleStyle.Render(m.summaryLine()), m.width))
	b.WriteString("\n\n")

	body := boardFrameStyle.Render(m.tableView())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body)
	} else if tabs := m.tabStrip(); tabs != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, tabs, "", body)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(menuSubtleStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) summaryLine() string {
	s := m.summary
	if s == nil || s.GamesCount == 0 {
		return "no games played"
	}
	line := fmt.Sprintf("%d games  %d cleared  avg %.1f", s.GamesCount, s.Wins, s.AvgScore)
	if s.BestFrames > 0 {
		line += fmt.Sprintf("  fastest clear %d frames", s.BestFrames)
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.entries) == 0 {
		return menuSubtleStyle.
			Italic(true).
			Padding(2, 4).
			Render("No scores recorded yet.\nClear some blocks to set one!")
	}
	return m.table.View()
}

// sidebar lists every layout with the current one marked.
func (m ScoreboardModel) sidebar() string {
	lines := []string{"Layouts", strings.Repeat("─", boardSideWidth-4)}
	limit := boardSideWidth - 6
	for i, g := range m.layouts {
		name := g.Title
		if len(name) > limit {
			name = name[:limit-1] + "…"
		}
		if i == m.index {
			lines = append(lines, boardActiveStyle.Render("▸ "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return boardFrameStyle.Width(boardSideWidth).Render(strings.Join(lines, "\n"))
}

// tabStrip shows the neighbours of the current layout on one line.
func (m ScoreboardModel) tabStrip() string {
	n := len(m.layouts)
	if n == 0 {
		return ""
	}
	current := boardActiveStyle.Render(m.layouts[m.index].Title)
	if n == 1 {
		return centerText(current, m.width)
	}
	prev := m.layouts[(m.index-1+n)%n].Title
	next := m.layouts[(m.index+1)%n].Title
	strip := menuSubtleStyle.Render("‹ "+prev) + "   " + current + "   " + menuSubtleStyle.Render(next+" ›")
	return centerText(strip, m.width)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to leave the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}
