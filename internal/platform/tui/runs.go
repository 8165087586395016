package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trapjump/internal/storage"
)

// maxRuns is how many runs the history screen loads.
const maxRuns = 100

// RunSource reads run history.
type RunSource interface {
	RecentRuns(limit int) ([]storage.RunRecord, error)
	BestRun() (*storage.RunRecord, error)
	Totals() (storage.RunTotals, error)
}

// RunsKeyMap defines the key bindings for the run history screen.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history screen.
type RunsModel struct {
	runs     []storage.RunRecord
	best     *storage.RunRecord
	totals   storage.RunTotals
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel loads history from src and builds the table.
func NewRunsModel(src RunSource, width, height int) RunsModel {
	m := RunsModel{
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load(src)
	m.table = m.createTable()
	m.table.SetRows(RunRows(m.runs))
	return m
}

func (m *RunsModel) load(src RunSource) {
	if src == nil {
		return
	}
	runs, err := src.RecentRuns(maxRuns)
	if err != nil {
		m.loadErr = err
		return
	}
	m.runs = runs
	if m.best, err = src.BestRun(); err != nil {
		m.loadErr = err
		return
	}
	if m.totals, err = src.Totals(); err != nil {
		m.loadErr = err
	}
}

var runColumns = []table.Column{
	{Title: "#", Width: 5},
	{Title: "Outcome", Width: 10},
	{Title: "Levels", Width: 7},
	{Title: "Deaths", Width: 7},
	{Title: "Restarts", Width: 9},
	{Title: "Time", Width: 8},
	{Title: "Mode", Width: 8},
	{Title: "Date", Width: 13},
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(runColumns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height-9)), // Leave room for header, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func tableHeight(n int) int {
	if n < 3 {
		return 3
	}
	return n
}

// RunRows converts runs to table rows.
func RunRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Outcome,
			fmt.Sprintf("%d/%d", r.LevelsCleared, r.LevelCount),
			fmt.Sprintf("%d", r.Deaths),
			fmt.Sprintf("%d", r.Restarts),
			FormatDuration(r.DurationMS),
			r.Difficulty,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// FormatDuration renders simulated milliseconds as m:ss.
func FormatDuration(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history screen.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("TRAPJUMP RUNS"))
	b.WriteString("\n\n")
	b.WriteString(m.summary())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.loadErr != nil:
		b.WriteString(tableStyle.Render("Could not load runs: " + m.loadErr.Error()))
	case len(m.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No runs recorded yet.\nTrust nothing and go play one!")))
	default:
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// summary renders totals and the best run on one line.
func (m RunsModel) summary() string {
	line := fmt.Sprintf("Runs: %d  Finished: %d  Deaths: %d", m.totals.Runs, m.totals.Finished, m.totals.TotalDeaths)
	if m.best != nil {
		line += fmt.Sprintf("  Best: %d/%d levels, %d deaths, %s",
			m.best.LevelsCleared, m.best.LevelCount, m.best.Deaths, FormatDuration(m.best.DurationMS))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(line)
}

// RunRuns runs the history screen.
func RunRuns(src RunSource, width, height int) error {
	p := tea.NewProgram(NewRunsModel(src, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// WriteRunsPlain prints runs as an aligned text table.
func WriteRunsPlain(w io.Writer, runs []storage.RunRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	titles := make([]string, len(runColumns))
	for i, c := range runColumns {
		titles[i] = c.Title
	}
	fmt.Fprintln(tw, strings.Join(titles, "\t"))
	for _, row := range RunRows(runs) {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
