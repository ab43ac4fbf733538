// Package tui provides a Bubble Tea terminal user interface for browsing vehicle catalogs.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/vehicle-catalog/internal/catalog"
	"github.com/handiism/vehicle-catalog/internal/config"
	ioutils "github.com/handiism/vehicle-catalog/internal/io"
	"github.com/handiism/vehicle-catalog/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateBrowsing
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   catalog.Level
}

// filters is the cycle order of the kind filter; the empty kind shows everything.
var filters = append([]model.Kind{""}, model.Kinds()...)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	table     table.Model
	settings  *config.Settings
	images    *ioutils.ImageService

	path     string
	vehicles []model.Vehicle
	visible  []model.Vehicle
	stats    catalog.Stats
	logs     []LogEntry
	err      error

	filter     int
	showDetail bool
	showLogs   bool
	photo      string

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "cars.csv"
	ti.SetValue(settings.CatalogPath)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Kind", Width: 12},
			{Title: "Brand", Width: 20},
			{Title: "Carrying", Width: 10},
			{Title: "Details", Width: 24},
			{Title: "Photo", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(lipgloss.Color("#F8B500"))
	tbl.SetStyles(styles)

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		table:     tbl,
		settings:  settings,
		images:    ioutils.NewImageService(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// LoadedMsg is sent when a catalog load completes.
	LoadedMsg struct {
		Path     string
		Vehicles []model.Vehicle
		Stats    catalog.Stats
		Events   []catalog.Event
		Err      error
	}

	// PhotoMsg carries the inspection result for the selected vehicle's photo.
	PhotoMsg struct {
		Text string
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 14; h > 5 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateBrowsing || m.state == StateError {
				m.state = StateInput
				m.textInput.Focus()
				return m, nil
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateLoading
				return m, tea.Batch(m.loadCatalog(strings.TrimSpace(m.textInput.Value())), m.spinner.Tick)
			}
			if m.state == StateBrowsing {
				m.showDetail = !m.showDetail
				if m.showDetail {
					return m, m.inspectPhoto()
				}
				return m, nil
			}

		case "tab":
			if m.state == StateBrowsing {
				m.filter = (m.filter + 1) % len(filters)
				m.applyFilter()
				return m, nil
			}

		case "s":
			if m.state == StateBrowsing {
				m.showLogs = !m.showLogs
				return m, nil
			}

		case "r":
			if m.state == StateBrowsing || m.state == StateError {
				m.state = StateLoading
				return m, tea.Batch(m.loadCatalog(m.path), m.spinner.Tick)
			}

		case "q":
			if m.state == StateBrowsing || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadedMsg:
		m.path = msg.Path
		m.logs = m.logs[:0]
		for _, e := range msg.Events {
			m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.vehicles = msg.Vehicles
		m.stats = msg.Stats
		m.state = StateBrowsing
		m.showDetail = false
		m.textInput.Blur()
		m.applyFilter()
		return m, nil

	case PhotoMsg:
		m.photo = msg.Text
		return m, nil
	}

	switch m.state {
	case StateInput:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateBrowsing:
		before := m.table.Cursor()
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
		if m.showDetail && m.table.Cursor() != before {
			cmds = append(cmds, m.inspectPhoto())
		}
	}

	return m, tea.Batch(cmds...)
}

// Filter returns the kind currently shown, or "" for all kinds.
func (m Model) Filter() model.Kind {
	return filters[m.filter]
}

// Visible returns the vehicles currently listed in the table.
func (m Model) Visible() []model.Vehicle {
	return m.visible
}

// applyFilter recomputes the visible vehicles and table rows.
func (m *Model) applyFilter() {
	if kind := m.Filter(); kind != "" {
		m.visible = catalog.Filter(m.vehicles, kind)
	} else {
		m.visible = m.vehicles
	}

	rows := make([]table.Row, len(m.visible))
	for i, v := range m.visible {
		rows[i] = vehicleRow(i, v)
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// vehicleRow renders one table row.
func vehicleRow(i int, v model.Vehicle) table.Row {
	base := v.Common()
	return table.Row{
		strconv.Itoa(i + 1),
		string(v.Kind()),
		base.Brand,
		model.FormatFloat(base.Carrying),
		details(v),
		v.PhotoFileExt(),
	}
}

// details renders the variant-specific column.
func details(v model.Vehicle) string {
	switch v := v.(type) {
	case model.Car:
		return fmt.Sprintf("%d seats", v.PassengerSeats)
	case model.Truck:
		if !v.HasBody() {
			return "no body"
		}
		return fmt.Sprintf("%s (%s m³)", v.BodySpec(), model.FormatFloat(v.BodyVolume()))
	case model.SpecMachine:
		return v.Extra
	}
	return ""
}

// selected returns the vehicle under the table cursor.
func (m Model) selected() (model.Vehicle, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return nil, false
	}
	return m.visible[i], true
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🚚 Vehicle Catalog"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Browse cars, trucks and special machinery"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading catalog..."))
		b.WriteString("\n")
	case StateBrowsing:
		b.WriteString(m.viewBrowsing())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Catalog file:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	if m.settings.PhotosDir != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Photos: %s", m.settings.PhotosDir)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewBrowsing() string {
	var b strings.Builder

	filter := "all"
	if kind := m.Filter(); kind != "" {
		filter = string(kind)
	}
	b.WriteString(successStyle.Render(fmt.Sprintf("%s: %d vehicles", m.path, len(m.vehicles))))
	if skipped := m.stats.SkippedTotal(); skipped > 0 {
		b.WriteString(warningStyle.Render(fmt.Sprintf("  (%d rows skipped)", skipped)))
	}
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Showing: %s (%d)", filter, len(m.visible))))
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.showDetail {
		if v, ok := m.selected(); ok {
			b.WriteString(boxStyle.Render(m.detailText(v)))
			b.WriteString("\n")
		}
	}

	if m.showLogs {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) detailText(v model.Vehicle) string {
	base := v.Common()

	var b strings.Builder
	b.WriteString(v.String())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Brand:    %s\n", base.Brand))
	b.WriteString(fmt.Sprintf("Carrying: %s t\n", model.FormatFloat(base.Carrying)))
	b.WriteString(fmt.Sprintf("Photo:    %s", base.PhotoFileName))
	if m.photo != "" {
		b.WriteString(fmt.Sprintf(" (%s)", m.photo))
	}
	if t, ok := v.(model.Truck); ok {
		b.WriteString(fmt.Sprintf("\nVolume:   %s m³", model.FormatFloat(t.BodyVolume())))
	}
	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	if len(m.logs) == 0 {
		return dimStyle.Render("No diagnostics") + "\n"
	}

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case catalog.LevelError:
			style = errorStyle
			prefix = "✗"
		case catalog.LevelWarning:
			style = warningStyle
			prefix = "!"
		case catalog.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case catalog.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: load • esc: quit"
	case StateLoading:
		return "ctrl+c: quit"
	case StateBrowsing:
		return "↑/↓: move • tab: filter kind • enter: details • s: skipped rows • r: reload • esc: open file • q: quit"
	case StateError:
		return "r: retry • esc: open file • q: quit"
	}
	return ""
}

// loadCatalog reads the catalog in the background and collects its diagnostics.
func (m Model) loadCatalog(path string) tea.Cmd {
	cfg := m.settings.ToLoaderConfig()
	return func() tea.Msg {
		var events []catalog.Event
		loader := catalog.NewLoader(cfg, func(e catalog.Event) {
			events = append(events, e)
		})

		vehicles, stats, err := loader.LoadWithStats(path)
		return LoadedMsg{Path: path, Vehicles: vehicles, Stats: stats, Events: events, Err: err}
	}
}

// inspectPhoto reads the selected vehicle's photo header in the background.
func (m Model) inspectPhoto() tea.Cmd {
	v, ok := m.selected()
	if !ok || m.settings.PhotosDir == "" {
		return func() tea.Msg { return PhotoMsg{} }
	}

	path := filepath.Join(m.settings.PhotosDir, v.Common().PhotoFileName)
	images := m.images
	return func() tea.Msg {
		info, err := images.Inspect(context.Background(), path)
		if err != nil {
			return PhotoMsg{Text: "unavailable"}
		}
		return PhotoMsg{Text: fmt.Sprintf("%s %dx%d", info.Format, info.Width, info.Height)}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
