package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/jondoveston/memtop/internal/config"
	"github.com/jondoveston/memtop/internal/expressions"
	"github.com/jondoveston/memtop/internal/monitor"
)

// Options configures the panel around a monitor
type Options struct {
	Source    string // shown in the header
	Palette   config.Palette
	ExportDir string
	Target    expressions.Target
	Timeout   time.Duration

	// Invalidate drops a cached capacity so the next query reaches the
	// provider. Called on manual updates and when the capacity axis is chosen.
	Invalidate func()
}

type tickMsg struct {
	timer monitor.Timer
}

// scheduleTick fires a tickMsg carrying t once its interval elapses
func scheduleTick(t monitor.Timer) tea.Cmd {
	return tea.Tick(t.Interval, func(time.Time) tea.Msg {
		return tickMsg{timer: t}
	})
}

type dashboardModel struct {
	monitor *monitor.Monitor
	opts    Options
	keys    KeyMap
	help    help.Model
	tabs    *TabSet

	cursor int // hovered sample, -1 for none

	entries  []expressions.Entry
	selected int

	editing       bool
	intervalInput textinput.Model

	notice string // blocks input until dismissed
	status string

	width  int
	height int
	ready  bool
	now    func() time.Time
}

func NewDashboard(m *monitor.Monitor, opts Options) dashboardModel {
	if opts.Palette.Validate() != nil {
		opts.Palette = defaultPalette()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultTimeout()
	}

	ti := textinput.New()
	ti.Prompt = "Interval: "
	ti.CharLimit = 16

	return dashboardModel{
		monitor:       m,
		opts:          opts,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		tabs:          NewTabSet("Monitor", "Properties", "Expressions"),
		cursor:        -1,
		entries:       expressions.Catalog(),
		intervalInput: ti,
		now:           time.Now,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case tickMsg:
		next, live := m.monitor.Expire(msg.timer)
		if !live {
			return m, nil
		}
		m = m.tick()
		return m, scheduleTick(next)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.notice != "" {
		m.notice = ""
		return m, nil
	}
	if m.editing {
		return m.handleIntervalInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.NextTab()
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.PrevTab()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.tabs.Selected() {
	case monitorTab:
		return m.handleMonitorKey(msg)
	case propertiesTab:
		return m.handlePropertiesKey(msg)
	case expressionsTab:
		return m.handleExpressionsKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleMonitorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tick):
		m.invalidate()
		m = m.tick()
	case key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Stop):
		if m.monitor.Stop() {
			m.status = "Auto-update stopped"
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor < 0 {
			m.cursor = m.monitor.MaxSample()
		} else if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < 0 {
			m.cursor = 0
		} else {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Clear):
		m.cursor = -1
	case key.Matches(msg, m.keys.Axis):
		m = m.toggleAxis()
	case key.Matches(msg, m.keys.Export):
		path, err := ExportFile(m.opts.ExportDir, m.monitor.Snapshot(), m.opts.Palette, m.now())
		if err != nil {
			m = m.fail(err)
		} else {
			m.status = "Exported " + path
		}
	}
	return m, nil
}

func (m dashboardModel) handlePropertiesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.More):
		m = m.resize(m.monitor.MaxSample() + 1)
	case key.Matches(msg, m.keys.Less):
		m = m.resize(m.monitor.MaxSample() - 1)
	case key.Matches(msg, m.keys.Interval):
		m.editing = true
		m.intervalInput.SetValue("")
		m.intervalInput.Placeholder = m.monitor.Interval().String()
		return m, m.intervalInput.Focus()
	case key.Matches(msg, m.keys.Axis):
		m = m.toggleAxis()
	case key.Matches(msg, m.keys.Color):
		m.opts.Palette.Line = nextLineColor(m.opts.Palette.Line)
		m.status = "Line color " + m.opts.Palette.Line
	}
	return m, nil
}

func (m dashboardModel) handleExpressionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Send):
		m = m.apply(false)
	case key.Matches(msg, m.keys.Example):
		m = m.apply(true)
	}
	return m, nil
}

func (m dashboardModel) handleIntervalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.editing = false
		m.intervalInput.Blur()
		text := strings.TrimSpace(m.intervalInput.Value())
		d, err := time.ParseDuration(text)
		if err != nil {
			m = m.fail(fmt.Errorf("%q: %w", text, monitor.ErrInvalidInterval))
			return m, nil
		}
		if err := m.monitor.SetInterval(d); err != nil {
			m = m.fail(fmt.Errorf("%s: %w", d, err))
			return m, nil
		}
		m.status = fmt.Sprintf("Interval set to %s, auto-update stopped", d)
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.intervalInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.intervalInput, cmd = m.intervalInput.Update(msg)
	return m, cmd
}

// tick samples once; provider failures only reach the status bar
func (m dashboardModel) tick() dashboardModel {
	ctx, cancel := context.WithTimeout(context.Background(), m.opts.Timeout)
	defer cancel()

	s, err := m.monitor.Tick(ctx)
	if err != nil {
		m.status = "Update failed: " + err.Error()
		return m
	}
	m.status = fmt.Sprintf("%.2fMB at %s", s.Value, s.Label())
	return m
}

func (m dashboardModel) start() (tea.Model, tea.Cmd) {
	t, ok := m.monitor.Start()
	if !ok {
		m.status = "Auto-update already running"
		return m, nil
	}
	m.status = "Auto-update every " + t.Interval.String()
	return m, scheduleTick(t)
}

func (m dashboardModel) resize(n int) dashboardModel {
	if n != config.ClampSamples(n) {
		m.status = fmt.Sprintf("Samples must stay within %d-%d", config.MIN_SAMPLES, config.MAX_SAMPLES)
		return m
	}
	if err := m.monitor.Resize(n); err != nil {
		return m.fail(err)
	}
	m.status = fmt.Sprintf("Keeping %d samples", n)
	return m
}

func (m dashboardModel) toggleAxis() dashboardModel {
	p := m.monitor.TogglePolicy()
	m.status = "Axis: " + p.Description()
	if p != monitor.ExternalCapacity {
		return m
	}

	m.invalidate()
	ctx, cancel := context.WithTimeout(context.Background(), m.opts.Timeout)
	defer cancel()
	if err := m.monitor.RefreshCapacity(ctx); err != nil {
		log.Printf("Capacity refresh failed: %v", err)
		m.status = "Axis: " + p.Description() + ", capacity unavailable"
	}
	return m
}

func (m dashboardModel) invalidate() {
	if m.opts.Invalidate != nil {
		m.opts.Invalidate()
	}
}

func (m dashboardModel) apply(useExample bool) dashboardModel {
	if m.opts.Target == nil || len(m.entries) == 0 {
		m.status = "No expression target"
		return m
	}
	text, err := expressions.Apply(m.opts.Target, m.entries[m.selected], useExample)
	if err != nil {
		return m.fail(err)
	}
	m.status = "Sent " + text
	return m
}

// fail shows validation errors as a blocking notice and anything else in
// the status bar
func (m dashboardModel) fail(err error) dashboardModel {
	log.Printf("Error: %v", err)
	if isValidation(err) {
		m.notice = err.Error()
	} else {
		m.status = "Error: " + err.Error()
	}
	return m
}

func isValidation(err error) bool {
	return errors.Is(err, monitor.ErrInvalidCapacity) ||
		errors.Is(err, monitor.ErrInvalidInterval) ||
		errors.Is(err, monitor.ErrInvalidArgument) ||
		errors.Is(err, expressions.ErrNoExample)
}

func (m dashboardModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.notice != "" {
		return m.renderNotice()
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipColor(m.opts.Palette.Titles)).
		Bold(true)
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.tabs.Render(),
		"  ",
		titleStyle.Render("memtop "+m.opts.Source),
	)

	helpView := m.help.View(tabKeys{KeyMap: m.keys, tab: m.tabs.Selected()})
	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Background(lipgloss.Color("235")).
		Width(m.width).
		Render(m.statusLine())

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(helpView) - 1
	var body string
	switch m.tabs.Selected() {
	case propertiesTab:
		body = m.renderProperties(bodyHeight)
	case expressionsTab:
		body = m.renderExpressions(bodyHeight)
	default:
		body = m.renderMonitor(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar, helpView)
}

func (m dashboardModel) statusLine() string {
	snap := m.monitor.Snapshot()
	state := "stopped"
	if snap.Running {
		state = "every " + snap.Interval.String()
	}
	line := fmt.Sprintf("auto-update %s | %d ok, %d failed", state, snap.Ticks, snap.Failures)
	if m.status != "" {
		line += " | " + m.status
	}
	return line
}

func (m dashboardModel) renderMonitor(height int) string {
	snap := m.monitor.Snapshot()
	infoHeight := 8
	plotHeight := max(height-infoHeight-2, minPlotHeight)
	plot := RenderPlot(snap, m.opts.Palette, m.width, plotHeight)

	leftWidth, rightWidth := splitWidth(m.width, 50)
	tooltip := "Move with ←/→ to inspect a sample"
	if m.cursor >= 0 {
		text, err := m.monitor.Tooltip(m.cursor)
		if err != nil {
			tooltip = fmt.Sprintf("Sample %d: no tooltip", m.cursor)
		} else {
			tooltip = text
		}
	}

	stats := fmt.Sprintf("Latest: %.2fMB (%s)\nAxis: %s, 0-%.2fMB\nCapacity: %.2fMB\nSamples: %d",
		snap.Latest.Value, snap.Latest.Label(),
		snap.Policy.Description(), snap.Axis.Max,
		snap.Capacity, snap.MaxSample)
	if snap.LastErr != nil {
		stats += "\nLast error: " + snap.LastErr.Error()
	}

	info := Horizontal(
		NewPane("Tooltip", leftWidth, infoHeight-2).SetTitleColor(m.opts.Palette.Titles).SetContent(tooltip).SetFocused(m.cursor >= 0),
		NewPane("Window", rightWidth, infoHeight-2).SetTitleColor(m.opts.Palette.Titles).SetContent(stats),
	)
	return lipgloss.JoinVertical(lipgloss.Left, plot, info)
}

func (m dashboardModel) renderProperties(height int) string {
	snap := m.monitor.Snapshot()
	running := "no"
	if snap.Running {
		running = "yes"
	}
	rows := [][]string{
		{"Source", m.opts.Source},
		{"Samples", fmt.Sprintf("%d (%d-%d)", snap.MaxSample, config.MIN_SAMPLES, config.MAX_SAMPLES)},
		{"Auto-update interval", snap.Interval.String()},
		{"Auto-update running", running},
		{"Axis policy", snap.Policy.Description()},
		{"Capacity", fmt.Sprintf("%.2fMB", snap.Capacity)},
		{"Line color", m.opts.Palette.Line},
		{"Points color", m.opts.Palette.Points},
		{"Export directory", m.opts.ExportDir},
	}
	t := NewWrapTable().
		HeaderColor(m.opts.Palette.Titles).
		MaxHeight(height - 2).
		Headers("Setting", "Value").
		Rows(rows...)

	content := t.Render()
	if m.editing {
		content += "\n\n" + m.intervalInput.View() + "\n" +
			lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("Go duration, e.g. 500ms or 1m30s. Enter applies and stops auto-update, esc cancels.")
	}
	return NewPane("Properties", max(m.width-2, 1), max(height-2, 1)).
		SetTitleColor(m.opts.Palette.Titles).
		SetContent(content).
		Render()
}

func (m dashboardModel) renderExpressions(height int) string {
	leftWidth, rightWidth := splitWidth(m.width, 45)
	list := NewPane("Library", leftWidth, max(height-2, 1)).
		SetTitleColor(m.opts.Palette.Titles).
		SetContent(m.renderEntryTree(height - 3))

	detail := "No entries"
	if len(m.entries) > 0 {
		e := m.entries[m.selected]
		example := "none"
		if e.HasExample() {
			example = e.Example
		}
		detail = fmt.Sprintf("%s\n\n%s\n\nQuick example: %s", e.Expression, e.Description, example)
	}
	desc := NewPane("Description", rightWidth, max(height-2, 1)).
		SetTitleColor(m.opts.Palette.Titles).
		SetContent(lipgloss.NewStyle().Width(max(rightWidth, 1)).Render(detail))

	return Horizontal(list.SetFocused(true), desc)
}

// renderEntryTree draws the catalog as one tree per category, scrolled so
// the selected entry stays within rows lines
func (m dashboardModel) renderEntryTree(rows int) string {
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Bold(true)
	categoryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	var lines []string
	selectedLine := 0
	for _, category := range expressions.Categories() {
		t := tree.New().Root(categoryStyle.Render(category))
		for i, e := range m.entries {
			if e.Category != category {
				continue
			}
			if i == m.selected {
				t = t.Child(selectedStyle.Render("▶ " + e.Expression))
			} else {
				t = t.Child(e.Expression)
			}
		}
		for _, line := range strings.Split(t.String(), "\n") {
			if strings.Contains(line, "▶ ") {
				selectedLine = len(lines)
			}
			lines = append(lines, line)
		}
	}

	rows = max(rows, 1)
	start := 0
	if selectedLine >= rows {
		start = selectedLine - rows + 1
	}
	end := min(start+rows, len(lines))
	return strings.Join(lines[start:end], "\n")
}

// renderNotice overlays the blocking notice like a modal
func (m dashboardModel) renderNotice() string {
	noticeWidth := max(m.width*6/10, 20)
	pane := NewPane("Notice", noticeWidth, 3).
		SetTitleColor("196").
		SetContent(lipgloss.NewStyle().Width(noticeWidth).Render(m.notice)).
		SetFocused(true)

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render("Press any key to continue")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		pane.Render()+"\n"+helpText,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("235")),
	)
}

// Dashboard runs the panel until the user quits
func Dashboard(m *monitor.Monitor, opts Options) error {
	p := tea.NewProgram(NewDashboard(m, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running bubbletea program: %w", err)
	}
	m.Stop()
	return nil
}
