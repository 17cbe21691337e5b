package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/fokus/internal/app"
	"github.com/dori/fokus/internal/ui/theme"
	"github.com/dori/fokus/internal/ui/views"
)

// Debug logging (enable by setting FOKUS_DEBUG=1)
var rootDebugLog *os.File

func init() {
	if os.Getenv("FOKUS_DEBUG") == "1" {
		rootDebugLog, _ = os.OpenFile("/tmp/fokus-root-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func rootDebugf(format string, args ...interface{}) {
	if rootDebugLog != nil {
		fmt.Fprintf(rootDebugLog, format+"\n", args...)
		rootDebugLog.Sync()
	}
}

// RootModel is the main application model that manages views
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	currentView  View
	projectsView views.ProjectsView
	boardView    views.BoardView
	plannerView  views.PlannerView
	focusView    views.FocusView
	progressView views.ProgressView
	helpVisible  bool

	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	startView := ViewProjects
	if application.Store.State().ActiveProjectID != "" {
		startView = ViewBoard
	}

	return RootModel{
		app:          application,
		keys:         DefaultKeyMap(),
		help:         h,
		currentView:  startView,
		projectsView: views.NewProjectsView(application),
		boardView:    views.NewBoardView(application),
		plannerView:  views.NewPlannerView(application),
		focusView:    views.NewFocusView(application),
		progressView: views.NewProgressView(application),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.focusView.Init()
}

func (m RootModel) isInputMode() bool {
	switch m.currentView {
	case ViewProjects:
		return m.projectsView.IsInputMode()
	case ViewBoard:
		return m.boardView.IsInputMode()
	case ViewPlanner:
		return m.plannerView.IsInputMode()
	case ViewFocus:
		return m.focusView.IsInputMode()
	case ViewProgress:
		return m.progressView.IsInputMode()
	}
	return false
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rootDebugf("WindowSizeMsg: %dx%d", msg.Width, msg.Height)
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header and footer
		contentHeight := m.height - 4
		m.projectsView = m.projectsView.SetSize(m.width, contentHeight)
		m.boardView = m.boardView.SetSize(m.width, contentHeight)
		m.plannerView = m.plannerView.SetSize(m.width, contentHeight)
		m.focusView = m.focusView.SetSize(m.width, contentHeight)
		m.progressView = m.progressView.SetSize(m.width, contentHeight)

	case tea.KeyMsg:
		m.statusMsg = ""
		m.errorMsg = ""

		inputMode := m.isInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, 'q' only outside input mode
			if msg.String() == "ctrl+c" || !inputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			m.cycleTheme()
			return m, nil

		case key.Matches(msg, m.keys.NotifyToggle):
			m.app.Notifier.SetEnabled(!m.app.Notifier.IsEnabled())
			if m.app.Notifier.IsEnabled() {
				m.statusMsg = "Notifications on"
			} else {
				m.statusMsg = "Notifications off"
			}
			return m, nil
		}

		if inputMode {
			break // fall through to view delegation
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			return m, nil

		case key.Matches(msg, m.keys.ProjectsView):
			m.currentView = ViewProjects
			return m, m.projectsView.Init()
		case key.Matches(msg, m.keys.BoardView):
			m.currentView = ViewBoard
			return m, m.boardView.Init()
		case key.Matches(msg, m.keys.PlannerView):
			m.currentView = ViewPlanner
			return m, m.plannerView.Init()
		case key.Matches(msg, m.keys.FocusView):
			m.currentView = ViewFocus
			return m, m.focusView.Init()
		case key.Matches(msg, m.keys.ProgressView):
			m.currentView = ViewProgress
			return m, m.progressView.Init()
		}

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil

	case views.ProjectSelectedMsg:
		rootDebugf("ProjectSelectedMsg: %s", msg.ProjectID)
		m.currentView = ViewBoard
		return m, m.boardView.Init()

	case views.FocusTaskRequest:
		rootDebugf("FocusTaskRequest: %s", msg.Task.ID)
		var cmd tea.Cmd
		m.focusView, cmd = m.focusView.StartTask(msg.Task)
		m.currentView = ViewFocus
		return m, cmd

	case views.FocusTickMsg:
		// the session keeps counting whichever view is showing
		var cmd tea.Cmd
		m.focusView, cmd = m.focusView.Update(msg)
		return m, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewProjects:
		m.projectsView, cmd = m.projectsView.Update(msg)
	case ViewBoard:
		m.boardView, cmd = m.boardView.Update(msg)
	case ViewPlanner:
		m.plannerView, cmd = m.plannerView.Update(msg)
	case ViewFocus:
		m.focusView, cmd = m.focusView.Update(msg)
	case ViewProgress:
		m.progressView, cmd = m.progressView.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		switch m.currentView {
		case ViewProjects:
			content = m.projectsView.View()
		case ViewBoard:
			content = m.boardView.View()
		case ViewPlanner:
			content = m.plannerView.View()
		case ViewFocus:
			content = m.focusView.View()
		case ViewProgress:
			content = m.progressView.View()
		}
	}

	// Pad content to fill available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("fokus")

	viewStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	viewIndicator := viewStyle.Render(fmt.Sprintf("[%s]", m.currentView.String()))

	var projectIndicator string
	if p := m.app.Store.State().ActiveProject(); p != nil {
		projectIndicator = viewStyle.Render(p.Name)
	}

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, viewIndicator)
	rightSide := projectIndicator

	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + rightSide
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line1, line2 string

	switch m.currentView {
	case ViewProjects:
		if m.projectsView.IsInputMode() {
			line1 = key("enter", "confirm") + sep + key("esc", "cancel")
		} else {
			line1 = key("enter", "open") + sep +
				key("a", "add") + sep +
				key("e", "rename") + sep +
				key("d", "delete")
			line2 = key("j/k", "navigate") + sep +
				key("1-5", "views") + sep +
				key("?", "help")
		}

	case ViewBoard:
		if m.boardView.IsInputMode() {
			line1 = key("enter", "confirm") + sep + key("esc", "cancel")
		} else {
			line1 = key("h/l", "columns") + sep +
				key("j/k", "navigate") + sep +
				key("H/L", "move task") + sep +
				key("tab", "toggle done")
			line2 = key("a", "add") + sep +
				key("p", "priority") + sep +
				key("f", "focus") + sep +
				key("1-5", "views")
		}

	case ViewPlanner:
		if m.plannerView.IsInputMode() {
			line1 = key("enter", "save") + sep + key("esc", "cancel")
		} else {
			line1 = key("tab", "section") + sep +
				key("space", "plan/unplan") + sep +
				key("r", "reflection")
			line2 = key("j/k", "navigate") + sep +
				key("1-5", "views") + sep +
				key("?", "help")
		}

	case ViewFocus:
		line1 = key("s/space", "start/pause") + sep +
			key("c", "complete") + sep +
			key("x", "stop") + sep +
			key("b", "skip break")
		line2 = key("j/k", "select task") + sep +
			key("1-5", "views") + sep +
			key("?", "help")

	case ViewProgress:
		line1 = key("1-5", "views") + sep +
			key("ctrl+t", "theme") + sep +
			key("?", "help")
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Subtle)

	section := func(b *strings.Builder, name string, entries [][]string) {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, kv := range entries {
			b.WriteString(keyStyle.Render(kv[0]))
			b.WriteString(descStyle.Render(kv[1]))
			b.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Fokus Help"))
	b.WriteString("\n\n")

	section(&b, "Views", [][]string{
		{"1", "Projects"},
		{"2", "Board"},
		{"3", "Planner"},
		{"4", "Focus"},
		{"5", "Progress"},
	})

	section(&b, "Board", [][]string{
		{"h/l j/k", "Move between columns and tasks"},
		{"H / L", "Move task to previous/next column"},
		{"tab", "Toggle done"},
		{"a", "Quick-add task (!high @tag due: est:)"},
		{"p", "Cycle priority"},
		{"f", "Start focus session on task"},
	})

	section(&b, "Planner", [][]string{
		{"tab", "Switch between planned and available"},
		{"space", "Move task in/out of today's plan"},
		{"r", "Write today's reflection"},
	})

	section(&b, "Focus", [][]string{
		{"s/space", "Start, pause or resume"},
		{"c", "Complete task and log time"},
		{"x", "Stop and log elapsed time"},
		{"b", "Skip break"},
	})

	section(&b, "System", [][]string{
		{"ctrl+t", "Cycle theme"},
		{"ctrl+n", "Toggle notifications"},
		{"q / ctrl+c", "Quit"},
	})

	b.WriteString("\n")
	b.WriteString(descStyle.Render("Press ? to close"))

	return b.String()
}

// cycleTheme cycles through available themes
func (m *RootModel) cycleTheme() {
	themes := theme.Available()
	current := theme.Current.Theme.Name

	for i, t := range themes {
		if t.Name == current {
			next := themes[(i+1)%len(themes)]
			theme.SetTheme(next)
			m.statusMsg = fmt.Sprintf("Theme: %s", next.Name)
			return
		}
	}
}
