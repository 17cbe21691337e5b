package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/fokus/internal/app"
	"github.com/dori/fokus/internal/model"
	"github.com/dori/fokus/internal/query"
	"github.com/dori/fokus/internal/session"
	"github.com/dori/fokus/internal/ui/theme"
)

// FocusTickMsg is sent once a second while the timer runs.
type FocusTickMsg struct{}

func focusTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return FocusTickMsg{}
	})
}

// FocusView runs focus sessions against a picked task.
type FocusView struct {
	app    *app.App
	width  int
	height int

	taskCursor int
	statusMsg  string
}

// NewFocusView creates the focus view.
func NewFocusView(application *app.App) FocusView {
	return FocusView{app: application}
}

// Init initializes the view
func (v FocusView) Init() tea.Cmd {
	if v.app.Session.State() != session.Idle {
		return focusTickCmd()
	}
	return nil
}

// SetSize sets the view dimensions
func (v FocusView) SetSize(width, height int) FocusView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether keystrokes should go to a text field.
func (v FocusView) IsInputMode() bool {
	return false
}

func (v FocusView) candidates() []model.Task {
	return query.Focusable(v.app.Store.State().ActiveTasks())
}

// StartTask begins a session on a task picked from another view.
func (v FocusView) StartTask(t model.Task) (FocusView, tea.Cmd) {
	v.app.Session.Start(t.ProjectID, t.ID, t.Title)
	v.statusMsg = fmt.Sprintf("Focusing on %q", t.Title)
	return v, focusTickCmd()
}

// currentTask resolves the task the running session is charged to. The
// session remembers its own project, so switching the active project
// mid-session does not orphan the timer.
func (v FocusView) currentTask() (model.Task, bool) {
	coord := v.app.Session
	return v.app.Store.State().Task(coord.ProjectID(), coord.TaskID())
}

// Update handles messages
func (v FocusView) Update(msg tea.Msg) (FocusView, tea.Cmd) {
	coord := v.app.Session

	switch msg := msg.(type) {
	case FocusTickMsg:
		if coord.State() == session.Idle || coord.State() == session.Paused {
			// stale tick from a session that already ended
			return v, nil
		}
		before := coord.State()
		coord.Tick()
		switch {
		case before == session.Working && coord.State() == session.OnBreak:
			v.statusMsg = "Session complete! Break time."
		case before == session.OnBreak && coord.State() == session.Idle:
			v.statusMsg = "Break over. Ready for the next session."
			return v, nil
		}
		return v, focusTickCmd()

	case tea.KeyMsg:
		return v.updateKey(msg)
	}

	return v, nil
}

func (v FocusView) updateKey(msg tea.KeyMsg) (FocusView, tea.Cmd) {
	coord := v.app.Session
	candidates := v.candidates()

	switch msg.String() {
	case "j", "down":
		if coord.State() == session.Idle && v.taskCursor < len(candidates)-1 {
			v.taskCursor++
		}
	case "k", "up":
		if coord.State() == session.Idle && v.taskCursor > 0 {
			v.taskCursor--
		}

	case "s", " ":
		switch coord.State() {
		case session.Idle:
			if v.taskCursor < len(candidates) {
				return v.StartTask(candidates[v.taskCursor])
			}
			v.statusMsg = "Nothing to focus on"
		case session.Working:
			coord.Pause()
			v.statusMsg = "Paused"
		case session.Paused:
			coord.Resume()
			v.statusMsg = "Resumed"
			return v, focusTickCmd()
		}

	case "x":
		if coord.State() != session.Idle {
			coord.Stop()
			v.statusMsg = "Session stopped, time logged"
		}

	case "c":
		if t, ok := v.currentTask(); ok && (coord.State() == session.Working || coord.State() == session.Paused) {
			wasPaused := coord.State() == session.Paused
			coord.CompleteTask(t.ProjectID, t.ID)
			v.statusMsg = fmt.Sprintf("Completed %q", t.Title)
			if wasPaused && coord.State() == session.Working {
				// advanced onto the next task; the paused tick loop is dead
				return v, focusTickCmd()
			}
		}

	case "b":
		if coord.State() == session.OnBreak {
			coord.SkipBreak()
			v.statusMsg = "Break skipped"
		}
	}

	return v, nil
}

// View renders the focus timer
func (v FocusView) View() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	coord := v.app.Session

	var sections []string
	sections = append(sections, styles.Title.Render("Focus"))
	sections = append(sections, v.renderTimer())

	if task, ok := v.currentTask(); ok && coord.State() != session.Idle {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(t.Info).
			MarginTop(1).
			Render("Working on: "+task.Title))
	}

	counter := strings.Repeat("●", coord.CompletedToday())
	if counter == "" {
		counter = "(none yet)"
	}
	sections = append(sections, styles.Label.Render("Sessions today: "+counter))

	if coord.State() == session.Idle {
		sections = append(sections, v.renderTaskList())
	}

	if v.statusMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(t.Success).Render(v.statusMsg))
	}

	sections = append(sections, v.renderControls())
	return strings.Join(sections, "\n")
}

func (v FocusView) renderTimer() string {
	t := theme.Current.Theme
	coord := v.app.Session

	remaining := coord.Remaining()
	minutes := int(remaining.Minutes())
	seconds := int(remaining.Seconds()) % 60
	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)

	var color lipgloss.Color
	var label string
	switch coord.State() {
	case session.Working:
		color, label = t.Error, "FOCUS"
	case session.OnBreak:
		color, label = t.Success, "BREAK"
	case session.Paused:
		color, label = t.Warning, "PAUSED"
	default:
		color, label = t.Foreground, "READY"
	}

	box := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)

	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	barWidth := 30
	filled := 0
	if total := coord.Duration(); total > 0 && coord.State() != session.Idle {
		progress := 1.0 - float64(remaining)/float64(total)
		filled = int(progress * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}
	}
	bar := lipgloss.NewStyle().Foreground(color).
		Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled))

	return lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render(label),
		box.Render(timeStr),
		bar,
	)
}

func (v FocusView) renderTaskList() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	candidates := v.candidates()
	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		MarginTop(1).
		Render("Pick a task to focus on:"))

	if len(candidates) == 0 {
		lines = append(lines, styles.Label.Render("  No To Do or In Progress tasks in the active project."))
	}

	maxShow := 8
	for i, task := range candidates {
		if i >= maxShow {
			lines = append(lines, styles.Label.Render(fmt.Sprintf("  ... +%d more", len(candidates)-maxShow)))
			break
		}

		cursor := "  "
		if i == v.taskCursor {
			cursor = "> "
		}
		marker := lipgloss.NewStyle().
			Foreground(t.PriorityColor(string(task.Priority))).
			Render("●")

		style := lipgloss.NewStyle()
		if i == v.taskCursor {
			style = style.Background(t.Highlight).Bold(true)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%s %s", cursor, marker, task.Title)))
	}

	return strings.Join(lines, "\n")
}

func (v FocusView) renderControls() string {
	t := theme.Current.Theme
	style := lipgloss.NewStyle().Foreground(t.Subtle).MarginTop(2)

	var controls string
	switch v.app.Session.State() {
	case session.Idle:
		controls = "j/k select task • s/space start"
	case session.Working:
		controls = "s/space pause • c complete task • x stop"
	case session.Paused:
		controls = "s/space resume • c complete task • x stop"
	case session.OnBreak:
		controls = "b skip break • x end"
	}

	return style.Render(controls)
}
