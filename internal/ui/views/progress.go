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
	"github.com/dori/fokus/internal/ui/theme"
)

// ProgressView shows completion, time and streak stats for the active
// project.
type ProgressView struct {
	app    *app.App
	width  int
	height int
}

// NewProgressView creates the progress view.
func NewProgressView(application *app.App) ProgressView {
	return ProgressView{app: application}
}

// Init initializes the view
func (v ProgressView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v ProgressView) SetSize(width, height int) ProgressView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether keystrokes should go to a text field.
func (v ProgressView) IsInputMode() bool {
	return false
}

// Update handles messages
func (v ProgressView) Update(msg tea.Msg) (ProgressView, tea.Cmd) {
	return v, nil
}

// View renders the stats
func (v ProgressView) View() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	st := v.app.Store.State()
	project := st.ActiveProject()
	if project == nil {
		return styles.Label.Render("No active project. Press 1 to pick one.")
	}
	tasks := st.ActiveTasks()
	now := time.Now()

	var sections []string
	sections = append(sections, styles.Title.Render("Progress: "+project.Name))

	// completion bar
	percent := query.CompletionPercent(tasks)
	done, total := query.DoneCount(tasks)
	sections = append(sections, v.renderBar(percent))
	sections = append(sections, styles.Label.Render(
		fmt.Sprintf("%d of %d tasks done (%d%%)", done, total, percent)))
	sections = append(sections, "")

	// per-column counts
	for _, g := range query.GroupByColumn(*project, tasks) {
		sections = append(sections, fmt.Sprintf("%s %s",
			styles.Label.Render(fmt.Sprintf("%-14s", g.Column)),
			lipgloss.NewStyle().Foreground(t.Foreground).Render(fmt.Sprintf("%d", len(g.Tasks)))))
	}
	sections = append(sections, "")

	all := make([]model.Task, 0, len(tasks))
	overdue := 0
	for _, task := range tasks {
		all = append(all, task)
		if task.IsOverdue(now) {
			overdue++
		}
	}

	spent := query.TotalTimeSpent(all)
	sections = append(sections, styles.Label.Render("Time logged:   ")+formatDuration(spent))

	if hours := query.EstimatedHours(all); hours > 0 {
		sections = append(sections, styles.Label.Render("Estimated:     ")+fmt.Sprintf("%dh", hours))
	}

	streak := query.Streak(tasks, now)
	flame := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	sections = append(sections, styles.Label.Render("Streak:        ")+
		flame.Render(fmt.Sprintf("%d day(s)", streak)))

	if high := query.HighPriorityCount(all); high > 0 {
		sections = append(sections, styles.Label.Render("High priority: ")+fmt.Sprintf("%d open", high))
	}
	if overdue > 0 {
		sections = append(sections, styles.Label.Render("Overdue:       ")+
			lipgloss.NewStyle().Foreground(t.Error).Render(fmt.Sprintf("%d", overdue)))
	}

	// recent reflections
	if text, ok := st.Reflections[model.Day(now)]; ok && text != "" {
		sections = append(sections, "",
			styles.Label.Render("Today's reflection:"),
			lipgloss.NewStyle().Foreground(t.Secondary).Italic(true).Render("  "+text))
	}

	return strings.Join(sections, "\n")
}

func (v ProgressView) renderBar(percent int) string {
	t := theme.Current.Theme

	width := 40
	filled := percent * width / 100
	if filled > width {
		filled = width
	}

	bar := lipgloss.NewStyle().Foreground(t.Success).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(t.Subtle).Render(strings.Repeat("░", width-filled))
	return bar
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
