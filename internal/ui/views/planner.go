package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/fokus/internal/app"
	"github.com/dori/fokus/internal/model"
	"github.com/dori/fokus/internal/query"
	"github.com/dori/fokus/internal/store"
	"github.com/dori/fokus/internal/ui/theme"
)

type plannerSection int

const (
	sectionPlanned plannerSection = iota
	sectionAvailable
)

// PlannerView builds today's plan for the active project and records
// the daily reflection.
type PlannerView struct {
	app    *app.App
	width  int
	height int

	section    plannerSection
	cursor     int
	reflecting bool
	input      textinput.Model
	statusMsg  string
}

// NewPlannerView creates the planner view.
func NewPlannerView(application *app.App) PlannerView {
	ti := textinput.New()
	ti.Placeholder = "how did today go?"
	ti.CharLimit = 500
	return PlannerView{app: application, input: ti}
}

// Init initializes the view
func (v PlannerView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v PlannerView) SetSize(width, height int) PlannerView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether keystrokes should go to a text field.
func (v PlannerView) IsInputMode() bool {
	return v.reflecting
}

func (v PlannerView) sections() (planned, available []model.Task) {
	st := v.app.Store.State()
	now := time.Now()
	return query.PlannedTasks(st, now), query.AvailableTasks(st, now)
}

func (v PlannerView) current() []model.Task {
	planned, available := v.sections()
	if v.section == sectionPlanned {
		return planned
	}
	return available
}

// Update handles messages
func (v PlannerView) Update(msg tea.Msg) (PlannerView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.reflecting {
		return v.updateReflecting(keyMsg)
	}

	st := v.app.Store.State()
	if st.ActiveProjectID == "" {
		return v, nil
	}

	switch keyMsg.String() {
	case "tab":
		if v.section == sectionPlanned {
			v.section = sectionAvailable
		} else {
			v.section = sectionPlanned
		}
		v.cursor = 0

	case "j", "down":
		if v.cursor < len(v.current())-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}

	case " ", "enter":
		tasks := v.current()
		if v.cursor < len(tasks) {
			if v.section == sectionPlanned {
				v.removeFromPlan(tasks[v.cursor].ID)
			} else {
				v.addToPlan(tasks[v.cursor].ID)
			}
			if v.cursor >= len(v.current()) && v.cursor > 0 {
				v.cursor--
			}
		}

	case "r":
		v.reflecting = true
		v.input.SetValue(st.Reflections[model.Day(time.Now())])
		v.input.Focus()
		return v, textinput.Blink
	}

	return v, nil
}

func (v PlannerView) updateReflecting(msg tea.KeyMsg) (PlannerView, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(v.input.Value())
		v.app.Store.Dispatch(store.SaveReflection{
			Date: model.Day(time.Now()),
			Text: text,
		})
		v.statusMsg = "Reflection saved"
		v.reflecting = false
		v.input.Blur()
		return v, nil

	case "esc":
		v.reflecting = false
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v PlannerView) addToPlan(taskID string) {
	st := v.app.Store.State()
	plan := query.PlanForToday(st, time.Now())
	if plan.Contains(taskID) {
		return
	}
	plan.TaskIDs = append(append([]string(nil), plan.TaskIDs...), taskID)
	v.app.Store.Dispatch(store.SetDailyPlan{Plan: plan})
}

func (v PlannerView) removeFromPlan(taskID string) {
	st := v.app.Store.State()
	plan := query.PlanForToday(st, time.Now())
	ids := make([]string, 0, len(plan.TaskIDs))
	for _, id := range plan.TaskIDs {
		if id != taskID {
			ids = append(ids, id)
		}
	}
	plan.TaskIDs = ids
	v.app.Store.Dispatch(store.SetDailyPlan{Plan: plan})
}

// View renders the planner
func (v PlannerView) View() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	st := v.app.Store.State()
	if st.ActiveProjectID == "" {
		return styles.Label.Render("No active project. Press 1 to pick one.")
	}

	planned, available := v.sections()

	var sections []string
	sections = append(sections, styles.Title.Render(
		fmt.Sprintf("Today's Plan (%s)", model.Day(time.Now()))))

	hours := query.EstimatedHours(planned)
	summary := fmt.Sprintf("%d task(s) planned", len(planned))
	if hours > 0 {
		summary += fmt.Sprintf(", ~%dh estimated", hours)
	}
	sections = append(sections, styles.Label.Render(summary), "")

	sections = append(sections, v.renderSection("Planned", planned, sectionPlanned))
	sections = append(sections, "")
	sections = append(sections, v.renderSection("Available", available, sectionAvailable))

	if text, ok := st.Reflections[model.Day(time.Now())]; ok && text != "" && !v.reflecting {
		sections = append(sections, "",
			styles.Label.Render("Reflection: ")+lipgloss.NewStyle().Foreground(t.Secondary).Render(text))
	}

	if v.reflecting {
		sections = append(sections, "", styles.InputFocused.Render("Reflection: "+v.input.View()))
	}
	if v.statusMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(t.Info).Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

func (v PlannerView) renderSection(name string, tasks []model.Task, section plannerSection) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	header := styles.PanelTitle.Render(fmt.Sprintf("%s (%d)", name, len(tasks)))
	if v.section == section {
		header = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true).
			Padding(0, 1).Render(fmt.Sprintf("%s (%d)", name, len(tasks)))
	}

	var lines []string
	lines = append(lines, header)

	if len(tasks) == 0 {
		lines = append(lines, styles.Label.Render("  (empty)"))
	}
	for i, task := range tasks {
		marker := lipgloss.NewStyle().
			Foreground(t.PriorityColor(string(task.Priority))).
			Render("●")
		line := fmt.Sprintf("%s %s", marker, task.Title)
		if task.EstimatedTime != "" {
			line += styles.Label.Render("  " + task.EstimatedTime)
		}
		if task.IsDone() {
			line += lipgloss.NewStyle().Foreground(t.Success).Render("  ✓")
		}

		style := styles.TaskNormal
		if v.section == section && i == v.cursor {
			style = styles.TaskSelected
		}
		lines = append(lines, style.Render(line))
	}

	return strings.Join(lines, "\n")
}
