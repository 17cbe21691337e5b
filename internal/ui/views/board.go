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
	"github.com/dori/fokus/internal/quickadd"
	"github.com/dori/fokus/internal/store"
	"github.com/dori/fokus/internal/ui/theme"
)

// FocusTaskRequest asks the root model to open the focus view on a task.
type FocusTaskRequest struct {
	Task model.Task
}

// BoardView shows the active project's tasks as kanban columns.
type BoardView struct {
	app    *app.App
	width  int
	height int

	colCursor int
	rowCursor int
	adding    bool
	input     textinput.Model
	statusMsg string
}

// NewBoardView creates the board view.
func NewBoardView(application *app.App) BoardView {
	ti := textinput.New()
	ti.Placeholder = "task title  !high @tag due:2026-09-01 est:2h"
	ti.CharLimit = 200
	return BoardView{app: application, input: ti}
}

// Init initializes the view
func (v BoardView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v BoardView) SetSize(width, height int) BoardView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether keystrokes should go to a text field.
func (v BoardView) IsInputMode() bool {
	return v.adding
}

func (v BoardView) groups() (model.Project, []query.ColumnGroup, bool) {
	st := v.app.Store.State()
	p := st.ActiveProject()
	if p == nil {
		return model.Project{}, nil, false
	}
	return *p, query.GroupByColumn(*p, st.ActiveTasks()), true
}

func (v BoardView) selectedTask() (model.Task, bool) {
	_, groups, ok := v.groups()
	if !ok || v.colCursor >= len(groups) {
		return model.Task{}, false
	}
	col := groups[v.colCursor]
	if v.rowCursor >= len(col.Tasks) {
		return model.Task{}, false
	}
	return col.Tasks[v.rowCursor], true
}

func (v BoardView) clampCursors() BoardView {
	_, groups, ok := v.groups()
	if !ok || len(groups) == 0 {
		v.colCursor, v.rowCursor = 0, 0
		return v
	}
	if v.colCursor >= len(groups) {
		v.colCursor = len(groups) - 1
	}
	if n := len(groups[v.colCursor].Tasks); v.rowCursor >= n {
		if n == 0 {
			v.rowCursor = 0
		} else {
			v.rowCursor = n - 1
		}
	}
	return v
}

// Update handles messages
func (v BoardView) Update(msg tea.Msg) (BoardView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.adding {
		return v.updateAdding(keyMsg)
	}

	project, groups, hasProject := v.groups()
	if !hasProject {
		return v, nil
	}

	switch keyMsg.String() {
	case "h", "left":
		if v.colCursor > 0 {
			v.colCursor--
			v.rowCursor = 0
		}
	case "l", "right":
		if v.colCursor < len(groups)-1 {
			v.colCursor++
			v.rowCursor = 0
		}
	case "j", "down":
		if v.rowCursor < len(groups[v.colCursor].Tasks)-1 {
			v.rowCursor++
		}
	case "k", "up":
		if v.rowCursor > 0 {
			v.rowCursor--
		}

	case "a":
		v.adding = true
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink

	case "L":
		if t, ok := v.selectedTask(); ok {
			v.moveTask(t, project.NextColumn(t.Status))
			return v.clampCursors(), nil
		}
	case "H":
		if t, ok := v.selectedTask(); ok {
			v.moveTask(t, project.PrevColumn(t.Status))
			return v.clampCursors(), nil
		}

	case "tab", "enter":
		if t, ok := v.selectedTask(); ok {
			next := model.StatusDone
			if t.IsDone() {
				next = model.StatusToDo
			}
			v.moveTask(t, next)
			return v.clampCursors(), nil
		}

	case "p":
		if t, ok := v.selectedTask(); ok {
			p := cyclePriority(t.Priority)
			v.app.Store.Dispatch(store.UpdateTask{
				TaskID: t.ID,
				Patch:  model.TaskPatch{Priority: &p},
			})
		}

	case "f":
		if t, ok := v.selectedTask(); ok && t.IsFocusable() {
			return v, func() tea.Msg { return FocusTaskRequest{Task: t} }
		}
		v.statusMsg = "Only To Do or In Progress tasks can be focused"
	}

	return v, nil
}

func (v BoardView) updateAdding(msg tea.KeyMsg) (BoardView, tea.Cmd) {
	switch msg.String() {
	case "enter":
		task := quickadd.Parse(v.input.Value())
		if task.Title != "" {
			_, groups, ok := v.groups()
			if ok && v.colCursor < len(groups) {
				task.Status = groups[v.colCursor].Column
			}
			v.app.Store.Dispatch(store.AddTask{Task: task})
			v.statusMsg = fmt.Sprintf("Added %q", task.Title)
		}
		v.adding = false
		v.input.Blur()
		return v, nil

	case "esc":
		v.adding = false
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v BoardView) moveTask(t model.Task, status string) {
	if status == t.Status {
		return
	}
	v.app.Store.Dispatch(store.UpdateTask{
		TaskID: t.ID,
		Patch:  model.StatusPatch(status),
	})
}

func cyclePriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityLow:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityHigh
	default:
		return model.PriorityLow
	}
}

// View renders the kanban board
func (v BoardView) View() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	project, groups, ok := v.groups()
	if !ok {
		return styles.Label.Render("No active project. Press 1 to pick one.")
	}

	var sections []string
	title := project.Name
	if project.Deadline != "" {
		title += styles.Label.Render("  deadline " + project.Deadline)
	}
	sections = append(sections, styles.Title.Render(title))

	colWidth := v.width/len(groups) - 4
	if colWidth < 16 {
		colWidth = 16
	}

	cols := make([]string, len(groups))
	for i, g := range groups {
		cols[i] = v.renderColumn(g, i, colWidth)
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cols...))

	if v.adding {
		sections = append(sections, "", styles.InputFocused.Render("New task: "+v.input.View()))
	}
	if v.statusMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(t.Info).Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

func (v BoardView) renderColumn(g query.ColumnGroup, col, width int) string {
	styles := theme.Current.Styles

	panel := styles.Panel
	if col == v.colCursor {
		panel = styles.PanelActive
	}

	header := styles.PanelTitle.Render(fmt.Sprintf("%s (%d)", g.Column, len(g.Tasks)))

	var lines []string
	lines = append(lines, header)
	for i, task := range g.Tasks {
		lines = append(lines, v.renderTask(task, col == v.colCursor && i == v.rowCursor, width))
	}
	if len(g.Tasks) == 0 {
		lines = append(lines, styles.Label.Render("  -"))
	}

	return panel.Width(width).Render(strings.Join(lines, "\n"))
}

func (v BoardView) renderTask(task model.Task, selected bool, width int) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	marker := lipgloss.NewStyle().
		Foreground(t.PriorityColor(string(task.Priority))).
		Render("●")

	title := task.Title
	if max := width - 6; max > 0 {
		// truncate on runes so multibyte titles stay valid
		if r := []rune(title); len(r) > max {
			title = string(r[:max-1]) + "…"
		}
	}

	style := styles.TaskNormal
	switch {
	case selected:
		style = styles.TaskSelected
	case task.IsDone():
		style = styles.TaskDone
	case task.IsOverdue(time.Now()):
		style = styles.TaskOverdue
	}

	line := marker + " " + title
	if task.DueDate != "" && !task.IsDone() {
		line += styles.Label.Render(" ⏰" + task.DueDate)
	}
	return style.Render(line)
}
