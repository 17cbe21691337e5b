package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/fokus/internal/app"
	"github.com/dori/fokus/internal/ident"
	"github.com/dori/fokus/internal/model"
	"github.com/dori/fokus/internal/query"
	"github.com/dori/fokus/internal/store"
	"github.com/dori/fokus/internal/ui/theme"
)

// ProjectSelectedMsg tells the root model a project was opened.
type ProjectSelectedMsg struct {
	ProjectID string
}

type projectsMode int

const (
	projectsNormal projectsMode = iota
	projectsAdding
	projectsRenaming
	projectsConfirmDelete
)

// ProjectsView lists the projects and switches the active one.
type ProjectsView struct {
	app    *app.App
	width  int
	height int

	cursor    int
	mode      projectsMode
	input     textinput.Model
	statusMsg string
}

// NewProjectsView creates the projects view.
func NewProjectsView(application *app.App) ProjectsView {
	ti := textinput.New()
	ti.Placeholder = "project name"
	ti.CharLimit = 120
	return ProjectsView{app: application, input: ti}
}

// Init initializes the view
func (v ProjectsView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v ProjectsView) SetSize(width, height int) ProjectsView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether keystrokes should go to a text field.
func (v ProjectsView) IsInputMode() bool {
	return v.mode != projectsNormal
}

func (v ProjectsView) projects() []model.Project {
	return v.app.Store.State().Projects
}

// Update handles messages
func (v ProjectsView) Update(msg tea.Msg) (ProjectsView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.mode {
	case projectsAdding, projectsRenaming:
		return v.updateInput(keyMsg)
	case projectsConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	}

	projects := v.projects()

	switch keyMsg.String() {
	case "j", "down":
		if v.cursor < len(projects)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		if len(projects) > 0 {
			v.cursor = len(projects) - 1
		}

	case "a":
		v.mode = projectsAdding
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink

	case "e":
		if v.cursor < len(projects) {
			v.mode = projectsRenaming
			v.input.SetValue(projects[v.cursor].Name)
			v.input.Focus()
			return v, textinput.Blink
		}

	case "d":
		if v.cursor < len(projects) {
			v.mode = projectsConfirmDelete
		}

	case "enter":
		if v.cursor < len(projects) {
			p := projects[v.cursor]
			v.app.Store.Dispatch(store.SetActiveProject{ID: p.ID})
			return v, func() tea.Msg { return ProjectSelectedMsg{ProjectID: p.ID} }
		}
	}

	return v, nil
}

func (v ProjectsView) updateInput(msg tea.KeyMsg) (ProjectsView, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(v.input.Value())
		if name != "" {
			switch v.mode {
			case projectsAdding:
				v.app.Store.Dispatch(store.CreateProject{Project: model.Project{
					ID:      ident.New(),
					Name:    name,
					Columns: model.DefaultColumns(),
				}})
				v.cursor = len(v.projects()) - 1
				v.statusMsg = fmt.Sprintf("Created %q", name)
			case projectsRenaming:
				p := v.projects()[v.cursor]
				v.app.Store.Dispatch(store.UpdateProject{
					ID:    p.ID,
					Patch: model.ProjectPatch{Name: &name},
				})
				v.statusMsg = "Renamed"
			}
		}
		v.mode = projectsNormal
		v.input.Blur()
		return v, nil

	case "esc":
		v.mode = projectsNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v ProjectsView) updateConfirmDelete(msg tea.KeyMsg) (ProjectsView, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		projects := v.projects()
		if v.cursor < len(projects) {
			p := projects[v.cursor]
			v.app.Store.Dispatch(store.DeleteProject{ID: p.ID})
			v.statusMsg = fmt.Sprintf("Deleted %q", p.Name)
			if v.cursor >= len(v.projects()) && v.cursor > 0 {
				v.cursor--
			}
		}
	}
	v.mode = projectsNormal
	return v, nil
}

// View renders the project list
func (v ProjectsView) View() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	var sections []string
	sections = append(sections, styles.Title.Render("Projects"))

	projects := v.projects()
	activeID := v.app.Store.State().ActiveProjectID

	if len(projects) == 0 && v.mode != projectsAdding {
		sections = append(sections, styles.Label.Render("No projects yet. Press a to create one."))
	}

	for i, p := range projects {
		tasks := v.app.Store.State().ProjectTasks(p.ID)
		done, total := query.DoneCount(tasks)

		marker := "  "
		if p.ID == activeID {
			marker = lipgloss.NewStyle().Foreground(t.Success).Render("● ")
		}

		name := p.Name
		if p.Type != "" {
			name += styles.Label.Render("  (" + p.Type + ")")
		}

		line := fmt.Sprintf("%s%s  %s", marker, name,
			styles.Label.Render(fmt.Sprintf("%d/%d done, %d%%", done, total, query.CompletionPercent(tasks))))

		style := styles.TaskNormal
		if i == v.cursor {
			style = styles.TaskSelected
		}
		sections = append(sections, style.Render(line))

		if p.Goal != "" && i == v.cursor {
			sections = append(sections, styles.Label.Render("    goal: "+p.Goal))
		}
	}

	switch v.mode {
	case projectsAdding:
		sections = append(sections, "", styles.InputFocused.Render("New project: "+v.input.View()))
	case projectsRenaming:
		sections = append(sections, "", styles.InputFocused.Render("Rename: "+v.input.View()))
	case projectsConfirmDelete:
		if v.cursor < len(projects) {
			warn := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
			sections = append(sections, "",
				warn.Render(fmt.Sprintf("Delete %q and all its tasks? (y/n)", projects[v.cursor].Name)))
		}
	}

	if v.statusMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(t.Info).Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}
