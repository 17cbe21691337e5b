package store

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/dori/fokus/internal/model"
)

// reduce is a pure transition: it never mutates st, reads nothing
// outside its arguments, and returns the next state. The containers it
// touches are cloned shallowly; untouched parts are shared between
// snapshots.
func reduce(st model.AppState, a Action, now time.Time, newID func() string) model.AppState {
	switch a := a.(type) {
	case LoadState:
		return a.Snapshot.Merge(model.NewAppState())

	case CreateProject:
		st.Projects = append(slices.Clone(st.Projects), a.Project)
		st.ActiveProjectID = a.Project.ID
		return st

	case SetActiveProject:
		st.ActiveProjectID = a.ID
		return st

	case DeleteProject:
		st.Projects = slices.DeleteFunc(slices.Clone(st.Projects), func(p model.Project) bool {
			return p.ID == a.ID
		})
		if st.ActiveProjectID == a.ID {
			st.ActiveProjectID = ""
		}
		tasks := maps.Clone(st.Tasks)
		delete(tasks, a.ID)
		st.Tasks = tasks
		plans := maps.Clone(st.DailyPlans)
		delete(plans, a.ID)
		st.DailyPlans = plans
		return st

	case UpdateProject:
		projects := slices.Clone(st.Projects)
		for i := range projects {
			if projects[i].ID == a.ID {
				projects[i] = a.Patch.Apply(projects[i])
			}
		}
		st.Projects = projects
		return st

	case AddTask:
		projectID := orActive(a.ProjectID, st)
		t := a.Task
		t.ProjectID = projectID
		if t.ID == "" {
			t.ID = newID()
		}
		if t.Priority == "" {
			t.Priority = model.PriorityMedium
		}
		if t.Status == "" {
			t.Status = model.StatusToDo
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		return withTask(st, projectID, t)

	case UpdateTask:
		projectID := orActive(a.ProjectID, st)
		cur, ok := st.Tasks[projectID][a.TaskID]
		if !ok {
			return st
		}
		return withTask(st, projectID, a.Patch.Apply(cur))

	case LogTimeSpent:
		projectID := orActive(a.ProjectID, st)
		cur, ok := st.Tasks[projectID][a.TaskID]
		if !ok {
			return st
		}
		cur.TimeSpent += a.Seconds
		return withTask(st, projectID, cur)

	case SaveReflection:
		reflections := maps.Clone(st.Reflections)
		if reflections == nil {
			reflections = map[string]string{}
		}
		reflections[a.Date] = a.Text
		st.Reflections = reflections
		return st

	case SetFocusMode:
		st.FocusMode = a.Focus
		return st

	case SetDailyPlan:
		projectID := orActive(a.ProjectID, st)
		plans := maps.Clone(st.DailyPlans)
		if plans == nil {
			plans = map[string]model.DailyPlan{}
		}
		plans[projectID] = a.Plan
		st.DailyPlans = plans
		return st
	}

	panic(fmt.Sprintf("store: unhandled action %T", a))
}

func orActive(projectID string, st model.AppState) string {
	if projectID != "" {
		return projectID
	}
	return st.ActiveProjectID
}

// withTask replaces one task in one collection, cloning only the maps on
// the path to it.
func withTask(st model.AppState, projectID string, t model.Task) model.AppState {
	tasks := maps.Clone(st.Tasks)
	if tasks == nil {
		tasks = map[string]map[string]model.Task{}
	}
	collection := maps.Clone(tasks[projectID])
	if collection == nil {
		collection = map[string]model.Task{}
	}
	collection[t.ID] = t
	tasks[projectID] = collection
	st.Tasks = tasks
	return st
}
