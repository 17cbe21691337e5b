package model

// AppState is the aggregate root: everything the application persists
// and everything the reducer transitions. Consumers treat a returned
// state as immutable; transitions produce fresh snapshots.
type AppState struct {
	Projects        []Project                  `json:"projects"`
	ActiveProjectID string                     `json:"activeProjectId,omitempty"`
	Tasks           map[string]map[string]Task `json:"tasks"`
	FocusMode       FocusMode                  `json:"focusMode"`
	DailyPlans      map[string]DailyPlan       `json:"dailyPlans"`
	Reflections     map[string]string          `json:"reflections"`
}

// NewAppState returns a fresh default state.
func NewAppState() AppState {
	return AppState{
		Projects:    []Project{},
		Tasks:       map[string]map[string]Task{},
		DailyPlans:  map[string]DailyPlan{},
		Reflections: map[string]string{},
	}
}

// ActiveProject resolves the active project. A dangling or empty active
// id resolves to nil; readers treat that as "no active project".
func (s AppState) ActiveProject() *Project {
	if s.ActiveProjectID == "" {
		return nil
	}
	for i := range s.Projects {
		if s.Projects[i].ID == s.ActiveProjectID {
			return &s.Projects[i]
		}
	}
	return nil
}

// Project resolves a project by id, nil when absent.
func (s AppState) Project(id string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// ProjectTasks returns a project's task collection; nil when the project
// has none yet.
func (s AppState) ProjectTasks(projectID string) map[string]Task {
	return s.Tasks[projectID]
}

// ActiveTasks returns the active project's task collection.
func (s AppState) ActiveTasks() map[string]Task {
	return s.Tasks[s.ActiveProjectID]
}

// Task resolves a single task.
func (s AppState) Task(projectID, taskID string) (Task, bool) {
	t, ok := s.Tasks[projectID][taskID]
	return t, ok
}

// Snapshot is a persisted AppState image. Pointer fields make a partial
// payload distinguishable from an explicit empty value: on load, keys
// present in the payload win over defaults and missing keys fall back.
// Unknown keys in an old blob are dropped by construction.
type Snapshot struct {
	Projects        *[]Project                  `json:"projects,omitempty"`
	ActiveProjectID *string                     `json:"activeProjectId,omitempty"`
	Tasks           *map[string]map[string]Task `json:"tasks,omitempty"`
	FocusMode       *FocusMode                  `json:"focusMode,omitempty"`
	DailyPlans      *map[string]DailyPlan       `json:"dailyPlans,omitempty"`
	Reflections     *map[string]string          `json:"reflections,omitempty"`
}

// Merge lays the snapshot over base, payload winning per top-level key.
func (sn Snapshot) Merge(base AppState) AppState {
	if sn.Projects != nil {
		base.Projects = *sn.Projects
	}
	if sn.ActiveProjectID != nil {
		base.ActiveProjectID = *sn.ActiveProjectID
	}
	if sn.Tasks != nil {
		base.Tasks = *sn.Tasks
	}
	if sn.FocusMode != nil {
		base.FocusMode = *sn.FocusMode
	}
	if sn.DailyPlans != nil {
		base.DailyPlans = *sn.DailyPlans
	}
	if sn.Reflections != nil {
		base.Reflections = *sn.Reflections
	}
	return base
}
