package store

import (
	"github.com/dori/fokus/internal/model"
)

// Action is the closed set of state transitions. Every kind is reduced
// explicitly; an action kind the reducer does not know is a programming
// error, not a silent no-op.
type Action interface {
	isAction()
}

// LoadState merges a persisted snapshot over a fresh default state,
// payload winning per top-level key. The persistence adapter rejects
// malformed payloads before anything is dispatched.
type LoadState struct {
	Snapshot model.Snapshot
}

// CreateProject appends a pre-populated project and makes it the active
// one. Supplying a duplicate id is a caller error.
type CreateProject struct {
	Project model.Project
}

// SetActiveProject sets the active project id verbatim, no existence
// check; readers tolerate a dangling id as "no active project". An empty
// id clears the selection.
type SetActiveProject struct {
	ID string
}

// DeleteProject removes a project together with its task collection and
// its daily plan, and clears the active id if it pointed there. Deleting
// an unknown id leaves the state untouched.
type DeleteProject struct {
	ID string
}

// UpdateProject shallow-merges a patch into the matching project; no-op
// when the id is not found.
type UpdateProject struct {
	ID    string
	Patch model.ProjectPatch
}

// AddTask inserts a task into a project's collection, creating the
// collection if needed. An empty ProjectID targets the active project;
// an empty task id gets a generated one; createdAt defaults to the
// dispatch time.
type AddTask struct {
	ProjectID string
	Task      model.Task
}

// UpdateTask shallow-merges a patch into an existing task. Column moves
// are a Status patch. The state is unchanged when the task is missing.
type UpdateTask struct {
	ProjectID string // empty targets the active project
	TaskID    string
	Patch     model.TaskPatch
}

// LogTimeSpent adds elapsed seconds to a task's running total; no-op
// when the task is missing. Seconds are expected non-negative; that is
// the caller's contract, not validated here.
type LogTimeSpent struct {
	ProjectID string // empty targets the active project
	TaskID    string
	Seconds   int
}

// SaveReflection sets the reflection text for a calendar day,
// overwriting any previous entry.
type SaveReflection struct {
	Date string
	Text string
}

// SetFocusMode replaces the focus pointer wholesale.
type SetFocusMode struct {
	Focus model.FocusMode
}

// SetDailyPlan replaces a project's daily plan wholesale; a stale plan
// from a previous date is simply overwritten. An empty ProjectID targets
// the active project.
type SetDailyPlan struct {
	ProjectID string
	Plan      model.DailyPlan
}

func (LoadState) isAction()        {}
func (CreateProject) isAction()    {}
func (SetActiveProject) isAction() {}
func (DeleteProject) isAction()    {}
func (UpdateProject) isAction()    {}
func (AddTask) isAction()          {}
func (UpdateTask) isAction()       {}
func (LogTimeSpent) isAction()     {}
func (SaveReflection) isAction()   {}
func (SetFocusMode) isAction()     {}
func (SetDailyPlan) isAction()     {}
