package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/dori/fokus/internal/model"
)

var testClock = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// newTestStore returns a store with a fixed clock and sequential ids so
// transitions are fully deterministic.
func newTestStore(opts ...Option) *Store {
	n := 0
	base := []Option{
		WithClock(func() time.Time { return testClock }),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
	return New(append(base, opts...)...)
}

func project(id, name string) model.Project {
	return model.Project{ID: id, Name: name, Type: "Personal", Columns: model.DefaultColumns()}
}

func TestCreateProjectBecomesActive(t *testing.T) {
	is := is.New(t)
	s := newTestStore()

	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})

	st := s.State()
	is.Equal(len(st.Projects), 1)
	is.Equal(st.ActiveProjectID, "p1")
	is.Equal(st.Projects[0].Name, "Thesis")
}

func TestSetActiveProjectVerbatim(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})

	s.Dispatch(SetActiveProject{ID: ""})
	is.Equal(s.State().ActiveProjectID, "")

	s.Dispatch(SetActiveProject{ID: "p1"})
	is.Equal(s.State().ActiveProjectID, "p1")

	// no existence check; readers resolve a dangling id to nil
	s.Dispatch(SetActiveProject{ID: "ghost"})
	is.Equal(s.State().ActiveProjectID, "ghost")
	is.Equal(s.State().ActiveProject(), nil)
}

func TestAddTaskDefaults(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})

	s.Dispatch(AddTask{Task: model.Task{Title: "Write intro"}})

	tasks := s.State().ActiveTasks()
	is.Equal(len(tasks), 1)
	task := tasks["id-1"] // first generated id; project ids are caller-supplied
	is.Equal(task.Title, "Write intro")
	is.Equal(task.ProjectID, "p1")
	is.Equal(task.Priority, model.PriorityMedium)
	is.Equal(task.Status, model.StatusToDo)
	is.Equal(task.TimeSpent, 0)
	is.Equal(task.CreatedAt, testClock)
}

func TestAddTaskCreatesCollection(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})

	// explicit target project that has no collection yet
	s.Dispatch(AddTask{ProjectID: "p2", Task: model.Task{ID: "t1", Title: "Stray", Status: model.StatusToDo}})

	is.Equal(len(s.State().Tasks["p2"]), 1)
	is.Equal(s.State().Tasks["p2"]["t1"].ProjectID, "p2")
}

func TestUpdateTaskStatusMove(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})
	s.Dispatch(AddTask{Task: model.Task{ID: "t1", Title: "Write intro", Status: model.StatusToDo}})

	s.Dispatch(UpdateTask{TaskID: "t1", Patch: model.StatusPatch(model.StatusInProgress)})

	task, ok := s.State().Task("p1", "t1")
	is.True(ok)
	is.Equal(task.Status, model.StatusInProgress)
	is.Equal(task.TimeSpent, 0) // untouched by a status move
	is.Equal(task.Title, "Write intro")
}

func TestUpdateTaskMissingIsNoop(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})

	before := s.State()
	s.Dispatch(UpdateTask{TaskID: "ghost", Patch: model.StatusPatch(model.StatusDone)})
	is.Equal(s.State(), before)
}

func TestLogTimeSpentAccumulates(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})
	s.Dispatch(AddTask{Task: model.Task{ID: "t1", Title: "Write intro", Status: model.StatusInProgress}})

	s.Dispatch(LogTimeSpent{TaskID: "t1", Seconds: 30})
	s.Dispatch(LogTimeSpent{TaskID: "t1", Seconds: 45})

	task, _ := s.State().Task("p1", "t1")
	is.Equal(task.TimeSpent, 75)

	before := s.State()
	s.Dispatch(LogTimeSpent{TaskID: "ghost", Seconds: 10})
	is.Equal(s.State(), before)
}

func TestDeleteProjectClearsEverything(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})
	s.Dispatch(AddTask{Task: model.Task{ID: "t1", Title: "Write intro", Status: model.StatusToDo}})
	s.Dispatch(SetDailyPlan{Plan: model.DailyPlan{Date: "2026-03-14", TaskIDs: []string{"t1"}}})

	s.Dispatch(DeleteProject{ID: "p1"})

	st := s.State()
	is.Equal(len(st.Projects), 0)
	is.Equal(st.ActiveProjectID, "")
	// fully removed, not tombstoned
	_, hasTasks := st.Tasks["p1"]
	is.True(!hasTasks)
	_, hasPlan := st.DailyPlans["p1"]
	is.True(!hasPlan)
}

func TestDeleteProjectKeepsOthersActive(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})
	s.Dispatch(CreateProject{Project: project("p2", "Garden")})

	s.Dispatch(DeleteProject{ID: "p1"})

	st := s.State()
	is.Equal(len(st.Projects), 1)
	is.Equal(st.ActiveProjectID, "p2") // p2 was active, deletion of p1 leaves it
}

func TestUpdateProjectShallowMerge(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})

	goal := "Submit by June"
	s.Dispatch(UpdateProject{ID: "p1", Patch: model.ProjectPatch{Goal: &goal}})

	st := s.State()
	is.Equal(st.Projects[0].Goal, "Submit by June")
	is.Equal(st.Projects[0].Name, "Thesis") // untouched

	before := s.State()
	s.Dispatch(UpdateProject{ID: "ghost", Patch: model.ProjectPatch{Goal: &goal}})
	is.Equal(s.State(), before)
}

func TestSaveReflectionOverwrites(t *testing.T) {
	is := is.New(t)
	s := newTestStore()

	s.Dispatch(SaveReflection{Date: "2026-03-14", Text: "good day"})
	s.Dispatch(SaveReflection{Date: "2026-03-14", Text: "actually great day"})

	is.Equal(s.State().Reflections["2026-03-14"], "actually great day")
}

func TestSetFocusModeWholesale(t *testing.T) {
	is := is.New(t)
	s := newTestStore()

	s.Dispatch(SetFocusMode{Focus: model.FocusMode{Active: true, TaskID: "t1"}})
	is.Equal(s.State().FocusMode, model.FocusMode{Active: true, TaskID: "t1"})

	s.Dispatch(SetFocusMode{Focus: model.FocusMode{}})
	is.Equal(s.State().FocusMode, model.FocusMode{})
}

func TestSetDailyPlanPerProject(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})
	s.Dispatch(CreateProject{Project: project("p2", "Garden")})

	s.Dispatch(SetDailyPlan{ProjectID: "p1", Plan: model.DailyPlan{Date: "2026-03-14", TaskIDs: []string{"a"}}})
	s.Dispatch(SetDailyPlan{Plan: model.DailyPlan{Date: "2026-03-14", TaskIDs: []string{"b"}}}) // active = p2

	is.Equal(s.State().DailyPlans["p1"].TaskIDs, []string{"a"})
	is.Equal(s.State().DailyPlans["p2"].TaskIDs, []string{"b"})

	// wholesale replacement, stale plans are overwritten not merged
	s.Dispatch(SetDailyPlan{ProjectID: "p1", Plan: model.DailyPlan{Date: "2026-03-15", TaskIDs: nil}})
	is.Equal(s.State().DailyPlans["p1"].Date, "2026-03-15")
	is.Equal(len(s.State().DailyPlans["p1"].TaskIDs), 0)
}

func TestLoadStatePartialPayloadMergesOverDefaults(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})

	projects := []model.Project{project("p9", "Restored")}
	active := "p9"
	s.Dispatch(LoadState{Snapshot: model.Snapshot{
		Projects:        &projects,
		ActiveProjectID: &active,
	}})

	st := s.State()
	is.Equal(st.Projects, projects)
	is.Equal(st.ActiveProjectID, "p9")
	// keys absent from the payload fall back to defaults, prior in-memory
	// state does not leak through
	is.Equal(len(st.Tasks), 0)
	is.Equal(len(st.Reflections), 0)
	is.Equal(st.FocusMode, model.FocusMode{})
}

// Every transition leaves prior snapshots untouched: a reference taken
// before a dispatch still sees the old world.
func TestSnapshotsAreImmutable(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})
	s.Dispatch(AddTask{Task: model.Task{ID: "t1", Title: "Write intro", Status: model.StatusToDo}})

	before := s.State()
	s.Dispatch(UpdateTask{TaskID: "t1", Patch: model.StatusPatch(model.StatusDone)})
	s.Dispatch(SaveReflection{Date: "2026-03-14", Text: "x"})
	s.Dispatch(DeleteProject{ID: "p1"})

	is.Equal(before.Tasks["p1"]["t1"].Status, model.StatusToDo)
	is.Equal(len(before.Projects), 1)
	is.Equal(len(before.Reflections), 0)
}

// Status membership in the owning project's columns is preserved by any
// sequence of valid actions.
func TestInvariantStatusWithinColumns(t *testing.T) {
	is := is.New(t)
	s := newTestStore()
	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})
	s.Dispatch(AddTask{Task: model.Task{ID: "t1", Title: "a", Status: model.StatusToDo}})
	s.Dispatch(AddTask{Task: model.Task{ID: "t2", Title: "b", Status: model.StatusBacklog}})
	s.Dispatch(UpdateTask{TaskID: "t1", Patch: model.StatusPatch(model.StatusInProgress)})
	s.Dispatch(UpdateTask{TaskID: "t2", Patch: model.StatusPatch(model.StatusDone)})
	s.Dispatch(LogTimeSpent{TaskID: "t1", Seconds: 60})

	st := s.State()
	p := st.ActiveProject()
	is.True(p != nil)
	for _, task := range st.ProjectTasks(p.ID) {
		is.True(p.HasColumn(task.Status))
	}
}

func TestPersistHookFiresPerDispatch(t *testing.T) {
	is := is.New(t)
	saved := 0
	var last model.AppState
	s := newTestStore(WithPersist(func(st model.AppState) {
		saved++
		last = st
	}))

	s.Dispatch(CreateProject{Project: project("p1", "Thesis")})
	s.Dispatch(SetActiveProject{ID: ""})

	is.Equal(saved, 2)
	is.Equal(last, s.State())
}
