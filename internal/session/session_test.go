package session

import (
	"testing"
	"time"

	"github.com/dori/fokus/internal/model"
	"github.com/dori/fokus/internal/store"
)

type fakeNotifier struct {
	sessions []string
	breaks   int
}

func (f *fakeNotifier) SessionComplete(title string) { f.sessions = append(f.sessions, title) }
func (f *fakeNotifier) BreakComplete()               { f.breaks++ }

type fixture struct {
	store    *store.Store
	coord    *Coordinator
	notifier *fakeNotifier
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		notifier: &fakeNotifier{},
		now:      time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	f.store = store.New()
	f.store.Dispatch(store.CreateProject{Project: model.Project{
		ID: "p1", Name: "Home", Columns: model.DefaultColumns(),
	}})
	f.store.Dispatch(store.AddTask{ProjectID: "p1", Task: model.Task{
		ID: "t1", Title: "write report", Status: model.StatusInProgress,
	}})
	f.coord = New(f.store, f.notifier, 25*time.Minute, 5*time.Minute)
	f.coord.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func (f *fixture) task() model.Task {
	t, _ := f.store.State().Task("p1", "t1")
	return t
}

func TestStartSetsFocusMode(t *testing.T) {
	f := newFixture(t)

	f.coord.Start("p1", "t1", "write report")
	if f.coord.State() != Working {
		t.Fatalf("state = %v, want working", f.coord.State())
	}
	fm := f.store.State().FocusMode
	if !fm.Active || fm.TaskID != "t1" {
		t.Fatalf("focus mode = %+v", fm)
	}
	if got := f.coord.Remaining(); got != 25*time.Minute {
		t.Fatalf("remaining = %v", got)
	}
}

func TestPauseResumeShiftsStart(t *testing.T) {
	f := newFixture(t)
	f.coord.Start("p1", "t1", "write report")

	f.advance(10 * time.Minute)
	f.coord.Pause()
	if got := f.coord.Remaining(); got != 15*time.Minute {
		t.Fatalf("remaining while paused = %v", got)
	}

	// paused time does not burn the countdown
	f.advance(30 * time.Minute)
	if got := f.coord.Remaining(); got != 15*time.Minute {
		t.Fatalf("remaining after long pause = %v", got)
	}

	f.coord.Resume()
	f.advance(5 * time.Minute)
	if got := f.coord.Remaining(); got != 10*time.Minute {
		t.Fatalf("remaining after resume = %v", got)
	}
}

func TestStopLogsElapsed(t *testing.T) {
	f := newFixture(t)
	f.coord.Start("p1", "t1", "write report")
	f.advance(7 * time.Minute)
	f.coord.Stop()

	if f.coord.State() != Idle {
		t.Fatalf("state = %v, want idle", f.coord.State())
	}
	if got := f.task().TimeSpent; got != 7*60 {
		t.Fatalf("timeSpent = %d, want %d", got, 7*60)
	}
	if f.store.State().FocusMode.Active {
		t.Fatal("focus mode still active after stop")
	}
}

func TestStopWhilePausedLogsPrePauseTime(t *testing.T) {
	f := newFixture(t)
	f.coord.Start("p1", "t1", "write report")
	f.advance(4 * time.Minute)
	f.coord.Pause()
	f.advance(20 * time.Minute)
	f.coord.Stop()

	if got := f.task().TimeSpent; got != 4*60 {
		t.Fatalf("timeSpent = %d, want %d", got, 4*60)
	}
}

func TestWorkExhaustionRollsIntoBreak(t *testing.T) {
	f := newFixture(t)
	f.coord.Start("p1", "t1", "write report")

	f.advance(24 * time.Minute)
	f.coord.Tick()
	if f.coord.State() != Working {
		t.Fatalf("ticked into %v before time was up", f.coord.State())
	}

	f.advance(1 * time.Minute)
	f.coord.Tick()
	if f.coord.State() != OnBreak {
		t.Fatalf("state = %v, want break", f.coord.State())
	}
	if got := f.task().TimeSpent; got != 25*60 {
		t.Fatalf("timeSpent = %d, want full session", got)
	}
	if f.coord.CompletedToday() != 1 {
		t.Fatalf("completed = %d", f.coord.CompletedToday())
	}
	if len(f.notifier.sessions) != 1 || f.notifier.sessions[0] != "write report" {
		t.Fatalf("notifications = %v", f.notifier.sessions)
	}
	if f.store.State().FocusMode.Active {
		t.Fatal("focus mode should clear when the break starts")
	}

	f.advance(5 * time.Minute)
	f.coord.Tick()
	if f.coord.State() != Idle {
		t.Fatalf("state after break = %v, want idle", f.coord.State())
	}
	if f.notifier.breaks != 1 {
		t.Fatalf("break notifications = %d", f.notifier.breaks)
	}
}

func TestSkipBreak(t *testing.T) {
	f := newFixture(t)
	f.coord.Start("p1", "t1", "write report")
	f.advance(25 * time.Minute)
	f.coord.Tick()

	f.coord.SkipBreak()
	if f.coord.State() != Idle {
		t.Fatalf("state = %v, want idle", f.coord.State())
	}
}

func TestCompleteTaskDuringSession(t *testing.T) {
	f := newFixture(t)
	f.coord.Start("p1", "t1", "write report")
	f.advance(12 * time.Minute)
	f.coord.CompleteTask("p1", "t1")

	if f.coord.State() != Idle {
		t.Fatalf("state = %v, want idle", f.coord.State())
	}
	task := f.task()
	if task.Status != model.StatusDone {
		t.Fatalf("status = %q", task.Status)
	}
	if task.TimeSpent != 12*60 {
		t.Fatalf("timeSpent = %d", task.TimeSpent)
	}
}

func TestCompleteTaskAdvancesToNextFocusable(t *testing.T) {
	f := newFixture(t)
	f.store.Dispatch(store.AddTask{ProjectID: "p1", Task: model.Task{
		ID: "t2", Title: "review notes", Status: model.StatusToDo,
	}})

	f.coord.Start("p1", "t1", "write report")
	f.advance(9 * time.Minute)
	f.coord.CompleteTask("p1", "t1")

	if f.coord.State() != Working {
		t.Fatalf("state = %v, want working on the next task", f.coord.State())
	}
	if f.coord.TaskID() != "t2" {
		t.Fatalf("taskID = %q, want t2", f.coord.TaskID())
	}
	if got := f.coord.Remaining(); got != 25*time.Minute {
		t.Fatalf("remaining = %v, want a fresh session", got)
	}
	if got := f.task().TimeSpent; got != 9*60 {
		t.Fatalf("timeSpent = %d", got)
	}
}

func TestCompleteTaskIdleOnlyFlipsStatus(t *testing.T) {
	f := newFixture(t)
	f.coord.CompleteTask("p1", "t1")

	task := f.task()
	if task.Status != model.StatusDone {
		t.Fatalf("status = %q", task.Status)
	}
	if task.TimeSpent != 0 {
		t.Fatalf("timeSpent = %d, want none logged", task.TimeSpent)
	}
}

func TestPauseIgnoredWhenIdle(t *testing.T) {
	f := newFixture(t)
	f.coord.Pause()
	if f.coord.State() != Idle {
		t.Fatalf("state = %v", f.coord.State())
	}
	f.coord.Resume()
	if f.coord.State() != Idle {
		t.Fatalf("state = %v", f.coord.State())
	}
}
