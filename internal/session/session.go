// Package session drives the focus timer. The coordinator owns the
// countdown state machine and talks to the store only through actions,
// so every second of logged work lands in the same reducer path as a
// manual edit would.
package session

import (
	"time"

	"github.com/dori/fokus/internal/model"
	"github.com/dori/fokus/internal/query"
	"github.com/dori/fokus/internal/store"
)

// State is the coordinator's phase.
type State int

const (
	Idle State = iota
	Working
	Paused
	OnBreak
)

func (s State) String() string {
	switch s {
	case Working:
		return "working"
	case Paused:
		return "paused"
	case OnBreak:
		return "break"
	default:
		return "idle"
	}
}

// Notifier receives end-of-phase events. The desktop notifier satisfies
// this; tests stub it.
type Notifier interface {
	SessionComplete(taskTitle string)
	BreakComplete()
}

// Coordinator runs one focus session at a time against a store.
type Coordinator struct {
	store    *store.Store
	notifier Notifier

	workDuration  time.Duration
	breakDuration time.Duration

	state     State
	projectID string
	taskID    string
	taskTitle string
	duration  time.Duration
	startedAt time.Time
	pausedAt  time.Time
	completed int

	now func() time.Time
}

// New builds an idle coordinator. notifier may be nil.
func New(s *store.Store, notifier Notifier, work, brk time.Duration) *Coordinator {
	return &Coordinator{
		store:         s,
		notifier:      notifier,
		workDuration:  work,
		breakDuration: brk,
		now:           time.Now,
	}
}

// State reports the current phase.
func (c *Coordinator) State() State { return c.state }

// CompletedToday is the number of work sessions finished since startup.
func (c *Coordinator) CompletedToday() int { return c.completed }

// TaskID is the task the running session is charged to, empty when idle.
func (c *Coordinator) TaskID() string { return c.taskID }

// ProjectID is the project owning the session's task, empty when idle.
func (c *Coordinator) ProjectID() string { return c.projectID }

// Duration is the full length of the current phase, the work duration
// when idle.
func (c *Coordinator) Duration() time.Duration {
	if c.state == Idle {
		return c.workDuration
	}
	return c.duration
}

// Remaining is the time left in the current phase. Paused sessions hold
// their remainder; idle reports the full work duration.
func (c *Coordinator) Remaining() time.Duration {
	switch c.state {
	case Working, OnBreak:
		r := c.duration - c.now().Sub(c.startedAt)
		if r < 0 {
			return 0
		}
		return r
	case Paused:
		r := c.duration - c.pausedAt.Sub(c.startedAt)
		if r < 0 {
			return 0
		}
		return r
	default:
		return c.workDuration
	}
}

// Start begins a work session against a task. Starting while a session
// is running abandons it without logging; the new session takes over.
func (c *Coordinator) Start(projectID, taskID, taskTitle string) {
	c.state = Working
	c.projectID = projectID
	c.taskID = taskID
	c.taskTitle = taskTitle
	c.duration = c.workDuration
	c.startedAt = c.now()
	c.store.Dispatch(store.SetFocusMode{
		Focus: model.FocusMode{Active: true, TaskID: taskID},
	})
}

// Pause freezes the countdown. Only a working session can pause.
func (c *Coordinator) Pause() {
	if c.state != Working {
		return
	}
	c.state = Paused
	c.pausedAt = c.now()
}

// Resume continues a paused session. The start time shifts forward by
// the paused interval so the remainder picks up where it left off.
func (c *Coordinator) Resume() {
	if c.state != Paused {
		return
	}
	c.startedAt = c.startedAt.Add(c.now().Sub(c.pausedAt))
	c.state = Working
}

// Stop abandons the session, logging whatever work time elapsed.
func (c *Coordinator) Stop() {
	switch c.state {
	case Working:
		c.logElapsed(c.now().Sub(c.startedAt))
	case Paused:
		c.logElapsed(c.pausedAt.Sub(c.startedAt))
	case OnBreak:
		// nothing to log for a break
	default:
		return
	}
	c.reset()
}

// Tick advances the state machine; the UI calls it once a second. When
// a work session runs out, its full duration is logged and a break
// begins; when a break runs out, the coordinator goes idle.
func (c *Coordinator) Tick() {
	switch c.state {
	case Working:
		if c.now().Sub(c.startedAt) < c.duration {
			return
		}
		c.logElapsed(c.duration)
		c.completed++
		if c.notifier != nil {
			c.notifier.SessionComplete(c.taskTitle)
		}
		c.state = OnBreak
		c.duration = c.breakDuration
		c.startedAt = c.now()
		c.store.Dispatch(store.SetFocusMode{Focus: model.FocusMode{}})
	case OnBreak:
		if c.now().Sub(c.startedAt) < c.duration {
			return
		}
		if c.notifier != nil {
			c.notifier.BreakComplete()
		}
		c.reset()
	}
}

// SkipBreak ends a running break immediately.
func (c *Coordinator) SkipBreak() {
	if c.state != OnBreak {
		return
	}
	c.reset()
}

// CompleteTask ends the session early, logs the elapsed work time and
// marks the task done. When a session was running, the coordinator
// advances to the next focusable task in the project, or goes idle when
// none remain. With no session running it only flips the task.
func (c *Coordinator) CompleteTask(projectID, taskID string) {
	wasRunning := (c.state == Working || c.state == Paused) && c.taskID == taskID
	if wasRunning {
		switch c.state {
		case Working:
			c.logElapsed(c.now().Sub(c.startedAt))
		case Paused:
			c.logElapsed(c.pausedAt.Sub(c.startedAt))
		}
		c.reset()
	}
	c.store.Dispatch(store.UpdateTask{
		ProjectID: projectID,
		TaskID:    taskID,
		Patch:     model.StatusPatch(model.StatusDone),
	})
	if wasRunning {
		for _, next := range query.Focusable(c.store.State().ProjectTasks(projectID)) {
			c.Start(projectID, next.ID, next.Title)
			return
		}
	}
}

func (c *Coordinator) logElapsed(d time.Duration) {
	secs := int(d.Seconds())
	if secs <= 0 {
		return
	}
	c.store.Dispatch(store.LogTimeSpent{
		ProjectID: c.projectID,
		TaskID:    c.taskID,
		Seconds:   secs,
	})
}

func (c *Coordinator) reset() {
	c.state = Idle
	c.projectID = ""
	c.taskID = ""
	c.taskTitle = ""
	c.duration = 0
	c.startedAt = time.Time{}
	c.pausedAt = time.Time{}
	c.store.Dispatch(store.SetFocusMode{Focus: model.FocusMode{}})
}
