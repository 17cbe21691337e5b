package model

import (
	"slices"
	"time"
)

// DateLayout is the calendar-day format used by plans, reflections and
// due dates.
const DateLayout = "2006-01-02"

// Day formats a timestamp as its local calendar day.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// DailyPlan is the ordered set of tasks committed to for one calendar
// day. A plan whose date is not the current day is stale and must be
// read as empty.
type DailyPlan struct {
	Date    string   `json:"date"` // YYYY-MM-DD
	TaskIDs []string `json:"taskIds"`
}

// Contains reports whether the task is part of the plan.
func (p DailyPlan) Contains(taskID string) bool {
	return slices.Contains(p.TaskIDs, taskID)
}

// FocusMode points at the task currently being focused. Session timing
// lives in the session coordinator, not here; this survives restarts
// only as a pointer, never as a running clock.
type FocusMode struct {
	Active bool   `json:"active"`
	TaskID string `json:"taskId,omitempty"`
}
