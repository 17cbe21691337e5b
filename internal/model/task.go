package model

import (
	"time"
)

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Weight returns a numeric weight for sorting by priority
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// Statuses of the default workflow. Columns are free-form per project,
// but the derived views key off these names for completion, streaks and
// focus eligibility.
const (
	StatusBacklog    = "Backlog"
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// Task represents a single card on a project board. Status is always one
// of the owning project's columns; TimeSpent accumulates whole seconds
// logged by focus sessions.
type Task struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Priority      Priority  `json:"priority"`
	DueDate       string    `json:"dueDate,omitempty"`       // YYYY-MM-DD
	EstimatedTime string    `json:"estimatedTime,omitempty"` // free text, e.g. "2h"
	Tags          []string  `json:"tags,omitempty"`
	Status        string    `json:"status"`
	TimeSpent     int       `json:"timeSpent"` // seconds
	CreatedAt     time.Time `json:"createdAt"`
}

// IsDone returns true once the task sits in the Done column.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// IsFocusable returns true if the task is eligible for a focus session.
func (t *Task) IsFocusable() bool {
	return t.Status == StatusToDo || t.Status == StatusInProgress
}

// IsOverdue returns true if the task is past its due date and not done.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == "" || t.IsDone() {
		return false
	}
	return t.DueDate < Day(now)
}

// TaskPatch is a partial task update. Nil fields are left untouched so a
// patch expresses the shallow-merge semantics of a task edit.
type TaskPatch struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Priority      *Priority `json:"priority,omitempty"`
	DueDate       *string   `json:"dueDate,omitempty"`
	EstimatedTime *string   `json:"estimatedTime,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Status        *string   `json:"status,omitempty"`
}

// Apply merges the patch into a copy of t and returns it.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.EstimatedTime != nil {
		t.EstimatedTime = *p.EstimatedTime
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}

// StatusPatch is shorthand for the most common edit: a column move.
func StatusPatch(status string) TaskPatch {
	return TaskPatch{Status: &status}
}
