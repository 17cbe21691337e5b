package model

import (
	"slices"
)

// DefaultColumns returns the workflow seeded by quick project creation.
// A fresh slice per call, so no two projects share a backing array.
func DefaultColumns() []string {
	return []string{StatusBacklog, StatusToDo, StatusInProgress, StatusDone}
}

// Project represents one board: its identity, its goal and the ordered
// workflow columns that double as the valid status set for its tasks.
type Project struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Goal     string   `json:"goal,omitempty"`
	Deadline string   `json:"deadline,omitempty"` // YYYY-MM-DD
	Columns  []string `json:"columns"`
}

// HasColumn reports whether name is a valid status for this project.
func (p *Project) HasColumn(name string) bool {
	return slices.Contains(p.Columns, name)
}

// ColumnIndex returns the position of a column, -1 if absent.
func (p *Project) ColumnIndex(name string) int {
	return slices.Index(p.Columns, name)
}

// NextColumn returns the column to the right of status, or status itself
// when it is already the last (or unknown) column.
func (p *Project) NextColumn(status string) string {
	i := p.ColumnIndex(status)
	if i < 0 || i >= len(p.Columns)-1 {
		return status
	}
	return p.Columns[i+1]
}

// PrevColumn returns the column to the left of status, or status itself
// when it is already the first (or unknown) column.
func (p *Project) PrevColumn(status string) string {
	i := p.ColumnIndex(status)
	if i <= 0 {
		return status
	}
	return p.Columns[i-1]
}

// ProjectPatch is a partial project update; nil fields are left untouched.
type ProjectPatch struct {
	Name     *string   `json:"name,omitempty"`
	Type     *string   `json:"type,omitempty"`
	Goal     *string   `json:"goal,omitempty"`
	Deadline *string   `json:"deadline,omitempty"`
	Columns  *[]string `json:"columns,omitempty"`
}

// Apply merges the patch into a copy of p and returns it.
func (patch ProjectPatch) Apply(p Project) Project {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Goal != nil {
		p.Goal = *patch.Goal
	}
	if patch.Deadline != nil {
		p.Deadline = *patch.Deadline
	}
	if patch.Columns != nil {
		p.Columns = *patch.Columns
	}
	return p
}
