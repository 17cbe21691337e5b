// Package query holds the read-only projections over the application
// state: column grouping, completion, daily-plan resolution, streaks and
// time aggregation. Everything here is a pure function of its arguments;
// the views render these, the store never depends on them.
package query

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dori/fokus/internal/model"
)

// ColumnGroup is one board column with its member tasks.
type ColumnGroup struct {
	Column string
	Tasks  []model.Task
}

// GroupByColumn partitions a project's tasks by status, preserving the
// project's declared column order. Tasks inside a column are ordered by
// priority, then creation time, so rendering is stable across snapshots.
func GroupByColumn(p model.Project, tasks map[string]model.Task) []ColumnGroup {
	groups := make([]ColumnGroup, len(p.Columns))
	for i, col := range p.Columns {
		groups[i] = ColumnGroup{Column: col}
	}
	index := make(map[string]int, len(p.Columns))
	for i, col := range p.Columns {
		index[col] = i
	}
	for _, t := range tasks {
		if i, ok := index[t.Status]; ok {
			groups[i].Tasks = append(groups[i].Tasks, t)
		}
	}
	for i := range groups {
		sortTasks(groups[i].Tasks)
	}
	return groups
}

// CompletionPercent is the rounded share of done tasks, 0 for an empty
// collection.
func CompletionPercent(tasks map[string]model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.IsDone() {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

// DoneCount returns done and total task counts in one pass.
func DoneCount(tasks map[string]model.Task) (done, total int) {
	for _, t := range tasks {
		if t.IsDone() {
			done++
		}
	}
	return done, len(tasks)
}

// PlanForToday resolves the active project's daily plan at read time. A
// persisted plan counts only when its date is the current calendar day;
// anything else reads as an empty plan for today.
func PlanForToday(st model.AppState, now time.Time) model.DailyPlan {
	today := model.Day(now)
	plan, ok := st.DailyPlans[st.ActiveProjectID]
	if !ok || plan.Date != today {
		return model.DailyPlan{Date: today}
	}
	return plan
}

// PlannedTasks resolves today's plan against the active project's task
// collection, preserving plan order. Entries for tasks that no longer
// exist are filtered here, not eagerly pruned from the plan.
func PlannedTasks(st model.AppState, now time.Time) []model.Task {
	plan := PlanForToday(st, now)
	tasks := st.ActiveTasks()
	out := make([]model.Task, 0, len(plan.TaskIDs))
	for _, id := range plan.TaskIDs {
		if t, ok := tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// AvailableTasks is the active project's tasks not in today's plan,
// priority-ordered.
func AvailableTasks(st model.AppState, now time.Time) []model.Task {
	plan := PlanForToday(st, now)
	var out []model.Task
	for _, t := range st.ActiveTasks() {
		if !plan.Contains(t.ID) {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out
}

// Focusable returns the tasks eligible for a focus session (To Do or In
// Progress), priority-ordered.
func Focusable(tasks map[string]model.Task) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.IsFocusable() {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out
}

// TotalTimeSpent sums logged seconds across tasks. Presentation converts
// to minutes; derived units are never stored.
func TotalTimeSpent(tasks []model.Task) int {
	total := 0
	for _, t := range tasks {
		total += t.TimeSpent
	}
	return total
}

// EstimatedHours sums the leading hour figure of free-text estimates
// such as "2h" or "3 hours"; unparsable estimates count as zero.
func EstimatedHours(tasks []model.Task) int {
	total := 0
	for _, t := range tasks {
		total += parseHours(t.EstimatedTime)
	}
	return total
}

// HighPriorityCount counts High tasks in a list.
func HighPriorityCount(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Priority == model.PriorityHigh {
			n++
		}
	}
	return n
}

func parseHours(estimate string) int {
	estimate = strings.TrimSpace(estimate)
	i := 0
	for i < len(estimate) && estimate[i] >= '0' && estimate[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(estimate[:i])
	if err != nil {
		return 0
	}
	return n
}

// sortTasks orders by priority weight descending, then creation time,
// then id for a total order.
func sortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Priority.Weight() != b.Priority.Weight() {
			return a.Priority.Weight() > b.Priority.Weight()
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
