// Package quickadd parses one-line task entry of the form
//
//	write report !high @work @deep due:tomorrow est:2h
//
// Bare words form the title; markers can appear anywhere.
package quickadd

import (
	"strings"
	"time"

	"github.com/dori/fokus/internal/model"
)

// Parse turns a quick-add line into a task, resolving relative due
// dates against the current day.
func Parse(input string) model.Task {
	return ParseAt(input, time.Now())
}

// ParseAt is Parse with an explicit reference time. Unrecognized
// markers stay in the title, so a typo never loses text.
func ParseAt(input string, now time.Time) model.Task {
	var t model.Task
	var title []string

	for _, word := range strings.Fields(input) {
		switch {
		case strings.HasPrefix(word, "!"):
			if p, ok := parsePriority(word[1:]); ok {
				t.Priority = p
				continue
			}
			title = append(title, word)

		case strings.HasPrefix(word, "@") && len(word) > 1:
			t.Tags = append(t.Tags, word[1:])

		case strings.HasPrefix(strings.ToLower(word), "due:"):
			if due, ok := parseDueDate(word[len("due:"):], now); ok {
				t.DueDate = due
				continue
			}
			title = append(title, word)

		case strings.HasPrefix(word, "est:"):
			t.EstimatedTime = word[len("est:"):]

		default:
			title = append(title, word)
		}
	}

	t.Title = strings.Join(title, " ")
	return t
}

func parsePriority(s string) (model.Priority, bool) {
	switch strings.ToLower(s) {
	case "low", "l":
		return model.PriorityLow, true
	case "medium", "med", "m":
		return model.PriorityMedium, true
	case "high", "hi", "h":
		return model.PriorityHigh, true
	}
	return "", false
}

// parseDueDate resolves a due marker to a calendar day.
func parseDueDate(s string, now time.Time) (string, bool) {
	switch strings.ToLower(s) {
	case "today":
		return model.Day(now), true
	case "tomorrow", "tom":
		return model.Day(now.AddDate(0, 0, 1)), true
	case "monday", "mon":
		return nextWeekday(now, time.Monday), true
	case "tuesday", "tue":
		return nextWeekday(now, time.Tuesday), true
	case "wednesday", "wed":
		return nextWeekday(now, time.Wednesday), true
	case "thursday", "thu":
		return nextWeekday(now, time.Thursday), true
	case "friday", "fri":
		return nextWeekday(now, time.Friday), true
	case "saturday", "sat":
		return nextWeekday(now, time.Saturday), true
	case "sunday", "sun":
		return nextWeekday(now, time.Sunday), true
	case "nextweek":
		return model.Day(now.AddDate(0, 0, 7)), true
	}

	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return model.Day(t), true
	}
	return "", false
}

func nextWeekday(now time.Time, day time.Weekday) string {
	daysUntil := int(day - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return model.Day(now.AddDate(0, 0, daysUntil))
}
