package quickadd

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/dori/fokus/internal/model"
)

// a Saturday
var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestParseAt(t *testing.T) {
	is := is.New(t)

	task := ParseAt("write report !high @work @deep due:2026-09-01 est:2h", testNow)
	is.Equal(task.Title, "write report")
	is.Equal(task.Priority, model.PriorityHigh)
	is.Equal(task.Tags, []string{"work", "deep"})
	is.Equal(task.DueDate, "2026-09-01")
	is.Equal(task.EstimatedTime, "2h")
}

func TestParsePlainTitle(t *testing.T) {
	is := is.New(t)

	task := ParseAt("water the plants", testNow)
	is.Equal(task.Title, "water the plants")
	is.Equal(task.Priority, model.Priority(""))
	is.Equal(len(task.Tags), 0)
}

func TestParseNaturalDates(t *testing.T) {
	is := is.New(t)

	is.Equal(ParseAt("x due:today", testNow).DueDate, "2026-03-14")
	is.Equal(ParseAt("x due:tomorrow", testNow).DueDate, "2026-03-15")
	is.Equal(ParseAt("x due:monday", testNow).DueDate, "2026-03-16")
	is.Equal(ParseAt("x due:saturday", testNow).DueDate, "2026-03-21") // always a future day
	is.Equal(ParseAt("x due:nextweek", testNow).DueDate, "2026-03-21")
}

func TestParseKeepsUnknownMarkers(t *testing.T) {
	is := is.New(t)

	task := ParseAt("deploy !asap service due:whenever", testNow)
	is.Equal(task.Title, "deploy !asap service due:whenever")
	is.Equal(task.Priority, model.Priority(""))
	is.Equal(task.DueDate, "")
}
