package query

import (
	"time"

	"github.com/dori/fokus/internal/model"
)

// streakScanCap bounds the backwards walk so a pathological history
// cannot make the progress view scan unbounded days.
const streakScanCap = 365

// Streak counts consecutive days on which at least one of the project's
// tasks recorded that day ended up done. A day with no tasks at all is
// skipped rather than breaking the run; a day with tasks but none done
// ends it. Today extends the streak when it qualifies but never breaks
// it, so an unfinished morning does not zero out yesterday's run.
func Streak(tasks map[string]model.Task, now time.Time) int {
	type dayStat struct {
		total int
		done  int
	}
	days := make(map[string]dayStat)
	for _, t := range tasks {
		key := model.Day(t.CreatedAt)
		s := days[key]
		s.total++
		if t.IsDone() {
			s.done++
		}
		days[key] = s
	}

	streak := 0
	if s, ok := days[model.Day(now)]; ok && s.done > 0 {
		streak++
	}
	day := now.AddDate(0, 0, -1)
	for i := 0; i < streakScanCap; i++ {
		s, ok := days[model.Day(day)]
		if ok {
			if s.done == 0 {
				break
			}
			streak++
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
