package domain

import (
	"math"
	"time"
)

// TaskProgress returns the percentage of tasks marked done, rounded to the
// nearest integer. An empty task list counts as 0%.
func TaskProgress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for i := range tasks {
		if tasks[i].IsDone() {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(tasks)) * 100))
}

// TimeProgress returns how far the current instant sits inside the project
// window as a percentage: 0 before the start, 100 after the end, and 100 for
// a zero-length window. Unparseable or missing bounds count as 0.
func TimeProgress(startDate, endDate string, now time.Time) int {
	if startDate == "" || endDate == "" {
		return 0
	}
	start, err := ParsePlannerTime(startDate)
	if err != nil {
		return 0
	}
	end, err := ParsePlannerTime(endDate)
	if err != nil {
		return 0
	}

	if now.Before(start) {
		return 0
	}
	if now.After(end) {
		return 100
	}

	total := end.Sub(start)
	if total == 0 {
		return 100
	}
	elapsed := now.Sub(start)
	return int(math.Round(float64(elapsed) / float64(total) * 100))
}
