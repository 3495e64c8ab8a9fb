package domain

import (
	"fmt"
	"time"
)

// CountdownPhase classifies where the current instant falls relative to the
// project bounds.
type CountdownPhase int

const (
	PhaseBeforeStart CountdownPhase = iota
	PhaseInProgress
	PhaseEnded
)

// Countdown labels shown to users.
const (
	LabelBeforeStart = "시작까지: "
	LabelInProgress  = "D-day: "
	LabelEnded       = "프로젝트 종료"
)

// PlannerTimeLayout is the datetime-local format all project and task bounds
// travel in.
const PlannerTimeLayout = "2006-01-02T15:04"

// ParsePlannerTime parses a datetime-local string.
func ParsePlannerTime(value string) (time.Time, error) {
	return time.Parse(PlannerTimeLayout, value)
}

// EvaluateCountdown computes the phase and the full display text for a single
// countdown tick. The bounds are evaluated fresh on every call, so callers
// that re-read externally mutated bounds each tick pick up project edits
// without restarting their loop.
func EvaluateCountdown(start, end, now time.Time) (CountdownPhase, string) {
	switch {
	case now.Before(start):
		return PhaseBeforeStart, LabelBeforeStart + formatRemaining(start.Sub(now))
	case now.Before(end):
		return PhaseInProgress, LabelInProgress + formatRemaining(end.Sub(now))
	default:
		return PhaseEnded, LabelEnded
	}
}

// formatRemaining renders a duration as "[N일 ]HH:MM:SS".
func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int64(remaining / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	clock := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if days > 0 {
		return fmt.Sprintf("%d일 %s", days, clock)
	}
	return clock
}
