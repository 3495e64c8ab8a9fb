package domain

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParsePlannerTime(value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestEvaluateCountdown(t *testing.T) {
	start := mustParse(t, "2024-03-01T09:00")
	end := mustParse(t, "2024-03-10T18:00")

	tests := []struct {
		name      string
		now       time.Time
		wantPhase CountdownPhase
		wantText  string
	}{
		{
			name:      "before start",
			now:       mustParse(t, "2024-02-29T09:00"),
			wantPhase: PhaseBeforeStart,
			wantText:  "시작까지: 1일 00:00:00",
		},
		{
			name:      "before start under a day",
			now:       mustParse(t, "2024-03-01T07:30"),
			wantPhase: PhaseBeforeStart,
			wantText:  "시작까지: 01:30:00",
		},
		{
			name:      "in progress",
			now:       mustParse(t, "2024-03-08T18:00"),
			wantPhase: PhaseInProgress,
			wantText:  "D-day: 2일 00:00:00",
		},
		{
			name:      "exactly at start counts as in progress",
			now:       start,
			wantPhase: PhaseInProgress,
			wantText:  "D-day: 9일 09:00:00",
		},
		{
			name:      "exactly at end counts as ended",
			now:       end,
			wantPhase: PhaseEnded,
			wantText:  LabelEnded,
		},
		{
			name:      "after end",
			now:       mustParse(t, "2024-04-01T00:00"),
			wantPhase: PhaseEnded,
			wantText:  LabelEnded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, text := EvaluateCountdown(start, end, tt.now)
			if phase != tt.wantPhase {
				t.Errorf("phase = %v, want %v", phase, tt.wantPhase)
			}
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestEvaluateCountdownEndedIsStable(t *testing.T) {
	start := mustParse(t, "2024-03-01T09:00")
	end := mustParse(t, "2024-03-02T09:00")

	now := mustParse(t, "2024-03-05T00:00")
	for i := 0; i < 3; i++ {
		_, text := EvaluateCountdown(start, end, now)
		if text != LabelEnded {
			t.Fatalf("tick %d: text = %q, want %q", i, text, LabelEnded)
		}
		now = now.Add(time.Second)
	}
}

func TestParsePlannerTimeRejectsGarbage(t *testing.T) {
	if _, err := ParsePlannerTime("not-a-date"); err == nil {
		t.Error("expected error for invalid input")
	}
	if _, err := ParsePlannerTime("2024-03-01 09:00"); err == nil {
		t.Error("expected error for space-separated input")
	}
}
