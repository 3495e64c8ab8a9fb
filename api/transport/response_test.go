package transport

import (
	"testing"
	"time"
)

func TestKSTTimestamp(t *testing.T) {
	stored := time.Date(2024, 1, 1, 23, 30, 5, 0, time.UTC)
	if got := KSTTimestamp(stored); got != "2024-01-02 08:30:05" {
		t.Errorf("KSTTimestamp() = %q, want %q", got, "2024-01-02 08:30:05")
	}

	// Non-UTC inputs are normalized before the shift.
	loc := time.FixedZone("KST", 9*60*60)
	local := time.Date(2024, 1, 2, 8, 30, 5, 0, loc)
	if got := KSTTimestamp(local); got != "2024-01-02 08:30:05" {
		t.Errorf("KSTTimestamp() = %q, want %q", got, "2024-01-02 08:30:05")
	}
}
