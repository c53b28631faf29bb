package jobs

import (
	"testing"
	"time"
)

func TestGovernmentJobExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	job := GovernmentJob{LastDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)}
	if job.IsExpired(now) {
		t.Fatal("future deadline reported expired")
	}
	if got := job.DaysRemaining(now); got != 5 {
		t.Fatalf("DaysRemaining = %d, want 5", got)
	}

	// The deadline day itself still counts as open.
	sameDay := GovernmentJob{LastDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}
	if sameDay.IsExpired(now) {
		t.Fatal("deadline day reported expired")
	}
	if got := sameDay.DaysRemaining(now); got != 0 {
		t.Fatalf("DaysRemaining on deadline day = %d, want 0", got)
	}

	past := GovernmentJob{LastDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}
	if !past.IsExpired(now) {
		t.Fatal("past deadline not reported expired")
	}
	if got := past.DaysRemaining(now); got != 0 {
		t.Fatalf("DaysRemaining for expired job = %d, want 0", got)
	}
}
