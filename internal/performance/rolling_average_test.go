package performance

import (
	"testing"
	"time"
)

func TestRollingAverageWindow(t *testing.T) {
	r := NewRollingAverage(3)
	if avg := r.Average(); avg != 0 {
		t.Fatalf("empty average = %v, want 0", avg)
	}

	r.Add(10 * time.Millisecond)
	r.Add(20 * time.Millisecond)
	if got, want := r.Average(), 15*time.Millisecond; got != want {
		t.Fatalf("average = %v, want %v", got, want)
	}
	if got := r.Count(); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}

	// Window of 3: adding a 4th sample evicts the oldest (10ms).
	r.Add(30 * time.Millisecond)
	r.Add(60 * time.Millisecond)
	if got, want := r.Average(), (20+30+60)*time.Millisecond/3; got != want {
		t.Fatalf("average after eviction = %v, want %v", got, want)
	}
	if got := r.Count(); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
}
