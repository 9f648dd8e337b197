package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestReporterWritesSummaryWithAveragedLag(t *testing.T) {
	dir := t.TempDir()
	r := New("clip.mp4", dir, false, 4, func() int64 { return 1000 })

	for _, lag := range []int64{100, 200, 300} {
		r.Observe(lag)
	}

	if err := r.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "clip.mp4.summary.json"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}

	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if s.Frames != 3 {
		t.Fatalf("Frames = %d, want 3", s.Frames)
	}
	if s.AvgLagMicros != 200 {
		t.Fatalf("AvgLagMicros = %v, want 200", s.AvgLagMicros)
	}
	if s.MaxLagMicros != 300 {
		t.Fatalf("MaxLagMicros = %d, want 300", s.MaxLagMicros)
	}
	if s.GeneratedUnix != 1000 {
		t.Fatalf("GeneratedUnix = %d, want 1000", s.GeneratedUnix)
	}
}

func TestReporterFinishIsNoopWithoutDir(t *testing.T) {
	r := New("clip.mp4", "", false, 4, func() int64 { return 0 })
	r.Observe(50)
	if err := r.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestReporterWritesQRCodeWhenRequested(t *testing.T) {
	dir := t.TempDir()
	r := New("clip.mp4", dir, true, 4, func() int64 { return 0 })
	r.Observe(10)

	if err := r.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "clip.mp4.summary.png")); err != nil {
		t.Fatalf("expected a QR code PNG: %v", err)
	}
}
