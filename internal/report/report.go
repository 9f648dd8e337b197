// Package report aggregates the per-file end-to-end lag samples the
// sink observes and writes a summary once a pipeline run completes,
// adapting the teacher's rolling-average performance monitor and its
// captive-portal QR code convenience to a headless transcoding run.
package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/crxxn/FFoveated/internal/performance"
)

// Summary is the JSON artifact written per playlist entry.
type Summary struct {
	Source        string  `json:"source"`
	Frames        int     `json:"frames"`
	AvgLagMicros  float64 `json:"avg_lag_micros"`
	MaxLagMicros  int64   `json:"max_lag_micros"`
	GeneratedUnix int64   `json:"generated_unix"`
}

// Reporter observes end-to-end lag samples from the sink and, on Finish,
// writes a JSON summary (and optionally a QR code pointing at it) to
// Dir.
type Reporter struct {
	Source string
	Dir    string
	QR     bool
	Now    func() int64

	mu      sync.Mutex
	lag     *performance.RollingAverage
	frames  int
	maxLag  int64
}

// New builds a Reporter for one playlist entry. windowSize bounds the
// rolling-average sample window (mirrors the teacher's 120-sample
// default for a 2-second window at 60fps).
func New(source, dir string, qr bool, windowSize int, now func() int64) *Reporter {
	return &Reporter{
		Source: source,
		Dir:    dir,
		QR:     qr,
		Now:    now,
		lag:    performance.NewRollingAverage(windowSize),
	}
}

// Observe records one lag sample, in microseconds.
func (r *Reporter) Observe(lagMicros int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lag.Add(time.Duration(lagMicros) * time.Microsecond)
	r.frames++
	if lagMicros > r.maxLag {
		r.maxLag = lagMicros
	}
}

// Finish writes the accumulated summary to Dir, and a QR code
// pointing at it when QR is set. Finish is a no-op if Dir is empty.
func (r *Reporter) Finish() error {
	if r.Dir == "" {
		return nil
	}
	r.mu.Lock()
	summary := Summary{
		Source:        r.Source,
		Frames:        r.frames,
		AvgLagMicros:  float64(r.lag.Average().Microseconds()),
		MaxLagMicros:  r.maxLag,
		GeneratedUnix: r.Now(),
	}
	r.mu.Unlock()

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("report: create report dir: %w", err)
	}

	base := filepath.Base(summary.Source)
	summaryPath := filepath.Join(r.Dir, base+".summary.json")

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal summary: %w", err)
	}
	if err := os.WriteFile(summaryPath, data, 0o644); err != nil {
		return fmt.Errorf("report: write summary: %w", err)
	}
	log.Printf("report: wrote %s (%d frames, avg lag %.0fus)", summaryPath, summary.Frames, summary.AvgLagMicros)

	if r.QR {
		qrPath := filepath.Join(r.Dir, base+".summary.png")
		png, err := qrcode.Encode(summaryPath, qrcode.Medium, 200)
		if err != nil {
			return fmt.Errorf("report: generate qr code: %w", err)
		}
		if err := os.WriteFile(qrPath, png, 0o644); err != nil {
			return fmt.Errorf("report: write qr code: %w", err)
		}
		log.Printf("report: wrote %s", qrPath)
	}

	return nil
}
