package main

import "time"

// monotonicBase is captured once at process start. time.Since against
// it reads Go's monotonic clock reading (carried on every time.Time
// since Go 1.9), not the wall clock, so monotonicMicros is immune to
// NTP steps and stays well-ordered the way spec.md's "now_monotonic()"
// primitive requires.
var monotonicBase = time.Now()

// monotonicMicros is the lag-sidechannel clock: a monotonic
// microsecond timestamp, per spec.md's "now_monotonic()" primitive.
func monotonicMicros() int64 {
	return time.Since(monotonicBase).Microseconds()
}

// nowUnix stamps a report.Summary's generation time.
func nowUnix() int64 {
	return time.Now().Unix()
}
