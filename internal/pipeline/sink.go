package pipeline

import (
	"fmt"

	"github.com/crxxn/FFoveated/internal/display"
	"github.com/crxxn/FFoveated/internal/media"
	"github.com/crxxn/FFoveated/internal/queue"
	"github.com/crxxn/FFoveated/internal/report"
)

// Sink drains out_frm_q and lag_q in lockstep, alternating Dequeue
// calls so the Nth frame off out_frm_q is paired with the Nth
// timestamp off lag_q, the ordinal pairing spec.md §5 requires of
// whatever consumes both queues.
type Sink struct {
	In       *queue.Bounded[*media.Frame]
	Lag      *queue.Bounded[int64]
	Display  display.Sink
	Reporter *report.Reporter
	Clock    func() int64 // now_monotonic, in microseconds
}

// Run consumes both queues until both report end-of-stream. Each
// lag_q value is the monotonic microsecond timestamp the encoder
// stamped at submit time; per spec §3 the sink reads its own
// monotonic clock at display time and reports the difference as the
// end-to-end pipeline latency, not the raw submit timestamp.
func (s *Sink) Run() error {
	for {
		frameMsg := s.In.Dequeue()
		lagMsg := s.Lag.Dequeue()

		if frameMsg.End != lagMsg.End {
			return fmt.Errorf("sink: out_frm_q and lag_q ended out of step")
		}
		if frameMsg.End {
			return nil
		}

		if err := s.Display.Show(frameMsg.Value); err != nil {
			return fmt.Errorf("sink: display frame: %w", err)
		}
		s.Reporter.Observe(s.Clock() - lagMsg.Value)
	}
}
