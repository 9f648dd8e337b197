package pipeline

import (
	"testing"

	"github.com/crxxn/FFoveated/internal/codec/nullcodec"
	"github.com/crxxn/FFoveated/internal/media"
	"github.com/crxxn/FFoveated/internal/queue"
)

func TestDecodeStagePassesEveryPacketThroughAndEnds(t *testing.T) {
	in := queue.NewBounded[*media.Packet](8)
	out := queue.NewBounded[*media.Frame](8)
	dec := nullcodec.NewDecoder(64, 48, media.Rational{Num: 1, Den: 30})

	stage := &DecodeStage{Name: "test decoder", Dec: dec, In: in, Out: out}
	done := make(chan error, 1)
	go func() { done <- stage.Run() }()

	go func() {
		for i := 0; i < 3; i++ {
			in.Enqueue(queue.Payload(&media.Packet{Data: []byte{byte(i)}, PTS: int64(i)}))
		}
		in.Enqueue(queue.EndOfStream[*media.Packet]())
	}()

	var frames []*media.Frame
	for {
		msg := out.Dequeue()
		if msg.End {
			break
		}
		frames = append(frames, msg.Value)
	}

	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Width != 64 || f.Height != 48 {
			t.Fatalf("frame %d: unexpected geometry %dx%d", i, f.Width, f.Height)
		}
		if f.PTS != int64(i) {
			t.Fatalf("frame %d: pts = %d, want %d", i, f.PTS, i)
		}
	}
}
