// Package pipeline wires the four transcoding stages (reader, source
// decoder, encoder, foveation decoder) and the sink goroutine into one
// run, the Go analogue of the spec's pthread/condition-variable
// pipeline, built instead on goroutines and internal/queue.
package pipeline

import (
	"fmt"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/display"
	"github.com/crxxn/FFoveated/internal/gaze"
	"github.com/crxxn/FFoveated/internal/media"
	"github.com/crxxn/FFoveated/internal/queue"
	"github.com/crxxn/FFoveated/internal/report"
)

// Config is the per-run tunable surface: queue capacities and the
// concrete decoder/encoder/demuxer/gaze/display/report dependencies.
type Config struct {
	// PacketQueueCapacity and FrameQueueCapacity size pkt_q and frm_q.
	// enc_pkt_q, lag_q and out_frm_q are always capacity 1, the
	// real-time-pacing invariant that is never configurable.
	PacketQueueCapacity int
	FrameQueueCapacity  int

	Demux       codec.Demuxer
	SourceDec   codec.Decoder
	Enc         codec.Encoder
	FovDec      codec.Decoder
	Gaze        gaze.Provider
	Sink        display.Sink
	Reporter    *report.Reporter
	Clock       func() int64
}

// Pipeline is one source-file run of the four-stage topology.
type Pipeline struct {
	cfg Config
}

// New builds a Pipeline from cfg. Queue capacities default to 8 when
// left zero.
func New(cfg Config) *Pipeline {
	if cfg.PacketQueueCapacity <= 0 {
		cfg.PacketQueueCapacity = 8
	}
	if cfg.FrameQueueCapacity <= 0 {
		cfg.FrameQueueCapacity = 8
	}
	return &Pipeline{cfg: cfg}
}

// Run drives every stage to completion and returns the first fatal
// error reported by any of them, if any. It blocks until the whole
// file has flowed through the pipeline.
func (p *Pipeline) Run() error {
	pktQ := queue.NewBounded[*media.Packet](p.cfg.PacketQueueCapacity)
	frmQ := queue.NewBounded[*media.Frame](p.cfg.FrameQueueCapacity)
	encPktQ := queue.NewBounded[*media.Packet](1)
	lagQ := queue.NewBounded[int64](1)
	outFrmQ := queue.NewBounded[*media.Frame](1)

	reader := &Reader{Demux: p.cfg.Demux, Out: pktQ}
	srcDecoder := &DecodeStage{Name: "source decoder", Dec: p.cfg.SourceDec, In: pktQ, Out: frmQ}
	encoder := &Encoder{Enc: p.cfg.Enc, Gaze: p.cfg.Gaze, In: frmQ, Out: encPktQ, Lag: lagQ, Clock: p.cfg.Clock}
	fovDecoder := &DecodeStage{Name: "foveation decoder", Dec: p.cfg.FovDec, In: encPktQ, Out: outFrmQ}
	sink := &Sink{In: outFrmQ, Lag: lagQ, Display: p.cfg.Sink, Reporter: p.cfg.Reporter, Clock: p.cfg.Clock}

	stages := []struct {
		name string
		run  func() error
	}{
		{"reader", reader.Run},
		{"source decoder", srcDecoder.Run},
		{"encoder", encoder.Run},
		{"foveation decoder", fovDecoder.Run},
		{"sink", sink.Run},
	}

	errs := make(chan error, len(stages))
	for _, stage := range stages {
		stage := stage
		go func() {
			errs <- stage.run()
		}()
	}

	var first error
	for range stages {
		if err := <-errs; err != nil && first == nil {
			first = err
		}
	}
	if first != nil {
		return fmt.Errorf("pipeline: %w", first)
	}
	return nil
}
