// Package codec defines the facade the pipeline expects from an
// underlying codec library: submit/receive call pairs with a small,
// explicit status set, plus a container-demuxer facade for the reader.
package codec

import "github.com/crxxn/FFoveated/internal/media"

// Status is the result of a submit/receive call pair, mirroring the
// codec facade contract in SPEC_FULL.md §6.
type Status int

const (
	// StatusOK means a payload was produced (receive) or accepted
	// (submit).
	StatusOK Status = iota
	// StatusNeedInput means the codec has no output buffered and the
	// caller must feed it more input before calling receive again.
	StatusNeedInput
	// StatusEndOfStream means the codec has been fully flushed; no
	// further output will ever be produced.
	StatusEndOfStream
	// StatusInvalid means the call violated the codec's API contract
	// at a call site where that is not modeled as loop control. It is
	// always fatal.
	StatusInvalid
	// StatusNoMemory means the codec failed to allocate a buffer. It
	// is always fatal.
	StatusNoMemory
)

// String renders the status the way it appears in fatal error messages.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNeedInput:
		return "NEED_INPUT"
	case StatusEndOfStream:
		return "END_OF_STREAM"
	case StatusInvalid:
		return "INVALID"
	case StatusNoMemory:
		return "NO_MEMORY"
	default:
		return "UNKNOWN"
	}
}

// ID selects the encoder codec family.
type ID int

const (
	H264 ID = iota
	H265
)

func (id ID) String() string {
	switch id {
	case H264:
		return "h264"
	case H265:
		return "h265"
	default:
		return "unknown"
	}
}

// ParseID maps a codec name (as read from FOV_CODEC) to an ID.
func ParseID(name string) (ID, bool) {
	switch name {
	case "", "h264", "H264", "avc":
		return H264, true
	case "h265", "H265", "hevc", "HEVC":
		return H265, true
	default:
		return H264, false
	}
}

// Options captures the fixed per-codec option profile from SPEC_FULL.md
// §4.4's table, plus the stream geometry the encoder inherits from the
// source stream.
type Options struct {
	Preset   string
	Tune     string
	AQMode   string
	GOPSize  int
	Width    int
	Height   int
	PixFmt   media.PixelFormat
	TimeBase media.Rational
}

// DefaultOptions returns the fixed option profile for id. Width,
// Height, PixFmt and TimeBase are left zero. main.go fills in Width,
// Height and TimeBase from the source container before opening the
// encoder; PixFmt stays zero, and the ffmpeg encoder does not read it:
// it always encodes YUV420P rather than the encoder's first advertised
// pixel format.
func DefaultOptions(id ID) Options {
	return Options{
		Preset:  "ultrafast",
		Tune:    "zerolatency",
		AQMode:  "autovariance",
		GOPSize: 3,
	}
}

// Decoder is the facade a decode stage (source decoder or foveation
// decoder) drives: feed compressed packets in, pull raw frames out.
type Decoder interface {
	// SubmitPacket feeds a compressed packet to the decoder. A nil
	// packet enters drain mode.
	SubmitPacket(pkt *media.Packet) Status
	// ReceiveFrame decodes into frame and reports whether it produced
	// output, needs more input, or has reached end of stream.
	ReceiveFrame(frame *media.Frame) Status
	Width() int
	Height() int
	TimeBase() media.Rational
	Close()
}

// Encoder is the facade the encoder stage drives: feed raw,
// foveation-annotated frames in, pull compressed packets out.
type Encoder interface {
	// SubmitFrame feeds a raw frame to the encoder. A nil frame enters
	// drain mode.
	SubmitFrame(frame *media.Frame) Status
	ReceivePacket(pkt *media.Packet) Status
	Close()
}

// Demuxer is the facade the reader drives: open container, find the
// best video stream, and read its packets in file order.
type Demuxer interface {
	// SelectBestVideoStream probes the container (if needed) and
	// returns the index of the best video stream, marking every other
	// stream discarded. It fails if no video stream exists. A backend
	// with no per-stream discard state (memdemux) still returns other
	// streams' packets from ReadPacket; the Reader drops them.
	SelectBestVideoStream() (int, error)
	// ReadPacket returns the next packet in file order, or io.EOF once
	// the container is exhausted.
	ReadPacket() (*media.Packet, error)
	Close() error
}
