// Package media defines the opaque packet/frame containers and the
// foveation sidechannel that flow through the transcoding pipeline.
package media

import (
	"encoding/binary"
	"fmt"
	"math"
)

// SideDataTag identifies an entry in a Frame's side-data table.
type SideDataTag int

const (
	// SideDataFoveationDescriptor tags the 16-byte marshaled
	// FoveationDescriptor attached to a frame before it enters the
	// encoder.
	SideDataFoveationDescriptor SideDataTag = iota
)

// PixelFormat identifies the planar layout of a Frame's pixel buffer.
type PixelFormat int

const (
	PixelFormatUnknown PixelFormat = iota
	PixelFormatYUV420P
)

// Rational is a numerator/denominator pair, used for codec time bases.
type Rational struct {
	Num int
	Den int
}

// Packet is an opaque compressed-media unit produced by the reader or
// the encoder. It is owned by exactly one stage at a time; ownership
// transfers on enqueue and on dequeue.
type Packet struct {
	StreamIndex int
	Data        []byte
	PTS         int64
	DTS         int64
	Duration    int64
	KeyFrame    bool
}

// Frame is an opaque raw-media unit produced by a decoder. SideData is
// allocated inside the frame and goes away with it.
type Frame struct {
	Data     []byte
	Width    int
	Height   int
	PTS      int64
	Format   PixelFormat
	SideData map[SideDataTag][]byte
}

// SetSideData attaches a tagged side-data payload to the frame,
// allocating the table on first use.
func (f *Frame) SetSideData(tag SideDataTag, payload []byte) {
	if f.SideData == nil {
		f.SideData = make(map[SideDataTag][]byte, 1)
	}
	f.SideData[tag] = payload
}

// FoveationDescriptor is the 4-tuple describing the current point of
// visual attention, biasing encoder quality spatially.
type FoveationDescriptor struct {
	FX     float32
	FY     float32
	Sigma  float32
	Offset float32
}

// descriptorSize is the wire size of a marshaled FoveationDescriptor:
// four float32 fields, little-endian.
const descriptorSize = 16

// Marshal encodes the descriptor into its fixed 16-byte side-data
// payload.
func (d FoveationDescriptor) Marshal() []byte {
	buf := make([]byte, descriptorSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(d.FX))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(d.FY))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(d.Sigma))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(d.Offset))
	return buf
}

// UnmarshalFoveationDescriptor decodes a 16-byte side-data payload back
// into a FoveationDescriptor.
func UnmarshalFoveationDescriptor(payload []byte) (FoveationDescriptor, error) {
	if len(payload) != descriptorSize {
		return FoveationDescriptor{}, fmt.Errorf("media: foveation descriptor must be %d bytes, got %d", descriptorSize, len(payload))
	}
	return FoveationDescriptor{
		FX:     math.Float32frombits(binary.LittleEndian.Uint32(payload[0:4])),
		FY:     math.Float32frombits(binary.LittleEndian.Uint32(payload[4:8])),
		Sigma:  math.Float32frombits(binary.LittleEndian.Uint32(payload[8:12])),
		Offset: math.Float32frombits(binary.LittleEndian.Uint32(payload[12:16])),
	}, nil
}
