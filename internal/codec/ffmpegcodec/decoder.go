package ffmpegcodec

/*
#cgo pkg-config: libavcodec libavutil

#include <stdlib.h>
#include <errno.h>
#include <libavcodec/avcodec.h>
#include <libavutil/imgutils.h>

typedef struct {
    AVCodecContext *ctx;
    AVFrame        *frame;
} Dec;

static int dec_open(Dec *d, enum AVCodecID id, int width, int height, AVRational timeBase) {
    const AVCodec *codec = avcodec_find_decoder(id);
    if (!codec) {
        return -1;
    }
    d->ctx = avcodec_alloc_context3(codec);
    if (!d->ctx) {
        return -2;
    }
    d->ctx->width = width;
    d->ctx->height = height;
    d->ctx->pkt_timebase = timeBase;
    if (avcodec_open2(d->ctx, codec, NULL) < 0) {
        return -3;
    }
    d->frame = av_frame_alloc();
    if (!d->frame) {
        return -4;
    }
    return 0;
}

// dec_send submits a packet, or flushes the decoder when pkt is NULL.
static int dec_send(Dec *d, AVPacket *pkt) {
    return avcodec_send_packet(d->ctx, pkt);
}

// dec_receive pulls the next decoded frame. Returns 0 on success,
// AVERROR(EAGAIN) if more input is needed, AVERROR_EOF once drained,
// or another negative AVERROR on failure.
static int dec_receive(Dec *d) {
    return avcodec_receive_frame(d->ctx, d->frame);
}

static int dec_width(Dec *d)  { return d->ctx->width; }
static int dec_height(Dec *d) { return d->ctx->height; }

static void dec_close(Dec *d) {
    av_frame_free(&d->frame);
    avcodec_free_context(&d->ctx);
}
*/
import "C"

import (
	"unsafe"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/media"
)

// Decoder is the cgo-backed codec.Decoder implementing the
// avcodec_send_packet/avcodec_receive_frame state machine directly:
// its return codes map one-to-one onto codec.Status.
type Decoder struct {
	c        C.Dec
	timeBase media.Rational
}

// NewDecoder opens a decoder for the given codec ID (an AVCodecID
// value, e.g. from Demux.CodecID) at the declared frame size.
func NewDecoder(avCodecID int, width, height int, timeBase media.Rational) (*Decoder, error) {
	d := &Decoder{timeBase: timeBase}
	tb := C.AVRational{num: C.int(timeBase.Num), den: C.int(timeBase.Den)}
	if ret := C.dec_open(&d.c, C.enum_AVCodecID(avCodecID), C.int(width), C.int(height), tb); ret != 0 {
		return nil, errFromCode("open decoder", int(ret))
	}
	return d, nil
}

// SubmitPacket feeds pkt to the decoder, or flushes it when pkt is nil.
func (d *Decoder) SubmitPacket(pkt *media.Packet) codec.Status {
	if pkt == nil {
		return statusFromSend(int(C.dec_send(&d.c, nil)))
	}

	var cpkt C.AVPacket
	C.av_init_packet(&cpkt)
	defer C.av_packet_unref(&cpkt)

	cpkt.data = (*C.uint8_t)(C.CBytes(pkt.Data))
	cpkt.size = C.int(len(pkt.Data))
	cpkt.pts = C.int64_t(pkt.PTS)
	cpkt.dts = C.int64_t(pkt.DTS)
	cpkt.duration = C.int64_t(pkt.Duration)

	ret := int(C.dec_send(&d.c, &cpkt))
	C.free(unsafe.Pointer(cpkt.data))
	return statusFromSend(ret)
}

// ReceiveFrame pulls the next decoded frame into frame.
func (d *Decoder) ReceiveFrame(frame *media.Frame) codec.Status {
	ret := int(C.dec_receive(&d.c))
	if st := statusFromReceive(ret); st != codec.StatusOK {
		return st
	}

	width := int(C.dec_width(&d.c))
	height := int(C.dec_height(&d.c))
	frameSize := C.av_image_get_buffer_size(C.AV_PIX_FMT_YUV420P, C.int(width), C.int(height), 1)

	buf := make([]byte, int(frameSize))
	C.av_image_copy_to_buffer(
		(*C.uint8_t)(unsafe.Pointer(&buf[0])), frameSize,
		&d.c.frame.data[0], &d.c.frame.linesize[0],
		C.AV_PIX_FMT_YUV420P, C.int(width), C.int(height), 1,
	)

	frame.Data = buf
	frame.Width = width
	frame.Height = height
	frame.PTS = int64(d.c.frame.pts)
	frame.Format = media.PixelFormatYUV420P
	return codec.StatusOK
}

func (d *Decoder) Width() int               { return int(C.dec_width(&d.c)) }
func (d *Decoder) Height() int              { return int(C.dec_height(&d.c)) }
func (d *Decoder) TimeBase() media.Rational { return d.timeBase }

func (d *Decoder) Close() {
	C.dec_close(&d.c)
}

var _ codec.Decoder = (*Decoder)(nil)
