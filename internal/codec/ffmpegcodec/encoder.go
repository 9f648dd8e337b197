package ffmpegcodec

/*
#cgo pkg-config: libavcodec libavutil

#include <stdlib.h>
#include <stdio.h>
#include <string.h>
#include <libavcodec/avcodec.h>
#include <libavutil/opt.h>
#include <libavutil/imgutils.h>
#include <libavutil/dict.h>

static void enc_set_metadata(AVFrame *frame, const char *key, const char *value) {
    av_dict_set(&frame->metadata, key, value, 0);
}

typedef struct {
    AVCodecContext *ctx;
    AVPacket       *pkt;
} Enc;

static int enc_open(Enc *e, const char *encoderName, int width, int height,
                     AVRational timeBase, int gopSize,
                     const char *preset, const char *tune, const char *aqMode) {
    const AVCodec *codec = avcodec_find_encoder_by_name(encoderName);
    if (!codec) {
        return -1;
    }
    e->ctx = avcodec_alloc_context3(codec);
    if (!e->ctx) {
        return -2;
    }
    e->ctx->width = width;
    e->ctx->height = height;
    e->ctx->time_base = timeBase;
    e->ctx->pix_fmt = AV_PIX_FMT_YUV420P;
    e->ctx->gop_size = gopSize;

    if (preset && preset[0] != '\0') {
        av_opt_set(e->ctx->priv_data, "preset", preset, 0);
    }
    if (tune && tune[0] != '\0') {
        av_opt_set(e->ctx->priv_data, "tune", tune, 0);
    }
    if (aqMode && aqMode[0] != '\0') {
        if (strcmp(encoderName, "libx265") == 0) {
            // libx265 has no "aq-mode" private option; it takes the mode
            // numerically through x265-params (2 = auto-variance).
            char params[64];
            snprintf(params, sizeof(params), "aq-mode=%s",
                     strcmp(aqMode, "autovariance") == 0 ? "2" : aqMode);
            av_opt_set(e->ctx->priv_data, "x265-params", params, 0);
        } else {
            // libx264 exposes "aq-mode" as a named private option.
            av_opt_set(e->ctx->priv_data, "aq-mode", aqMode, 0);
        }
    }

    if (avcodec_open2(e->ctx, codec, NULL) < 0) {
        return -3;
    }
    e->pkt = av_packet_alloc();
    if (!e->pkt) {
        return -4;
    }
    return 0;
}

static int enc_send(Enc *e, AVFrame *frame) {
    return avcodec_send_frame(e->ctx, frame);
}

static int enc_receive(Enc *e) {
    return avcodec_receive_packet(e->ctx, e->pkt);
}

static void enc_close(Enc *e) {
    av_packet_free(&e->pkt);
    avcodec_free_context(&e->ctx);
}
*/
import "C"

import (
	"encoding/base64"
	"unsafe"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/media"
)

// foveationMetadataKey is the AVDictionary key a foveation descriptor
// is base64-encoded under on the submitted AVFrame's metadata.
const foveationMetadataKey = "FOVEATION_DESCRIPTOR"

// encoderNames maps a codec.ID to the libx264/libx265 encoder name, the
// software encoders every FFmpeg build carries.
func encoderNames(id codec.ID) string {
	switch id {
	case codec.H265:
		return "libx265"
	default:
		return "libx264"
	}
}

// Encoder is the cgo-backed codec.Encoder, wrapping the
// avcodec_send_frame/avcodec_receive_packet state machine and
// attaching a FoveationDescriptor to every submitted frame as
// base64-encoded AVDictionary metadata, per the option table's
// sidechannel requirement.
type Encoder struct {
	c C.Enc
}

// NewEncoder opens an encoder per opts.
func NewEncoder(id codec.ID, opts codec.Options) (*Encoder, error) {
	e := &Encoder{}
	name := C.CString(encoderNames(id))
	defer C.free(unsafe.Pointer(name))
	preset := C.CString(opts.Preset)
	defer C.free(unsafe.Pointer(preset))
	tune := C.CString(opts.Tune)
	defer C.free(unsafe.Pointer(tune))
	aq := C.CString(opts.AQMode)
	defer C.free(unsafe.Pointer(aq))

	tb := C.AVRational{num: C.int(opts.TimeBase.Num), den: C.int(opts.TimeBase.Den)}
	ret := C.enc_open(&e.c, name, C.int(opts.Width), C.int(opts.Height), tb,
		C.int(opts.GOPSize), preset, tune, aq)
	if ret != 0 {
		return nil, errFromCode("open encoder", int(ret))
	}
	return e, nil
}

// SubmitFrame feeds frame to the encoder, or flushes it when frame is nil.
func (e *Encoder) SubmitFrame(frame *media.Frame) codec.Status {
	if frame == nil {
		return statusFromSend(int(C.enc_send(&e.c, nil)))
	}

	cframe := C.av_frame_alloc()
	defer C.av_frame_free(&cframe)

	cframe.format = C.AV_PIX_FMT_YUV420P
	cframe.width = C.int(frame.Width)
	cframe.height = C.int(frame.Height)
	cframe.pts = C.int64_t(frame.PTS)

	if C.av_frame_get_buffer(cframe, 32) < 0 {
		return codec.StatusNoMemory
	}
	copyFrameData(cframe, frame.Data)

	if descriptor, ok := frame.SideData[media.SideDataFoveationDescriptor]; ok {
		attachSideData(cframe, descriptor)
	}

	return statusFromSend(int(C.enc_send(&e.c, cframe)))
}

// ReceivePacket pulls the next encoded packet.
func (e *Encoder) ReceivePacket(pkt *media.Packet) codec.Status {
	ret := int(C.enc_receive(&e.c))
	if st := statusFromReceive(ret); st != codec.StatusOK {
		return st
	}

	pkt.Data = C.GoBytes(unsafe.Pointer(e.c.pkt.data), e.c.pkt.size)
	pkt.PTS = int64(e.c.pkt.pts)
	pkt.DTS = int64(e.c.pkt.dts)
	pkt.Duration = int64(e.c.pkt.duration)
	pkt.KeyFrame = e.c.pkt.flags&C.AV_PKT_FLAG_KEY != 0
	C.av_packet_unref(e.c.pkt)
	return codec.StatusOK
}

func (e *Encoder) Close() {
	C.enc_close(&e.c)
}

// attachSideData base64-encodes payload and stores it on the frame's
// AVDictionary metadata under foveationMetadataKey.
func attachSideData(frame *C.AVFrame, payload []byte) {
	key := C.CString(foveationMetadataKey)
	defer C.free(unsafe.Pointer(key))
	value := C.CString(base64.StdEncoding.EncodeToString(payload))
	defer C.free(unsafe.Pointer(value))
	C.enc_set_metadata(frame, key, value)
}

func copyFrameData(frame *C.AVFrame, data []byte) {
	if len(data) == 0 {
		return
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(frame.data[0])), len(data))
	copy(dst, data)
}

var _ codec.Encoder = (*Encoder)(nil)
