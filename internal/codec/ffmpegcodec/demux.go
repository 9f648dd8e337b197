// Package ffmpegcodec is the production codec.Demuxer/Decoder/Encoder
// backend, built on cgo bindings to libavformat/libavcodec/libavutil,
// the way the teacher's pkg/mpeg player opens and decodes video files.
package ffmpegcodec

/*
#cgo pkg-config: libavformat libavcodec libavutil

#include <stdlib.h>
#include <libavformat/avformat.h>
#include <libavcodec/avcodec.h>
#include <libavutil/log.h>

typedef struct {
    AVFormatContext *formatCtx;
    int              videoStream;
} Demux;

static int demux_open(const char *filename, Demux *d) {
    av_log_set_level(AV_LOG_ERROR);
    d->formatCtx = NULL;
    d->videoStream = -1;

    if (avformat_open_input(&d->formatCtx, filename, NULL, NULL) != 0) {
        return -1;
    }
    if (avformat_find_stream_info(d->formatCtx, NULL) < 0) {
        return -2;
    }

    int best = av_find_best_stream(d->formatCtx, AVMEDIA_TYPE_VIDEO, -1, -1, NULL, 0);
    if (best < 0) {
        return -3;
    }
    d->videoStream = best;
    for (unsigned int i = 0; i < d->formatCtx->nb_streams; i++) {
        if ((int)i != best) {
            d->formatCtx->streams[i]->discard = AVDISCARD_ALL;
        }
    }
    return 0;
}

static enum AVCodecID demux_codec_id(Demux *d) {
    return d->formatCtx->streams[d->videoStream]->codecpar->codec_id;
}

static int demux_width(Demux *d)  { return d->formatCtx->streams[d->videoStream]->codecpar->width; }
static int demux_height(Demux *d) { return d->formatCtx->streams[d->videoStream]->codecpar->height; }

static AVRational demux_time_base(Demux *d) {
    return d->formatCtx->streams[d->videoStream]->time_base;
}

// demux_read reads the next packet belonging to the selected video
// stream, skipping every other stream's packets. Returns 1 with *pkt
// populated, 0 on end of file, or a negative AVERROR on failure.
static int demux_read(Demux *d, AVPacket *pkt) {
    int ret;
    for (;;) {
        ret = av_read_frame(d->formatCtx, pkt);
        if (ret == AVERROR_EOF) {
            return 0;
        }
        if (ret < 0) {
            return ret;
        }
        if (pkt->stream_index == d->videoStream) {
            return 1;
        }
        av_packet_unref(pkt);
    }
}

static void demux_close(Demux *d) {
    if (d->formatCtx) {
        avformat_close_input(&d->formatCtx);
    }
}
*/
import "C"

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/media"
)

// Demux is the cgo-backed codec.Demuxer over a local media file.
type Demux struct {
	c      C.Demux
	closed bool
}

// Open opens path for demuxing and locates its best video stream.
func Open(path string) (*Demux, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	d := &Demux{}
	if ret := C.demux_open(cPath, &d.c); ret != 0 {
		return nil, fmt.Errorf("ffmpegcodec: open %s: init failed (code=%d)", path, int(ret))
	}
	return d, nil
}

// SelectBestVideoStream returns the stream index chosen at Open time.
func (d *Demux) SelectBestVideoStream() (int, error) {
	if d.c.videoStream < 0 {
		return 0, fmt.Errorf("ffmpegcodec: no video stream")
	}
	return int(d.c.videoStream), nil
}

// CodecID reports the container's declared video codec, used to pick
// a matching decoder.
func (d *Demux) CodecID() int {
	return int(C.demux_codec_id(&d.c))
}

// Dimensions reports the container-declared frame size.
func (d *Demux) Dimensions() (width, height int) {
	return int(C.demux_width(&d.c)), int(C.demux_height(&d.c))
}

// TimeBase returns the video stream's time_base as a media.Rational.
func (d *Demux) TimeBase() media.Rational {
	tb := C.demux_time_base(&d.c)
	return media.Rational{Num: int(tb.num), Den: int(tb.den)}
}

// ReadPacket returns the next demuxed packet belonging to the video
// stream, or io.EOF once the container is exhausted.
func (d *Demux) ReadPacket() (*media.Packet, error) {
	var cpkt C.AVPacket
	C.av_init_packet(&cpkt)
	defer C.av_packet_unref(&cpkt)

	ret := C.demux_read(&d.c, &cpkt)
	switch {
	case ret == 0:
		return nil, io.EOF
	case ret < 0:
		return nil, fmt.Errorf("ffmpegcodec: read packet: AVERROR(%d)", int(ret))
	}

	data := C.GoBytes(unsafe.Pointer(cpkt.data), cpkt.size)
	return &media.Packet{
		StreamIndex: int(cpkt.stream_index),
		Data:        data,
		PTS:         int64(cpkt.pts),
		DTS:         int64(cpkt.dts),
		Duration:    int64(cpkt.duration),
		KeyFrame:    cpkt.flags&C.AV_PKT_FLAG_KEY != 0,
	}, nil
}

// Close releases the underlying AVFormatContext. Safe to call once.
func (d *Demux) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	C.demux_close(&d.c)
	return nil
}

var _ codec.Demuxer = (*Demux)(nil)
