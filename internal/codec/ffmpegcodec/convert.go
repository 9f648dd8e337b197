package ffmpegcodec

/*
#include <errno.h>
#include <libavutil/error.h>
#include <libavcodec/avcodec.h>

// AVERROR and AVERROR_EOF are macros; wrap them so Go can read the
// actual values FFmpeg uses (AVERROR_EOF is a four-character-code tag,
// not a small errno).
static int ffov_averror_eagain(void) { return AVERROR(EAGAIN); }
static int ffov_averror_eof(void)    { return AVERROR_EOF; }
static int ffov_averror_enomem(void) { return AVERROR(ENOMEM); }
static int ffov_averror_einval(void) { return AVERROR(EINVAL); }
*/
import "C"

import (
	"fmt"

	"github.com/crxxn/FFoveated/internal/codec"
)

var (
	averrorEAGAIN = int(C.ffov_averror_eagain())
	averrorEOF    = int(C.ffov_averror_eof())
	averrorENOMEM = int(C.ffov_averror_enomem())
	averrorEINVAL = int(C.ffov_averror_einval())
)

// statusFromSend maps the return of avcodec_send_packet/avcodec_send_frame
// onto codec.Status.
func statusFromSend(ret int) codec.Status {
	switch {
	case ret == 0:
		return codec.StatusOK
	case ret == averrorEOF:
		return codec.StatusEndOfStream
	case ret == averrorENOMEM:
		return codec.StatusNoMemory
	default:
		return codec.StatusInvalid
	}
}

// statusFromReceive maps the return of avcodec_receive_frame/avcodec_receive_packet
// onto codec.Status.
func statusFromReceive(ret int) codec.Status {
	switch {
	case ret == 0:
		return codec.StatusOK
	case ret == averrorEAGAIN:
		return codec.StatusNeedInput
	case ret == averrorEOF:
		return codec.StatusEndOfStream
	case ret == averrorENOMEM:
		return codec.StatusNoMemory
	default:
		return codec.StatusInvalid
	}
}

func errFromCode(op string, code int) error {
	return fmt.Errorf("ffmpegcodec: %s: code %d", op, code)
}

// AVCodecIDFor returns the AVCodecID a codec.ID re-encodes to, for
// opening the matching decoder on the re-encoded bitstream (e.g. the
// foveation decoder reading the encoder's own output).
func AVCodecIDFor(id codec.ID) int {
	switch id {
	case codec.H265:
		return int(C.AV_CODEC_ID_HEVC)
	default:
		return int(C.AV_CODEC_ID_H264)
	}
}
