package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/codec/ffmpegcodec"
	"github.com/crxxn/FFoveated/internal/config"
	"github.com/crxxn/FFoveated/internal/display"
	"github.com/crxxn/FFoveated/internal/fetch"
	"github.com/crxxn/FFoveated/internal/gaze"
	"github.com/crxxn/FFoveated/internal/pipeline"
	"github.com/crxxn/FFoveated/internal/playlist"
	"github.com/crxxn/FFoveated/internal/report"
)

func main() {
	runtime.LockOSThread()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <playlist-file>", os.Args[0])
	}

	cfg := config.Load()

	entries, err := playlist.Load(os.Args[1])
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("sdl init: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("FFoveated", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		1280, 720, sdl.WINDOW_HIDDEN)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer window.Destroy()

	gazeProvider, closeGaze := buildGazeProvider(cfg, window)
	defer closeGaze()

	var fetcher *fetch.S3Fetcher
	for _, entry := range entries {
		if fetch.IsRemote(entry) {
			f, err := fetch.NewS3Fetcher(os.TempDir() + "/ffoveated-cache")
			if err != nil {
				log.Fatalf("fetch: %v", err)
			}
			fetcher = f
			break
		}
	}

	for _, entry := range entries {
		localPath := entry
		if fetch.IsRemote(entry) {
			path, err := fetcher.Resolve(entry)
			if err != nil {
				log.Fatalf("fetch %s: %v", entry, err)
			}
			localPath = path
		}

		if err := processFile(cfg, localPath, gazeProvider); err != nil {
			log.Fatalf("processing %s failed: %v", localPath, err)
		}
	}
}

// buildGazeProvider selects the pointer-fallback or webcam-tracker gaze
// source per the ET flag, and returns a cleanup func for whichever one
// it built.
func buildGazeProvider(cfg config.Config, window *sdl.Window) (gaze.Provider, func()) {
	if !cfg.EyeTracking {
		return gaze.NewPointerFallback(window), func() {}
	}

	tracker, err := gaze.NewWebcamTracker(cfg.WebcamDevice, 640, 480)
	if err != nil {
		log.Fatalf("eye tracking: %v", err)
	}
	return tracker, func() { tracker.Close() }
}

// processFile runs one source file through a full pipeline: opens the
// demuxer, opens a matching source decoder, an encoder at the
// configured codec profile, and a foveation decoder for that same
// codec, wires a display sink and a report.Reporter, and runs.
func processFile(cfg config.Config, path string, gazeProvider gaze.Provider) error {
	demux, err := ffmpegcodec.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	width, height := demux.Dimensions()
	timeBase := demux.TimeBase()

	sourceDec, err := ffmpegcodec.NewDecoder(demux.CodecID(), width, height, timeBase)
	if err != nil {
		demux.Close()
		return fmt.Errorf("open source decoder: %w", err)
	}

	opts := codec.DefaultOptions(cfg.Codec)
	opts.Width, opts.Height, opts.TimeBase = width, height, timeBase

	enc, err := ffmpegcodec.NewEncoder(cfg.Codec, opts)
	if err != nil {
		sourceDec.Close()
		demux.Close()
		return fmt.Errorf("open encoder: %w", err)
	}

	fovDec, err := ffmpegcodec.NewDecoder(ffmpegcodec.AVCodecIDFor(cfg.Codec), width, height, timeBase)
	if err != nil {
		enc.Close()
		sourceDec.Close()
		demux.Close()
		return fmt.Errorf("open foveation decoder: %w", err)
	}

	sink, closeSink, err := buildDisplaySink(cfg, width, height)
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	defer closeSink()

	reporter := report.New(path, cfg.ReportDir, cfg.ReportQR, 120, nowUnix)

	p := pipeline.New(pipeline.Config{
		PacketQueueCapacity: cfg.PacketQueueCapacity,
		FrameQueueCapacity:  cfg.FrameQueueCapacity,
		Demux:               demux,
		SourceDec:           sourceDec,
		Enc:                 enc,
		FovDec:              fovDec,
		Gaze:                gazeProvider,
		Sink:                sink,
		Reporter:            reporter,
		Clock:               monotonicMicros,
	})

	if err := p.Run(); err != nil {
		return err
	}
	return reporter.Finish()
}

func buildDisplaySink(cfg config.Config, width, height int) (display.Sink, func(), error) {
	if !cfg.Preview {
		return &display.Counting{}, func() {}, nil
	}
	preview, err := display.NewSDLPreview(width, height)
	if err != nil {
		return nil, nil, err
	}
	return preview, func() { preview.Close() }, nil
}
