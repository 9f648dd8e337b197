// Package config resolves the pipeline's environment surface, loading
// an optional .env file before reading os.Getenv, in the teacher's
// main.go bootstrap order.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/crxxn/FFoveated/internal/codec"
)

// Config is the fully resolved environment surface for one run.
type Config struct {
	EyeTracking bool
	Debug       bool

	Codec codec.ID

	PacketQueueCapacity int
	FrameQueueCapacity  int

	WebcamDevice string

	Preview bool

	ReportDir string
	ReportQR  bool
}

// Load reads .env (if present) then the environment, the way the
// teacher's main.go does before touching any os.Getenv call.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file found: %v", err)
	}

	codecID, ok := codec.ParseID(os.Getenv("FOV_CODEC"))
	if !ok {
		log.Printf("config: unrecognized FOV_CODEC %q, defaulting to h264", os.Getenv("FOV_CODEC"))
	}

	return Config{
		EyeTracking:         boolEnv("ET"),
		Debug:               boolEnv("DEBUG"),
		Codec:               codecID,
		PacketQueueCapacity: intEnv("FOV_PACKET_QUEUE_CAPACITY", 8),
		FrameQueueCapacity:  intEnv("FOV_FRAME_QUEUE_CAPACITY", 8),
		WebcamDevice:        stringEnv("FOV_WEBCAM_DEVICE", "/dev/video0"),
		Preview:             boolEnv("FOV_PREVIEW"),
		ReportDir:           os.Getenv("FOV_REPORT_DIR"),
		ReportQR:            boolEnv("FOV_REPORT_QR"),
	}
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	return v != "" && v != "0" && v != "false"
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
