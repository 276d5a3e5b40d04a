package detector

import "gocv.io/x/gocv"

// Detector is the interface for hand landmark detection backends.
type Detector interface {
	// Detect analyzes a video frame and returns the detected hands.
	// Returns an empty slice when no hands are present.
	Detect(frame *gocv.Mat) ([]Hand, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds detection options.
type Config struct {
	// MaxHands is the maximum number of hands to detect per frame.
	MaxHands int

	// MinConfidence is the minimum detection confidence (0.0-1.0).
	MinConfidence float64
}

// DefaultConfig returns a Config with sensible defaults. One hand is enough
// for color selection; a second hand in frame is ignored by the pipeline.
func DefaultConfig() Config {
	return Config{
		MaxHands:      1,
		MinConfidence: 0.5,
	}
}
