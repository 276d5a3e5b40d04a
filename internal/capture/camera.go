// Package capture wraps GoCV camera access for the frame pipeline.
package capture

import (
	"errors"
	"sync"

	"gocv.io/x/gocv"
)

// Default capture settings. 640x480 keeps detection latency low; the
// pipeline raises FPS only while a hand is active in frame.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultFPS    = 5
)

// ErrNotOpen is returned when reading from a camera that is not open.
var ErrNotOpen = errors.New("camera is not open")

// Camera is the interface for frame sources.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	SetFPS(fps int)
	FPS() int
	Dimensions() (width, height int)
	IsOpen() bool
}

// deviceCamera captures from a physical camera device via GoCV.
type deviceCamera struct {
	deviceID int
	width    int
	height   int
	fps      int
	capture  *gocv.VideoCapture
	open     bool
	mu       sync.Mutex
}

// NewCamera creates a Camera for the given device id with default
// resolution and FPS.
func NewCamera(deviceID int) Camera {
	return &deviceCamera{
		deviceID: deviceID,
		width:    DefaultWidth,
		height:   DefaultHeight,
		fps:      DefaultFPS,
	}
}

// Open opens the device and applies resolution and FPS settings.
func (c *deviceCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		return nil
	}

	cap, err := gocv.OpenVideoCapture(c.deviceID)
	if err != nil {
		return err
	}

	cap.Set(gocv.VideoCaptureFrameWidth, float64(c.width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(c.height))
	cap.Set(gocv.VideoCaptureFPS, float64(c.fps))

	c.capture = cap
	c.open = true
	return nil
}

// Close releases the device.
func (c *deviceCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || c.capture == nil {
		c.open = false
		return nil
	}

	err := c.capture.Close()
	c.capture = nil
	c.open = false
	return err
}

// ReadFrame reads one frame. The caller owns the returned Mat and must
// close it.
func (c *deviceCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || c.capture == nil {
		return nil, ErrNotOpen
	}

	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok {
		mat.Close()
		return nil, errors.New("failed to read frame")
	}
	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	return &mat, nil
}

// SetFPS updates the capture rate. Non-positive values are ignored.
func (c *deviceCamera) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.fps = fps
	if c.capture != nil {
		c.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current capture rate setting.
func (c *deviceCamera) FPS() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps
}

// Dimensions returns the configured frame size.
func (c *deviceCamera) Dimensions() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// IsOpen reports whether the device is open.
func (c *deviceCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}
