package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func makeFrames(t *testing.T, n int) []*gocv.Mat {
	t.Helper()

	frames := make([]*gocv.Mat, n)
	for i := range frames {
		mat := gocv.NewMatWithSize(DefaultHeight, DefaultWidth, gocv.MatTypeCV8UC3)
		frames[i] = &mat
	}

	t.Cleanup(func() {
		for _, f := range frames {
			f.Close()
		}
	})
	return frames
}

func TestMockCamera_Playback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mats")
	}

	cam := NewMockCamera(makeFrames(t, 3), false)

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() %d error = %v", i, err)
		}
		frame.Close()
	}

	if _, err := cam.ReadFrame(); err == nil {
		t.Error("expected error after the last frame without looping")
	}
}

func TestMockCamera_Loop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mats")
	}

	cam := NewMockCamera(makeFrames(t, 2), true)
	cam.Open()

	for i := 0; i < 5; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() %d error = %v", i, err)
		}
		frame.Close()
	}
}

func TestMockCamera_NotOpen(t *testing.T) {
	cam := NewMockCamera(nil, false)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrNotOpen", err)
	}
	if cam.IsOpen() {
		t.Error("camera should not report open before Open()")
	}
}

func TestMockCamera_Rewind(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mats")
	}

	cam := NewMockCamera(makeFrames(t, 1), false)
	cam.Open()

	frame, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	frame.Close()

	cam.Rewind()

	frame, err = cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() after Rewind error = %v", err)
	}
	frame.Close()
}

func TestMockCamera_Dimensions(t *testing.T) {
	cam := NewMockCamera(nil, false)
	w, h := cam.Dimensions()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Dimensions() = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
}
