package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of Detector with scripted results.
type MockDetector struct {
	hands []Hand
	err   error
}

// NewMockDetector creates a MockDetector that detects nothing until
// SetHands is called.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands returned by subsequent Detect calls.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error returned by subsequent Detect calls.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the scripted hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// baseHand returns a hand with every finger curled: each tip sits slightly
// below its PIP joint, so nothing clears the raised margin.
func baseHand() Hand {
	h := Hand{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Landmark{X: 0.50, Y: 0.85}

	h.Points[ThumbCMC] = Landmark{X: 0.56, Y: 0.80}
	h.Points[ThumbMCP] = Landmark{X: 0.60, Y: 0.74}
	h.Points[ThumbIP] = Landmark{X: 0.61, Y: 0.70}
	h.Points[ThumbTip] = Landmark{X: 0.60, Y: 0.72}

	h.Points[IndexMCP] = Landmark{X: 0.56, Y: 0.66}
	h.Points[IndexPIP] = Landmark{X: 0.56, Y: 0.60}
	h.Points[IndexDIP] = Landmark{X: 0.55, Y: 0.63}
	h.Points[IndexTip] = Landmark{X: 0.54, Y: 0.66}

	h.Points[MiddleMCP] = Landmark{X: 0.51, Y: 0.64}
	h.Points[MiddlePIP] = Landmark{X: 0.51, Y: 0.58}
	h.Points[MiddleDIP] = Landmark{X: 0.50, Y: 0.61}
	h.Points[MiddleTip] = Landmark{X: 0.49, Y: 0.64}

	h.Points[RingMCP] = Landmark{X: 0.46, Y: 0.65}
	h.Points[RingPIP] = Landmark{X: 0.46, Y: 0.59}
	h.Points[RingDIP] = Landmark{X: 0.45, Y: 0.62}
	h.Points[RingTip] = Landmark{X: 0.44, Y: 0.65}

	h.Points[PinkyMCP] = Landmark{X: 0.41, Y: 0.67}
	h.Points[PinkyPIP] = Landmark{X: 0.41, Y: 0.62}
	h.Points[PinkyDIP] = Landmark{X: 0.40, Y: 0.64}
	h.Points[PinkyTip] = Landmark{X: 0.39, Y: 0.67}

	return h
}

// FistHand returns a hand pose with no finger raised.
func FistHand() Hand {
	return baseHand()
}

// IndexRaisedHand returns a hand with only the index finger extended:
// tip at y=0.30 against a PIP at y=0.40, well past the raised margin.
func IndexRaisedHand() Hand {
	h := baseHand()
	h.Points[IndexPIP] = Landmark{X: 0.57, Y: 0.40}
	h.Points[IndexDIP] = Landmark{X: 0.58, Y: 0.35}
	h.Points[IndexTip] = Landmark{X: 0.58, Y: 0.30}
	return h
}

// IndexPinkyHand returns a hand with both index and pinky extended, used to
// exercise the anatomical tie-break.
func IndexPinkyHand() Hand {
	h := IndexRaisedHand()
	h.Points[PinkyPIP] = Landmark{X: 0.38, Y: 0.45}
	h.Points[PinkyDIP] = Landmark{X: 0.37, Y: 0.40}
	h.Points[PinkyTip] = Landmark{X: 0.36, Y: 0.36}
	return h
}

// OpenPalmHand returns a hand with all five fingers extended.
func OpenPalmHand() Hand {
	h := baseHand()

	h.Points[ThumbIP] = Landmark{X: 0.66, Y: 0.62}
	h.Points[ThumbTip] = Landmark{X: 0.70, Y: 0.54}

	h.Points[IndexPIP] = Landmark{X: 0.57, Y: 0.52}
	h.Points[IndexDIP] = Landmark{X: 0.58, Y: 0.42}
	h.Points[IndexTip] = Landmark{X: 0.58, Y: 0.33}

	h.Points[MiddlePIP] = Landmark{X: 0.50, Y: 0.50}
	h.Points[MiddleDIP] = Landmark{X: 0.50, Y: 0.39}
	h.Points[MiddleTip] = Landmark{X: 0.50, Y: 0.28}

	h.Points[RingPIP] = Landmark{X: 0.44, Y: 0.52}
	h.Points[RingDIP] = Landmark{X: 0.43, Y: 0.42}
	h.Points[RingTip] = Landmark{X: 0.42, Y: 0.34}

	h.Points[PinkyPIP] = Landmark{X: 0.38, Y: 0.57}
	h.Points[PinkyDIP] = Landmark{X: 0.37, Y: 0.49}
	h.Points[PinkyTip] = Landmark{X: 0.36, Y: 0.42}

	return h
}
