// Package detector provides hand landmark detection for the Huehand color demo.
package detector

// Landmark indices in MediaPipe hand order.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Landmark is a single hand keypoint with coordinates normalized to the
// frame: x and y in [0,1], y growing downward. The z value is the relative
// depth reported by the model and is ignored by the finger classifier.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hand is one detected hand: 21 landmarks in fixed anatomical order plus
// handedness and the model's detection confidence.
type Hand struct {
	Points     [NumLandmarks]Landmark `json:"points"`
	Handedness string                 `json:"handedness"` // "Left" or "Right"
	Score      float64                `json:"score"`
}

// Marker is an on-screen pixel position for a landmark, used by the web UI
// to place per-finger indicators over the video preview.
type Marker struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToPixels converts a normalized landmark to pixel coordinates for a frame
// of the given dimensions.
func (l Landmark) ToPixels(width, height int) Marker {
	return Marker{
		X: int(l.X * float64(width)),
		Y: int(l.Y * float64(height)),
	}
}
