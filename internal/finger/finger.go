// Package finger classifies which fingers of a detected hand are raised.
package finger

import "github.com/priyam/huehand/internal/detector"

// Finger identifies one of the five fingers in anatomical order.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// Margin is the normalized-y hysteresis-free threshold a tip must clear
// above its PIP joint to count as raised. Image y grows downward, so a
// raised tip has the smaller y.
const Margin = 0.05

// String returns the lowercase finger name.
func (f Finger) String() string {
	switch f {
	case Thumb:
		return "thumb"
	case Index:
		return "index"
	case Middle:
		return "middle"
	case Ring:
		return "ring"
	case Pinky:
		return "pinky"
	}
	return "unknown"
}

// tipIndex and pipIndex map each finger to its tip and second-joint
// landmarks. The thumb has no PIP; its IP joint plays the same role here.
var (
	tipIndex = [NumFingers]int{
		Thumb:  detector.ThumbTip,
		Index:  detector.IndexTip,
		Middle: detector.MiddleTip,
		Ring:   detector.RingTip,
		Pinky:  detector.PinkyTip,
	}
	pipIndex = [NumFingers]int{
		Thumb:  detector.ThumbIP,
		Index:  detector.IndexPIP,
		Middle: detector.MiddlePIP,
		Ring:   detector.RingPIP,
		Pinky:  detector.PinkyPIP,
	}
)

// Tip returns the landmark index of this finger's tip.
func (f Finger) Tip() int { return tipIndex[f] }

// PIP returns the landmark index of this finger's second joint.
func (f Finger) PIP() int { return pipIndex[f] }

// RaisedSet is the set of fingers classified as raised in one frame,
// ordered thumb first.
type RaisedSet []Finger

// Dominant returns the first raised finger in anatomical priority order
// (thumb > index > middle > ring > pinky). The bool is false for an empty
// set. The tie-break is fixed and independent of raised count or score.
func (s RaisedSet) Dominant() (Finger, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0], true
}

// Contains reports whether f is in the set.
func (s RaisedSet) Contains(f Finger) bool {
	for _, raised := range s {
		if raised == f {
			return true
		}
	}
	return false
}

// Names returns the finger names in set order, for wire payloads.
func (s RaisedSet) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.String()
	}
	return names
}

// Classify returns the raised fingers of a hand. A finger is raised when
// its tip sits more than Margin above its PIP joint in normalized
// coordinates. The classification is stateless and per-frame: no temporal
// smoothing, no per-finger calibration.
func Classify(hand *detector.Hand) RaisedSet {
	if hand == nil {
		return nil
	}

	var raised RaisedSet
	for f := Thumb; f < NumFingers; f++ {
		tip := hand.Points[f.Tip()]
		pip := hand.Points[f.PIP()]
		if tip.Y < pip.Y-Margin {
			raised = append(raised, f)
		}
	}
	return raised
}
