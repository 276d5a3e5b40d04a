package app

import (
	"time"

	"github.com/priyam/huehand/internal/detector"
	"github.com/priyam/huehand/internal/finger"
	"github.com/priyam/huehand/internal/palette"
)

// runPipeline is the frame loop. Classification is strictly sequential:
// one frame completes before the next tick is handled, so the selector
// only ever has a single writer.
//
// Per tick:
//  1. Read a frame; motion-gate between idle (5 FPS) and active (15 FPS).
//  2. In active mode, run hand detection.
//  3. No hands: skip the frame, color state untouched.
//  4. Classify raised fingers on the first hand, apply the dominant finger
//     to the selector.
//  5. On a transition: log it, record it, fire effects; either way notify
//     frame subscribers with the raised set and marker positions.
func (a *App) runPipeline(stopCh <-chan struct{}) {
	activeMode := false
	lastMotion := time.Now()
	frameInterval := time.Second / IdleFPS

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				a.logger.Error("reading frame", "err", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)
			if motionDetected {
				lastMotion = time.Now()
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / ActiveFPS
					ticker.Reset(frameInterval)
					a.logger.Debug("switched to active mode")
				}
			} else if activeMode && time.Since(lastMotion) > IdleTimeout {
				activeMode = false
				a.Camera().SetFPS(IdleFPS)
				frameInterval = time.Second / IdleFPS
				ticker.Reset(frameInterval)
				a.logger.Debug("switched to idle mode")
			}

			if !activeMode {
				frame.Close()
				continue
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()
			if err != nil {
				a.logger.Error("detecting hands", "err", err)
				continue
			}
			if len(hands) == 0 {
				continue // no hand, skip the frame entirely
			}

			a.processHand(&hands[0])
		}
	}
}

// processHand classifies one hand and advances the color state.
func (a *App) processHand(hand *detector.Hand) {
	raised := finger.Classify(hand)

	selector := a.Selector()
	entry := selector.Current()
	changed := false

	if dominant, ok := raised.Dominant(); ok {
		entry, changed = selector.Apply(dominant)
		if changed {
			a.logger.Info("color changed", "color", entry.Name, "finger", dominant.String())

			if a.config.Store != nil {
				if err := a.config.Store.Transitions().Record(entry.ID, dominant.String()); err != nil {
					a.logger.Error("recording transition", "err", err)
				}
			}

			go a.runEffects(entry, dominant)
		}
	}

	a.notifyFrame(hand, raised, entry, changed)
}

// notifyFrame fans the per-frame update out to subscribers.
func (a *App) notifyFrame(hand *detector.Hand, raised finger.RaisedSet, entry palette.Entry, changed bool) {
	width, height := a.Camera().Dimensions()

	markers := make(map[string]detector.Marker, len(raised))
	for _, f := range raised {
		markers[f.String()] = hand.Points[f.Tip()].ToPixels(width, height)
	}

	update := Update{
		Entry:     entry,
		Changed:   changed,
		Raised:    raised.Names(),
		Markers:   markers,
		Timestamp: time.Now().UnixMilli(),
	}

	a.mu.RLock()
	subscribers := a.frameFns
	a.mu.RUnlock()

	for _, fn := range subscribers {
		fn(update)
	}
}
