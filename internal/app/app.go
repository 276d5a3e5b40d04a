// Package app wires the capture, detection, classification and color
// selection pieces into the frame pipeline.
package app

import (
	"log/slog"
	"sync"
	"time"

	"github.com/priyam/huehand/internal/capture"
	"github.com/priyam/huehand/internal/detector"
	"github.com/priyam/huehand/internal/effect"
	"github.com/priyam/huehand/internal/finger"
	"github.com/priyam/huehand/internal/palette"
	"github.com/priyam/huehand/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while nothing moves in front of the camera.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeout is how long without motion before dropping back to idle.
	IdleTimeout = 2 * time.Second
	// EffectTimeout bounds each effect command run.
	EffectTimeout = 5 * time.Second
)

// Config holds application options.
type Config struct {
	Store        *store.Store
	EffectsDir   string
	CameraID     int
	MotionThresh float64
	Logger       *slog.Logger
}

// Update is the per-frame notification sent to subscribers whenever a hand
// is in frame: the current color, whether this frame changed it, and the
// raised fingers with their tip positions for on-screen markers.
type Update struct {
	Entry     palette.Entry              `json:"entry"`
	Changed   bool                       `json:"changed"`
	Raised    []string                   `json:"raised"`
	Markers   map[string]detector.Marker `json:"markers"`
	Timestamp int64                      `json:"timestamp"`
}

// App runs the detection pipeline and owns the color selection state.
type App struct {
	config   Config
	logger   *slog.Logger
	camera   capture.Camera
	motion   *capture.MotionGate
	detector detector.Detector
	selector *palette.Selector
	effects  *effect.Registry
	runner   *effect.Runner

	enabled  bool
	stopCh   chan struct{}
	frameFns []func(Update)
	mu       sync.RWMutex
}

// New creates an App. The detector prefers MediaPipe and falls back to the
// mock when the Python service is unavailable.
func New(config Config) *App {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	a := &App{
		config:   config,
		logger:   logger,
		enabled:  true,
		camera:   capture.NewCamera(config.CameraID),
		motion:   capture.NewMotionGate(motionThreshold),
		selector: palette.NewSelector(palette.Default()),
		effects:  effect.NewRegistry(config.EffectsDir),
		runner:   effect.NewRunner(EffectTimeout),
	}

	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		logger.Info("using MediaPipe hand detection")
	} else {
		logger.Warn("MediaPipe unavailable, using mock detector", "err", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// LoadPalette replaces the selector's palette with the stored one. The
// current selection resets to entry 0.
func (a *App) LoadPalette() error {
	if a.config.Store == nil {
		return nil
	}

	stored, err := a.config.Store.Palette().List()
	if err != nil {
		return err
	}

	entries := make([]palette.Entry, len(stored))
	for i, e := range stored {
		entries[i] = palette.Entry{ID: e.ID, Name: e.Name, Hex: e.Hex}
	}

	p, err := palette.New(entries)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.selector = palette.NewSelector(p)
	a.logger.Info("loaded palette from store", "entries", len(entries))
	return nil
}

// DiscoverEffects scans the effects directory.
func (a *App) DiscoverEffects() error {
	if err := a.effects.Discover(); err != nil {
		return err
	}
	a.logger.Info("discovered effects", "count", len(a.effects.List()))
	return nil
}

// SetEnabled toggles frame processing without stopping the pipeline.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled reports whether frame processing is on.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector replaces the hand detector, mainly for tests.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the camera, mainly for tests.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnFrame registers a subscriber for per-frame updates. Subscribers run on
// the pipeline goroutine and must not block.
func (a *App) OnFrame(fn func(Update)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frameFns = append(a.frameFns, fn)
}

// Selector returns the color selector.
func (a *App) Selector() *palette.Selector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.selector
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Effects returns the effect registry.
func (a *App) Effects() *effect.Registry {
	return a.effects
}

// Start opens the camera and launches the pipeline goroutine.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	a.logger.Info("pipeline started")
	return nil
}

// Stop halts the pipeline and releases camera and detector resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		a.logger.Error("closing camera", "err", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			a.logger.Error("closing detector", "err", err)
		}
	}

	a.logger.Info("pipeline stopped")
}

// runEffects executes every effect bound to the entry. Runs off the
// pipeline goroutine so a slow effect cannot stall frame processing.
func (a *App) runEffects(entry palette.Entry, by finger.Finger) {
	if a.config.Store == nil {
		return
	}

	bindings, err := a.config.Store.Effects().GetByEntryID(entry.ID)
	if err != nil {
		a.logger.Error("loading effect bindings", "err", err)
		return
	}

	for _, binding := range bindings {
		eff, err := a.effects.Get(binding.Name)
		if err != nil {
			a.logger.Warn("bound effect not discovered", "effect", binding.Name)
			continue
		}

		req := &effect.Request{
			EntryID: entry.ID,
			Name:    entry.Name,
			Hex:     entry.Hex,
			Finger:  by.String(),
			Config:  binding.Config,
		}

		resp, err := a.runner.Run(eff, req)
		if err != nil {
			a.logger.Error("effect run failed", "effect", binding.Name, "err", err)
			continue
		}
		if !resp.Success {
			a.logger.Warn("effect reported failure", "effect", binding.Name, "reason", resp.Error)
		}
	}
}
