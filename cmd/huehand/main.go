package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/priyam/huehand/internal/app"
	"github.com/priyam/huehand/internal/config"
	"github.com/priyam/huehand/internal/server"
	"github.com/priyam/huehand/internal/store"
	"github.com/priyam/huehand/internal/tray"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "huehand: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		logger.Error("creating data directory", "err", err)
		os.Exit(1)
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		logger.Error("opening store", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	a := app.New(app.Config{
		Store:        st,
		EffectsDir:   cfg.EffectsDir,
		CameraID:     cfg.CameraID,
		MotionThresh: cfg.MotionThresh,
		Logger:       logger,
	})

	if err := a.LoadPalette(); err != nil {
		logger.Error("loading palette", "err", err)
		os.Exit(1)
	}
	if err := a.DiscoverEffects(); err != nil {
		logger.Warn("discovering effects", "err", err)
	}

	if err := a.Start(); err != nil {
		logger.Error("starting pipeline", "err", err)
		os.Exit(1)
	}
	defer a.Stop()

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findWebDir(cfg.DataDir)
	}

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Store:     st,
		App:       a,
		Logger:    logger,
	})

	go func() {
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			logger.Error("http server", "err", err)
			os.Exit(1)
		}
	}()

	// Tracking enabled state persists across restarts.
	if v, err := st.Settings().Get("tracking_enabled"); err == nil {
		a.SetEnabled(v != "false")
	}

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		value := "true"
		if !enabled {
			value = "false"
		}
		if err := st.Settings().Set("tracking_enabled", value); err != nil {
			logger.Error("saving setting", "err", err)
		}
		logger.Info("tracking toggled", "enabled", enabled)
	})
	t.OnSettings(func() {
		openBrowser("http://localhost" + cfg.Addr)
	})

	a.OnFrame(func(u app.Update) {
		if u.Changed {
			t.SetColor(u.Entry.Name)
		}
	})
	t.SetColor(a.Selector().Current().Name)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		a.Stop()
		os.Exit(0)
	}()

	// Blocks until Quit is picked from the menu.
	t.Run()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
}

// openBrowser opens url in the default browser, best effort.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return
	}
	if err := cmd.Start(); err != nil {
		slog.Warn("opening browser", "err", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks "web", "../web", "../../web" and <dataDir>/web, returning the
// first existing directory or empty string if none found.
func findWebDir(dataDir string) string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	webDir := filepath.Join(dataDir, "web")
	if info, err := os.Stat(webDir); err == nil && info.IsDir() {
		return webDir
	}

	return ""
}
