// Package main provides a desktop notification effect.
// It announces the newly selected color via the system notifier.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Request represents the input from the effect runner.
type Request struct {
	EntryID int             `json:"entryId"`
	Name    string          `json:"name"`
	Hex     string          `json:"hex"`
	Finger  string          `json:"finger"`
	Config  json.RawMessage `json:"config"`
}

// Response represents the output to the effect runner.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// NotifyConfig allows overriding the notification title.
type NotifyConfig struct {
	Title string `json:"title"`
}

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	title := "Huehand"
	if len(req.Config) > 0 {
		var cfg NotifyConfig
		if err := json.Unmarshal(req.Config, &cfg); err == nil && cfg.Title != "" {
			title = cfg.Title
		}
	}

	message := fmt.Sprintf("%s (%s) selected by %s finger", req.Name, req.Hex, req.Finger)
	if err := notify(title, message); err != nil {
		writeErrorResponse(fmt.Sprintf("notification failed: %v", err))
		return
	}

	writeSuccessResponse()
}

// notify shows a desktop notification using the platform notifier.
func notify(title, message string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`display notification %q with title %q`, message, title)
		cmd = exec.Command("osascript", "-e", script)
	case "linux":
		cmd = exec.Command("notify-send", title, message)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse() {
	resp := Response{
		Success: true,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}
