// Package effect discovers and runs external effect commands triggered by
// color transitions, e.g. a desktop notifier or a smart-light bridge.
package effect

import "encoding/json"

// Manifest describes an effect's metadata, read from manifest.json in the
// effect's directory.
type Manifest struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Executable  string          `json:"executable"`
	ConfigSpec  json.RawMessage `json:"configSpec,omitempty"`
}

// Request is the payload written to an effect's stdin on a color
// transition.
type Request struct {
	EntryID int             `json:"entryId"`
	Name    string          `json:"name"`
	Hex     string          `json:"hex"`
	Finger  string          `json:"finger"`
	Config  json.RawMessage `json:"config"`
}

// Response is the payload an effect writes to stdout.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Effect is a discovered effect with its manifest and location on disk.
type Effect struct {
	Manifest   Manifest
	Path       string
	Executable string
}
