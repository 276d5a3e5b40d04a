package effect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// Runner executes effects with a timeout.
type Runner struct {
	timeout time.Duration
}

// NewRunner creates a Runner. Effects that run longer than the timeout are
// killed.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{timeout: timeout}
}

// Run executes the effect: the request is marshaled to JSON on stdin and
// stdout is parsed as a Response.
func (r *Runner) Run(effect *Effect, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, effect.Executable)
	cmd.Dir = effect.Path

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("effect %s timed out after %s", effect.Manifest.Name, r.timeout)
	}
	if err != nil {
		return nil, fmt.Errorf("effect %s failed: %w (stderr: %s)", effect.Manifest.Name, err, stderr.String())
	}

	var response Response
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return nil, fmt.Errorf("parse effect response: %w", err)
	}

	return &response, nil
}
