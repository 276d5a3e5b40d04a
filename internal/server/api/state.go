package api

import (
	"net/http"

	"github.com/priyam/huehand/internal/palette"
)

// StateHandler reports the currently selected color.
type StateHandler struct {
	selector *palette.Selector
}

// NewStateHandler creates a StateHandler over the given selector.
func NewStateHandler(s *palette.Selector) *StateHandler {
	return &StateHandler{selector: s}
}

type stateResponse struct {
	Entry palette.Entry `json:"entry"`
}

// ServeHTTP handles GET /api/state.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, stateResponse{Entry: h.selector.Current()})
}
