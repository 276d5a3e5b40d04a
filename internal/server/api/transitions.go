package api

import (
	"net/http"
	"strconv"

	"github.com/priyam/huehand/internal/store"
)

// TransitionsHandler serves the color transition log.
type TransitionsHandler struct {
	store *store.Store
}

// NewTransitionsHandler creates a TransitionsHandler over the given store.
func NewTransitionsHandler(s *store.Store) *TransitionsHandler {
	return &TransitionsHandler{store: s}
}

type transitionResponse struct {
	ID         int64  `json:"id"`
	EntryID    int    `json:"entry_id"`
	Finger     string `json:"finger"`
	OccurredAt string `json:"occurred_at"`
}

type listTransitionsResponse struct {
	Transitions []transitionResponse `json:"transitions"`
}

// ServeHTTP handles GET /api/transitions?limit=N.
func (h *TransitionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	transitions, err := h.store.Transitions().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list transitions")
		return
	}

	response := listTransitionsResponse{
		Transitions: make([]transitionResponse, 0, len(transitions)),
	}
	for _, tr := range transitions {
		response.Transitions = append(response.Transitions, transitionResponse{
			ID:         tr.ID,
			EntryID:    tr.EntryID,
			Finger:     tr.Finger,
			OccurredAt: tr.OccurredAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}
