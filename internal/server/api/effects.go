package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/priyam/huehand/internal/store"
)

// EffectsHandler manages effect bindings: which effect commands run when a
// palette entry becomes current.
type EffectsHandler struct {
	store    *store.Store
	validate *validator.Validate
}

// NewEffectsHandler creates an EffectsHandler over the given store.
func NewEffectsHandler(s *store.Store) *EffectsHandler {
	return &EffectsHandler{
		store:    s,
		validate: validator.New(),
	}
}

type createEffectRequest struct {
	EntryID int             `json:"entry_id" validate:"gte=0,lte=4"`
	Name    string          `json:"name" validate:"required,min=1,max=64"`
	Config  json.RawMessage `json:"config"`
	Enabled *bool           `json:"enabled"`
}

type effectResponse struct {
	ID        string          `json:"id"`
	EntryID   int             `json:"entry_id"`
	Name      string          `json:"name"`
	Config    json.RawMessage `json:"config"`
	Enabled   bool            `json:"enabled"`
	CreatedAt string          `json:"created_at"`
}

type listEffectsResponse struct {
	Effects []effectResponse `json:"effects"`
}

func toEffectResponse(e *store.Effect) effectResponse {
	config := e.Config
	if config == nil {
		config = json.RawMessage("{}")
	}
	return effectResponse{
		ID:        e.ID,
		EntryID:   e.EntryID,
		Name:      e.Name,
		Config:    config,
		Enabled:   e.Enabled,
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ServeHTTP routes /api/effects and /api/effects/{id}.
func (h *EffectsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/effects")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case http.MethodDelete:
		h.delete(w, r, path)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list handles GET /api/effects.
func (h *EffectsHandler) list(w http.ResponseWriter, r *http.Request) {
	effects, err := h.store.Effects().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list effects")
		return
	}

	response := listEffectsResponse{
		Effects: make([]effectResponse, 0, len(effects)),
	}
	for _, e := range effects {
		response.Effects = append(response.Effects, toEffectResponse(e))
	}

	writeJSON(w, http.StatusOK, response)
}

// create handles POST /api/effects.
func (h *EffectsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createEffectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid effect: "+err.Error())
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	effect := &store.Effect{
		ID:      uuid.New().String(),
		EntryID: req.EntryID,
		Name:    req.Name,
		Config:  req.Config,
		Enabled: enabled,
	}

	if err := h.store.Effects().Create(effect); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create effect")
		return
	}

	writeJSON(w, http.StatusCreated, toEffectResponse(effect))
}

// delete handles DELETE /api/effects/{id}.
func (h *EffectsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Effects().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Effect not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete effect")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
