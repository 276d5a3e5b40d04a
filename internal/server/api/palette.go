package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/priyam/huehand/internal/store"
)

// PaletteHandler serves the stored palette: list the five entries and
// update an entry's display name and hex color.
type PaletteHandler struct {
	store    *store.Store
	validate *validator.Validate
}

// NewPaletteHandler creates a PaletteHandler over the given store.
func NewPaletteHandler(s *store.Store) *PaletteHandler {
	return &PaletteHandler{
		store:    s,
		validate: validator.New(),
	}
}

type updateEntryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=32"`
	Hex  string `json:"hex" validate:"required,hexcolor"`
}

type entryResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Hex       string `json:"hex"`
	Finger    string `json:"finger"`
	UpdatedAt string `json:"updated_at"`
}

type listEntriesResponse struct {
	Entries []entryResponse `json:"entries"`
}

func toEntryResponse(e *store.PaletteEntry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Hex:       e.Hex,
		Finger:    e.Finger,
		UpdatedAt: e.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ServeHTTP routes /api/palette and /api/palette/{id}.
func (h *PaletteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/palette")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.list(w, r)
		return
	}

	id, err := strconv.Atoi(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list handles GET /api/palette.
func (h *PaletteHandler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.Palette().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list palette")
		return
	}

	response := listEntriesResponse{
		Entries: make([]entryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		response.Entries = append(response.Entries, toEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/palette/{id}.
func (h *PaletteHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	entry, err := h.store.Palette().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get entry")
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// update handles PUT /api/palette/{id}.
func (h *PaletteHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	entry, err := h.store.Palette().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get entry")
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry: "+err.Error())
		return
	}

	entry.Name = req.Name
	entry.Hex = req.Hex

	if err := h.store.Palette().Update(entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update entry")
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}
