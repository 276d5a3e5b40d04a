package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEffectsHandler_CreateAndList(t *testing.T) {
	h := NewEffectsHandler(newTestStore(t))

	body := `{"entry_id": 2, "name": "announce", "config": {"title": "Colors"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/effects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created effectResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Error("created effect has empty id")
	}
	if created.EntryID != 2 || created.Name != "announce" || !created.Enabled {
		t.Errorf("created = %+v, want entry 2, announce, enabled", created)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/effects", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var list listEffectsResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list.Effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(list.Effects))
	}
	if list.Effects[0].ID != created.ID {
		t.Errorf("listed id = %q, want %q", list.Effects[0].ID, created.ID)
	}
}

func TestEffectsHandler_CreateDisabled(t *testing.T) {
	h := NewEffectsHandler(newTestStore(t))

	body := `{"entry_id": 0, "name": "announce", "enabled": false}`
	req := httptest.NewRequest(http.MethodPost, "/api/effects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var created effectResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Enabled {
		t.Error("created effect enabled, want disabled")
	}
}

func TestEffectsHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"entry_id": 2}`},
		{name: "entry out of range", body: `{"entry_id": 7, "name": "announce"}`},
		{name: "negative entry", body: `{"entry_id": -1, "name": "announce"}`},
		{name: "not json", body: `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEffectsHandler(newTestStore(t))

			req := httptest.NewRequest(http.MethodPost, "/api/effects", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestEffectsHandler_Delete(t *testing.T) {
	h := NewEffectsHandler(newTestStore(t))

	body := `{"entry_id": 2, "name": "announce"}`
	req := httptest.NewRequest(http.MethodPost, "/api/effects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var created effectResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/effects/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/effects/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("delete again status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestEffectsHandler_MethodNotAllowed(t *testing.T) {
	h := NewEffectsHandler(newTestStore(t))

	req := httptest.NewRequest(http.MethodPut, "/api/effects", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
