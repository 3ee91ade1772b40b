package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/polyglot/pkg/dictionary"
	"github.com/dmitrymomot/polyglot/pkg/editor"
)

type entriesResponse struct {
	Entries []editor.Entry `json:"entries"`
	Dirty   bool           `json:"dirty"`
}

type addEntryRequest struct {
	Key           string `json:"key"`
	Source        string `json:"source"`
	Target        string `json:"target"`
	AutoTranslate bool   `json:"autoTranslate"`
}

type entryResponse struct {
	Entry   editor.Entry `json:"entry"`
	Warning string       `json:"warning,omitempty"`
}

type renameEntryRequest struct {
	Key string `json:"key"`
}

type deleteResponse struct {
	Removed int `json:"removed"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := entriesResponse{Entries: s.session.Entries(), Dirty: s.session.Dirty()}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.mu.Lock()
	s.warn.Take() // drop stale warnings from earlier requests
	entry, err := s.session.AddEntry(r.Context(), req.Key, req.Source, req.Target, req.AutoTranslate)
	warning := s.warn.Take()
	s.mu.Unlock()

	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := entryResponse{Entry: entry}
	if warning != nil {
		resp.Warning = warning.Error()
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRenameEntry(w http.ResponseWriter, r *http.Request) {
	var req renameEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.mu.Lock()
	entry, err := s.session.RenameEntry(chi.URLParam(r, "key"), req.Key)
	s.mu.Unlock()

	if err != nil {
		renderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryResponse{Entry: entry})
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	removed, err := s.session.DeleteEntry(chi.URLParam(r, "key"))
	s.mu.Unlock()

	if err != nil {
		renderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Removed: removed})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.session.Save()
	s.mu.Unlock()

	if err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderError maps session errors to HTTP statuses.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dictionary.ErrInvalidKey), errors.Is(err, editor.ErrEmptySourceText):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, editor.ErrKeyNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dictionary.ErrKeyConflict):
		status = http.StatusConflict
	}
	writeError(w, r, status, err.Error())
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestIDFrom(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
