package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/calbers/startpage/internal/labels"
	"github.com/calbers/startpage/internal/logger"
	"github.com/calbers/startpage/internal/suggest"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// handleSuggestions relays the query to the autocomplete service.
// Pure passthrough, no business logic.
func handleSuggestions(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
			return
		}

		suggestions, err := d.Suggest.Fetch(r.Context(), query)
		if err != nil {
			if errors.Is(err, suggest.ErrEmptyQuery) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
				return
			}
			d.Logger.Error("fetch suggestions", logger.Error(err))
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "failed to fetch suggestions"})
			return
		}

		writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
	}
}

func handleAuthenticate(d Deps) http.HandlerFunc {
	type request struct {
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		if !d.Gate.Submit(req.Password) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "incorrect password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
	}
}

func handleCheckAuth(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"authenticated": d.Gate.Authenticated()})
	}
}

// handleBookmarks returns the stored list, optionally filtered by
// ?label=. The list is re-read per request so edits from a concurrent
// TUI session show up.
func handleBookmarks(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Gate.Authenticated() {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			return
		}

		state, err := d.Store.Load()
		if err != nil {
			d.Logger.Error("load bookmarks", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load bookmarks"})
			return
		}

		list := state.Bookmarks
		if label := r.URL.Query().Get("label"); label != "" {
			list = labels.Filter(list, label)
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"bookmarks": list,
			"labels":    labels.Unique(state.Bookmarks),
			"viewMode":  state.ViewMode,
		})
	}
}
