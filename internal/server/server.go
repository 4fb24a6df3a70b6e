// Package server exposes the journal and glyph generator over a local HTTP
// API. It is a read surface plus a single compare-and-set submission route;
// there are no accounts and no multi-user semantics.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/glyph"
	"github.com/lukaswerner/daygrid/pkg/journal"
	"github.com/lukaswerner/daygrid/pkg/observability"
)

// Server serves the daygrid HTTP API.
type Server struct {
	store  journal.Store
	clock  journal.Clock
	logger *log.Logger
	router chi.Router
}

// New creates a server over the given store. A nil clock falls back to the
// system clock; a nil logger falls back to the default logger.
func New(store journal.Store, clock journal.Clock, logger *log.Logger) *Server {
	if clock == nil {
		clock = journal.SystemClock()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		store:  store,
		clock:  clock,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/entries", s.handleListEntries)
		r.Get("/entries/{date}", s.handleGetEntry)
		r.Post("/entries/{date}", s.handleSubmitEntry)
		r.Get("/art/{date}", s.handleArt)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the API until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		out[string(k)] = v
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

// entryResponse is the wire shape of a single day.
type entryResponse struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	key, err := dateParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entries, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	text, ok := entries[key]
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no entry for %s", key))
		return
	}
	writeJSON(w, http.StatusOK, entryResponse{Date: string(key), Text: text})
}

// submitRequest is the body of a submission.
type submitRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSubmitEntry(w http.ResponseWriter, r *http.Request) {
	key, err := dateParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse request body"))
		return
	}
	if err := errors.ValidateEntryText(req.Text); err != nil {
		s.writeError(w, r, err)
		return
	}

	// Only the current day accepts entries; past and future days are locked
	// by policy before the store is even consulted.
	today := journal.KeyFor(s.clock.Now())
	if key != today {
		s.writeError(w, r, errors.New(errors.ErrCodeNotToday, "only today (%s) accepts entries", today))
		return
	}

	// Compare-and-set through the store: under concurrent submitters only
	// one wins, the rest observe DAY_LOCKED.
	if err := s.store.Submit(r.Context(), key, req.Text); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryResponse{Date: string(key), Text: req.Text})
}

func (s *Server) handleArt(w http.ResponseWriter, r *http.Request) {
	key, err := dateParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	art := glyph.Generate(string(key))
	observability.Glyph().OnGenerate(r.Context(), string(key), art.PaintedCount())

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, map[string]any{
			"date":  string(key),
			"color": art.Color,
			"mode":  art.Mode,
			"cells": art.Cells,
		})
	case "svg":
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(glyph.SVG(art))
	case "png":
		data, err := glyph.PNG(art)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render png"))
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	default:
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", r.URL.Query().Get("format")))
	}
}

// dateParam extracts and validates the {date} route parameter.
func dateParam(r *http.Request) (journal.DateKey, error) {
	key := journal.DateKey(chi.URLParam(r, "date"))
	if _, err := journal.ParseKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// errorResponse is the wire shape of a failure.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}

// statusForCode maps domain error codes to HTTP statuses.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDate, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDayLocked:
		return http.StatusConflict
	case errors.ErrCodeNotToday, errors.ErrCodeUnchanged:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
