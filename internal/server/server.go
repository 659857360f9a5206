// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server serves the vocabulary study page over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/ianlewis/go-vocab/filter"
	"github.com/ianlewis/go-vocab/session"
	"github.com/ianlewis/go-vocab/source"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// InvalidQueryMessage is shown when the page query parameters are rejected.
const InvalidQueryMessage = "Please enter a shorter search"

var validate = validator.New()

// indexRequest holds the page query parameters.
type indexRequest struct {
	Search       string `validate:"max=256"`
	Level        string `validate:"max=64"`
	PartOfSpeech string `validate:"max=64"`
}

// Server serves a single study session. Requests are serialized on the
// session.
type Server struct {
	logger *slog.Logger

	// defaultText is reloaded by the reset action.
	defaultText string

	mu    sync.Mutex
	state *session.State
}

// New returns a new Server for the session. The session is loaded with
// defaultText.
func New(state *session.State, defaultText string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	state.Load(defaultText)
	return &Server{
		logger:      logger,
		defaultText: defaultText,
		state:       state,
	}
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.index)
	r.Post("/theme", s.toggleTheme)
	r.Post("/upload", s.upload)
	r.Post("/reset", s.reset)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.Error("writing health check response", "error", err)
		}
	})

	return r
}

// ListenAndServe serves on addr until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := indexRequest{
		Search:       q.Get("q"),
		Level:        categoryParam(q, "level"),
		PartOfSpeech: categoryParam(q, "pos"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("invalid query", "error", err)
		s.writePage(w, http.StatusBadRequest, InvalidQueryMessage)
		return
	}

	s.state.SetQuery(filter.Query{
		Search:       req.Search,
		Level:        req.Level,
		PartOfSpeech: req.PartOfSpeech,
	})
	s.writePage(w, http.StatusOK, "")
}

func (s *Server) toggleTheme(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	theme := s.state.ToggleTheme()
	target := s.pageURL()
	s.mu.Unlock()

	s.logger.Debug("toggled theme", "theme", theme)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, source.MaxSize+1024*1024)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.reject(w, http.StatusBadRequest, "reading upload", err)
		return
	}
	defer file.Close()

	mediaType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil || mediaType != "text/plain" {
		s.reject(w, http.StatusUnsupportedMediaType, "rejected upload", fmt.Errorf("%w: declared %q", source.ErrNotPlainText, header.Header.Get("Content-Type")))
		return
	}

	text, err := source.Read(file)
	if err != nil {
		s.reject(w, http.StatusUnsupportedMediaType, "rejected upload", err)
		return
	}

	s.mu.Lock()
	s.state.Load(text)
	target := s.pageURL()
	s.mu.Unlock()

	s.logger.Info("loaded upload", "filename", header.Filename, "size", header.Size)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.state.Reset(s.defaultText)
	target := s.pageURL()
	s.mu.Unlock()

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// categoryParam returns the named categorical filter parameter. An absent
// parameter disables the filter.
func categoryParam(q url.Values, name string) string {
	if !q.Has(name) {
		return filter.All
	}
	return q.Get(name)
}

// pageURL returns the page URL for the current query. s.mu must be held.
func (s *Server) pageURL() string {
	query := s.state.Query()
	v := url.Values{}
	v.Set("q", query.Search)
	v.Set("level", query.Level)
	v.Set("pos", query.PartOfSpeech)
	return "/?" + v.Encode()
}

// reject shows the page with the file rejection message. The session is
// left unchanged.
func (s *Server) reject(w http.ResponseWriter, status int, msg string, err error) {
	s.logger.Warn(msg, "error", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.writePage(w, status, source.RejectMessage)
}

// writePage renders the page for the current state. s.mu must be held.
func (s *Server) writePage(w http.ResponseWriter, status int, message string) {
	var b bytes.Buffer
	if err := s.state.Page(message).Render(&b); err != nil {
		s.logger.Error("rendering page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := b.WriteTo(w); err != nil {
		s.logger.Error("writing page", "error", err)
	}
}
