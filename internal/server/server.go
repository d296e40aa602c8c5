// Package server exposes the card's HTTP API: response logging and essay
// generation scoped to a browser session.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rcliao/year-card/internal/essay"
	"github.com/rcliao/year-card/internal/history"
	"github.com/rcliao/year-card/internal/model"
	"github.com/rcliao/year-card/internal/render"
	"github.com/rcliao/year-card/internal/session"
	"github.com/rcliao/year-card/internal/store"
)

const (
	sessionCookie      = "sid"
	defaultMaxBodySize = 64 << 10
)

// Server serves the card's JSON API over a Store.
type Server struct {
	store   store.Store
	logger  *zap.Logger
	maxBody int64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxBodyBytes caps JSON request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// New returns a Server backed by st.
func New(st store.Store, opts ...Option) (*Server, error) {
	if st == nil {
		return nil, errors.New("store required")
	}
	s := &Server{store: st, logger: zap.NewNop(), maxBody: defaultMaxBodySize}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Routes returns the API handler wrapped in request logging.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/responses", s.handleResponsesList)
	mux.HandleFunc("POST /api/responses", s.handleResponsesCreate)
	mux.HandleFunc("GET /api/draft", s.handleDraftGet)
	mux.HandleFunc("DELETE /api/draft", s.handleDraftDelete)
	mux.HandleFunc("POST /api/essay", s.handleEssay)
	return s.logMiddleware(mux)
}

// --- Handlers ---

type errorResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type responsesResp struct {
	OK        bool             `json:"ok"`
	Responses []model.Response `json:"responses"`
}

type createResp struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// responseReq accepts any JSON types; non-strings count as empty.
type responseReq struct {
	Name       any `json:"name"`
	LoveAnswer any `json:"loveAnswer"`
	Wish       any `json:"wish"`
}

type essayResp struct {
	essay.Result
	HTML string `json:"html,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleResponsesList(w http.ResponseWriter, r *http.Request) {
	responses, err := s.store.ListResponses(r.Context(), store.ListResponsesParams{})
	if err != nil {
		s.logger.Error("list responses", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, responsesResp{OK: true, Responses: responses})
}

func (s *Server) handleResponsesCreate(w http.ResponseWriter, r *http.Request) {
	var req responseReq
	if err := s.decode(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}

	resp, err := s.store.PutResponse(r.Context(), store.PutResponseParams{
		Name:       stringValue(req.Name),
		LoveAnswer: model.LoveAnswer(stringValue(req.LoveAnswer)),
		Wish:       model.Wish(stringValue(req.Wish)),
	})
	switch {
	case errors.Is(err, store.ErrInvalidLoveAnswer):
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "Invalid loveAnswer"})
		return
	case errors.Is(err, store.ErrInvalidWish):
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "Invalid wish"})
		return
	case err != nil:
		s.logger.Error("put response", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}

	s.logger.Info("response logged",
		zap.String("id", resp.ID),
		zap.String("relationship", string(resp.Relationship)))
	writeJSON(w, http.StatusOK, createResp{OK: true, ID: resp.ID})
}

func (s *Server) handleDraftGet(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)
	writeJSON(w, http.StatusOK, s.drafts(sid).Read(r.Context()))
}

func (s *Server) handleDraftDelete(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)
	s.drafts(sid).Clear(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleEssay merges the request body over the session's stored draft,
// generates the next essay, and stores the essay and nonce back.
func (s *Server) handleEssay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := s.sessionID(w, r)
	drafts := s.drafts(sid)

	draft := drafts.Read(ctx)
	if err := s.decode(w, r, &draft); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	draft.Normalize()

	hist := history.New(s.store,
		history.WithKey(history.DefaultKey+":"+sid),
		history.WithLogger(s.logger))
	res := essay.NewGenerator(hist, essay.WithLogger(s.logger)).Generate(draft)

	drafts.Write(ctx, func(d *model.Draft) {
		*d = draft
		d.Essay = res.Essay
		d.EssayNonce = res.NextNonce
	})

	out := essayResp{Result: res}
	if r.URL.Query().Get("format") == "html" {
		html, err := render.HTML(res.Essay)
		if err != nil {
			s.logger.Warn("render essay", zap.Error(err))
		}
		out.HTML = html
	}
	writeJSON(w, http.StatusOK, out)
}

// --- Helpers ---

func (s *Server) drafts(sid string) *session.Drafts {
	return session.New(s.store, session.DefaultKey+":"+sid, s.logger)
}

// sessionID returns the caller's session id, issuing a cookie for new ones.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody)).Decode(v)
}

func stringValue(v any) string {
	str, _ := v.(string)
	return strings.TrimSpace(str)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}
