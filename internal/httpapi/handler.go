// Package httpapi exposes the session coordinator as plain JSON over HTTP and
// pushes session events to members over WebSocket.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mmynk/meetnmeal/internal/auth"
	"github.com/mmynk/meetnmeal/internal/expiry"
	"github.com/mmynk/meetnmeal/internal/middleware"
	"github.com/mmynk/meetnmeal/internal/models"
	"github.com/mmynk/meetnmeal/internal/service"
)

// maxBodyBytes bounds a preference submission.
const maxBodyBytes = 64 << 10

// Options configures a Handler.
type Options struct {
	// Tokens verifies member tokens on member routes. Nil disables checks.
	Tokens *auth.TokenManager

	// RequireTokens rejects member routes called without a token.
	RequireTokens bool

	// AllowOrigin is matched against the Origin header of WebSocket
	// handshakes. Empty or "*" accepts any origin.
	AllowOrigin string

	Push PushConfig
}

// Handler serves the REST routes.
type Handler struct {
	coord *service.Coordinator
	opts  Options
	push  *pusher
}

// New creates a Handler for coord.
func New(coord *service.Coordinator, opts Options) *Handler {
	return &Handler{
		coord: coord,
		opts:  opts,
		push:  newPusher(coord, opts.Push, opts.AllowOrigin),
	}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	member := func(fn http.HandlerFunc) http.Handler {
		if h.opts.Tokens == nil {
			return fn
		}
		return middleware.RequireMember(h.opts.Tokens, h.opts.RequireTokens)(fn)
	}

	mux.HandleFunc("POST /group/create", h.create)
	mux.HandleFunc("POST /group/join/{group_id}", h.join)
	mux.Handle("POST /group/submit/{group_id}/{user_id}", member(h.submit))
	mux.HandleFunc("GET /group/status/{group_id}", h.status)
	mux.HandleFunc("POST /group/compute/{group_id}", h.compute)
	mux.HandleFunc("GET /group/result/{group_id}", h.result)
	mux.HandleFunc("POST /group/close/{group_id}", h.closeSession)
	mux.HandleFunc("GET /group/archive/{group_id}", h.archive)
	mux.Handle("GET /ws/{group_id}/{user_id}", member(h.push.ServeHTTP))
	mux.HandleFunc("GET /healthz", h.health)
}

type okResponse struct {
	OK bool `json:"ok"`
}

type createResponse struct {
	GroupID string `json:"group_id"`
}

type joinResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token,omitempty"`
}

type statusResponse struct {
	Joined int    `json:"joined"`
	Ready  int    `json:"ready"`
	State  string `json:"state"`
}

type resultResponse struct {
	Restaurants []models.Recommendation `json:"restaurants"`
}

type archiveResponse struct {
	GroupID     string   `json:"group_id"`
	CreatedAt   int64    `json:"created_at"`
	ClosedAt    int64    `json:"closed_at"`
	MemberCount int      `json:"member_count"`
	ReadyCount  int      `json:"ready_count"`
	Reason      string   `json:"reason"`
	TopPicks    []string `json:"top_picks"`
}

type healthResponse struct {
	OK       bool `json:"ok"`
	Sessions int  `json:"sessions"`
}

type errorResponse struct {
	Error       string                  `json:"error"`
	Detail      string                  `json:"detail"`
	Restaurants []models.Recommendation `json:"restaurants,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	id, err := h.coord.Create()
	if err != nil {
		slog.Error("Create failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, createResponse{GroupID: id})
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	res, err := h.coord.Join(r.PathValue("group_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, joinResponse{UserID: res.UserID, Token: res.Token})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var prefs models.PreferenceSet
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&prefs); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, fmt.Errorf("%w: %v", models.ErrInvalidPreferences, err))
		return
	}

	if err := h.coord.Submit(r.PathValue("group_id"), r.PathValue("user_id"), prefs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	st, err := h.coord.Status(r.PathValue("group_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Joined: st.Joined, Ready: st.Ready, State: string(st.State)})
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) {
	stored, err := h.coord.Compute(r.Context(), r.PathValue("group_id"))
	if err != nil {
		if errors.Is(err, models.ErrWrongState) && stored != nil {
			writeJSON(w, http.StatusConflict, errorResponse{
				Error:       "wrong_state",
				Detail:      err.Error(),
				Restaurants: stored,
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) result(w http.ResponseWriter, r *http.Request) {
	list, err := h.coord.Result(r.PathValue("group_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []models.Recommendation{}
	}
	writeJSON(w, http.StatusOK, resultResponse{Restaurants: list})
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	grace := 0
	if v := r.URL.Query().Get("grace"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, fmt.Errorf("%w: grace %q is not an integer", expiry.ErrInvalidGrace, v))
			return
		}
		grace = n
	}

	if err := h.coord.Close(r.PathValue("group_id"), grace); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	rec, err := h.coord.Record(r.Context(), r.PathValue("group_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	picks := rec.TopPicks
	if picks == nil {
		picks = []string{}
	}
	writeJSON(w, http.StatusOK, archiveResponse{
		GroupID:     rec.ID,
		CreatedAt:   rec.CreatedAt,
		ClosedAt:    rec.ClosedAt,
		MemberCount: rec.MemberCount,
		ReadyCount:  rec.ReadyCount,
		Reason:      rec.Reason,
		TopPicks:    picks,
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true, Sessions: h.coord.Sessions()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

// writeError maps domain errors to a status code and error code.
func writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, models.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, models.ErrWrongState):
		status, code = http.StatusConflict, "wrong_state"
	case errors.Is(err, models.ErrNotReady):
		status, code = http.StatusConflict, "not_ready"
	case errors.Is(err, models.ErrComputeFailed):
		status, code = http.StatusBadGateway, "compute_failed"
	case errors.Is(err, models.ErrInvalidPreferences), errors.Is(err, expiry.ErrInvalidGrace):
		status, code = http.StatusBadRequest, "invalid_request"
	}
	writeJSON(w, status, errorResponse{Error: code, Detail: err.Error()})
}
