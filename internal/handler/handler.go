package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Dan9191/gig-score/internal/middleware"
	"github.com/Dan9191/gig-score/internal/models"
	"github.com/Dan9191/gig-score/internal/service"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Pinger reports storage liveness
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	svc    *service.Service
	store  Pinger
	logger *logrus.Logger
}

func NewHandler(svc *service.Service, store Pinger, logger *logrus.Logger) *Handler {
	return &Handler{svc: svc, store: store, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Session *models.Session `json:"session"`
	Token   string          `json:"token"`
}

type chatRequest struct {
	Message string `json:"message"`
	Score   *int   `json:"score,omitempty"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, token, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, authResponse{Session: session, Token: token})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, authResponse{Session: session, Token: token})
}

// Health reports liveness and storage reachability
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Errorf("Storage ping failed: %v", err)
		h.respond(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	h.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReferenceRate returns the lending reference rate
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.svc.ReferenceRate(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]float64{"referenceRate": rate})
}

// Analyze runs the scoring pipeline for the authenticated user
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.UserEmail(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req service.AnalyzeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.UPIID) == "" {
		h.writeError(w, http.StatusBadRequest, "upiId is required")
		return
	}

	snap, err := h.svc.Analyze(r.Context(), email, req)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, snap)
}

// Score returns the latest snapshot of the authenticated user
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.UserEmail(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	snap, err := h.svc.LatestSnapshot(r.Context(), email)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, snap)
}

// Chat answers a chatbot message
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.UserEmail(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req chatRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.svc.Chat(r.Context(), email, req.Message, req.Score)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, resp)
}

// Logout drops the cached snapshot of the authenticated user
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.UserEmail(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.svc.Logout(r.Context(), email); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// fail maps service errors to HTTP statuses
func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		h.writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrSnapshotNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		h.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrRateNotConfigured):
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, service.ErrRateUnavailable):
		h.logger.Warnf("Reference rate lookup failed: %v", err)
		h.writeError(w, http.StatusBadGateway, service.ErrRateUnavailable.Error())
	default:
		h.logger.Errorf("Request failed: %v", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.respond(w, status, map[string]string{"error": msg})
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}
