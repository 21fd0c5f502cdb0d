package handler

import (
	"net/http"

	"github.com/Dan9191/gig-score/internal/config"
	"github.com/Dan9191/gig-score/internal/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires the public and the token-protected routes
func NewRouter(h *Handler, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(h.logger))

	// Public routes
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/reference-rate", h.ReferenceRate).Methods(http.MethodGet)

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/score/analyze", h.Analyze).Methods(http.MethodPost)
	authRouter.HandleFunc("/score", h.Score).Methods(http.MethodGet)
	authRouter.HandleFunc("/chat", h.Chat).Methods(http.MethodPost)
	authRouter.HandleFunc("/session", h.Logout).Methods(http.MethodDelete)

	return r
}
