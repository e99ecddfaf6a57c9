package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/config"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/handler"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/middleware"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/notify"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
)

type Server struct {
	store         store.Storage
	authH         *handler.AuthHandler
	familyH       *handler.FamilyHandler
	photoH        *handler.PhotoHandler
	albumH        *handler.AlbumHandler
	eventH        *handler.EventHandler
	chatH         *handler.ChatHandler
	postH         *handler.PostHandler
	notificationH *handler.NotificationHandler
	rateLimiter   *middleware.RateLimiter
	jwtSecret     []byte
	logger        *slog.Logger
}

func New(st store.Storage, cfg *config.Config, logger *slog.Logger) *Server {
	notifier := notify.New(st, logger)

	return &Server{
		store:         st,
		authH:         handler.NewAuthHandler(st, logger, cfg.SessionTTL, cfg.DevPasswordHash),
		familyH:       handler.NewFamilyHandler(st, logger),
		photoH:        handler.NewPhotoHandler(st, notifier, logger),
		albumH:        handler.NewAlbumHandler(st, logger),
		eventH:        handler.NewEventHandler(st, notifier, logger),
		chatH:         handler.NewChatHandler(st, notifier, logger),
		postH:         handler.NewPostHandler(st, notifier, logger),
		notificationH: handler.NewNotificationHandler(st, logger),
		rateLimiter:   middleware.NewRateLimiter(),
		jwtSecret:     []byte(cfg.JWTSecret),
		logger:        logger,
	}
}

func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	handle(outerMux, "GET /health", http.HandlerFunc(s.healthHandler))
	handle(outerMux, "GET /metrics", promhttp.Handler())
	handle(outerMux, "POST /api/login", s.rateLimitedHandler(s.authH.Login))
	handle(outerMux, "POST /api/logout", http.HandlerFunc(s.authH.Logout))

	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	requireAuth := middleware.RequireAuth(s.store, s.jwtSecret)
	outerMux.Handle("/api/", requireAuth(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

// handle registers a route with metrics instrumentation. The wrapper sits
// inside the mux so it sees the matched pattern on the request.
func handle(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, middleware.Metrics(h))
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	handle(mux, "GET /api/auth/user", http.HandlerFunc(s.authH.CurrentUser))

	handle(mux, "POST /api/families", http.HandlerFunc(s.familyH.Create))
	handle(mux, "GET /api/families", http.HandlerFunc(s.familyH.List))
	handle(mux, "GET /api/families/{id}", http.HandlerFunc(s.familyH.Get))
	handle(mux, "GET /api/families/{id}/members", http.HandlerFunc(s.familyH.ListMembers))
	handle(mux, "POST /api/families/{id}/members", http.HandlerFunc(s.familyH.AddMember))

	handle(mux, "GET /api/families/{id}/photos", http.HandlerFunc(s.photoH.List))
	handle(mux, "POST /api/families/{id}/photos", http.HandlerFunc(s.photoH.Create))
	handle(mux, "GET /api/families/{id}/albums", http.HandlerFunc(s.albumH.List))
	handle(mux, "POST /api/families/{id}/albums", http.HandlerFunc(s.albumH.Create))

	handle(mux, "GET /api/families/{id}/events", http.HandlerFunc(s.eventH.List))
	handle(mux, "POST /api/families/{id}/events", http.HandlerFunc(s.eventH.Create))
	handle(mux, "POST /api/events/{id}/rsvp", http.HandlerFunc(s.eventH.Rsvp))
	handle(mux, "GET /api/events/{id}/rsvps", http.HandlerFunc(s.eventH.ListRsvps))

	handle(mux, "GET /api/families/{id}/messages", http.HandlerFunc(s.chatH.List))
	handle(mux, "POST /api/families/{id}/messages", http.HandlerFunc(s.chatH.Create))

	handle(mux, "GET /api/families/{id}/posts", http.HandlerFunc(s.postH.List))
	handle(mux, "POST /api/families/{id}/posts", http.HandlerFunc(s.postH.Create))
	handle(mux, "POST /api/posts/{id}/react", http.HandlerFunc(s.postH.React))
	handle(mux, "POST /api/posts/{id}/comments", http.HandlerFunc(s.postH.Comment))

	handle(mux, "GET /api/notifications", http.HandlerFunc(s.notificationH.List))
	handle(mux, "PUT /api/notifications/{id}/read", http.HandlerFunc(s.notificationH.MarkRead))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// rateLimitedHandler wraps login with a per-IP limit of 10 attempts per
// minute.
func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(middleware.RealIP(r), 10, time.Minute) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		h(w, r)
	}
}
