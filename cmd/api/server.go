package main

import (
	"context"
	"net/http"
	"time"

	"bookshelf/internal/auth"
	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/discussion"
	"bookshelf/internal/httpx"
	"bookshelf/internal/shelf"
	"bookshelf/internal/user"

	"go.uber.org/zap"
)

// newServer wires services and routes. The returned func releases background
// resources owned by the middleware.
func newServer(cfg *config.Config, st *stores, logger *zap.Logger) (http.Handler, func()) {
	userService := user.NewService(st.users)
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTTTL, userService)
	catalogService := catalog.NewService(st.books)
	shelfService := shelf.NewService(st.shelves, st.books, st.users)
	discussionService := discussion.NewService(st.discussions)

	guard := httpx.OwnershipGuard{Enforce: cfg.EnforceOwnership}

	authHandler := auth.NewHTTPHandler(authService, logger)
	userHandler := user.NewHTTPHandler(userService, guard, logger)
	catalogHandler := catalog.NewHTTPHandler(catalogService, logger)
	shelfHandler := shelf.NewHTTPHandler(shelfService, guard, logger)
	discussionHandler := discussion.NewHTTPHandler(discussionService, logger)

	protected := httpx.AuthMiddleware(cfg.JWTSecret)
	secured := func(h http.HandlerFunc) http.Handler { return protected(h) }

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := st.ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	router.HandleFunc("POST /api/auth/login", authHandler.Login)

	router.Handle("POST /api/library", secured(catalogHandler.Insert))
	router.HandleFunc("GET /api/library", catalogHandler.List)
	router.HandleFunc("GET /api/library/{bookId}", catalogHandler.Get)

	router.Handle("GET /api/users/{id}", secured(userHandler.GetProfile))
	router.Handle("PATCH /api/users/{userId}/username", secured(userHandler.UpdateUsername))
	router.Handle("PATCH /api/users/{id}/profile-pic", secured(userHandler.UpdateProfilePic))

	router.Handle("GET /api/users/{id}/bookshelves", secured(shelfHandler.GetShelves))
	router.Handle("POST /api/users/{id}/add-book", secured(shelfHandler.AddBook))
	router.Handle("PATCH /api/users/{id}/move-book", secured(shelfHandler.MoveBook))

	router.Handle("POST /api/discussions", secured(discussionHandler.Start))
	router.HandleFunc("GET /api/discussions", discussionHandler.List)
	router.Handle("POST /api/discussions/{id}/replies", secured(discussionHandler.Reply))

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	handler := httpx.Chain(router,
		httpx.RecoveryMiddleware(logger),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
	return handler, rateLimiter.Close
}
