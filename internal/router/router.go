// Package router sets up all HTTP routes and middleware chains for the
// API server. It organizes routes into auth, member, and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dailyspin/internal/handlers"
	"dailyspin/internal/middleware"
	"dailyspin/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, auth *handlers.Auth, themes *handlers.Themes, schedule *handlers.Schedule, feed *handlers.Feed, posts *handlers.Posts) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Auth — login is the only route reachable without a token.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)
		})
	})

	// Member area — any authenticated user.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/theme/today", feed.CurrentTheme)

		r.Route("/feed", func(r chi.Router) {
			r.Get("/", feed.Today)
			r.Get("/lock-status", feed.LockStatus)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", posts.Create)
			r.Delete("/{id}", posts.Delete)
			r.Put("/{id}/note", posts.UpdateNote)
			r.Put("/{id}/hidden", posts.SetHidden)
		})
	})

	// Admin area — theme catalog and calendar management.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireAdmin)

		r.Route("/themes", func(r chi.Router) {
			r.Get("/", themes.List)
			r.Post("/", themes.Create)
			r.Put("/{id}", themes.Update)
			r.Post("/{id}/activate", themes.Activate)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", schedule.List)
			r.Post("/", schedule.Create)
			r.Delete("/{id}", schedule.Delete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
