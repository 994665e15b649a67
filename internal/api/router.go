package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/systemdesignlab/content-api/internal/api/handlers"
	"github.com/systemdesignlab/content-api/internal/api/middleware"
	"github.com/systemdesignlab/content-api/internal/config"
	"github.com/systemdesignlab/content-api/internal/service"
	"github.com/systemdesignlab/content-api/internal/session"
)

func NewRouter(services *service.Services, codec *session.Codec, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true, // the session rides on a cookie
	}).Handler)

	// Unsupported methods on known paths answer 405 with the JSON error
	// shape the rest of the API uses.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	courseHandler := handlers.NewCourseHandler(services.Course)
	blogHandler := handlers.NewBlogHandler(services.Blog)

	r.Route("/api", func(r chi.Router) {
		// Public reads: no auth, read-through fallback underneath.
		r.Route("/public", func(r chi.Router) {
			r.Get("/courses", courseHandler.Public)
			r.Get("/blog-posts", blogHandler.Public)
		})

		r.Route("/admin", func(r chi.Router) {
			// Session surface: login issues the cookie, logout clears it
			// unconditionally, me reports state without ever erroring.
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)

			// Mutations: gated before any body parsing.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(codec))

				r.Post("/courses", courseHandler.Create)
				r.Put("/courses", courseHandler.Update)
				r.Delete("/courses", courseHandler.Delete)

				r.Post("/blog-posts", blogHandler.Create)
				r.Put("/blog-posts", blogHandler.Update)
				r.Delete("/blog-posts", blogHandler.Delete)

				r.Post("/blog-order", blogHandler.Reorder)
			})
		})
	})

	return r
}
