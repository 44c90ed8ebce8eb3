package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/keepnote/keepnote-api/internal/api"
	"github.com/keepnote/keepnote-api/internal/api/middleware"
	"github.com/keepnote/keepnote-api/internal/api/shared"
	"github.com/keepnote/keepnote-api/internal/platform/postgres"
	"github.com/keepnote/keepnote-api/internal/service"
	"github.com/keepnote/keepnote-api/internal/service/auth"
)

// setupRouter wires the stores, services and handlers into the chi router.
func setupRouter(db *sql.DB, jwtService auth.JWTService, logger *slog.Logger) http.Handler {
	userStore := postgres.NewPostgresUserStore(db, logger)
	categoryStore := postgres.NewPostgresCategoryStore(db, logger)
	reminderStore := postgres.NewPostgresReminderStore(db, logger)
	noteStore := postgres.NewPostgresNoteStore(db, logger)

	userService := service.NewUserService(userStore, auth.NewExactVerifier(), logger)
	categoryService := service.NewCategoryService(categoryStore, logger)
	reminderService := service.NewReminderService(reminderStore, logger)
	noteService := service.NewNoteService(noteStore, categoryStore, reminderStore, db, logger)

	authHandler := api.NewAuthHandler(userService, jwtService, logger)
	userHandler := api.NewUserHandler(userService, logger)
	categoryHandler := api.NewCategoryHandler(categoryService, logger)
	reminderHandler := api.NewReminderHandler(reminderService, noteService, logger)
	noteHandler := api.NewNoteHandler(noteService, logger)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", userHandler.Get)
				r.Put("/", userHandler.Update)
				r.Delete("/", userHandler.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", categoryHandler.Create)
				r.Get("/", categoryHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", categoryHandler.Get)
					r.Put("/", categoryHandler.Update)
					r.Delete("/", categoryHandler.Delete)
				})
			})

			r.Route("/reminders", func(r chi.Router) {
				r.Post("/", reminderHandler.Create)
				r.Get("/", reminderHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", reminderHandler.Get)
					r.Put("/", reminderHandler.Update)
					r.Delete("/", reminderHandler.Delete)
					r.Get("/notes", reminderHandler.ListNotes)
				})
			})

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", noteHandler.Create)
				r.Get("/", noteHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", noteHandler.Get)
					r.Put("/", noteHandler.Update)
					r.Delete("/", noteHandler.Delete)
				})
			})
		})
	})

	return r
}
