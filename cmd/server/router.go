package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	appmiddleware "github.com/taskdeck/taskdeck-api/internal/api/middleware"
	"github.com/taskdeck/taskdeck-api/internal/api/shared"
)

// newRouter assembles the HTTP routing table. Auth routes are public; every
// task route sits behind the bearer-token middleware.
func (a *application) newRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(appmiddleware.TraceMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", a.authHandler.Register)
		r.Post("/login", a.authHandler.Login)

		r.Route("/tasks", func(r chi.Router) {
			r.Use(a.authMiddleware.Authenticate)
			r.Get("/", a.taskHandler.List)
			r.Post("/", a.taskHandler.Create)
			// Static route first; chi prefers it over the {id} pattern.
			r.Get("/tags", a.taskHandler.ListTags)
			r.Get("/{id}", a.taskHandler.Get)
			r.Put("/{id}", a.taskHandler.Update)
			r.Delete("/{id}", a.taskHandler.Delete)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
