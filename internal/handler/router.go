/*
Package handler provides the HTTP handlers and routing setup for the chat backend.

This file defines the main Router, applying middleware like logging and CORS
before delegating requests to the user and message handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"moodchat/internal/pkg/logx"
	"moodchat/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS from the allowed origins, applies the global middleware
// chain, and mounts the API handlers.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Moodchat Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/users", func(users chi.Router) {
		users.Post("/", HandleCreateUser(deps))
		users.Get("/", HandleListUsers(deps))
	})

	r.Route("/messages", func(messages chi.Router) {
		messages.Post("/", HandleSendMessage(deps))
		messages.Get("/", HandleListMessages(deps))
	})

	return r
}
