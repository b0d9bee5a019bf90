package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/davidmcnab/hearth/internal/config"
	"github.com/davidmcnab/hearth/internal/handlers"
	"github.com/davidmcnab/hearth/internal/services"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(planner *services.PlannerService, cfg config.Config) *Server {
	scheduleHandler := handlers.NewScheduleHandler(planner)
	icalHandler := handlers.NewICalHandler(planner)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Get("/ical", icalHandler.Feed)

	router.Group(func(r chi.Router) {
		r.Get("/api/chores", scheduleHandler.ListChores)
		r.Get("/api/members", scheduleHandler.ListMembers)
		r.Get("/api/schedule", scheduleHandler.Schedule)
		r.Get("/api/week", scheduleHandler.Week)
		r.Get("/api/matrix", scheduleHandler.Matrix)
		r.Get("/api/digest", scheduleHandler.Digest)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
