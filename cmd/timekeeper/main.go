package main

import (
	"timekeeper/internal/config"
	"timekeeper/internal/logger"
	"timekeeper/internal/routing"
	"timekeeper/pkg/middleware"
	"timekeeper/pkg/session"

	"github.com/gorilla/mux"
)

func main() {
	config.Load() // load env var from .env

	logger := logger.Load()

	sessionRepo := session.NewFileRepo(config.DataDir())

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic(logger))
	api.Use(middleware.CheckSession(sessionRepo))

	routing.InitRoutes(api, sessionRepo, config.DataDir(), logger)
	routing.ServeStaticFiles(r)
	routing.ServeFallback(r, logger)
	routing.StartServer(r, config.Addr())
}
