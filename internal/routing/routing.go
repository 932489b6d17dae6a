package routing

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"timekeeper/pkg/handlers"
	"timekeeper/pkg/middleware"
	"timekeeper/pkg/session"
	"timekeeper/pkg/timer"
	"timekeeper/pkg/user"
)

const (
	staticPath = "./static"
	timerID    = "{timer_id:[a-fA-F0-9-]+}"
)

func InitRoutes(api *mux.Router, sessionRepo session.Repository, dataDir string, logger *slog.Logger) {

	userService := user.NewService(user.NewFileRepo(dataDir), sessionRepo)
	userHandler := handlers.NewUserHandler(userService, sessionRepo, logger)

	timerService := timer.NewService(timer.NewFileRepo(dataDir))
	timerHandler := handlers.NewTimerHandler(timerService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := api.PathPrefix("").Subrouter()
	timersRouter := api.PathPrefix("/timers").Subrouter()

	/* auth routers: на register/login — лимитер против перебора */
	limiter := middleware.NewRateLimit(rate.Limit(5), 20)
	authRouter.Use(limiter.Middleware)

	authRouter.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	authRouter.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")
	authRouter.HandleFunc("/logout", userHandler.Logout).Methods("POST").Name("logout")

	/* timers routers */
	timersRouter.HandleFunc("", timerHandler.StartTimer).Methods("POST")
	timersRouter.HandleFunc("", timerHandler.ListTimers).Methods("GET")
	timersRouter.HandleFunc("/"+timerID+"/stop", timerHandler.StopTimer).Methods("POST")
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

func ServeFallback(r *mux.Router, logger *slog.Logger) {
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte("[]")); err != nil {
				logger.Error("failed to write fallback JSON", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			return
		}
		http.ServeFile(w, r, "static/html/index.html")
	})
}

func StartServer(r *mux.Router, addr string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
