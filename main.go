package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mbolis/reward-web/app"
	"github.com/mbolis/reward-web/backend"
	"github.com/mbolis/reward-web/config"
	"github.com/mbolis/reward-web/database"
	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/log"
	"github.com/mbolis/reward-web/routes"
	"github.com/mbolis/reward-web/settings"
)

const adminStaleTime = 30 * time.Second

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg.DBUrl)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	app := app.App{
		Config:    cfg,
		Backend:   backend.New(cfg.APIUrl, backend.WithTimeout(cfg.APITimeout)),
		Cache:     backend.NewQueryCache(adminStaleTime),
		Settings:  settings.NewService(database.NewSettingsStore(db)),
		Drafts:    database.NewDraftStore(db),
		Visitors:  jwtauth.New("HS256", []byte(cfg.TokenSecret), nil),
		Validator: httpx.NewValidator(),
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Infof("Listening on %s, rewards API at %s", cfg.Url(), cfg.APIUrl)
	return srv.ListenAndServe()
}
