package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"game-press/config"
	"game-press/contentapi"
	"game-press/internal/logger"
	"game-press/web/middleware"
	"game-press/web/router"
)

func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	cfg := config.GetConfig()

	client := contentapi.New()
	store := middleware.NewSessionStore(cfg.Server.SessionSecret)
	r := router.New(client, store)

	// CORS applies to the JSON fragment endpoints embedded on external pages;
	// everything else is same-origin server-rendered HTML.
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
