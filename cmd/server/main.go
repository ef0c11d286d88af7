package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bankmock/internal/api"
	"bankmock/internal/config"
	"bankmock/internal/ledger"
	"bankmock/internal/syncjob"
	"bankmock/internal/token"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	store := ledger.NewStore()
	tokens := token.NewService(cfg.JWTSecret)
	sync := syncjob.NewController(store, cfg.SyncDelay, logger)

	h := api.NewHandler(store, tokens, sync, logger)
	r := api.NewRouter(h, tokens, logger)

	logger.Info("starting server", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
