package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/docstore"
	httpmiddleware "github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/middleware"
	"github.com/onurcagigan-dotcom/planet-event/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	db, err := docstore.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	docstore.RegisterRoutes(r, docstore.NewHandler(docstore.NewRepository(db)), docstore.NewHealthHandler(db))

	port := cfg.DocstorePort
	if port == "" {
		port = "9090"
	}
	addr := ":" + port
	logger.Info("starting document store", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
