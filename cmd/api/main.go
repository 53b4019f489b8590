package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/handlers"
	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/localstore"
	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/remote"
	"github.com/onurcagigan-dotcom/planet-event/internal/app/board"
	"github.com/onurcagigan-dotcom/planet-event/internal/app/reconcile"
	"github.com/onurcagigan-dotcom/planet-event/internal/config"
	"github.com/onurcagigan-dotcom/planet-event/pkg/translator"

	httpadapter "github.com/onurcagigan-dotcom/planet-event/internal/adapter/http"
	httpmiddleware "github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/middleware"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	storePath := cfg.LocalStorePath
	if storePath == "" {
		storePath, err = localstore.DefaultPath()
		if err != nil {
			logger.Fatal("could not resolve local store path", zap.Error(err))
		}
	}
	store, err := localstore.Open(storePath)
	if err != nil {
		logger.Fatal("failed to open local store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close local store", zap.Error(err))
		}
	}()

	documentStore := remote.NewClient(cfg.DocumentURL, nil)
	engine := reconcile.NewEngine(store, documentStore, logger, reconcile.Options{
		RequestTimeout:    cfg.RequestTimeout,
		HeartbeatInterval: cfg.HeartbeatInterval,
		RequireAdmin:      cfg.SyncRequireAdmin,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catch up with the remote before serving, then keep reconciling in the
	// background. Both are best-effort; the board works offline.
	if err := engine.Pull(ctx, false); err != nil {
		logger.Warn("initial pull failed", zap.Error(err))
	}
	go engine.Run(ctx)

	boardService := board.NewService(engine, store, cfg.AdminPassword)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(boardService),
		handlers.NewBoardHandler(boardService),
		handlers.NewSessionHandler(boardService),
		handlers.NewSyncHandler(boardService),
		handlers.NewExportHandler(boardService),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting board client",
		zap.String("addr", addr),
		zap.String("document_url", cfg.DocumentURL),
		zap.Duration("heartbeat", cfg.HeartbeatInterval))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
