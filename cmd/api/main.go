package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/db"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/gemini"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/googletasks"
	httpadapter "github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/handlers"
	httpmiddleware "github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/middleware"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/app/service"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/config"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/pkg/translator"
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

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageJa, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to open sqlite database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close sqlite database", zap.Error(err))
		}
	}()

	repo := dbadapter.NewStateRepository(db)

	taskService, err := service.NewTaskService(context.Background(), repo)
	if err != nil {
		logger.Fatal("failed to load task state", zap.Error(err))
	}
	settingsService := service.NewSettingsService(repo)
	generator := gemini.NewClient(cfg.GeminiBaseURL)
	decomposeService := service.NewDecomposeService(repo, generator, taskService)
	remote := googletasks.NewClient(cfg.GoogleTasksBaseURL, googletasks.NewStoredTokenSource(repo))
	syncService := service.NewSyncService(taskService, remote)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(db),
		Tasks:      handlers.NewTaskHandler(taskService),
		Decompose:  handlers.NewDecomposeHandler(decomposeService),
		Categories: handlers.NewCategoryHandler(taskService),
		Views:      handlers.NewViewHandler(taskService, settingsService),
		Sync:       handlers.NewSyncHandler(syncService),
		Settings:   handlers.NewSettingsHandler(settingsService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
