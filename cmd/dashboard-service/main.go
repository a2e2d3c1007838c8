// Package main запускает HTTP-сервис главного экрана чат-клиента
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dashboard-service/internal/config"
	httpapi "dashboard-service/internal/http"
	"dashboard-service/internal/model"
	"dashboard-service/internal/repository"
	"dashboard-service/internal/service"
)

func main() {
	// Чтение конфигурации из ENV
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	level, _ := cfg.SlogLevel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// Контекст завершается по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Close()

	// 1. Репозитории
	workspaceRepo := repository.NewWorkspaceRepo(db)
	prefRepo := repository.NewPreferenceRepo(db)
	txManager := repository.NewTransactionManager(db)

	// 2. Сервисы
	catalog := model.DefaultCatalog
	dashboardService := service.NewDashboardService(workspaceRepo, prefRepo, catalog, cfg.SupportAppID, logger)
	preferenceService := service.NewPreferenceService(prefRepo, workspaceRepo, catalog)
	workspaceService := service.NewWorkspaceService(workspaceRepo, txManager)

	// 3. HTTP-обработчик
	handler := httpapi.NewHandler(dashboardService, preferenceService, workspaceService, logger, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
