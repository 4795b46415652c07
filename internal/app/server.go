package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/handler"
)

// runServer запускает HTTP сервер и блокируется до отмены ctx.
func runServer(ctx context.Context, cfg *config.Config, deps Deps, logger *slog.Logger) error {
	limiter := handler.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, logger)

	router := handler.NewRouter(
		handler.RouterConfig{
			RequestTimeout:     cfg.RequestTimeout,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		handler.NewBookingHandler(deps.BookingUseCase, logger),
		handler.NewUserHandler(deps.UserUseCase, logger),
		handler.NewHealthHandler(deps.DB, logger),
		limiter,
		logger,
	)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping http server")

	ctxServer, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
