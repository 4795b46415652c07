package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/handler"
	"github.com/GoArmGo/BookingApp/internal/usecase"
)

// Режимы запуска.
const (
	ModeServer = "server"
	ModeWorker = "worker"
	ModeSeed   = "seed"
)

// Deps — собранные зависимости. Заполняются только те, что нужны режиму.
type Deps struct {
	DB                  handler.Pinger
	BookingUseCase      usecase.BookingUseCase
	UserUseCase         usecase.UserUseCase
	SeedUseCase         usecase.SeedUseCase
	EventArchiveUseCase usecase.EventArchiveUseCase
	EventConsumer       ports.EventConsumer

	// Closers закрываются в обратном порядке при завершении.
	Closers []io.Closer
}

type App struct {
	Config *config.Config
	logger *slog.Logger
	deps   Deps
}

func NewApp(cfg *config.Config, logger *slog.Logger, deps Deps) *App {
	return &App{
		Config: cfg,
		logger: logger,
		deps:   deps,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting app", "mode", mode)

	var err error
	switch mode {
	case ModeServer:
		err = runServer(ctx, a.Config, a.deps, a.logger)
	case ModeWorker:
		err = runWorker(ctx, a.deps, a.logger)
	case ModeSeed:
		err = runSeed(ctx, a.deps, a.logger)
	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте %q, %q или %q)", mode, ModeServer, ModeWorker, ModeSeed)
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("failed to release resources", "error", closeErr)
	}

	if err != nil {
		return err
	}
	a.logger.Info("app stopped", "mode", mode)
	return nil
}

// Shutdown закрывает все ресурсы приложения. Повторный вызов ничего не делает.
func (a *App) Shutdown() error {
	var errs []error
	for i := len(a.deps.Closers) - 1; i >= 0; i-- {
		if err := a.deps.Closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.deps.Closers = nil
	return errors.Join(errs...)
}
