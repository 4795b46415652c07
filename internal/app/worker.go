package app

import (
	"context"
	"fmt"
	"log/slog"
)

// runWorker читает события из RabbitMQ и архивирует их в MinIO.
func runWorker(ctx context.Context, deps Deps, logger *slog.Logger) error {
	if deps.EventConsumer == nil || deps.EventArchiveUseCase == nil {
		return fmt.Errorf("воркер требует настроенных RabbitMQ и MinIO")
	}

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	done, err := deps.EventConsumer.StartConsumingEvents(workerCtx, deps.EventArchiveUseCase.ArchiveEvent)
	if err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}
	logger.Info("worker started, waiting for events")

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping worker")
		cancelWorker()
		<-done
		return nil
	case err, ok := <-done:
		if ok && err != nil {
			return fmt.Errorf("потребитель RabbitMQ остановился: %w", err)
		}
		return fmt.Errorf("потребитель RabbitMQ остановился без сигнала завершения")
	}
}
