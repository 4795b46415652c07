package di

import (
	"context"
	"fmt"

	"github.com/GoArmGo/BookingApp/internal/adapter/storage/minio"
	"github.com/GoArmGo/BookingApp/internal/app"
	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/database/client"
	"github.com/GoArmGo/BookingApp/internal/database/postgres"
	"github.com/GoArmGo/BookingApp/internal/database/storage"
	"github.com/GoArmGo/BookingApp/internal/logger"
	"github.com/GoArmGo/BookingApp/internal/rabbitmq"
	"github.com/GoArmGo/BookingApp/internal/security"
	"github.com/GoArmGo/BookingApp/internal/usecase"
)

// BuildApp инициализирует зависимости, нужные режиму mode, и возвращает готовый объект App.
func BuildApp(ctx context.Context, mode string) (_ *app.App, err error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	var deps app.Deps
	defer func() {
		if err == nil {
			return
		}
		for i := len(deps.Closers) - 1; i >= 0; i-- {
			_ = deps.Closers[i].Close()
		}
	}()

	// 2. Миграции схемы
	if err = postgres.ApplyMigrations(cfg.DatabaseURL, slogger); err != nil {
		return nil, err
	}

	// 3. Подключения к PostgreSQL: sqlx для сырых запросов, GORM для сущностей
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}
	deps.Closers = append(deps.Closers, dbClient)
	deps.DB = dbClient

	gormDB, err := postgres.NewGormDB(cfg, slogger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("не удалось получить *sql.DB из GORM: %w", err)
	}
	deps.Closers = append(deps.Closers, sqlDB)

	// 4. Инициализация хранилищ
	userStorage := postgres.NewGormUserStorage(gormDB, slogger)
	bookingStorage := postgres.NewGormBookingStorage(gormDB, slogger)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	// 5. Зависимости режима
	switch mode {
	case app.ModeServer:
		var publisher ports.EventPublisher
		if cfg.EventsEnabled() {
			rabbitMQClient, rErr := rabbitmq.NewClient(cfg, slogger)
			if rErr != nil {
				return nil, rErr
			}
			deps.Closers = append(deps.Closers, rabbitMQClient)
			publisher = rabbitMQClient
		} else {
			slogger.Warn("RABBITMQ_URL is not set, domain events are disabled")
			publisher = rabbitmq.NewNoopPublisher(slogger)
		}

		deps.UserUseCase = usecase.NewUserUseCase(userStorage, hasher, publisher, slogger)
		deps.BookingUseCase = usecase.NewBookingUseCase(bookingStorage, publisher, slogger)

	case app.ModeWorker:
		if !cfg.EventsEnabled() {
			return nil, fmt.Errorf("режим worker требует RABBITMQ_URL")
		}
		rabbitMQClient, rErr := rabbitmq.NewClient(cfg, slogger)
		if rErr != nil {
			return nil, rErr
		}
		deps.Closers = append(deps.Closers, rabbitMQClient)

		fileStorage, mErr := minio.NewMinioClient(ctx, cfg, slogger) // S3 / MinIO адаптер
		if mErr != nil {
			return nil, mErr
		}

		processed := storage.NewProcessedEventStorage(dbClient.DB, slogger)
		deps.EventConsumer = rabbitMQClient
		deps.EventArchiveUseCase = usecase.NewEventArchiveUseCase(fileStorage, processed, slogger)

	case app.ModeSeed:
		orphans := storage.NewOrphanUserStorage(dbClient.DB, slogger)
		deps.SeedUseCase = usecase.NewSeedUseCase(orphans, userStorage, hasher, slogger)

	default:
		return nil, fmt.Errorf("неизвестный режим: %s", mode)
	}

	application := app.NewApp(cfg, slogger, deps)

	slogger.Info("all dependencies initialized", "mode", mode)
	return application, nil
}
