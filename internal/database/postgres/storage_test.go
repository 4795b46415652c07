package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// setup подключается к реальной PostgreSQL из TEST_DATABASE_URL.
// Без неё интеграционные тесты пропускаются.
func setup(t *testing.T) *gorm.DB {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := ApplyMigrations(dbURL, log); err != nil {
		t.Fatalf("migrations: %v", err)
	}

	db, err := NewGormDB(&config.Config{DatabaseURL: dbURL}, log)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		Email:        "test-" + uuid.NewString()[:8] + "@example.com",
		Name:         "Test User",
		PasswordHash: "hash",
	}
}

func TestGormUserStorage(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	users := NewGormUserStorage(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	u := newUser(t)
	if err := users.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { users.DeleteUser(ctx, u.ID) })

	dup := newUser(t)
	dup.Email = u.Email
	if err := users.CreateUser(ctx, dup); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}

	got, err := users.GetUserByEmail(ctx, u.Email)
	if err != nil || got.ID != u.ID {
		t.Fatalf("get by email: %v %+v", err, got)
	}

	u.Name = "Renamed"
	if err := users.UpdateUser(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = users.GetUserByID(ctx, u.ID)
	if err != nil || got.Name != "Renamed" {
		t.Fatalf("get after update: %v %+v", err, got)
	}

	missing := uuid.New()
	if _, err := users.GetUserByID(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := users.DeleteUser(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestGormBookingStorage_PreloadsUser(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := NewGormUserStorage(db, log)
	bookings := NewGormBookingStorage(db, log)

	u := newUser(t)
	if err := users.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { users.DeleteUser(ctx, u.ID) })

	start := time.Now().UTC().Truncate(time.Second)
	owned := &domain.Booking{StartTime: start, EndTime: start.Add(time.Hour), Status: domain.BookingStatusPending, UserID: u.ID}
	dangling := &domain.Booking{StartTime: start, EndTime: start.Add(time.Hour), Status: domain.BookingStatusPending, UserID: uuid.New()}
	for _, b := range []*domain.Booking{owned, dangling} {
		if err := bookings.CreateBooking(ctx, b); err != nil {
			t.Fatalf("create booking: %v", err)
		}
		id := b.ID
		t.Cleanup(func() { bookings.DeleteBooking(ctx, id) })
	}

	got, err := bookings.GetBookingByID(ctx, owned.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.User == nil || got.User.ID != u.ID {
		t.Errorf("expected user to be preloaded, got %+v", got.User)
	}

	got, err = bookings.GetBookingByID(ctx, dangling.ID)
	if err != nil {
		t.Fatalf("get dangling: %v", err)
	}
	if got.User != nil {
		t.Errorf("expected nil user for dangling booking, got %+v", got.User)
	}

	bad := &domain.Booking{StartTime: start, EndTime: start, Status: domain.BookingStatusPending, UserID: u.ID}
	if err := bookings.CreateBooking(ctx, bad); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected check constraint to map to ErrInvalidArgument, got %v", err)
	}

	owned.Status = domain.BookingStatusConfirmed
	if err := bookings.UpdateBooking(ctx, owned); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := bookings.DeleteBooking(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
