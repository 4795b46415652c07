package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRC() reqctx.RequestContext {
	return reqctx.New("req-test")
}

// memUserStorage — хранилище пользователей в памяти с теми же ошибками, что и GORM-реализация.
type memUserStorage struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{users: make(map[uuid.UUID]domain.User)}
}

func (s *memUserStorage) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.Conflictf("User with this email already exists")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStorage) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.UserNotFound(id)
	}
	return &u, nil
}

func (s *memUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.NotFoundf("User with email %q not found", email)
}

func (s *memUserStorage) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (s *memUserStorage) UpdateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.UserNotFound(user.ID)
	}
	for _, u := range s.users {
		if u.Email == user.Email && u.ID != user.ID {
			return domain.Conflictf("Email is already existing")
		}
	}
	user.UpdatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStorage) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domain.UserNotFound(id)
	}
	delete(s.users, id)
	return nil
}

// memBookingStorage эмулирует Preload("User") через memUserStorage.
type memBookingStorage struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]domain.Booking
	users    *memUserStorage
}

func newMemBookingStorage(users *memUserStorage) *memBookingStorage {
	return &memBookingStorage{bookings: make(map[uuid.UUID]domain.Booking), users: users}
}

func (s *memBookingStorage) withUser(b domain.Booking) domain.Booking {
	b.User = nil
	if u, err := s.users.GetUserByID(context.Background(), b.UserID); err == nil {
		b.User = u
	}
	return b
}

func (s *memBookingStorage) CreateBooking(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	stored := *b
	stored.User = nil
	s.bookings[b.ID] = stored
	return nil
}

func (s *memBookingStorage) GetBookingByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	s.mu.Lock()
	b, ok := s.bookings[id]
	s.mu.Unlock()

	if !ok {
		return nil, domain.BookingNotFound(id)
	}
	b = s.withUser(b)
	return &b, nil
}

func (s *memBookingStorage) ListBookings(_ context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	s.mu.Unlock()

	for i := range out {
		out[i] = s.withUser(out[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *memBookingStorage) UpdateBooking(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.ID]; !ok {
		return domain.BookingNotFound(b.ID)
	}
	b.UpdatedAt = time.Now().UTC()
	stored := *b
	stored.User = nil
	s.bookings[b.ID] = stored
	return nil
}

func (s *memBookingStorage) DeleteBooking(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return domain.BookingNotFound(id)
	}
	delete(s.bookings, id)
	return nil
}

// mockPublisher записывает опубликованные события.
type mockPublisher struct {
	mu        sync.Mutex
	published []payloads.Event
	err       error
}

func (m *mockPublisher) PublishEvent(_ context.Context, event payloads.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)
	return m.err
}

func (m *mockPublisher) types() []payloads.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]payloads.EventType, len(m.published))
	for i, ev := range m.published {
		out[i] = ev.Type
	}
	return out
}

// plainHasher делает тесты быстрыми и детерминированными.
type plainHasher struct {
	err error
}

func (h plainHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

var errBoom = errors.New("boom")
