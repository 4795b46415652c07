package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

type bookingFixture struct {
	uc       BookingUseCase
	bookings *memBookingStorage
	users    *memUserStorage
	pub      *mockPublisher
}

func newBookingFixture() *bookingFixture {
	users := newMemUserStorage()
	bookings := newMemBookingStorage(users)
	pub := &mockPublisher{}
	return &bookingFixture{
		uc:       NewBookingUseCase(bookings, pub, discardLogger()),
		bookings: bookings,
		users:    users,
		pub:      pub,
	}
}

var t0 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func statusPtr(s domain.BookingStatus) *domain.BookingStatus { return &s }
func timePtr(t time.Time) *time.Time                         { return &t }

func (f *bookingFixture) create(t *testing.T, userID uuid.UUID) *domain.Booking {
	t.Helper()
	b, err := f.uc.CreateBooking(context.Background(), testRC(), CreateBookingInput{
		StartTime: t0,
		EndTime:   t0.Add(time.Hour),
		UserID:    userID,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return b
}

func TestCreateBooking_RejectsReversedRange(t *testing.T) {
	f := newBookingFixture()

	_, err := f.uc.CreateBooking(context.Background(), testRC(), CreateBookingInput{
		StartTime: t0,
		EndTime:   t0.Add(-time.Hour),
		UserID:    uuid.New(),
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err.Error() != "End time must be after start time" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if list, _ := f.bookings.ListBookings(context.Background()); len(list) != 0 {
		t.Errorf("nothing must be persisted, got %d bookings", len(list))
	}
	if len(f.pub.published) != 0 {
		t.Error("no event expected for rejected booking")
	}
}

func TestCreateBooking_PendingWithEmbeddedUser(t *testing.T) {
	f := newBookingFixture()
	owner := &domain.User{Email: "a@x.com", Name: "A", PasswordHash: "h"}
	if err := f.users.CreateUser(context.Background(), owner); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	b := f.create(t, owner.ID)

	if b.Status != domain.BookingStatusPending {
		t.Errorf("expected PENDING, got %s", b.Status)
	}
	if !b.EndTime.After(b.StartTime) {
		t.Error("expected endTime > startTime")
	}
	if b.User == nil || b.User.ID != owner.ID {
		t.Fatalf("expected owner to be embedded, got %+v", b.User)
	}
	if got := f.pub.types(); len(got) != 1 || got[0] != payloads.EventBookingCreated {
		t.Errorf("expected booking.created event, got %v", got)
	}
}

func TestCreateBooking_DanglingUser(t *testing.T) {
	f := newBookingFixture()

	b := f.create(t, uuid.New())
	if b.User != nil {
		t.Errorf("expected no embedded user, got %+v", b.User)
	}
}

func TestUpdateBooking_StatusScenario(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b := f.create(t, uuid.New())

	confirmed, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{Status: statusPtr(domain.BookingStatusConfirmed)})
	if err != nil {
		t.Fatalf("PENDING -> CONFIRMED: %v", err)
	}
	if confirmed.Status != domain.BookingStatusConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", confirmed.Status)
	}

	_, err = f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{Status: statusPtr(domain.BookingStatusPending)})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("CONFIRMED -> PENDING: expected ErrInvalidArgument, got %v", err)
	}
	for _, part := range []string{"CONFIRMED", "PENDING", "COMPLETED", "CANCELLED"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("message %q does not mention %s", err.Error(), part)
		}
	}

	stored, _ := f.bookings.GetBookingByID(ctx, b.ID)
	if stored.Status != domain.BookingStatusConfirmed {
		t.Errorf("rejected transition must not change state, got %s", stored.Status)
	}
}

func TestUpdateBooking_AllTransitions(t *testing.T) {
	ctx := context.Background()

	for _, from := range domain.BookingStatuses {
		for _, to := range domain.BookingStatuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				f := newBookingFixture()
				b := f.create(t, uuid.New())

				// переводим бронирование в исходный статус напрямую через хранилище
				b.Status = from
				if err := f.bookings.UpdateBooking(ctx, b); err != nil {
					t.Fatalf("prepare: %v", err)
				}

				_, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{Status: statusPtr(to)})
				allowed := from.CanTransitionTo(to)
				if allowed && err != nil {
					t.Errorf("expected success, got %v", err)
				}
				if !allowed && !errors.Is(err, domain.ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
			})
		}
	}
}

func TestUpdateBooking_SelfTransitionOnTerminal(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b := f.create(t, uuid.New())

	if _, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{Status: statusPtr(domain.BookingStatusCancelled)}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	got, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{
		Status: statusPtr(domain.BookingStatusCancelled),
		Notes:  strPtr("still cancelled"),
	})
	if err != nil {
		t.Fatalf("self-transition must be a no-op, got %v", err)
	}
	if got.Notes == nil || *got.Notes != "still cancelled" {
		t.Errorf("expected notes to be updated, got %v", got.Notes)
	}
}

func TestUpdateBooking_PartialKeepsFields(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	b, err := f.uc.CreateBooking(ctx, testRC(), CreateBookingInput{
		StartTime: t0,
		EndTime:   t0.Add(time.Hour),
		Notes:     strPtr("window seat"),
		UserID:    uuid.New(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	newEnd := t0.Add(2 * time.Hour)
	got, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{EndTime: &newEnd})
	if err != nil {
		t.Fatalf("UpdateBooking: %v", err)
	}
	if !got.StartTime.Equal(t0) || !got.EndTime.Equal(newEnd) {
		t.Errorf("unexpected range %v - %v", got.StartTime, got.EndTime)
	}
	if got.Notes == nil || *got.Notes != "window seat" {
		t.Errorf("notes must be retained, got %v", got.Notes)
	}
	if got.UserID != b.UserID || got.Status != domain.BookingStatusPending {
		t.Errorf("unexpected fields changed: %+v", got)
	}
}

func TestUpdateBooking_ClearNotes(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	b, err := f.uc.CreateBooking(ctx, testRC(), CreateBookingInput{
		StartTime: t0,
		EndTime:   t0.Add(time.Hour),
		Notes:     strPtr("window seat"),
		UserID:    uuid.New(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	got, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{ClearNotes: true})
	if err != nil {
		t.Fatalf("UpdateBooking: %v", err)
	}
	if got.Notes != nil {
		t.Errorf("notes must be cleared, got %q", *got.Notes)
	}
}

func TestUpdateBooking_RevalidatesMergedRange(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b := f.create(t, uuid.New())

	tests := []struct {
		name string
		in   UpdateBookingInput
	}{
		{"end before stored start", UpdateBookingInput{EndTime: timePtr(t0.Add(-time.Minute))}},
		{"start after stored end", UpdateBookingInput{StartTime: timePtr(t0.Add(2 * time.Hour))}},
		{"both reversed", UpdateBookingInput{StartTime: timePtr(t0.Add(time.Hour)), EndTime: timePtr(t0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, tt.in)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}

	stored, _ := f.bookings.GetBookingByID(ctx, b.ID)
	if !stored.StartTime.Equal(t0) || !stored.EndTime.Equal(t0.Add(time.Hour)) {
		t.Errorf("rejected updates must not persist, got %v - %v", stored.StartTime, stored.EndTime)
	}
}

func TestUpdateBooking_ChangesOwner(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	owner := &domain.User{Email: "b@x.com", Name: "B", PasswordHash: "h"}
	f.users.CreateUser(ctx, owner)

	b := f.create(t, uuid.New())
	got, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{UserID: &owner.ID})
	if err != nil {
		t.Fatalf("UpdateBooking: %v", err)
	}
	if got.User == nil || got.User.ID != owner.ID {
		t.Errorf("expected new owner to be embedded, got %+v", got.User)
	}
}

func TestBookingNotFound(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	missing := uuid.New()

	if _, err := f.uc.GetBooking(ctx, testRC(), missing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetBooking: expected ErrNotFound, got %v", err)
	}
	if _, err := f.uc.UpdateBooking(ctx, testRC(), missing, UpdateBookingInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateBooking: expected ErrNotFound, got %v", err)
	}
	_, err := f.uc.DeleteBooking(ctx, testRC(), missing)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("DeleteBooking: expected ErrNotFound, got %v", err)
	}
	want := `Booking with ID "` + missing.String() + `" not found`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestDeleteBooking_IgnoresStatus(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b := f.create(t, uuid.New())

	for _, st := range []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusCompleted} {
		if _, err := f.uc.UpdateBooking(ctx, testRC(), b.ID, UpdateBookingInput{Status: statusPtr(st)}); err != nil {
			t.Fatalf("move to %s: %v", st, err)
		}
	}

	deleted, err := f.uc.DeleteBooking(ctx, testRC(), b.ID)
	if err != nil {
		t.Fatalf("DeleteBooking: %v", err)
	}
	if deleted.Status != domain.BookingStatusCompleted {
		t.Errorf("expected deleted representation, got %+v", deleted)
	}
	if _, err := f.uc.GetBooking(ctx, testRC(), b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected booking to be gone, got %v", err)
	}
}

func TestListBookings(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	owner := &domain.User{Email: "a@x.com", Name: "A", PasswordHash: "h"}
	f.users.CreateUser(ctx, owner)

	f.create(t, owner.ID)
	f.create(t, uuid.New())

	list, err := f.uc.ListBookings(ctx, testRC())
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(list))
	}

	embedded := 0
	for _, b := range list {
		if b.User != nil {
			embedded++
		}
	}
	if embedded != 1 {
		t.Errorf("expected exactly one embedded user, got %d", embedded)
	}
}

func TestBookingUseCase_PublishFailureIsNotFatal(t *testing.T) {
	f := newBookingFixture()
	f.pub.err = errBoom

	if _, err := f.uc.CreateBooking(context.Background(), testRC(), CreateBookingInput{
		StartTime: t0,
		EndTime:   t0.Add(time.Hour),
		UserID:    uuid.New(),
	}); err != nil {
		t.Fatalf("publish failure must not fail the request, got %v", err)
	}
}
