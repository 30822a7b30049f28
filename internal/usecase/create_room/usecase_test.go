package create_room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// --- Mocks ---

type mockReservationRepo struct {
	createFn         func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	listByLocationFn func(ctx context.Context, location string, from, until time.Time) ([]*domain.Reservation, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return m.createFn(ctx, res)
}

func (m *mockReservationRepo) ListByLocation(ctx context.Context, location string, from, until time.Time) ([]*domain.Reservation, error) {
	return m.listByLocationFn(ctx, location, from, until)
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Tests ---

func validRequest() *Request {
	return &Request{
		ActorID:         "member-1",
		Name:            "Morning Kickabout",
		Location:        "Soccer Field A",
		Start:           time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Privacy:         domain.PrivacyPublic,
		ActivityType:    domain.ActivitySoccer,
	}
}

func emptyRepo() *mockReservationRepo {
	return &mockReservationRepo{
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			return res, nil
		},
		listByLocationFn: func(ctx context.Context, location string, from, until time.Time) ([]*domain.Reservation, error) {
			return nil, nil
		},
	}
}

func TestExecute_Success(t *testing.T) {
	uc := NewUseCase(emptyRepo(), &mockTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	r := resp.Reservation
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "member-1", r.OwnerID)
	// Владелец сразу записан участником
	assert.Equal(t, []string{"member-1"}, r.Participants)
	assert.Equal(t, "Soccer Field A", r.Location)
	assert.Equal(t, 16, r.Capacity)
	assert.Equal(t, 15, resp.OpenSeats)
	assert.Empty(t, r.AccessCode)
}

func TestExecute_CanonicalizesLocationSpelling(t *testing.T) {
	uc := NewUseCase(emptyRepo(), &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.Location = "  soccer field a "

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Soccer Field A", resp.Reservation.Location)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := emptyRepo()
	repo.listByLocationFn = func(ctx context.Context, location string, from, until time.Time) ([]*domain.Reservation, error) {
		return []*domain.Reservation{
			{
				ID:              "existing",
				Location:        "Soccer Field A",
				Start:           time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
				DurationMinutes: 60,
			},
		}, nil
	}
	uc := NewUseCase(repo, &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.Start = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	req.DurationMinutes = 30

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_TouchingBoundaryAccepted(t *testing.T) {
	repo := emptyRepo()
	repo.listByLocationFn = func(ctx context.Context, location string, from, until time.Time) ([]*domain.Reservation, error) {
		return []*domain.Reservation{
			{
				ID:              "existing",
				Location:        "Soccer Field A",
				Start:           time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
				DurationMinutes: 60,
			},
		}, nil
	}
	uc := NewUseCase(repo, &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.Start = time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)
	req.DurationMinutes = 30

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_MisalignedStartRejected(t *testing.T) {
	created := false
	repo := emptyRepo()
	repo.createFn = func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
		created = true
		return res, nil
	}
	uc := NewUseCase(repo, &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.Start = time.Date(2024, 6, 1, 10, 15, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMisalignedStart)
	// Отклоненная заявка не доходит до хранилища
	assert.False(t, created)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := NewUseCase(emptyRepo(), &mockTxManager{}, nopLogger{})

	for _, duration := range []int{0, -30, 45, 90} {
		req := validRequest()
		req.DurationMinutes = duration

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", duration)
	}
}

func TestExecute_UnknownLocation(t *testing.T) {
	uc := NewUseCase(emptyRepo(), &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.Location = "Swimming Pool"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestExecute_LocationNotAllowedForType(t *testing.T) {
	uc := NewUseCase(emptyRepo(), &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.Location = "Gym Court 1"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrLocationNotAllowed)
}

func TestExecute_PrivateRoomGetsGeneratedCode(t *testing.T) {
	uc := NewUseCase(emptyRepo(), &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.Privacy = domain.PrivacyPrivate

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	code := resp.Reservation.AccessCode
	assert.Len(t, code, domain.AccessCodeLength)
	for _, ch := range code {
		assert.Contains(t, codeAlphabet, string(ch))
	}
}

func TestExecute_PrivateRoomSuppliedCodeUppercased(t *testing.T) {
	uc := NewUseCase(emptyRepo(), &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.Privacy = domain.PrivacyPrivate
	req.AccessCode = "ab12cd"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", resp.Reservation.AccessCode)
}

func TestExecute_AccessCodeOnPublicRoomRejected(t *testing.T) {
	uc := NewUseCase(emptyRepo(), &mockTxManager{}, nopLogger{})

	req := validRequest()
	req.AccessCode = "AB12CD"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	repo := emptyRepo()
	repo.listByLocationFn = func(ctx context.Context, location string, from, until time.Time) ([]*domain.Reservation, error) {
		return nil, errors.New("connection refused")
	}
	uc := NewUseCase(repo, &mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
