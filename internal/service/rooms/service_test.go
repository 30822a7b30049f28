package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrec/RoomBookingService/internal/domain"
	reservationRepo "github.com/campusrec/RoomBookingService/internal/infra/storage/reservation"
	"github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

// --- Mocks ---

type mockRepo struct {
	getByIDFn             func(ctx context.Context, id string) (*domain.Reservation, error)
	listVisibleToMemberFn func(ctx context.Context, memberID string, from, until time.Time) ([]*domain.Reservation, error)
	getByAccessCodeFn     func(ctx context.Context, code string) (*domain.Reservation, error)
	updateParticipantsFn  func(ctx context.Context, id string, participants []string) error
	deleteFn              func(ctx context.Context, id string) error
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepo) ListVisibleToMember(ctx context.Context, memberID string, from, until time.Time) ([]*domain.Reservation, error) {
	return m.listVisibleToMemberFn(ctx, memberID, from, until)
}

func (m *mockRepo) GetByAccessCode(ctx context.Context, code string) (*domain.Reservation, error) {
	return m.getByAccessCodeFn(ctx, code)
}

func (m *mockRepo) UpdateParticipants(ctx context.Context, id string, participants []string) error {
	return m.updateParticipantsFn(ctx, id, participants)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
func (m *mockTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Helpers ---

func sampleRoom() *domain.Reservation {
	return &domain.Reservation{
		ID:              "room-1",
		Name:            "Evening Pickup Game",
		OwnerID:         "owner",
		Participants:    []string{"owner", "alice"},
		Location:        "Gym Court 1",
		Start:           time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Privacy:         domain.PrivacyPublic,
		Capacity:        10,
		ActivityType:    domain.ActivityBasketball,
	}
}

func privateRoom() *domain.Reservation {
	r := sampleRoom()
	r.ID = "room-2"
	r.Privacy = domain.PrivacyPrivate
	r.AccessCode = "AB12CD"
	return r
}

func newService(repo *mockRepo) *Service {
	return NewService(repo, &mockTxManager{}, nopLogger{})
}

func repoFor(room *domain.Reservation) (*mockRepo, *[]string) {
	var saved []string
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Reservation, error) {
			if id != room.ID {
				return nil, reservationRepo.ErrReservationNotFound
			}
			copied := *room
			copied.Participants = append([]string{}, room.Participants...)
			return &copied, nil
		},
		updateParticipantsFn: func(ctx context.Context, id string, participants []string) error {
			saved = append([]string{}, participants...)
			return nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			return nil
		},
	}
	return repo, &saved
}

// --- SetAttendance ---

func TestSetAttendance_Join(t *testing.T) {
	room := sampleRoom()
	repo, saved := repoFor(room)
	svc := newService(repo)

	resp, err := svc.SetAttendance(context.Background(), room.ID, &models.SetAttendanceRequest{
		MemberID: "bob",
		Action:   models.ActionJoin,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"owner", "alice", "bob"}, *saved)
	assert.True(t, resp.IsAttending)
	assert.Equal(t, 7, resp.OpenSeats)
}

func TestSetAttendance_DuplicateJoinRejected(t *testing.T) {
	room := sampleRoom()
	repo, saved := repoFor(room)
	svc := newService(repo)

	_, err := svc.SetAttendance(context.Background(), room.ID, &models.SetAttendanceRequest{
		MemberID: "alice",
		Action:   models.ActionJoin,
	})
	assert.ErrorIs(t, err, ErrAlreadyAttending)
	assert.Nil(t, *saved)
}

func TestSetAttendance_WaitlistJoinAllowed(t *testing.T) {
	room := sampleRoom()
	room.Capacity = 2 // owner и alice уже занимают все места
	repo, saved := repoFor(room)
	svc := newService(repo)

	resp, err := svc.SetAttendance(context.Background(), room.ID, &models.SetAttendanceRequest{
		MemberID: "bob",
		Action:   models.ActionJoin,
	})
	require.NoError(t, err)

	assert.Len(t, *saved, 3)
	assert.Equal(t, 0, resp.OpenSeats)
}

func TestSetAttendance_PrivateJoinRequiresCode(t *testing.T) {
	room := privateRoom()
	repo, saved := repoFor(room)
	svc := newService(repo)

	for _, code := range []string{"", "WRONG1", "AB12CE"} {
		_, err := svc.SetAttendance(context.Background(), room.ID, &models.SetAttendanceRequest{
			MemberID:   "bob",
			Action:     models.ActionJoin,
			AccessCode: code,
		})
		assert.ErrorIs(t, err, ErrInvalidAccessCode, "code %q", code)
	}
	assert.Nil(t, *saved)
}

func TestSetAttendance_PrivateJoinCodeCaseInsensitive(t *testing.T) {
	room := privateRoom()
	repo, saved := repoFor(room)
	svc := newService(repo)

	_, err := svc.SetAttendance(context.Background(), room.ID, &models.SetAttendanceRequest{
		MemberID:   "bob",
		Action:     models.ActionJoin,
		AccessCode: "ab12cd",
	})
	require.NoError(t, err)
	assert.Contains(t, *saved, "bob")
}

func TestSetAttendance_Leave(t *testing.T) {
	room := sampleRoom()
	repo, saved := repoFor(room)
	svc := newService(repo)

	resp, err := svc.SetAttendance(context.Background(), room.ID, &models.SetAttendanceRequest{
		MemberID: "alice",
		Action:   models.ActionLeave,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"owner"}, *saved)
	assert.False(t, resp.IsAttending)
}

func TestSetAttendance_DuplicateLeaveKeepsSetUnchanged(t *testing.T) {
	room := sampleRoom()
	room.Participants = []string{"owner"} // alice уже вышла
	repo, saved := repoFor(room)
	svc := newService(repo)

	_, err := svc.SetAttendance(context.Background(), room.ID, &models.SetAttendanceRequest{
		MemberID: "alice",
		Action:   models.ActionLeave,
	})
	assert.ErrorIs(t, err, ErrNotAttending)
	// Повторный выход ничего не записывает: состав не меняется
	assert.Nil(t, *saved)
}

func TestSetAttendance_OwnerLeaveKeepsOwnership(t *testing.T) {
	room := sampleRoom()
	repo, saved := repoFor(room)
	svc := newService(repo)

	resp, err := svc.SetAttendance(context.Background(), room.ID, &models.SetAttendanceRequest{
		MemberID: "owner",
		Action:   models.ActionLeave,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"alice"}, *saved)
	assert.Equal(t, "owner", resp.OwnerID)
	assert.True(t, resp.IsOwner)
	assert.False(t, resp.IsAttending)
}

func TestSetAttendance_RoomNotFound(t *testing.T) {
	repo, _ := repoFor(sampleRoom())
	svc := newService(repo)

	_, err := svc.SetAttendance(context.Background(), "missing", &models.SetAttendanceRequest{
		MemberID: "bob",
		Action:   models.ActionJoin,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSetAttendance_InvalidAction(t *testing.T) {
	repo, _ := repoFor(sampleRoom())
	svc := newService(repo)

	_, err := svc.SetAttendance(context.Background(), "room-1", &models.SetAttendanceRequest{
		MemberID: "bob",
		Action:   "kick",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --- Remove ---

func TestRemove_OwnerOnly(t *testing.T) {
	room := sampleRoom()
	deleted := false
	repo, _ := repoFor(room)
	repo.deleteFn = func(ctx context.Context, id string) error {
		deleted = true
		return nil
	}
	svc := newService(repo)

	err := svc.Remove(context.Background(), room.ID, "alice")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, deleted)

	err = svc.Remove(context.Background(), room.ID, "owner")
	assert.NoError(t, err)
	assert.True(t, deleted)
}

// --- GetByID ---

func TestGetByID_PrivateHiddenFromStrangers(t *testing.T) {
	room := privateRoom()
	repo, _ := repoFor(room)
	svc := newService(repo)

	_, err := svc.GetByID(context.Background(), room.ID, "stranger")
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetByID(context.Background(), room.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, room.ID, resp.ID)
	// Код доступа не отдается участнику, только владельцу
	assert.Nil(t, resp.AccessCode)

	resp, err = svc.GetByID(context.Background(), room.ID, "owner")
	require.NoError(t, err)
	require.NotNil(t, resp.AccessCode)
	assert.Equal(t, "AB12CD", *resp.AccessCode)
}

// --- LookupPrivateByCode ---

func TestLookupPrivateByCode(t *testing.T) {
	room := privateRoom()
	repo, _ := repoFor(room)
	repo.getByAccessCodeFn = func(ctx context.Context, code string) (*domain.Reservation, error) {
		if room.MatchesAccessCode(code) {
			return room, nil
		}
		return nil, reservationRepo.ErrReservationNotFound
	}
	svc := newService(repo)

	resp, err := svc.LookupPrivateByCode(context.Background(), "bob", "ab12cd")
	require.NoError(t, err)
	assert.Equal(t, room.ID, resp.ID)

	_, err = svc.LookupPrivateByCode(context.Background(), "bob", "XXXXXX")
	assert.ErrorIs(t, err, ErrInvalidAccessCode)

	_, err = svc.LookupPrivateByCode(context.Background(), "bob", "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --- Profile ---

func TestProfile_SplitsOwnedAndJoined(t *testing.T) {
	owned := sampleRoom()
	joined := sampleRoom()
	joined.ID = "room-3"
	joined.OwnerID = "someone-else"
	joined.Participants = []string{"someone-else", "owner"}
	public := sampleRoom()
	public.ID = "room-4"
	public.OwnerID = "other"
	public.Participants = []string{"other"}

	repo := &mockRepo{
		listVisibleToMemberFn: func(ctx context.Context, memberID string, from, until time.Time) ([]*domain.Reservation, error) {
			return []*domain.Reservation{owned, joined, public}, nil
		},
	}
	svc := newService(repo)

	resp, err := svc.Profile(context.Background(), "owner", 7)
	require.NoError(t, err)

	require.Len(t, resp.Owned, 1)
	assert.Equal(t, "room-1", resp.Owned[0].ID)
	require.Len(t, resp.Joined, 1)
	assert.Equal(t, "room-3", resp.Joined[0].ID)
}

// --- ListRooms ---

func TestListRooms_SortedByStart(t *testing.T) {
	later := sampleRoom()
	earlier := sampleRoom()
	earlier.ID = "room-0"
	earlier.Start = later.Start.Add(-2 * time.Hour)

	repo := &mockRepo{
		listVisibleToMemberFn: func(ctx context.Context, memberID string, from, until time.Time) ([]*domain.Reservation, error) {
			return []*domain.Reservation{later, earlier}, nil
		},
	}
	svc := newService(repo)

	resp, err := svc.ListRooms(context.Background(), "owner", 0)
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "room-0", resp.Rooms[0].ID)
	assert.Equal(t, "room-1", resp.Rooms[1].ID)
}
