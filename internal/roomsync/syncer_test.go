package roomsync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// --- Mocks ---

type mockRemote struct {
	mu      sync.Mutex
	fetchFn func(ctx context.Context, memberID string) ([]*domain.Reservation, error)
	calls   int
}

func (m *mockRemote) FetchRooms(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
	m.mu.Lock()
	m.calls++
	fn := m.fetchFn
	m.mu.Unlock()
	return fn(ctx, memberID)
}

func (m *mockRemote) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockStore struct {
	mu     sync.Mutex
	saved  [][]*domain.Reservation
	loadFn func(ctx context.Context) ([]*domain.Reservation, error)
}

func (m *mockStore) Save(ctx context.Context, reservations []*domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, reservations)
	return nil
}

func (m *mockStore) Load(ctx context.Context) ([]*domain.Reservation, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return nil, nil
}

func (m *mockStore) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Helpers ---

func room(id string, hour int) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		Location:        "Gym Court 1",
		Start:           time.Date(2024, 6, 1, hour, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Capacity:        10,
	}
}

// --- Refresh ---

func TestRefresh_RemoteSuccess(t *testing.T) {
	remote := &mockRemote{
		fetchFn: func(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
			return []*domain.Reservation{room("r1", 10), room("r2", 12)}, nil
		},
	}
	store := &mockStore{}
	syncer := NewSyncer(remote, store, nopLogger{})

	syncer.Refresh(context.Background(), "alice")

	assert.Equal(t, SourceRemote, syncer.Source())
	assert.Equal(t, 2, syncer.Snapshot().Len())
	assert.NoError(t, syncer.LastError())
	// Снапшот отзеркален локально
	assert.Equal(t, 1, store.saveCount())
}

func TestRefresh_FallsBackToLocalOnFailure(t *testing.T) {
	fetchErr := errors.New("connection refused")
	remote := &mockRemote{
		fetchFn: func(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
			return nil, fetchErr
		},
	}
	store := &mockStore{
		loadFn: func(ctx context.Context) ([]*domain.Reservation, error) {
			return []*domain.Reservation{room("saved-1", 9), room("saved-2", 11)}, nil
		},
	}
	syncer := NewSyncer(remote, store, nopLogger{})

	// Отказ удаленного сервиса не паника и не ошибка
	syncer.Refresh(context.Background(), "alice")

	assert.Equal(t, SourceLocal, syncer.Source())
	assert.Equal(t, 2, syncer.Snapshot().Len())
	assert.ErrorIs(t, syncer.LastError(), fetchErr)
	// Деградация ничего не перезаписывает в зеркале
	assert.Equal(t, 0, store.saveCount())
}

func TestRefresh_RecoversAfterFallback(t *testing.T) {
	available := false
	remote := &mockRemote{
		fetchFn: func(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
			if !available {
				return nil, errors.New("timeout")
			}
			return []*domain.Reservation{room("fresh", 10)}, nil
		},
	}
	store := &mockStore{}
	syncer := NewSyncer(remote, store, nopLogger{})

	syncer.Refresh(context.Background(), "alice")
	assert.Equal(t, SourceLocal, syncer.Source())

	available = true
	syncer.Refresh(context.Background(), "alice")

	assert.Equal(t, SourceRemote, syncer.Source())
	assert.NoError(t, syncer.LastError())

	fresh, ok := syncer.Snapshot().Get("fresh")
	require.True(t, ok)
	assert.Equal(t, "fresh", fresh.ID)
}

func TestRefresh_StaleResultDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	remote := &mockRemote{}
	remote.fetchFn = func(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
		if memberID == "old-member" {
			close(firstStarted)
			<-releaseFirst
			return []*domain.Reservation{room("old", 10)}, nil
		}
		return []*domain.Reservation{room("new", 12)}, nil
	}
	store := &mockStore{}
	syncer := NewSyncer(remote, store, nopLogger{})

	done := make(chan struct{})
	go func() {
		syncer.Refresh(context.Background(), "old-member")
		close(done)
	}()
	<-firstStarted

	// Новый Refresh стартует, пока старый висит в сети
	syncer.Refresh(context.Background(), "new-member")

	close(releaseFirst)
	<-done

	// Результат устаревшего запроса отброшен
	_, hasOld := syncer.Snapshot().Get("old")
	assert.False(t, hasOld)
	_, hasNew := syncer.Snapshot().Get("new")
	assert.True(t, hasNew)
}

// --- Commit ---

func TestCommit_PersistsAndBroadcastsOnce(t *testing.T) {
	store := &mockStore{}
	syncer := NewSyncer(&mockRemote{}, store, nopLogger{})
	changes := syncer.Subscribe()

	added := room("r1", 10)
	syncer.Commit(context.Background(), func(s *Snapshot) *Snapshot {
		return s.With(added)
	})

	assert.Equal(t, 1, syncer.Snapshot().Len())
	assert.Equal(t, 1, store.saveCount())

	select {
	case <-changes:
	default:
		t.Fatal("expected a change notification after commit")
	}
	// Ровно одно уведомление
	select {
	case <-changes:
		t.Fatal("expected exactly one notification")
	default:
	}
}

func TestCommit_NoOpSkipsPersistAndBroadcast(t *testing.T) {
	store := &mockStore{}
	syncer := NewSyncer(&mockRemote{}, store, nopLogger{})
	changes := syncer.Subscribe()

	syncer.Commit(context.Background(), func(s *Snapshot) *Snapshot {
		return s // мутатор ничего не изменил
	})

	assert.Equal(t, 0, store.saveCount())
	select {
	case <-changes:
		t.Fatal("no-op commit must not broadcast")
	default:
	}
}

func TestCommit_RemoveMissingRoomIsNoOp(t *testing.T) {
	store := &mockStore{}
	syncer := NewSyncer(&mockRemote{}, store, nopLogger{})

	syncer.Commit(context.Background(), func(s *Snapshot) *Snapshot {
		return s.Without("missing")
	})

	assert.Equal(t, 0, store.saveCount())
}

// --- NotifyExternalChange ---

func TestNotifyExternalChange_CoalescesBurst(t *testing.T) {
	remote := &mockRemote{
		fetchFn: func(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
			return nil, nil
		},
	}
	syncer := NewSyncer(remote, &mockStore{}, nopLogger{})

	var pending []func()
	syncer.afterFunc = func(d time.Duration, f func()) *time.Timer {
		pending = append(pending, f)
		return nil
	}

	// Пачка уведомлений в окне склейки
	syncer.NotifyExternalChange()
	syncer.NotifyExternalChange()
	syncer.NotifyExternalChange()

	// Запланировано ровно одно обновление
	require.Len(t, pending, 1)
	pending[0]()
	assert.Equal(t, 1, remote.callCount())
}

func TestNotifyExternalChange_SuppressionWindow(t *testing.T) {
	remote := &mockRemote{
		fetchFn: func(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
			return nil, nil
		},
	}
	syncer := NewSyncer(remote, &mockStore{}, nopLogger{})

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	syncer.now = func() time.Time { return current }

	var pending []func()
	syncer.afterFunc = func(d time.Duration, f func()) *time.Timer {
		pending = append(pending, f)
		return nil
	}

	syncer.NotifyExternalChange()
	require.Len(t, pending, 1)
	pending[0]()
	require.Equal(t, 1, remote.callCount())

	// Уведомление внутри окна подавления отбрасывается
	current = current.Add(500 * time.Millisecond)
	syncer.NotifyExternalChange()
	assert.Len(t, pending, 1)

	// После окна подавления уведомления снова проходят
	current = current.Add(2 * time.Second)
	syncer.NotifyExternalChange()
	require.Len(t, pending, 2)
	pending[1]()
	assert.Equal(t, 2, remote.callCount())
}

func TestClose_StopsPendingCoalescedRefresh(t *testing.T) {
	remote := &mockRemote{
		fetchFn: func(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
			return nil, nil
		},
	}
	syncer := NewSyncer(remote, &mockStore{}, nopLogger{})

	var timer *time.Timer
	syncer.afterFunc = func(d time.Duration, f func()) *time.Timer {
		timer = time.AfterFunc(time.Hour, f)
		return timer
	}

	syncer.NotifyExternalChange()
	require.NotNil(t, timer)

	syncer.Close()

	// Таймер склейки уже остановлен внутри Close
	assert.False(t, timer.Stop())
	assert.Equal(t, 0, remote.callCount())
}

// --- Snapshot ---

func TestSnapshot_WithAndWithout(t *testing.T) {
	base := NewSnapshot([]*domain.Reservation{room("a", 9)})

	added := base.With(room("b", 10))
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, added.Len())

	removed := added.Without("a")
	assert.Equal(t, 1, removed.Len())
	_, ok := removed.Get("a")
	assert.False(t, ok)

	// Идентичные операции возвращают тот же снапшот
	same := removed.Without("a")
	assert.Same(t, removed, same)

	existing, _ := removed.Get("b")
	assert.Same(t, removed, removed.With(existing))
}

func TestSnapshot_RoomsSortedByStart(t *testing.T) {
	s := NewSnapshot([]*domain.Reservation{
		room("late", 20),
		room("early", 8),
		room("mid", 14),
	})

	rooms := s.Rooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, "early", rooms[0].ID)
	assert.Equal(t, "mid", rooms[1].ID)
	assert.Equal(t, "late", rooms[2].ID)
}
