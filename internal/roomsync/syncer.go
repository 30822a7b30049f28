package roomsync

import (
	"context"
	"sync"
	"time"
)

// Source источник текущего снапшота
type Source string

const (
	// SourceRemote снапшот получен от удаленного сервиса
	SourceRemote Source = "remote"
	// SourceLocal снапшот загружен из локального зеркала после отказа удаленного
	SourceLocal Source = "local"
)

const (
	// suppressWindow окно подавления повторных внешних уведомлений
	// после уже запущенного обновления
	suppressWindow = 1500 * time.Millisecond
	// coalesceDelay задержка склейки пачки внешних уведомлений в одно обновление
	coalesceDelay = 150 * time.Millisecond
)

// Syncer держит один логический снапшот комнат и синхронизирует его
// с удаленным сервисом. При недоступности сервиса деградирует до
// локального зеркала вместо ошибки.
//
// Снапшотом владеет только Syncer: наружу отдается неизменяемый
// *Snapshot, мутации идут исключительно через Commit
type Syncer struct {
	remote RemoteClient
	store  SnapshotStore
	log    Logger

	mu        sync.Mutex
	snapshot  *Snapshot
	source    Source
	loading   bool
	lastError error
	memberID  string

	// refreshSeq растет на каждом Refresh: результат устаревшего
	// запроса отбрасывается, даже если он пришел позже нового
	refreshSeq     uint64
	cancelInFlight context.CancelFunc

	subMu       sync.Mutex
	subscribers []chan struct{}

	notifyMu      sync.Mutex
	suppressUntil time.Time
	coalescing    bool
	coalesceTimer *time.Timer

	// подменяются в тестах
	now       func() time.Time
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// NewSyncer создает новый экземпляр синхронизатора с пустым снапшотом
func NewSyncer(remote RemoteClient, store SnapshotStore, log Logger) *Syncer {
	return &Syncer{
		remote:    remote,
		store:     store,
		log:       log,
		snapshot:  EmptySnapshot(),
		source:    SourceLocal,
		now:       time.Now,
		afterFunc: time.AfterFunc,
	}
}

// Refresh запрашивает снапшот у удаленного сервиса для указанного участника.
// Более новый Refresh отменяет незавершенный старый: виден всегда снапшот
// последнего запрошенного участника, а не устаревшего запроса.
//
// Отказ удаленного сервиса не ошибка: снапшот загружается из локального
// зеркала, источник помечается как local, причина отказа доступна через
// LastError
func (s *Syncer) Refresh(ctx context.Context, memberID string) {
	s.mu.Lock()
	s.refreshSeq++
	seq := s.refreshSeq
	if s.cancelInFlight != nil {
		s.cancelInFlight()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancelInFlight = cancel
	s.loading = true
	s.memberID = memberID
	s.mu.Unlock()

	// Сетевой вызов идет без удержания мьютекса
	reservations, err := s.remote.FetchRooms(fetchCtx, memberID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.refreshSeq {
		// Пока шел запрос, стартовал более новый Refresh
		s.log.Info("Refresh: discarding stale result for member=%s", memberID)
		return
	}
	s.loading = false
	s.cancelInFlight = nil

	if err != nil {
		s.log.Warn("Refresh: remote fetch failed for member=%s, falling back to local mirror: %v", memberID, err)
		s.lastError = err
		s.source = SourceLocal

		local, loadErr := s.store.Load(ctx)
		if loadErr != nil {
			s.log.Error("Refresh: local mirror unavailable too, keeping current snapshot: %v", loadErr)
			return
		}
		s.snapshot = NewSnapshot(local)
		s.log.Info("Refresh: serving %d rooms from local mirror", s.snapshot.Len())
		return
	}

	s.lastError = nil
	s.source = SourceRemote
	s.snapshot = NewSnapshot(reservations)

	// Зеркалим в локальное хранилище без рассылки уведомления,
	// иначе подписчики зациклят повторные обновления
	if saveErr := s.store.Save(ctx, reservations); saveErr != nil {
		s.log.Warn("Refresh: failed to mirror snapshot locally: %v", saveErr)
	}

	s.log.Info("Refresh: snapshot replaced, %d rooms from remote for member=%s", s.snapshot.Len(), memberID)
}

// Commit применяет чистый мутатор к текущему снапшоту, сохраняет результат
// в локальное зеркало и рассылает ровно одно уведомление об изменении.
// Мутатор, вернувший тот же самый снапшот, считается no-op: ни записи,
// ни уведомления не происходит
func (s *Syncer) Commit(ctx context.Context, mutator func(*Snapshot) *Snapshot) {
	s.mu.Lock()
	current := s.snapshot
	next := mutator(current)
	if next == current {
		s.mu.Unlock()
		return
	}
	s.snapshot = next
	rooms := next.Rooms()
	s.mu.Unlock()

	if err := s.store.Save(ctx, rooms); err != nil {
		// Деградация: изменение остается в памяти, зеркало догонит
		// на следующем успешном сохранении
		s.log.Warn("Commit: failed to persist snapshot: %v", err)
	}

	s.broadcast()
}

// Subscribe возвращает канал уведомлений об изменении снапшота.
// Уведомление не несет данных: подписчик сам перечитывает снапшот
func (s *Syncer) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.subMu.Unlock()
	return ch
}

// NotifyExternalChange сообщает о внешнем изменении общего состояния
// (другой процесс записал в зеркало). Пачка уведомлений склеивается
// в одно обновление, а повторные уведомления в окне подавления после
// запущенного обновления отбрасываются
func (s *Syncer) NotifyExternalChange() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	if s.coalescing {
		return
	}
	if s.now().Before(s.suppressUntil) {
		return
	}

	s.coalescing = true
	s.coalesceTimer = s.afterFunc(coalesceDelay, func() {
		s.notifyMu.Lock()
		s.coalescing = false
		s.coalesceTimer = nil
		s.suppressUntil = s.now().Add(suppressWindow)
		s.notifyMu.Unlock()

		s.mu.Lock()
		memberID := s.memberID
		s.mu.Unlock()

		s.Refresh(context.Background(), memberID)
	})
}

// Snapshot возвращает текущий снапшот
func (s *Syncer) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Source возвращает источник текущего снапшота
func (s *Syncer) Source() Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Loading сообщает, идет ли сейчас обновление
func (s *Syncer) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError возвращает причину последней деградации до локального зеркала.
// nil, если последнее обновление прошло успешно
func (s *Syncer) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Close отменяет незавершенное обновление и снимает запланированное
// склейкой обновление, если оно еще не сработало
func (s *Syncer) Close() {
	s.notifyMu.Lock()
	if s.coalesceTimer != nil {
		s.coalesceTimer.Stop()
		s.coalesceTimer = nil
	}
	s.coalescing = false
	s.notifyMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelInFlight != nil {
		s.cancelInFlight()
		s.cancelInFlight = nil
	}
	// Оставляем refreshSeq сдвинутым, чтобы результат отмененного
	// запроса гарантированно был отброшен
	s.refreshSeq++
}

func (s *Syncer) broadcast() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
			// Подписчик еще не разобрал прошлое уведомление,
			// новое не добавит информации
		}
	}
}
