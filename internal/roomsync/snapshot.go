package roomsync

import (
	"sort"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// Snapshot неизменяемый снимок набора комнат.
// Мутаторы возвращают новый Snapshot, исходный не меняется.
// Commit сравнивает указатели: мутатор, вернувший тот же Snapshot,
// означает отсутствие изменений
type Snapshot struct {
	byID map[string]*domain.Reservation
}

// NewSnapshot создает снимок из набора комнат.
// Дубликаты по ID схлопываются, побеждает последняя запись
func NewSnapshot(reservations []*domain.Reservation) *Snapshot {
	byID := make(map[string]*domain.Reservation, len(reservations))
	for _, r := range reservations {
		if r == nil || r.ID == "" {
			continue
		}
		byID[r.ID] = r
	}
	return &Snapshot{byID: byID}
}

// EmptySnapshot создает пустой снимок
func EmptySnapshot() *Snapshot {
	return &Snapshot{byID: map[string]*domain.Reservation{}}
}

// Get возвращает комнату по ID
func (s *Snapshot) Get(id string) (*domain.Reservation, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Len возвращает число комнат в снимке
func (s *Snapshot) Len() int {
	return len(s.byID)
}

// Rooms возвращает комнаты, отсортированные по времени начала.
// При равном начале порядок детерминирован по ID
func (s *Snapshot) Rooms() []*domain.Reservation {
	rooms := make([]*domain.Reservation, 0, len(s.byID))
	for _, r := range s.byID {
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Start.Equal(rooms[j].Start) {
			return rooms[i].ID < rooms[j].ID
		}
		return rooms[i].Start.Before(rooms[j].Start)
	})
	return rooms
}

// With возвращает новый снимок с добавленной или замененной комнатой.
// Если указатель на комнату с тем же ID уже в снимке, возвращается
// тот же снимок
func (s *Snapshot) With(r *domain.Reservation) *Snapshot {
	if r == nil || r.ID == "" {
		return s
	}
	if existing, ok := s.byID[r.ID]; ok && existing == r {
		return s
	}

	byID := make(map[string]*domain.Reservation, len(s.byID)+1)
	for id, existing := range s.byID {
		byID[id] = existing
	}
	byID[r.ID] = r
	return &Snapshot{byID: byID}
}

// Without возвращает новый снимок без комнаты с указанным ID.
// Если такой комнаты нет, возвращается тот же снимок
func (s *Snapshot) Without(id string) *Snapshot {
	if _, ok := s.byID[id]; !ok {
		return s
	}

	byID := make(map[string]*domain.Reservation, len(s.byID)-1)
	for existingID, existing := range s.byID {
		if existingID != id {
			byID[existingID] = existing
		}
	}
	return &Snapshot{byID: byID}
}
