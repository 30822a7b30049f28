package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// snapshotKey единственный ключ локального зеркала.
// Снапшот хранится целиком: частичные обновления не нужны,
// зеркало всегда перезаписывается последним известным состоянием
const snapshotKey = "rooms:snapshot"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// storedRoom формат записи в локальном зеркале
type storedRoom struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	OwnerID         string   `json:"ownerId"`
	Participants    []string `json:"participants"`
	Location        string   `json:"location"`
	Start           string   `json:"start"` // "2006-01-02 15:04"
	DurationMinutes int      `json:"durationMinutes"`
	Privacy         string   `json:"privacy"`
	AccessCode      string   `json:"accessCode,omitempty"`
	Capacity        int      `json:"capacity"`
	ActivityType    string   `json:"activityType"`
}

// Store локальное зеркало снапшота комнат поверх Redis
type Store struct {
	client *redis.Client
	log    Logger
}

// NewStore создает новый экземпляр зеркала
func NewStore(client *redis.Client, log Logger) *Store {
	return &Store{
		client: client,
		log:    log,
	}
}

// Save перезаписывает зеркало переданным набором комнат
func (s *Store) Save(ctx context.Context, reservations []*domain.Reservation) error {
	records := make([]storedRoom, 0, len(reservations))
	for _, r := range reservations {
		records = append(records, storedRoom{
			ID:              r.ID,
			Name:            r.Name,
			OwnerID:         r.OwnerID,
			Participants:    r.Participants,
			Location:        r.Location,
			Start:           r.Start.Format(domain.DateTimeFormat),
			DurationMinutes: r.DurationMinutes,
			Privacy:         string(r.Privacy),
			AccessCode:      r.AccessCode,
			Capacity:        r.Capacity,
			ActivityType:    string(r.ActivityType),
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSave, err)
	}

	if err := s.client.Set(ctx, snapshotKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	return nil
}

// Load читает зеркало. Отсутствие ключа не ошибка: возвращается пустой
// набор. Полностью нечитаемое зеркало сбрасывается, чтобы не мешать
// последующим сохранениям. Отдельные битые записи отбрасываются
func (s *Store) Load(ctx context.Context) ([]*domain.Reservation, error) {
	payload, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*domain.Reservation{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var records []storedRoom
	if err := json.Unmarshal(payload, &records); err != nil {
		s.log.Warn("Load: snapshot is corrupt, resetting: %v", err)
		if delErr := s.client.Del(ctx, snapshotKey).Err(); delErr != nil {
			s.log.Error("Load: failed to reset corrupt snapshot: %v", delErr)
		}
		return []*domain.Reservation{}, nil
	}

	reservations := make([]*domain.Reservation, 0, len(records))
	for i := range records {
		reservation, err := records[i].toDomain()
		if err != nil {
			s.log.Warn("Load: dropping malformed snapshot record: %v", err)
			continue
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *storedRoom) toDomain() (*domain.Reservation, error) {
	if r.ID == "" {
		return nil, errors.New("record without id")
	}

	start, err := time.ParseInLocation(domain.DateTimeFormat, r.Start, time.Local)
	if err != nil {
		return nil, fmt.Errorf("record %s has unparseable start %q", r.ID, r.Start)
	}

	if r.DurationMinutes <= 0 {
		return nil, fmt.Errorf("record %s has invalid duration %d", r.ID, r.DurationMinutes)
	}

	return &domain.Reservation{
		ID:              r.ID,
		Name:            r.Name,
		OwnerID:         r.OwnerID,
		Participants:    r.Participants,
		Location:        r.Location,
		Start:           start,
		DurationMinutes: r.DurationMinutes,
		Privacy:         domain.Privacy(r.Privacy),
		AccessCode:      r.AccessCode,
		Capacity:        r.Capacity,
		ActivityType:    domain.ActivityType(r.ActivityType),
	}, nil
}
