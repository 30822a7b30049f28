package roomservice

import (
	"fmt"
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// Room комната в том виде, в котором ее отдает RoomService
type Room struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	OwnerID         string   `json:"ownerId"`
	Location        string   `json:"location"`
	ActivityType    string   `json:"activityType"`
	Start           string   `json:"start"` // "2006-01-02 15:04"
	DurationMinutes int      `json:"durationMinutes"`
	Privacy         string   `json:"privacy"`
	Capacity        int      `json:"capacity"`
	OpenSeats       int      `json:"openSeats"`
	NearlyFull      bool     `json:"nearlyFull"`
	Participants    []string `json:"participants"`
	AccessCode      *string  `json:"accessCode,omitempty"`
}

// roomListEnvelope тело ответа со списком комнат
type roomListEnvelope struct {
	Rooms []Room `json:"rooms"`
}

// roomEnvelope тело ответа с одной комнатой
type roomEnvelope struct {
	Room Room `json:"room"`
}

// errorEnvelope тело ответа с ошибкой
type errorEnvelope struct {
	Message string `json:"message"`
}

// ToDomain конвертирует ответ сервиса в domain модель.
// Записи с неразборчивыми полями отбрасываются вызывающей стороной
func (r *Room) ToDomain() (*domain.Reservation, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("%w: room without id", ErrInvalidResponse)
	}

	start, err := time.ParseInLocation(domain.DateTimeFormat, r.Start, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: room %s has unparseable start %q", ErrInvalidResponse, r.ID, r.Start)
	}

	if r.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: room %s has invalid duration %d", ErrInvalidResponse, r.ID, r.DurationMinutes)
	}

	reservation := &domain.Reservation{
		ID:              r.ID,
		Name:            r.Name,
		OwnerID:         r.OwnerID,
		Participants:    append([]string{}, r.Participants...),
		Location:        r.Location,
		Start:           start,
		DurationMinutes: r.DurationMinutes,
		Privacy:         domain.Privacy(r.Privacy),
		Capacity:        r.Capacity,
		ActivityType:    domain.ActivityType(r.ActivityType),
	}

	if r.AccessCode != nil {
		reservation.AccessCode = *r.AccessCode
	}

	return reservation, nil
}

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	MemberID        string `json:"memberId"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	ActivityType    string `json:"activityType"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Privacy         string `json:"privacy"`
	Capacity        int    `json:"capacity,omitempty"`
	AccessCode      string `json:"accessCode,omitempty"`
}

// UpdateAttendanceRequest запрос на запись или выход участника
type UpdateAttendanceRequest struct {
	MemberID   string `json:"memberId"`
	Action     string `json:"action"`
	AccessCode string `json:"accessCode,omitempty"`
}

// PrivateAccessRequest запрос на поиск приватной комнаты по коду
type PrivateAccessRequest struct {
	MemberID   string `json:"memberId"`
	AccessCode string `json:"accessCode"`
}
