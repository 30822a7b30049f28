package create_room

import (
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
	createRoom "github.com/campusrec/RoomBookingService/internal/usecase/create_room"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	MemberID        string `json:"memberId"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	ActivityType    string `json:"activityType"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Privacy         string `json:"privacy"`
	Capacity        int    `json:"capacity,omitempty"`   // 0 = вместимость по типу активности
	AccessCode      string `json:"accessCode,omitempty"` // только для приватных комнат
}

// CreateRoomResponse HTTP response model
type CreateRoomResponse struct {
	Room roomModels.RoomResponse `json:"room"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRoomRequest) ToUseCaseRequest() (*createRoom.Request, error) {
	start, err := time.ParseInLocation(domain.DateTimeFormat, r.Date+" "+r.StartTime, time.Local)
	if err != nil {
		return nil, err
	}

	return &createRoom.Request{
		ActorID:         r.MemberID,
		Name:            r.Name,
		Location:        r.Location,
		Start:           start,
		DurationMinutes: r.DurationMinutes,
		Privacy:         domain.Privacy(r.Privacy),
		Capacity:        r.Capacity,
		ActivityType:    domain.ActivityType(r.ActivityType),
		AccessCode:      r.AccessCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRoom.Response, viewerID string) *CreateRoomResponse {
	return &CreateRoomResponse{
		Room: *roomModels.FromDomainReservation(resp.Reservation, viewerID),
	}
}
