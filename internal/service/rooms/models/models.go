package models

import (
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
	"github.com/campusrec/RoomBookingService/pkg/ptr"
)

// Request модели

// AttendanceAction действие над записью участника
type AttendanceAction string

const (
	ActionJoin  AttendanceAction = "join"
	ActionLeave AttendanceAction = "leave"
)

// SetAttendanceRequest запрос на запись или выход участника
type SetAttendanceRequest struct {
	MemberID   string           `json:"memberId"`
	Action     AttendanceAction `json:"action"`
	AccessCode string           `json:"accessCode,omitempty"` // требуется для входа в приватную комнату
}

// Response модели

// RoomResponse ответ с данными комнаты.
// Поля IsOwner и IsAttending вычисляются относительно смотрящего участника.
type RoomResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	OwnerID         string   `json:"ownerId"`
	Location        string   `json:"location"`
	ActivityType    string   `json:"activityType"`
	Start           string   `json:"start"`     // "2006-01-02 15:04"
	EndTime         string   `json:"endTime"`   // "15:04"
	DurationMinutes int      `json:"durationMinutes"`
	Privacy         string   `json:"privacy"`
	Capacity        int      `json:"capacity"`
	OpenSeats       int      `json:"openSeats"`
	NearlyFull      bool     `json:"nearlyFull"`
	Participants    []string `json:"participants"`
	IsOwner         bool     `json:"isOwner"`
	IsAttending     bool     `json:"isAttending"`

	// Код доступа отдается только владельцу комнаты
	AccessCode *string `json:"accessCode,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ProfileResponse ответ с профилем участника
type ProfileResponse struct {
	MemberID string         `json:"memberId"`
	Owned    []RoomResponse `json:"owned"`
	Joined   []RoomResponse `json:"joined"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO с точки зрения viewerID
func FromDomainReservation(r *domain.Reservation, viewerID string) *RoomResponse {
	if r == nil {
		return nil
	}

	resp := &RoomResponse{
		ID:              r.ID,
		Name:            r.Name,
		OwnerID:         r.OwnerID,
		Location:        r.Location,
		ActivityType:    string(r.ActivityType),
		Start:           r.Start.Format(domain.DateTimeFormat),
		EndTime:         r.End().Format(domain.TimeFormat),
		DurationMinutes: r.DurationMinutes,
		Privacy:         string(r.Privacy),
		Capacity:        domain.EffectiveCapacity(r),
		OpenSeats:       domain.OpenSeats(r),
		NearlyFull:      domain.IsNearlyFull(r, domain.NearlyFullThreshold),
		Participants:    append([]string{}, r.Participants...),
		IsOwner:         r.IsOwner(viewerID),
		IsAttending:     r.HasParticipant(viewerID),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.IsPrivate() && r.IsOwner(viewerID) {
		resp.AccessCode = ptr.Ptr(r.AccessCode)
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, viewerID string) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if roomResp := FromDomainReservation(r, viewerID); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
