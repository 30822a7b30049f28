package update_attendance

import (
	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

// UpdateAttendanceRequest HTTP request model
type UpdateAttendanceRequest struct {
	MemberID   string `json:"memberId"`
	Action     string `json:"action"` // join | leave
	AccessCode string `json:"accessCode,omitempty"`
}

// UpdateAttendanceResponse HTTP response model
type UpdateAttendanceResponse struct {
	Room roomModels.RoomResponse `json:"room"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateAttendanceRequest) ToServiceRequest() *roomModels.SetAttendanceRequest {
	return &roomModels.SetAttendanceRequest{
		MemberID:   r.MemberID,
		Action:     roomModels.AttendanceAction(r.Action),
		AccessCode: r.AccessCode,
	}
}
