package private_access

import (
	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

// PrivateAccessRequest HTTP request model
type PrivateAccessRequest struct {
	MemberID   string `json:"memberId"`
	AccessCode string `json:"accessCode"`
}

// PrivateAccessResponse HTTP response model
type PrivateAccessResponse struct {
	Room roomModels.RoomResponse `json:"room"`
}
