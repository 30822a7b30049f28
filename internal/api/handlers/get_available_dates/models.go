package get_available_dates

import (
	getAvailableDates "github.com/campusrec/RoomBookingService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Location        string   `json:"location"`
	DurationMinutes int      `json:"durationMinutes"`
	Dates           []string `json:"dates"` // "YYYY-MM-DD", по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	return &AvailableDatesResponse{
		Location:        resp.Location,
		DurationMinutes: resp.DurationMinutes,
		Dates:           resp.Dates,
	}
}
