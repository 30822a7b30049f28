package get_available_times

import (
	"github.com/campusrec/RoomBookingService/internal/domain"
	getAvailableTimes "github.com/campusrec/RoomBookingService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Location        string   `json:"location"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Times           []string `json:"times"` // "HH:MM", по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}

	return &AvailableTimesResponse{
		Location:        resp.Location,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Times:           times,
	}
}
