package get_available_times

import (
	"time"

	"github.com/campusrec/RoomBookingService/pkg/types"
)

// Request модель запроса на перечисление свободных стартов
type Request struct {
	Location        string    // ключ локации из каталога
	Date            time.Time // день, для которого перечисляются слоты
	DurationMinutes int       // желаемая длительность брони
}

// Response модель ответа со свободными временами начала
type Response struct {
	Location        string
	Date            time.Time
	DurationMinutes int
	Times           []types.TimeString // "HH:MM", по возрастанию
}
