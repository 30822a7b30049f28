package create_room

import (
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// Request модель запроса на создание брони
type Request struct {
	ActorID         string              // идентификатор создающего участника
	Name            string              // отображаемое имя комнаты
	Location        string              // ключ локации из каталога
	Start           time.Time           // начало, должно лежать на сетке слотов
	DurationMinutes int                 // длительность, кратная размеру слота
	Privacy         domain.Privacy      // public | private
	Capacity        int                 // 0 = значение по умолчанию для типа
	ActivityType    domain.ActivityType // soccer | football | basketball | general
	AccessCode      string              // опциональный код для приватной комнаты
}

// Response модель ответа с созданной бронью
type Response struct {
	Reservation *domain.Reservation
	OpenSeats   int
}
