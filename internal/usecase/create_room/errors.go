package create_room

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_room: invalid input data")

	// ErrUnknownLocation возвращается, когда локация отсутствует в каталоге
	ErrUnknownLocation = errors.New("create_room: unknown location")

	// ErrLocationNotAllowed возвращается, когда локация не подходит типу активности
	ErrLocationNotAllowed = errors.New("create_room: location is not valid for this activity type")

	// ErrMisalignedStart возвращается, когда время начала не лежит на сетке слотов.
	// Время никогда не округляется молча, только отклоняется
	ErrMisalignedStart = errors.New("create_room: start time is not aligned to the slot grid")

	// ErrInvalidDuration возвращается при недопустимой длительности
	ErrInvalidDuration = errors.New("create_room: invalid duration")

	// ErrSlotConflict возвращается, когда слот уже занят на момент коммита
	ErrSlotConflict = errors.New("create_room: location is already booked for this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_room: internal error")
)
