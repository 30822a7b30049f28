package get_available_dates

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("get_available_dates: invalid input")
	// ErrUnknownLocation локация отсутствует в каталоге
	ErrUnknownLocation = errors.New("get_available_dates: unknown location")
	// ErrInvalidDuration длительность не кратна слоту или вне лимита
	ErrInvalidDuration = errors.New("get_available_dates: invalid duration")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_available_dates: internal error")
)
