package get_available_times

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrUnknownLocation возвращается, когда локация отсутствует в каталоге
	ErrUnknownLocation = errors.New("get_available_times: unknown location")

	// ErrInvalidDuration возвращается при недопустимой длительности
	ErrInvalidDuration = errors.New("get_available_times: invalid duration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_times: internal error")
)
