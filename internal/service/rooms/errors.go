package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrAccessDenied возвращается, когда у участника нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidAccessCode возвращается при неверном коде доступа к приватной комнате
	ErrInvalidAccessCode = errors.New("invalid access code")

	// ErrAlreadyAttending возвращается при повторной попытке записаться
	ErrAlreadyAttending = errors.New("member already attending")

	// ErrNotAttending возвращается при попытке выйти из комнаты без записи
	ErrNotAttending = errors.New("member is not attending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
