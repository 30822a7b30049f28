package roomservice

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена на сервере
	ErrRoomNotFound = errors.New("room not found")

	// ErrRejected возвращается, когда сервер отклонил запрос (4xx)
	ErrRejected = errors.New("roomservice client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("roomservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("roomservice client: invalid response")

	// ErrRemoteUnavailable возвращается, когда сервис недоступен.
	// Слой синхронизации по этой ошибке переключается на локальный снапшот
	ErrRemoteUnavailable = errors.New("roomservice unavailable")
)
