package roomservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с RoomService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RoomService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchRooms получает комнаты, видимые участнику.
// Записи, которые не удалось разобрать, отбрасываются с предупреждением,
// одна битая запись не роняет весь снапшот
func (c *Client) FetchRooms(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
	endpoint := fmt.Sprintf("%s/api/rooms?memberId=%s", c.baseURL, url.QueryEscape(memberID))

	var envelope roomListEnvelope
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &envelope); err != nil {
		return nil, err
	}

	reservations := make([]*domain.Reservation, 0, len(envelope.Rooms))
	for i := range envelope.Rooms {
		reservation, err := envelope.Rooms[i].ToDomain()
		if err != nil {
			c.log.Warn("FetchRooms: dropping malformed room record: %v", err)
			continue
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

// CreateRoom создает комнату на сервере
func (c *Client) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*domain.Reservation, error) {
	endpoint := c.baseURL + "/api/rooms"

	var envelope roomEnvelope
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Room.ToDomain()
}

// UpdateAttendance записывает участника в комнату или убирает его
func (c *Client) UpdateAttendance(ctx context.Context, roomID string, req *UpdateAttendanceRequest) (*domain.Reservation, error) {
	endpoint := fmt.Sprintf("%s/api/rooms/%s/attendees", c.baseURL, url.PathEscape(roomID))

	var envelope roomEnvelope
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Room.ToDomain()
}

// DeleteRoom удаляет комнату на сервере
func (c *Client) DeleteRoom(ctx context.Context, roomID string, memberID string) error {
	endpoint := fmt.Sprintf("%s/api/rooms/%s?memberId=%s",
		c.baseURL, url.PathEscape(roomID), url.QueryEscape(memberID))

	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}

// LookupPrivate находит приватную комнату по коду доступа
func (c *Client) LookupPrivate(ctx context.Context, req *PrivateAccessRequest) (*domain.Reservation, error) {
	endpoint := c.baseURL + "/api/rooms/private-access"

	var envelope roomEnvelope
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Room.ToDomain()
}

// doJSON выполняет запрос и декодирует ответ в out (если out != nil)
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки и таймауты означают недоступность сервиса
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrRoomNotFound, readErrorMessage(resp.Body))
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrRemoteUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// readErrorMessage вытаскивает сообщение из тела ошибки, если оно там есть
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "no error body"
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return string(raw)
}
