package get_rooms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

type mockService struct {
	listRoomsFn func(ctx context.Context, memberID string, lookaheadDays int) (*roomModels.RoomListResponse, error)
}

func (m *mockService) ListRooms(ctx context.Context, memberID string, lookaheadDays int) (*roomModels.RoomListResponse, error) {
	return m.listRoomsFn(ctx, memberID, lookaheadDays)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_UsesConfiguredDefaultLookahead(t *testing.T) {
	var gotLookahead int
	service := &mockService{
		listRoomsFn: func(ctx context.Context, memberID string, lookaheadDays int) (*roomModels.RoomListResponse, error) {
			gotLookahead = lookaheadDays
			return &roomModels.RoomListResponse{Rooms: []roomModels.RoomResponse{}}, nil
		},
	}
	handler := NewHandler(service, 14, nopLogger{})

	rec := doRequest(handler, "/api/rooms?memberId=alice")

	require.Equal(t, http.StatusOK, rec.Code)
	// Без параметра запроса действует горизонт из конфигурации
	assert.Equal(t, 14, gotLookahead)
}

func TestHandle_QueryOverridesDefaultLookahead(t *testing.T) {
	var gotLookahead int
	service := &mockService{
		listRoomsFn: func(ctx context.Context, memberID string, lookaheadDays int) (*roomModels.RoomListResponse, error) {
			gotLookahead = lookaheadDays
			return &roomModels.RoomListResponse{Rooms: []roomModels.RoomResponse{}}, nil
		},
	}
	handler := NewHandler(service, 14, nopLogger{})

	rec := doRequest(handler, "/api/rooms?memberId=alice&lookaheadDays=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, gotLookahead)
}

func TestHandle_MissingMemberID(t *testing.T) {
	called := false
	service := &mockService{
		listRoomsFn: func(ctx context.Context, memberID string, lookaheadDays int) (*roomModels.RoomListResponse, error) {
			called = true
			return nil, nil
		},
	}
	handler := NewHandler(service, 7, nopLogger{})

	rec := doRequest(handler, "/api/rooms")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}
