package update_attendance

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrec/RoomBookingService/internal/service/rooms"
	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

type mockService struct {
	setAttendanceFn func(ctx context.Context, id string, req *roomModels.SetAttendanceRequest) (*roomModels.RoomResponse, error)
}

func (m *mockService) SetAttendance(ctx context.Context, id string, req *roomModels.SetAttendanceRequest) (*roomModels.RoomResponse, error) {
	return m.setAttendanceFn(ctx, id, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/rooms/r1/attendees", bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"id": "r1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestHandle_InvalidAccessCodeIsBadRequest(t *testing.T) {
	service := &mockService{
		setAttendanceFn: func(ctx context.Context, id string, req *roomModels.SetAttendanceRequest) (*roomModels.RoomResponse, error) {
			return nil, rooms.ErrInvalidAccessCode
		},
	}
	handler := NewHandler(service, nopLogger{})

	rec := doRequest(handler, `{"memberId": "alice", "action": "join", "accessCode": "WRONG1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidAccessCode, decodeError(t, rec)["message"])
}

func TestHandle_AlreadyAttendingIsConflict(t *testing.T) {
	service := &mockService{
		setAttendanceFn: func(ctx context.Context, id string, req *roomModels.SetAttendanceRequest) (*roomModels.RoomResponse, error) {
			return nil, rooms.ErrAlreadyAttending
		},
	}
	handler := NewHandler(service, nopLogger{})

	rec := doRequest(handler, `{"memberId": "alice", "action": "join"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, msgAlreadyAttending, decodeError(t, rec)["message"])
}

func TestHandle_RoomNotFound(t *testing.T) {
	service := &mockService{
		setAttendanceFn: func(ctx context.Context, id string, req *roomModels.SetAttendanceRequest) (*roomModels.RoomResponse, error) {
			return nil, rooms.ErrRoomNotFound
		},
	}
	handler := NewHandler(service, nopLogger{})

	rec := doRequest(handler, `{"memberId": "alice", "action": "join"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgRoomNotFound, decodeError(t, rec)["message"])
}
