package rooms

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
	reservationRepo "github.com/campusrec/RoomBookingService/internal/infra/storage/reservation"
	"github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

// Service сервис для работы с комнатами
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает комнату по ID
// Приватная комната видна только владельцу и записанным участникам
func (s *Service) GetByID(ctx context.Context, id string, memberID string) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%s for member=%s", id, memberID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.IsPrivate() && !reservation.IsOwner(memberID) && !reservation.HasParticipant(memberID) {
		s.logger.Warn("GetByID: access denied for member=%s to private room id=%s", memberID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation, memberID), nil
}

// ListRooms получает комнаты, видимые участнику, в пределах горизонта поиска.
// Публичные комнаты видны всем, приватные только владельцу и участникам.
// Комнаты отсортированы по времени начала.
func (s *Service) ListRooms(ctx context.Context, memberID string, lookaheadDays int) (*models.RoomListResponse, error) {
	s.logger.Info("ListRooms: fetching rooms for member=%s, lookahead=%d", memberID, lookaheadDays)

	if lookaheadDays <= 0 {
		lookaheadDays = domain.DefaultLookaheadDays
	}

	now := s.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	until := from.AddDate(0, 0, lookaheadDays)

	reservations, err := s.reservationRepo.ListVisibleToMember(ctx, memberID, from, until)
	if err != nil {
		s.logger.Error("ListRooms: repository error for member=%s: %v", memberID, err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].Start.Before(reservations[j].Start)
	})

	s.logger.Info("ListRooms: found %d rooms for member=%s", len(reservations), memberID)
	return models.FromDomainReservationList(reservations, memberID), nil
}

// SetAttendance записывает участника в комнату или убирает его.
// Вход в приватную комнату требует код доступа, если участник еще не записан.
// Запись сверх вместимости разрешена, такие участники попадают в лист ожидания.
// Выполняется в serializable транзакции: чтение и обновление списка участников
// атомарны относительно параллельных записей в ту же комнату.
func (s *Service) SetAttendance(ctx context.Context, id string, req *models.SetAttendanceRequest) (*models.RoomResponse, error) {
	s.logger.Info("SetAttendance: room id=%s, member=%s, action=%s", id, req.MemberID, req.Action)

	if err := validateSetAttendance(req); err != nil {
		s.logger.Warn("SetAttendance: validation failed for room id=%s: %v", id, err)
		return nil, err
	}

	var updated *domain.Reservation

	txErr := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: SetAttendance - repository error: %v", ErrInternal, err)
		}

		var participants []string
		switch req.Action {
		case models.ActionJoin:
			participants, err = joinParticipants(reservation, req.MemberID, req.AccessCode)
		case models.ActionLeave:
			participants, err = leaveParticipants(reservation, req.MemberID)
		}
		if err != nil {
			return err
		}

		if err := s.reservationRepo.UpdateParticipants(txCtx, id, participants); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: SetAttendance - failed to update participants: %v", ErrInternal, err)
		}

		reservation.Participants = participants
		updated = reservation
		return nil
	})
	if txErr != nil {
		if isServiceError(txErr) {
			s.logger.Warn("SetAttendance: rejected for room id=%s, member=%s: %v", id, req.MemberID, txErr)
			return nil, txErr
		}
		s.logger.Error("SetAttendance: transaction failed for room id=%s: %v", id, txErr)
		if errors.Is(txErr, ErrInternal) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: SetAttendance - transaction error: %v", ErrInternal, txErr)
	}

	s.logger.Info("SetAttendance: room id=%s now has %d participants", id, len(updated.Participants))
	return models.FromDomainReservation(updated, req.MemberID), nil
}

// Remove удаляет комнату. Доступно только владельцу.
func (s *Service) Remove(ctx context.Context, id string, memberID string) error {
	s.logger.Info("Remove: deleting room id=%s by member=%s", id, memberID)

	txErr := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
		}

		if !reservation.IsOwner(memberID) {
			return ErrAccessDenied
		}

		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: Remove - failed to delete: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		if isServiceError(txErr) {
			s.logger.Warn("Remove: rejected for room id=%s, member=%s: %v", id, memberID, txErr)
			return txErr
		}
		s.logger.Error("Remove: transaction failed for room id=%s: %v", id, txErr)
		if errors.Is(txErr, ErrInternal) {
			return txErr
		}
		return fmt.Errorf("%w: Remove - transaction error: %v", ErrInternal, txErr)
	}

	s.logger.Info("Remove: room id=%s deleted", id)
	return nil
}

// LookupPrivateByCode находит приватную комнату по коду доступа.
// Регистр кода не учитывается.
func (s *Service) LookupPrivateByCode(ctx context.Context, memberID string, code string) (*models.RoomResponse, error) {
	s.logger.Info("LookupPrivateByCode: member=%s", memberID)

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: access code is required", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByAccessCode(ctx, code)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("LookupPrivateByCode: no room for supplied code, member=%s", memberID)
			return nil, ErrInvalidAccessCode
		}
		s.logger.Error("LookupPrivateByCode: repository error: %v", err)
		return nil, fmt.Errorf("%w: LookupPrivateByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation, memberID), nil
}

// Profile собирает профиль участника: комнаты, которыми он владеет,
// и комнаты, в которые он записан как участник (без владения)
func (s *Service) Profile(ctx context.Context, memberID string, lookaheadDays int) (*models.ProfileResponse, error) {
	s.logger.Info("Profile: building profile for member=%s", memberID)

	if memberID == "" {
		return nil, fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}

	if lookaheadDays <= 0 {
		lookaheadDays = domain.DefaultLookaheadDays
	}

	now := s.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	until := from.AddDate(0, 0, lookaheadDays)

	reservations, err := s.reservationRepo.ListVisibleToMember(ctx, memberID, from, until)
	if err != nil {
		s.logger.Error("Profile: repository error for member=%s: %v", memberID, err)
		return nil, fmt.Errorf("%w: Profile - repository error: %v", ErrInternal, err)
	}

	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].Start.Before(reservations[j].Start)
	})

	resp := &models.ProfileResponse{
		MemberID: memberID,
		Owned:    make([]models.RoomResponse, 0),
		Joined:   make([]models.RoomResponse, 0),
	}

	for _, r := range reservations {
		roomResp := models.FromDomainReservation(r, memberID)
		switch {
		case r.IsOwner(memberID):
			resp.Owned = append(resp.Owned, *roomResp)
		case r.HasParticipant(memberID):
			resp.Joined = append(resp.Joined, *roomResp)
		}
	}

	s.logger.Info("Profile: member=%s owns %d rooms, attends %d", memberID, len(resp.Owned), len(resp.Joined))
	return resp, nil
}

// joinParticipants возвращает новый список участников после записи.
// Вход в приватную комнату без уже имеющейся записи требует совпадения кода
func joinParticipants(reservation *domain.Reservation, memberID, accessCode string) ([]string, error) {
	if reservation.HasParticipant(memberID) {
		return nil, ErrAlreadyAttending
	}

	if reservation.IsPrivate() && !reservation.MatchesAccessCode(accessCode) {
		return nil, ErrInvalidAccessCode
	}

	participants := append([]string{}, reservation.Participants...)
	return append(participants, memberID), nil
}

// leaveParticipants возвращает новый список участников после выхода.
// Выход владельца не передает владение и не удаляет комнату
func leaveParticipants(reservation *domain.Reservation, memberID string) ([]string, error) {
	if !reservation.HasParticipant(memberID) {
		return nil, ErrNotAttending
	}

	participants := make([]string, 0, len(reservation.Participants))
	for _, p := range reservation.Participants {
		if p != memberID {
			participants = append(participants, p)
		}
	}
	return participants, nil
}

func validateSetAttendance(req *models.SetAttendanceRequest) error {
	if req.MemberID == "" {
		return fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}
	if req.Action != models.ActionJoin && req.Action != models.ActionLeave {
		return fmt.Errorf("%w: action must be join or leave", ErrInvalidInput)
	}
	return nil
}

// isServiceError проверяет, относится ли ошибка к ожидаемым отказам сервиса
func isServiceError(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrInvalidAccessCode) ||
		errors.Is(err, ErrAlreadyAttending) ||
		errors.Is(err, ErrNotAttending) ||
		errors.Is(err, ErrInvalidInput)
}
