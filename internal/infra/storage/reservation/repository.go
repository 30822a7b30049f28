package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/campusrec/RoomBookingService/internal/domain"
	"github.com/campusrec/RoomBookingService/pkg/psqlbuilder"
	"github.com/campusrec/RoomBookingService/pkg/txmanager"
)

var columns = []string{
	"id",
	"name",
	"owner_id",
	"participants",
	"location",
	"start_at",
	"duration_minutes",
	"privacy",
	"access_code",
	"capacity",
	"activity_type",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую бронь.
// Проверка доступности слота выполняется на уровне usecase внутри
// сериализуемой транзакции, репозиторий только пишет.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"name",
			"owner_id",
			"participants",
			"location",
			"start_at",
			"duration_minutes",
			"privacy",
			"access_code",
			"capacity",
			"activity_type",
		).
		Values(
			res.ID,
			res.Name,
			res.OwnerID,
			pq.Array(res.Participants),
			res.Location,
			res.Start,
			res.DurationMinutes,
			res.Privacy,
			nullableCode(res.AccessCode),
			res.Capacity,
			res.ActivityType,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID.
// Внутри транзакции блокирует строку (FOR UPDATE) для сериализации
// изменений участников и удаления.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListByLocation получает все брони локации, чьи интервалы пересекают
// окно [from, until). Сравнение локаций регистронезависимое.
// Внутри транзакции добавляет FOR UPDATE, так проверка доступности и
// вставка в usecase создания становятся атомарными.
func (r *Repository) ListByLocation(ctx context.Context, location string, from, until time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"lower(location)": domain.NormalizeLocation(location)}).
		Where(squirrel.Expr("start_at < ?", until)).
		Where(squirrel.Expr("start_at + make_interval(mins => duration_minutes) > ?", from)).
		OrderBy("start_at ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListVisibleToMember получает брони окна [from, until), видимые участнику:
// все публичные плюс приватные, где он владелец или участник
func (r *Repository) ListVisibleToMember(ctx context.Context, memberID string, from, until time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Expr("start_at < ?", until)).
		Where(squirrel.Expr("start_at + make_interval(mins => duration_minutes) > ?", from)).
		OrderBy("start_at ASC, id ASC")

	if memberID == "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"privacy": domain.PrivacyPublic})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"privacy": domain.PrivacyPublic},
			squirrel.Eq{"owner_id": memberID},
			squirrel.Expr("? = ANY(participants)", memberID),
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListVisibleToMember - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVisibleToMember - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByAccessCode ищет приватную бронь по коду доступа.
// Сравнение регистронезависимое: коды генерируются в верхнем регистре
func (r *Repository) GetByAccessCode(ctx context.Context, accessCode string) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"privacy": domain.PrivacyPrivate}).
		Where(squirrel.Expr("upper(access_code) = upper(?)", accessCode)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAccessCode - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAccessCode - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// UpdateParticipants заменяет множество участников брони
func (r *Repository) UpdateParticipants(ctx context.Context, id string, participants []string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("participants", pq.Array(participants)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateParticipants - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateParticipants - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateParticipants - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete физически удаляет бронь. Отмена владельцем означает удаление:
// у брони нет состояния "отменена" (см. модель жизненного цикла)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var participants pq.StringArray
	var accessCode sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.OwnerID,
		&participants,
		&res.Location,
		&res.Start,
		&res.DurationMinutes,
		&res.Privacy,
		&accessCode,
		&res.Capacity,
		&res.ActivityType,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Participants = []string(participants)
	res.AccessCode = accessCode.String
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func nullableCode(code string) interface{} {
	if code == "" {
		return nil
	}
	return code
}
