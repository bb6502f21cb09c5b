package user

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/account"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	constraintEmail       = "users_email_key"
	constraintPhone       = "users_phone_no_key"
	constraintNumberPlate = "users_number_plate_key"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error) {
	m := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (public_id, email, phone_no, name, password_hash, role, status, number_plate, ride_category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		m.PublicID,
		m.Email,
		m.PhoneNo,
		m.Name,
		m.PasswordHash,
		m.Role,
		m.Status,
		m.NumberPlate,
		m.RideCategory,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, conflictError(err)
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.getOne(ctx, "id", id)
}

func (r *Repository) GetByPublicID(ctx context.Context, publicID int64) (*entities.User, error) {
	return r.getOne(ctx, "public_id", publicID)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, "email", email)
}

func (r *Repository) GetByPhone(ctx context.Context, phoneNo string) (*entities.User, error) {
	return r.getOne(ctx, "phone_no", phoneNo)
}

func (r *Repository) GetByNumberPlate(ctx context.Context, numberPlate string) (*entities.User, error) {
	return r.getOne(ctx, "number_plate", numberPlate)
}

// ListRiderDeviceIDs push-токены всех райдеров, у которых они есть.
func (r *Repository) ListRiderDeviceIDs(ctx context.Context) ([]string, error) {
	query := `SELECT device_id
		FROM users
		WHERE role = $1 AND device_id IS NOT NULL AND device_id <> ''
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, entities.UserRider.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list device ids error: %w", err)
	}
	defer rows.Close()

	deviceIDs := make([]string, 0, 16)
	for rows.Next() {
		var deviceID string
		if err := rows.Scan(&deviceID); err != nil {
			return nil, fmt.Errorf("unexpected user repository list device ids error: %w", err)
		}
		deviceIDs = append(deviceIDs, deviceID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository list device ids error: %w", err)
	}

	return deviceIDs, nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	m := FromDomainModify(&userModifyEntity)
	if m.ID == nil {
		return nil, fmt.Errorf("user repository update: %w", account.ErrUserNotFound)
	}

	builder := qb.Update("users")

	// опционные поля
	if m.Name != nil {
		builder = builder.Set("name", m.Name)
	}
	if m.Email != nil {
		builder = builder.Set("email", m.Email)
	}
	if m.PhoneNo != nil {
		builder = builder.Set("phone_no", m.PhoneNo)
	}
	if m.PasswordHash != nil {
		builder = builder.Set("password_hash", m.PasswordHash)
	}
	if m.Status != nil {
		builder = builder.Set("status", m.Status)
	}
	if m.ImageURI != nil {
		builder = builder.Set("image_uri", m.ImageURI)
	}
	if m.NumberPlate != nil {
		builder = builder.Set("number_plate", m.NumberPlate)
	}
	if m.RideCategory != nil {
		builder = builder.Set("ride_category", m.RideCategory)
	}
	if m.DeviceID != nil {
		builder = builder.Set("device_id", m.DeviceID)
	}
	if m.Lat != nil {
		builder = builder.Set("lat", m.Lat)
	}
	if m.Lng != nil {
		builder = builder.Set("lng", m.Lng)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": m.ID}).
		Suffix("RETURNING " + userColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userModel UserDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(userModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrUserNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, conflictError(err)
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) getOne(ctx context.Context, column string, value any) (*entities.User, error) {
	query, args, err := qb.
		Select(userColumns).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository get by %s error: %w", column, err)
	}

	var userModel UserDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(userModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get by %s error: %w", column, err)
	}

	return ToDomain(&userModel), nil
}

func conflictError(err error) error {
	switch repository.PgConstraintName(err) {
	case constraintEmail:
		return account.ErrEmailTaken
	case constraintPhone:
		return account.ErrPhoneTaken
	case constraintNumberPlate:
		return account.ErrPlateTaken
	default:
		return fmt.Errorf("unexpected user unique violation: %w", err)
	}
}
