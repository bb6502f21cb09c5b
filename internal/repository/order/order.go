package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	m := orderModifyEntity
	if m.Good == nil || m.CustomerID == nil || m.Status == nil {
		return nil, fmt.Errorf("order repository create: %w", order.ErrMissingRequiredFields)
	}

	values := map[string]any{
		"good":             *m.Good,
		"instructions":     valueOr(m.Instructions, ""),
		"status":           m.Status.String(),
		"pickup_lat":       m.PickupLat,
		"pickup_lng":       m.PickupLng,
		"delivery_lat":     m.DeliveryLat,
		"delivery_lng":     m.DeliveryLng,
		"pickup_address":   m.PickupAddress,
		"delivery_address": m.DeliveryAddress,
		"delivery_fee":     m.Fee,
		"distance":         m.Distance,
		"duration":         m.Duration,
		"customer_id":      *m.CustomerID,
	}
	// без date колонка берет NOW()
	if m.Date != nil {
		values["date"] = *m.Date
	}

	builder := qb.Insert("orders").
		SetMap(values).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(orderModel.scanTargets()...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// Transition меняет статус заказа. При заданном From обновление условное:
// если статус успел измениться, строк не будет и вернется ErrInvalidTransition.
func (r *Repository) Transition(ctx context.Context, transition entities.OrderTransition) (*entities.Order, error) {
	builder := qb.Update("orders").
		Set("status", transition.To.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if transition.RiderID != nil {
		builder = builder.Set("rider_id", *transition.RiderID)
	}

	where := sq.Eq{"id": transition.OrderID}
	if transition.From != nil {
		where["status"] = transition.From.String()
	}

	query, args, err := builder.
		Where(where).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if transition.From != nil {
				return nil, order.ErrInvalidTransition
			}
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) AddStatusChange(ctx context.Context, change entities.OrderStatusChange) error {
	query := `INSERT INTO order_status_history (order_id, from_status, to_status, changed_by)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		change.OrderID,
		statusPtr(change.FromStatus),
		change.ToStatus.String(),
		change.ChangedBy,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository add status change error: %w", err)
	}

	return nil
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
