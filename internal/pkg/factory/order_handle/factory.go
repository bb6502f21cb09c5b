package order_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

// StatusHandlerFactory выбирает уведомление по статусу, в который перешел заказ.
type StatusHandlerFactory struct {
	notifier order.Notifier
}

func NewStatusHandlerFactory(notifier order.Notifier) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		notifier: notifier,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderWaitingConfirmation:
		return f.placedHandler, nil
	case entities.OrderConfirmed,
		entities.OrderDeliveryInProgress,
		entities.OrderCompleted:
		return f.progressHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) placedHandler(ctx context.Context, o entities.Order) error {
	if err := f.notifier.NotifyRiders(ctx, o); err != nil {
		return fmt.Errorf("notify riders about order %d: %w", o.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) progressHandler(ctx context.Context, o entities.Order) error {
	if err := f.notifier.NotifyCustomer(ctx, o); err != nil {
		return fmt.Errorf("notify customer about order %d (%s): %w", o.ID, o.Status, err)
	}
	return nil
}
