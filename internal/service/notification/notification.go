package notification

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service struct {
	log        handlerLogger
	users      UserRepository
	dispatcher Dispatcher
}

func New(log handlerLogger, users UserRepository, dispatcher Dispatcher) *Service {
	return &Service{
		log:        log.With(logger.NewField("service", "notification")),
		users:      users,
		dispatcher: dispatcher,
	}
}

// NotifyRiders рассылает новый заказ всем райдерам с зарегистрированным устройством.
func (s *Service) NotifyRiders(ctx context.Context, order entities.Order) error {
	deviceIDs, err := s.users.ListRiderDeviceIDs(ctx)
	if err != nil {
		return fmt.Errorf("list rider devices: %w", err)
	}
	if len(deviceIDs) == 0 {
		s.log.Debug("no rider devices registered", logger.NewField("order_id", order.ID))
		return nil
	}

	return s.send(ctx, entities.OrderPush{
		DeviceIDs: deviceIDs,
		Category:  entities.PushNewOrder,
		Order:     order,
	})
}

func (s *Service) NotifyCustomer(ctx context.Context, order entities.Order) error {
	customer, err := s.users.GetByID(ctx, order.CustomerID)
	if err != nil {
		return fmt.Errorf("load customer %d: %w", order.CustomerID, err)
	}
	if customer.DeviceID == nil || strings.TrimSpace(*customer.DeviceID) == "" {
		s.log.Debug("customer has no device",
			logger.NewField("order_id", order.ID),
			logger.NewField("customer_id", order.CustomerID),
		)
		return nil
	}

	return s.send(ctx, entities.OrderPush{
		DeviceIDs: []string{*customer.DeviceID},
		Category:  entities.PushOrderUpdated,
		Order:     order,
	})
}

func (s *Service) send(ctx context.Context, push entities.OrderPush) error {
	if err := s.dispatcher.Send(ctx, push); err != nil {
		return fmt.Errorf("dispatch push for order %d: %w", push.Order.ID, err)
	}
	return nil
}
