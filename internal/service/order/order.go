package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

type Config struct {
	// StrictTransitions включает ролевую проверку, линейную цепочку статусов
	// и условное обновление. Без него последний запрос побеждает.
	StrictTransitions bool
	NotifyTimeout     time.Duration
}

type Service struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager
	handlers   HandlerFactory
	cfg        Config
}

func New(log handlerLogger, repository Repository, txManager TxManager, handlers HandlerFactory, cfg Config) *Service {
	return &Service{
		log:        log.With(logger.NewField("service", "order")),
		repository: repository,
		txManager:  txManager,
		handlers:   handlers,
		cfg:        cfg,
	}
}

func (s *Service) Create(ctx context.Context, customer entities.User, orderModify entities.OrderModify) (*entities.Order, error) {
	if !hasRequiredFields(orderModify) {
		return nil, ErrMissingRequiredFields
	}
	if !fitsColumns(orderModify) {
		return nil, ErrFieldTooLong
	}
	if s.cfg.StrictTransitions && customer.IsRider() {
		return nil, fmt.Errorf("%w: riders cannot place orders", ErrForbidden)
	}

	orderModify.ID = nil
	orderModify.RiderID = nil
	orderModify.CustomerID = pointer.To(customer.ID)
	orderModify.Status = pointer.To(entities.OrderWaitingConfirmation)

	var created *entities.Order
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, orderModify)
		if err != nil {
			return err
		}

		return s.repository.AddStatusChange(ctx, entities.OrderStatusChange{
			OrderID:   created.ID,
			ToStatus:  created.Status,
			ChangedBy: customer.ID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.afterCommit(ctx, *created)

	return created, nil
}

func (s *Service) Accept(ctx context.Context, orderID int64, rider entities.User) (*entities.Order, error) {
	return s.transition(ctx, orderID, rider, entities.OrderConfirmed)
}

func (s *Service) MarkPickedUp(ctx context.Context, orderID int64, rider entities.User) (*entities.Order, error) {
	return s.transition(ctx, orderID, rider, entities.OrderDeliveryInProgress)
}

func (s *Service) Complete(ctx context.Context, orderID int64, rider entities.User) (*entities.Order, error) {
	return s.transition(ctx, orderID, rider, entities.OrderCompleted)
}

func (s *Service) transition(
	ctx context.Context,
	orderID int64,
	rider entities.User,
	to entities.OrderStatusType,
) (*entities.Order, error) {
	if s.cfg.StrictTransitions && !rider.IsRider() {
		return nil, fmt.Errorf("%w: only riders can move orders to %s", ErrForbidden, to)
	}

	var updated *entities.Order
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return err
		}

		transition := entities.OrderTransition{
			OrderID:   orderID,
			To:        to,
			ChangedBy: rider.ID,
		}
		if s.cfg.StrictTransitions {
			if err := canTransition(current, rider, to); err != nil {
				return err
			}
			transition.From = pointer.To(current.Status)
		}
		if to == entities.OrderConfirmed {
			transition.RiderID = pointer.To(rider.ID)
		}

		updated, err = s.repository.Transition(ctx, transition)
		if err != nil {
			return err
		}

		return s.repository.AddStatusChange(ctx, entities.OrderStatusChange{
			OrderID:    orderID,
			FromStatus: pointer.To(current.Status),
			ToStatus:   to,
			ChangedBy:  rider.ID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("order %d to %s: %w", orderID, to, err)
	}

	s.afterCommit(ctx, *updated)

	return updated, nil
}

// afterCommit отправляет уведомления по новому статусу. Заказ уже сохранен,
// поэтому ошибки только логируются, а отмена запроса не обрывает отправку.
func (s *Service) afterCommit(ctx context.Context, order entities.Order) {
	execute, err := s.handlers.GetHandler(order.Status)
	if err != nil {
		if !errors.Is(err, ErrUndefinedStatus) {
			s.log.Warn("resolve order status handler", logger.NewField("error", err))
		}
		return
	}

	notifyCtx := context.WithoutCancel(ctx)
	if s.cfg.NotifyTimeout > 0 {
		var cancel context.CancelFunc
		notifyCtx, cancel = context.WithTimeout(notifyCtx, s.cfg.NotifyTimeout)
		defer cancel()
	}

	if err := execute(notifyCtx, order); err != nil {
		s.log.Warn("order notification failed",
			logger.NewField("order_id", order.ID),
			logger.NewField("status", order.Status.String()),
			logger.NewField("error", err),
		)
		return
	}
	s.log.Debug("order notification sent",
		logger.NewField("order_id", order.ID),
		logger.NewField("status", order.Status.String()),
	)
}
