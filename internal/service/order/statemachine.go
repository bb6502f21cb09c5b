package order

import (
	"fmt"

	"dispatch/internal/entities"
)

type transitionRule struct {
	from entities.OrderStatusType
	// только райдер, назначенный при подтверждении
	assignedOnly bool
}

// transitionRules ключ целевой статус. Цепочка линейная, COMPLETED терминальный.
var transitionRules = map[entities.OrderStatusType]transitionRule{
	entities.OrderConfirmed:          {from: entities.OrderWaitingConfirmation},
	entities.OrderDeliveryInProgress: {from: entities.OrderConfirmed, assignedOnly: true},
	entities.OrderCompleted:          {from: entities.OrderDeliveryInProgress, assignedOnly: true},
}

func canTransition(current *entities.Order, rider entities.User, to entities.OrderStatusType) error {
	rule, ok := transitionRules[to]
	if !ok || current.Status != rule.from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
	}
	if rule.assignedOnly && (current.RiderID == nil || *current.RiderID != rider.ID) {
		return fmt.Errorf("%w: order %d is assigned to another rider", ErrForbidden, current.ID)
	}
	return nil
}
