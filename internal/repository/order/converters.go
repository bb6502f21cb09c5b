package order

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:              o.ID,
		Good:            o.Good,
		Instructions:    o.Instructions,
		Date:            o.Date,
		Status:          entities.OrderStatusType(o.Status),
		PickupLat:       o.PickupLat,
		PickupLng:       o.PickupLng,
		DeliveryLat:     o.DeliveryLat,
		DeliveryLng:     o.DeliveryLng,
		PickupAddress:   o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
		Fee:             o.DeliveryFee,
		Distance:        o.Distance,
		Duration:        o.Duration,
		RiderID:         o.RiderID,
		CustomerID:      o.CustomerID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func statusPtr(s *entities.OrderStatusType) *string {
	if s == nil {
		return nil
	}
	res := s.String()
	return &res
}
