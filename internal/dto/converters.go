package dto

import (
	"time"

	"dispatch/internal/entities"
)

func FromOrder(o entities.Order) Order {
	return Order{
		OrderID:         o.ID,
		Status:          o.Status.Code(),
		DeliveryAddress: o.DeliveryAddress,
		PickupAddress:   o.PickupAddress,
		Good:            o.Good,
		Instructions:    o.Instructions,
		PickupLat:       o.PickupLat,
		PickupLng:       o.PickupLng,
		DeliveryLat:     o.DeliveryLat,
		DeliveryLng:     o.DeliveryLng,
		Distance:        o.Distance,
		Duration:        o.Duration,
		Fee:             o.Fee,
		Date:            o.Date.Format(entities.OrderDateLayout),
	}
}

// ToOrder обратное преобразование для push-воркера. Статус восстанавливается по коду,
// дата по формату entities.OrderDateLayout.
func ToOrder(o Order) entities.Order {
	order := entities.Order{
		ID:              o.OrderID,
		Status:          statusFromCode(o.Status),
		DeliveryAddress: o.DeliveryAddress,
		PickupAddress:   o.PickupAddress,
		Good:            o.Good,
		Instructions:    o.Instructions,
		PickupLat:       o.PickupLat,
		PickupLng:       o.PickupLng,
		DeliveryLat:     o.DeliveryLat,
		DeliveryLng:     o.DeliveryLng,
		Distance:        o.Distance,
		Duration:        o.Duration,
		Fee:             o.Fee,
	}
	if date, err := time.Parse(entities.OrderDateLayout, o.Date); err == nil {
		order.Date = date
	}
	return order
}

func statusFromCode(code int) entities.OrderStatusType {
	for _, s := range []entities.OrderStatusType{
		entities.OrderWaitingConfirmation,
		entities.OrderConfirmed,
		entities.OrderDeliveryInProgress,
		entities.OrderCompleted,
	} {
		if s.Code() == code {
			return s
		}
	}
	return ""
}

func FromPush(push entities.OrderPush) PushRequest {
	return PushRequest{
		DeviceIDs: push.DeviceIDs,
		Data: PushData{
			MessageCategory: int(push.Category),
			Order:           FromOrder(push.Order),
		},
	}
}

func ToPush(req PushRequest) entities.OrderPush {
	return entities.OrderPush{
		DeviceIDs: req.DeviceIDs,
		Category:  entities.PushCategory(req.Data.MessageCategory),
		Order:     ToOrder(req.Data.Order),
	}
}

func FromUser(u entities.User, withRole bool) UserDetails {
	details := UserDetails{
		Name:     u.Name,
		Email:    u.Email,
		PhoneNo:  u.PhoneNo,
		ImageURI: u.ImageURI,
	}
	if withRole {
		details.Role = u.Role.String()
	}
	return details
}

// ToOrderModify переносит поля запроса как есть: проверка обязательных полей в сервисе.
func ToOrderModify(c OrderCreate, date *time.Time) entities.OrderModify {
	m := entities.OrderModify{
		Good:            c.Good,
		Date:            date,
		PickupLat:       c.PickupLat.Float64(),
		PickupLng:       c.PickupLng.Float64(),
		DeliveryLat:     c.DeliveryLat.Float64(),
		DeliveryLng:     c.DeliveryLng.Float64(),
		PickupAddress:   c.PickupAddress,
		DeliveryAddress: c.DeliveryAddress,
		Fee:             c.Fee.Int64(),
		Distance:        c.Distance,
		Duration:        c.Duration,
	}
	if c.Instructions != "" {
		m.Instructions = &c.Instructions
	}
	return m
}
