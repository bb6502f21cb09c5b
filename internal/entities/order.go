package entities

import "time"

// OrderDateLayout формат поля time во входящих заказах и date в ответах.
const OrderDateLayout = "2006-01-02 15:04"

type Order struct {
	ID              int64
	Good            string
	Instructions    string
	Date            time.Time
	Status          OrderStatusType
	PickupLat       float64
	PickupLng       float64
	DeliveryLat     float64
	DeliveryLng     float64
	PickupAddress   string
	DeliveryAddress string
	Fee             int64
	Distance        int64
	Duration        int64
	RiderID         *int64
	CustomerID      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderStatusType string

const (
	OrderWaitingConfirmation OrderStatusType = "waiting_confirmation"
	OrderConfirmed           OrderStatusType = "confirmed"
	OrderDeliveryInProgress  OrderStatusType = "delivery_in_progress"
	OrderCompleted           OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Code числовой код статуса, который видят мобильные клиенты.
func (s OrderStatusType) Code() int {
	switch s {
	case OrderWaitingConfirmation:
		return 1
	case OrderConfirmed:
		return 2
	case OrderDeliveryInProgress:
		return 3
	case OrderCompleted:
		return 4
	default:
		return 0
	}
}

type OrderModify struct {
	ID              *int64
	Good            *string
	Instructions    *string
	Date            *time.Time
	Status          *OrderStatusType
	PickupLat       *float64
	PickupLng       *float64
	DeliveryLat     *float64
	DeliveryLng     *float64
	PickupAddress   *string
	DeliveryAddress *string
	Fee             *int64
	Distance        *int64
	Duration        *int64
	RiderID         *int64
	CustomerID      *int64
}

// OrderTransition смена статуса заказа.
// From == nil отключает проверку текущего статуса (last write wins).
type OrderTransition struct {
	OrderID   int64
	From      *OrderStatusType
	To        OrderStatusType
	RiderID   *int64
	ChangedBy int64
}

type OrderStatusChange struct {
	ID         int64
	OrderID    int64
	FromStatus *OrderStatusType
	ToStatus   OrderStatusType
	ChangedBy  int64
	CreatedAt  time.Time
}
