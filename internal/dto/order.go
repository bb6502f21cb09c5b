package dto

// OrderCreate тело запроса на оформление заказа.
// Обязательные поля указателями, чтобы отличать отсутствие от нуля.
type OrderCreate struct {
	Good            *string `json:"good"`
	Time            string  `json:"time"`
	Instructions    string  `json:"instructions"`
	Fee             *Int    `json:"fee"`
	DeliveryAddress *string `json:"deliveryAddress"`
	PickupAddress   *string `json:"pickupAddress"`
	DeliveryLat     *Float  `json:"deliveryLat"`
	DeliveryLng     *Float  `json:"deliveryLng"`
	PickupLat       *Float  `json:"pickupLat"`
	PickupLng       *Float  `json:"pickupLng"`
	Distance        *int64  `json:"distance"`
	Duration        *int64  `json:"duration"`
}

// Order снимок заказа в ответах и push-уведомлениях.
type Order struct {
	OrderID         int64   `json:"orderId"`
	Status          int     `json:"status"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PickupAddress   string  `json:"pickupAddress"`
	Good            string  `json:"good"`
	Instructions    string  `json:"instructions,omitempty"`
	PickupLat       float64 `json:"pickupLat"`
	PickupLng       float64 `json:"pickupLng"`
	DeliveryLat     float64 `json:"deliveryLat"`
	DeliveryLng     float64 `json:"deliveryLng"`
	Distance        int64   `json:"distance"`
	Duration        int64   `json:"duration"`
	Fee             int64   `json:"fee"`
	Date            string  `json:"date"`
}

type OrderResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Order   Order  `json:"order"`
}
