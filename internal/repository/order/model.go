package order

import "time"

type OrderDB struct {
	ID              int64
	Good            string
	Instructions    string
	Date            time.Time
	Status          string
	PickupLat       float64
	PickupLng       float64
	DeliveryLat     float64
	DeliveryLng     float64
	PickupAddress   string
	DeliveryAddress string
	DeliveryFee     int64
	Distance        int64
	Duration        int64
	RiderID         *int64
	CustomerID      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const orderColumns = `id, good, instructions, date, status,
	pickup_lat, pickup_lng, delivery_lat, delivery_lng, pickup_address, delivery_address,
	delivery_fee, distance, duration, rider_id, customer_id, created_at, updated_at`

func (o *OrderDB) scanTargets() []any {
	return []any{
		&o.ID,
		&o.Good,
		&o.Instructions,
		&o.Date,
		&o.Status,
		&o.PickupLat,
		&o.PickupLng,
		&o.DeliveryLat,
		&o.DeliveryLng,
		&o.PickupAddress,
		&o.DeliveryAddress,
		&o.DeliveryFee,
		&o.Distance,
		&o.Duration,
		&o.RiderID,
		&o.CustomerID,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
