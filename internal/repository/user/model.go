package user

import "time"

type UserDB struct {
	ID            int64
	PublicID      int64
	Email         string
	PhoneNo       string
	Name          string
	PasswordHash  string
	Role          string
	Status        string
	ImageURI      *string
	NumberPlate   *string
	RideCategory  *int16
	DeviceID      *string
	Lat           *float64
	Lng           *float64
	CurrentStatus *int16
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type UserModifyDB struct {
	ID           *int64
	PublicID     *int64
	Email        *string
	PhoneNo      *string
	Name         *string
	PasswordHash *string
	Role         *string
	Status       *string
	ImageURI     *string
	NumberPlate  *string
	RideCategory *int16
	DeviceID     *string
	Lat          *float64
	Lng          *float64
}

const userColumns = `id, public_id, email, phone_no, name, password_hash, role, status,
	image_uri, number_plate, ride_category, device_id, lat, lng, current_status,
	created_at, updated_at`

func (u *UserDB) scanTargets() []any {
	return []any{
		&u.ID,
		&u.PublicID,
		&u.Email,
		&u.PhoneNo,
		&u.Name,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.ImageURI,
		&u.NumberPlate,
		&u.RideCategory,
		&u.DeviceID,
		&u.Lat,
		&u.Lng,
		&u.CurrentStatus,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}
