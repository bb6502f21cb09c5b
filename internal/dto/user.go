package dto

type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phoneNo"`
	Password string `json:"password"`
}

type RiderCreate struct {
	UserCreate
	NumberPlate string `json:"numberPlate"`
	Category    Int    `json:"category"`
}

type DeviceUpdate struct {
	DeviceID string `json:"deviceId"`
}

type LocationUpdate struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type UserDetails struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	PhoneNo  string  `json:"phoneNo"`
	ImageURI *string `json:"imageUri"`
	Role     string  `json:"role,omitempty"`
}

type LoginResponse struct {
	Error   bool        `json:"error"`
	Token   string      `json:"token"`
	Details UserDetails `json:"details"`
}
