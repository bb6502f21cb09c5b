package entities

import "time"

type User struct {
	ID            int64
	PublicID      int64
	Email         string
	PhoneNo       string
	Name          string
	PasswordHash  string
	Role          UserRoleType
	Status        UserStatusType
	ImageURI      *string
	NumberPlate   *string
	RideCategory  *int
	DeviceID      *string
	Lat           *float64
	Lng           *float64
	CurrentStatus *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) IsRider() bool {
	return u.Role == UserRider
}

type UserRoleType string

const (
	UserCustomer UserRoleType = "customer"
	UserRider    UserRoleType = "rider"
)

func (t UserRoleType) String() string {
	return string(t)
}

type UserStatusType string

const (
	UserPending     UserStatusType = "pending"
	UserActive      UserStatusType = "active"
	UserDeactivated UserStatusType = "deactivated"
)

// DefaultUserStatus регистрация никогда не создает pending аккаунты.
const DefaultUserStatus = UserActive

func (t UserStatusType) String() string {
	return string(t)
}

const (
	MinRideCategory = 1
	MaxRideCategory = 4
)

type UserModify struct {
	ID           *int64
	PublicID     *int64
	Email        *string
	PhoneNo      *string
	Name         *string
	PasswordHash *string
	Role         *UserRoleType
	Status       *UserStatusType
	ImageURI     *string
	NumberPlate  *string
	RideCategory *int
	DeviceID     *string
	Lat          *float64
	Lng          *float64
}

// Registration сырые данные регистрации до нормализации телефона и хеширования пароля.
type Registration struct {
	Name         string
	Email        string
	PhoneNo      string
	Password     string
	Role         UserRoleType
	NumberPlate  string
	RideCategory int
}

// Credentials логин из HTTP basic auth: email или телефон.
type Credentials struct {
	Username string
	Password string
}

type Location struct {
	Lat *float64
	Lng *float64
}
