package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"

	"github.com/AlekSi/pointer"
)

type Account struct {
	repository Repository
	txManager  TxManager
	hasher     Hasher
	tokens     TokenIssuer
	publicIDs  PublicIDFactory
	phones     PhoneNormalizer
}

func New(
	repository Repository,
	txManager TxManager,
	hasher Hasher,
	tokens TokenIssuer,
	publicIDs PublicIDFactory,
	phones PhoneNormalizer,
) *Account {
	return &Account{
		repository: repository,
		txManager:  txManager,
		hasher:     hasher,
		tokens:     tokens,
		publicIDs:  publicIDs,
		phones:     phones,
	}
}

func (s *Account) Register(ctx context.Context, reg entities.Registration) (int64, error) {
	if isBlank(reg.Name) || isBlank(reg.Email) || isBlank(reg.PhoneNo) || reg.Password == "" {
		return 0, ErrMissingRequiredFields
	}

	modify := entities.UserModify{
		Name:   pointer.To(strings.TrimSpace(reg.Name)),
		Email:  pointer.To(strings.TrimSpace(reg.Email)),
		Role:   pointer.To(entities.UserCustomer),
		Status: pointer.To(entities.DefaultUserStatus),
	}

	if reg.Role == entities.UserRider {
		if isBlank(reg.NumberPlate) || reg.RideCategory == 0 {
			return 0, ErrMissingRequiredFields
		}
		if !isValidRideCategory(reg.RideCategory) {
			return 0, ErrInvalidCategory
		}
		modify.Role = pointer.To(entities.UserRider)
		modify.NumberPlate = pointer.To(strings.TrimSpace(reg.NumberPlate))
		modify.RideCategory = pointer.To(reg.RideCategory)
	}

	phoneNo := s.phones.Normalize(reg.PhoneNo)
	modify.PhoneNo = &phoneNo

	if !fitsColumns(modify) {
		return 0, ErrFieldTooLong
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return 0, fmt.Errorf("register: %w", err)
	}
	modify.PasswordHash = &hash
	modify.PublicID = pointer.To(s.publicIDs.Next())

	var id int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureAvailable(ctx, modify); err != nil {
			return err
		}

		created, err := s.repository.Create(ctx, modify)
		if err != nil {
			return s.conflict(err, modify)
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("register: %w", err)
	}

	return id, nil
}

// ensureAvailable проверяет уникальные поля в порядке email, телефон, номерной знак.
// Гонку между проверкой и вставкой закрывают уникальные индексы.
func (s *Account) ensureAvailable(ctx context.Context, modify entities.UserModify) error {
	checks := []struct {
		lookup func(context.Context, string) (*entities.User, error)
		value  *string
		err    error
	}{
		{s.repository.GetByEmail, modify.Email, ErrEmailTaken},
		{s.repository.GetByPhone, modify.PhoneNo, ErrPhoneTaken},
		{s.repository.GetByNumberPlate, modify.NumberPlate, ErrPlateTaken},
	}

	for _, check := range checks {
		if check.value == nil {
			continue
		}
		_, err := check.lookup(ctx, *check.value)
		switch {
		case err == nil:
			return s.conflict(check.err, modify)
		case errors.Is(err, ErrUserNotFound):
		default:
			return err
		}
	}
	return nil
}

func (s *Account) conflict(err error, modify entities.UserModify) error {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return &ConflictError{Err: ErrEmailTaken, Value: pointer.Get(modify.Email)}
	case errors.Is(err, ErrPhoneTaken):
		return &ConflictError{Err: ErrPhoneTaken, Value: s.phones.Local(pointer.Get(modify.PhoneNo))}
	case errors.Is(err, ErrPlateTaken):
		return &ConflictError{Err: ErrPlateTaken, Value: pointer.Get(modify.NumberPlate)}
	default:
		return err
	}
}

func (s *Account) Login(ctx context.Context, creds entities.Credentials) (*entities.Session, error) {
	return s.login(ctx, creds, false)
}

// LoginRider как Login, но аккаунт обязан быть райдерским.
func (s *Account) LoginRider(ctx context.Context, creds entities.Credentials) (*entities.Session, error) {
	return s.login(ctx, creds, true)
}

func (s *Account) login(ctx context.Context, creds entities.Credentials, riderOnly bool) (*entities.Session, error) {
	if isBlank(creds.Username) || creds.Password == "" {
		return nil, ErrMissingRequiredFields
	}

	user, err := s.findByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, creds.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return nil, ErrWrongPassword
	}

	if riderOnly && !user.IsRider() {
		return nil, ErrNotRider
	}

	switch user.Status {
	case entities.UserDeactivated:
		return nil, ErrAccountDeactivated
	case entities.UserPending:
		return nil, ErrAccountPending
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &entities.Session{
		User:  *user,
		Token: token,
	}, nil
}

func (s *Account) findByUsername(ctx context.Context, username string) (*entities.User, error) {
	if strings.Contains(username, "@") {
		return s.repository.GetByEmail(ctx, username)
	}
	return s.repository.GetByPhone(ctx, s.phones.Normalize(username))
}

func (s *Account) UpdateDeviceID(ctx context.Context, userID int64, deviceID string) error {
	if isBlank(deviceID) {
		return ErrMissingRequiredFields
	}
	if tooLong(strings.TrimSpace(deviceID), maxDeviceIDLen) {
		return ErrFieldTooLong
	}

	_, err := s.repository.Update(ctx, entities.UserModify{
		ID:       &userID,
		DeviceID: pointer.To(strings.TrimSpace(deviceID)),
	})
	if err != nil {
		return fmt.Errorf("update device id: %w", err)
	}
	return nil
}

func (s *Account) UpdateLocation(ctx context.Context, userID int64, location entities.Location) error {
	if location.Lat == nil || location.Lng == nil {
		return ErrMissingRequiredFields
	}
	if !isValidLatitude(*location.Lat) || !isValidLongitude(*location.Lng) {
		return ErrInvalidLocation
	}

	_, err := s.repository.Update(ctx, entities.UserModify{
		ID:  &userID,
		Lat: location.Lat,
		Lng: location.Lng,
	})
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}
