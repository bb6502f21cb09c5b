package user

import (
	"dispatch/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:            u.ID,
		PublicID:      u.PublicID,
		Email:         u.Email,
		PhoneNo:       u.PhoneNo,
		Name:          u.Name,
		PasswordHash:  u.PasswordHash,
		Role:          entities.UserRoleType(u.Role),
		Status:        entities.UserStatusType(u.Status),
		ImageURI:      u.ImageURI,
		NumberPlate:   u.NumberPlate,
		RideCategory:  int16ToInt(u.RideCategory),
		DeviceID:      u.DeviceID,
		Lat:           u.Lat,
		Lng:           u.Lng,
		CurrentStatus: int16ToInt(u.CurrentStatus),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func FromDomainModify(m *entities.UserModify) *UserModifyDB {
	if m == nil {
		return nil
	}

	userDB := &UserModifyDB{
		ID:           m.ID,
		PublicID:     m.PublicID,
		Email:        m.Email,
		PhoneNo:      m.PhoneNo,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		ImageURI:     m.ImageURI,
		NumberPlate:  m.NumberPlate,
		DeviceID:     m.DeviceID,
		Lat:          m.Lat,
		Lng:          m.Lng,
	}

	if m.Role != nil {
		role := m.Role.String()
		userDB.Role = &role
	}
	if m.Status != nil {
		status := m.Status.String()
		userDB.Status = &status
	}
	if m.RideCategory != nil {
		category := int16(*m.RideCategory)
		userDB.RideCategory = &category
	}

	return userDB
}

func int16ToInt(v *int16) *int {
	if v == nil {
		return nil
	}
	res := int(*v)
	return &res
}
