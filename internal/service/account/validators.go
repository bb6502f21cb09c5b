package account

import (
	"strings"
	"unicode/utf8"

	"dispatch/internal/entities"

	"github.com/AlekSi/pointer"
)

// Ширины колонок таблицы users.
const (
	maxNameLen        = 255
	maxEmailLen       = 255
	maxPhoneLen       = 20
	maxNumberPlateLen = 50
	maxDeviceIDLen    = 255
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

// fitsColumns проверяет уже нормализованные значения.
func fitsColumns(m entities.UserModify) bool {
	return !tooLong(pointer.Get(m.Name), maxNameLen) &&
		!tooLong(pointer.Get(m.Email), maxEmailLen) &&
		!tooLong(pointer.Get(m.PhoneNo), maxPhoneLen) &&
		!tooLong(pointer.Get(m.NumberPlate), maxNumberPlateLen)
}

func isValidRideCategory(category int) bool {
	return category >= entities.MinRideCategory && category <= entities.MaxRideCategory
}

func isValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
