package order

import (
	"strings"
	"time"
	"unicode/utf8"

	"dispatch/internal/entities"

	"github.com/AlekSi/pointer"
)

// Ширина текстовых колонок таблицы orders.
const maxTextLen = 250

func hasRequiredFields(m entities.OrderModify) bool {
	return !isBlank(m.Good) &&
		m.Fee != nil &&
		m.PickupLat != nil && m.PickupLng != nil &&
		m.DeliveryLat != nil && m.DeliveryLng != nil &&
		!isBlank(m.PickupAddress) && !isBlank(m.DeliveryAddress) &&
		m.Distance != nil &&
		m.Duration != nil
}

func fitsColumns(m entities.OrderModify) bool {
	for _, field := range []*string{m.Good, m.Instructions, m.PickupAddress, m.DeliveryAddress} {
		if utf8.RuneCountInString(pointer.Get(field)) > maxTextLen {
			return false
		}
	}
	return true
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// ParseDate разбирает время забора в формате entities.OrderDateLayout.
// Пустая строка означает "сейчас" и дает nil.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(entities.OrderDateLayout, raw)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &date, nil
}
