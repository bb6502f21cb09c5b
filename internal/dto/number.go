package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int целое из JSON-числа или строки с числом ("2").
// Дробное число отбрасывает дробную часть, строка обязана быть целым.
type Int int64

func (n *Int) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		v, err := strconv.ParseInt(strings.TrimSpace(unquoted), 10, 64)
		if err != nil {
			return fmt.Errorf("integer expected, got %s", raw)
		}
		*n = Int(v)
		return nil
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*n = Int(v)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return fmt.Errorf("integer expected, got %s", raw)
	}
	*n = Int(f)
	return nil
}

func (n *Int) Int64() *int64 {
	if n == nil {
		return nil
	}
	v := int64(*n)
	return &v
}

// Float число из JSON-числа или строки с числом ("-1.28").
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("number expected, got %s", string(data))
	}
	*f = Float(v)
	return nil
}

func (f *Float) Float64() *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}
