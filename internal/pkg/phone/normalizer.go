package phone

import (
	"strings"
	"unicode/utf8"
)

// Normalizer приводит локальные номера (0712345678) к международному виду
// (+254712345678): первая руна заменяется кодом страны.
// Номера, уже начинающиеся с "+", не меняются, поэтому Normalize идемпотентна.
type Normalizer struct {
	countryCode string
}

func New(countryCode string) *Normalizer {
	return &Normalizer{countryCode: countryCode}
}

func (n *Normalizer) Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.HasPrefix(s, "+") {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return n.countryCode + s[size:]
}

// Local обратное преобразование для сообщений пользователю.
func (n *Normalizer) Local(normalized string) string {
	if rest, ok := strings.CutPrefix(normalized, n.countryCode); ok {
		return "0" + rest
	}
	return normalized
}
