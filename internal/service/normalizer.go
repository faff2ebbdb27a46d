package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vanshika/oraculo/internal/calendar"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	dateRegex       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex      = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

const (
	msgNameTooShort     = "O nome deve ter pelo menos 2 caracteres"
	msgDateFormat       = "Data deve estar no formato YYYY-MM-DD"
	msgDateInvalid      = "Data inexistente no calendário"
	msgClockFormat      = "Hora deve estar no formato HH:MM"
	msgClockInvalid     = "Hora fora do intervalo 00:00-23:59"
	msgCityTooShort     = "A cidade deve ter pelo menos 2 caracteres"
	msgCountryTooShort  = "O país deve ter pelo menos 2 caracteres"
	msgUsernameTooShort = "O nome de usuário deve ter pelo menos 3 caracteres"
	msgPasswordTooShort = "A senha deve ter pelo menos 8 caracteres"
	msgPasswordTooLong  = "A senha deve ter no máximo 72 bytes"
)

// sanitizeString collapses whitespace and trims the result.
func sanitizeString(value string) string {
	value = whitespaceRegex.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// normalizeUsername makes lookups case-insensitive.
func normalizeUsername(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func requireMinLength(field, value string, min int, message string) error {
	if utf8.RuneCountInString(value) < min {
		return invalid(field, message)
	}
	return nil
}

func parseBirthDate(value string) (calendar.Date, error) {
	value = strings.TrimSpace(value)
	if !dateRegex.MatchString(value) {
		return calendar.Date{}, invalid("birthDate", msgDateFormat)
	}
	d, err := calendar.ParseDate(value)
	if err != nil {
		return calendar.Date{}, invalid("birthDate", msgDateFormat)
	}
	if !d.Valid() {
		return calendar.Date{}, invalid("birthDate", msgDateInvalid)
	}
	return d, nil
}

func parseBirthTime(value string) (calendar.Clock, error) {
	value = strings.TrimSpace(value)
	if !clockRegex.MatchString(value) {
		return calendar.Clock{}, invalid("birthTime", msgClockFormat)
	}
	c, err := calendar.ParseClock(value)
	if err != nil {
		return calendar.Clock{}, invalid("birthTime", msgClockFormat)
	}
	if !c.Valid() {
		return calendar.Clock{}, invalid("birthTime", msgClockInvalid)
	}
	return c, nil
}
