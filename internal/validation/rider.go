package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DeviceIDPattern определяет допустимый формат идентификатора устройства
// Только латинские буквы, цифры, дефис и нижнее подчеркивание, до 64 символов
var DeviceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ColorPattern определяет формат цвета маркера: #RGB или #RRGGBB
var ColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

const (
	// MaxNameLen максимальная длина имени участника в символах
	MaxNameLen = 40
)

// ValidateDeviceID проверяет идентификатор устройства из запроса
func ValidateDeviceID(id string) error {
	if id == "" {
		return fmt.Errorf("device id cannot be empty")
	}

	if !DeviceIDPattern.MatchString(id) {
		return fmt.Errorf("device id can only contain letters, numbers, '-' and '_' (max 64)")
	}

	return nil
}

// ValidateName проверяет опциональное имя участника.
// Пустое имя допустимо.
func ValidateName(name string) error {
	if name == "" {
		return nil
	}

	if strings.TrimSpace(name) != name {
		return fmt.Errorf("name must not start or end with whitespace")
	}

	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	for _, r := range name {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("name contains non-printable characters")
		}
	}

	return nil
}

// ValidateColor проверяет опциональный цвет маркера.
// Пустой цвет допустим.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}

	if !ColorPattern.MatchString(color) {
		return fmt.Errorf("color must be a hex value like #ff8800")
	}

	return nil
}
