package validation

import (
	"fmt"
	"regexp"
)

// PrefKeyPattern определяет допустимый формат ключа настройки
// Латинские буквы, цифры, точка, дефис и нижнее подчеркивание
// Длина: 1-64 символа
var PrefKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,64}$`)

const (
	// MinPasswordLen минимальная длина пароля шифрования
	MinPasswordLen = 8
	// MaxAccountNameLen максимальная длина имени счёта
	MaxAccountNameLen = 128
)

// ValidatePassword проверяет минимальные требования к паролю шифрования
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateAccountName проверяет имя счёта перед созданием
func ValidateAccountName(name string) error {
	if name == "" {
		return fmt.Errorf("account name cannot be empty")
	}

	if len(name) > MaxAccountNameLen {
		return fmt.Errorf("account name must not exceed %d characters", MaxAccountNameLen)
	}

	return nil
}

// ValidatePrefKey проверяет, что ключ настройки соответствует требованиям
// Формат: латинские буквы, цифры, точка, дефис, нижнее подчеркивание
// Длина: 1-64 символа
func ValidatePrefKey(key string) error {
	if key == "" {
		return fmt.Errorf("preference key cannot be empty")
	}

	if !PrefKeyPattern.MatchString(key) {
		return fmt.Errorf("preference key can only contain letters, numbers, dots, dashes and underscores")
	}

	return nil
}
