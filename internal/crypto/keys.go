package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// ErrKeyDerivation indicates that a master key could not be derived,
// typically because the password is missing for an encrypted replica.
var ErrKeyDerivation = errors.New("key derivation failed")

// Параметры Argon2id для деривации мастер-ключа
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// KeySize - длина мастер-ключа в байтах (AES-256)
	KeySize = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
)

// GenerateSalt генерирует криптографически случайную соль для нового ключа.
// Соль хранится в реестре ключей на сервере, никогда локально.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateSaltBase64 генерирует соль и возвращает ее в Base64
// для передачи в реестр ключей.
func GenerateSaltBase64() (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveMasterKey деривирует симметричный мастер-ключ реплики из пароля и соли.
// Использует Argon2id (memory-hard KDF), детерминирован для одной пары
// (password, salt). Ключ живет только в памяти процесса и не сохраняется.
// Пустой пароль для зашифрованной реплики - это ErrKeyDerivation.
func DeriveMasterKey(password string, salt []byte) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is empty", ErrKeyDerivation)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrKeyDerivation, SaltSize, len(salt))
	}

	key := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, KeySize)
	return key, nil
}

// DeriveMasterKeyBase64 деривирует мастер-ключ из Base64-кодированной соли,
// как она приходит из реестра ключей.
func DeriveMasterKeyBase64(password, saltBase64 string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode salt: %v", ErrKeyDerivation, err)
	}
	return DeriveMasterKey(password, salt)
}
