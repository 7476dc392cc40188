package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// NonceSize - размер nonce для AES-GCM (12 bytes стандартный размер)
	NonceSize = 12
	// TagSize - размер authentication tag AES-GCM (16 bytes)
	TagSize = 16
	// Algorithm - идентификатор алгоритма в метаданных конверта
	Algorithm = "aes-256-gcm"
)

// ErrDecryption indicates that the authentication tag did not verify:
// corrupted payload, wrong key, or wrong key identity. It is always a
// hard failure - plaintext is never returned on a failed verification.
var ErrDecryption = errors.New("decryption failed")

// Meta описывает параметры шифрования одного payload.
// Передается рядом с ciphertext, чтобы получатель мог выбрать ключ
// и проверить подлинность.
type Meta struct {
	KeyID     string // идентификатор ключа, связан с ciphertext как AAD
	Algorithm string // всегда "aes-256-gcm"
	IV        []byte // nonce GCM (12 bytes)
	AuthTag   []byte // authentication tag (16 bytes), отделен от ciphertext
}

// Encrypted содержит результат шифрования: ciphertext без тега + метаданные.
type Encrypted struct {
	Value []byte // ciphertext (authentication tag вынесен в Meta)
	Meta  Meta
}

// Encrypt шифрует payload с использованием AES-256-GCM.
// keyID связывается с ciphertext как associated data, поэтому конверт
// нельзя переиграть под другим идентификатором ключа.
func Encrypt(keyID string, key, plaintext []byte) (*Encrypted, error) {
	if keyID == "" {
		return nil, fmt.Errorf("key id cannot be empty")
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("plaintext cannot be empty")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	// Генерируем случайный nonce
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// GCM добавляет authentication tag в конец ciphertext,
	// отделяем его в метаданные
	sealed := aesGCM.Seal(nil, nonce, plaintext, []byte(keyID))
	tagStart := len(sealed) - TagSize

	value := make([]byte, tagStart)
	copy(value, sealed[:tagStart])
	authTag := make([]byte, TagSize)
	copy(authTag, sealed[tagStart:])

	return &Encrypted{
		Value: value,
		Meta: Meta{
			KeyID:     keyID,
			Algorithm: Algorithm,
			IV:        nonce,
			AuthTag:   authTag,
		},
	}, nil
}

// Decrypt дешифрует payload, проверяя authentication tag и associated data.
// Любое расхождение (поврежденный ciphertext, чужой ключ, подмененный keyID)
// возвращает ErrDecryption - частично расшифрованные данные не возвращаются.
func Decrypt(key, value []byte, meta Meta) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}
	if meta.Algorithm != Algorithm {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrDecryption, meta.Algorithm)
	}
	if len(meta.IV) != NonceSize {
		return nil, fmt.Errorf("%w: invalid nonce size %d", ErrDecryption, len(meta.IV))
	}
	if len(meta.AuthTag) != TagSize {
		return nil, fmt.Errorf("%w: invalid auth tag size %d", ErrDecryption, len(meta.AuthTag))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	// Собираем ciphertext+tag обратно в формат, который ожидает GCM
	sealed := make([]byte, 0, len(value)+TagSize)
	sealed = append(sealed, value...)
	sealed = append(sealed, meta.AuthTag...)

	plaintext, err := aesGCM.Open(nil, meta.IV, sealed, []byte(meta.KeyID))
	if err != nil {
		return nil, fmt.Errorf("%w: authentication failed or corrupted payload", ErrDecryption)
	}

	return plaintext, nil
}
