package crypto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestEncrypt(t *testing.T) {
	validKey := testKey(t)

	tests := []struct {
		name      string
		keyID     string
		key       []byte
		plaintext []byte
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "successful encryption",
			keyID:     "key-1",
			key:       validKey,
			plaintext: []byte("change set payload"),
		},
		{
			name:      "utf-8 payload",
			keyID:     "key-1",
			key:       validKey,
			plaintext: []byte("платеж за октябрь, €42"),
		},
		{
			name:      "empty key id",
			keyID:     "",
			key:       validKey,
			plaintext: []byte("payload"),
			wantErr:   true,
			errMsg:    "key id cannot be empty",
		},
		{
			name:      "empty plaintext",
			keyID:     "key-1",
			key:       validKey,
			plaintext: []byte{},
			wantErr:   true,
			errMsg:    "plaintext cannot be empty",
		},
		{
			name:      "invalid key length",
			keyID:     "key-1",
			key:       make([]byte, 16),
			plaintext: []byte("payload"),
			wantErr:   true,
			errMsg:    "encryption key must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt(tt.keyID, tt.key, tt.plaintext)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, encrypted)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, encrypted)
			assert.Equal(t, tt.keyID, encrypted.Meta.KeyID)
			assert.Equal(t, Algorithm, encrypted.Meta.Algorithm)
			assert.Len(t, encrypted.Meta.IV, NonceSize)
			assert.Len(t, encrypted.Meta.AuthTag, TagSize)
			assert.Len(t, encrypted.Value, len(tt.plaintext), "GCM ciphertext has plaintext length once the tag is split off")
			assert.NotEqual(t, tt.plaintext, encrypted.Value)
		})
	}
}

func TestDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)

	payloads := [][]byte{
		[]byte("x"),
		[]byte("Hello, World!"),
		[]byte("платеж за октябрь, €42"),
		make([]byte, 4096),
	}

	for _, plaintext := range payloads {
		encrypted, err := Encrypt("key-1", key, plaintext)
		require.NoError(t, err)

		decrypted, err := Decrypt(key, encrypted.Value, encrypted.Meta)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	key := testKey(t)

	encrypted, err := Encrypt("key-1", key, []byte("sensitive ledger data"))
	require.NoError(t, err)

	// Портим каждый байт ciphertext по одному - подделка всегда детектится
	for i := range encrypted.Value {
		tampered := make([]byte, len(encrypted.Value))
		copy(tampered, encrypted.Value)
		tampered[i] ^= 0x01

		_, err := Decrypt(key, tampered, encrypted.Meta)
		require.Error(t, err, "tampered byte %d must not decrypt", i)
		assert.ErrorIs(t, err, ErrDecryption)
	}
}

func TestDecrypt_TamperedKeyID(t *testing.T) {
	key := testKey(t)

	encrypted, err := Encrypt("key-1", key, []byte("sensitive ledger data"))
	require.NoError(t, err)

	// Подмена keyID ломает associated data
	meta := encrypted.Meta
	meta.KeyID = "key-2"

	_, err = Decrypt(key, encrypted.Value, meta)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestDecrypt_TamperedAuthTag(t *testing.T) {
	key := testKey(t)

	encrypted, err := Encrypt("key-1", key, []byte("sensitive ledger data"))
	require.NoError(t, err)

	meta := encrypted.Meta
	tag := make([]byte, len(meta.AuthTag))
	copy(tag, meta.AuthTag)
	tag[0] ^= 0xff
	meta.AuthTag = tag

	_, err = Decrypt(key, encrypted.Value, meta)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestDecrypt_WrongKey(t *testing.T) {
	key := testKey(t)
	wrongKey := testKey(t)

	encrypted, err := Encrypt("key-1", key, []byte("sensitive ledger data"))
	require.NoError(t, err)

	_, err = Decrypt(wrongKey, encrypted.Value, encrypted.Meta)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestDecrypt_InvalidMeta(t *testing.T) {
	key := testKey(t)

	encrypted, err := Encrypt("key-1", key, []byte("payload"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(m *Meta)
	}{
		{
			name:   "unsupported algorithm",
			mutate: func(m *Meta) { m.Algorithm = "aes-128-cbc" },
		},
		{
			name:   "short nonce",
			mutate: func(m *Meta) { m.IV = m.IV[:4] },
		},
		{
			name:   "short auth tag",
			mutate: func(m *Meta) { m.AuthTag = m.AuthTag[:8] },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := encrypted.Meta
			tt.mutate(&meta)

			_, err := Decrypt(key, encrypted.Value, meta)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}
