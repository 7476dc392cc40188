package api

// EncryptMeta параметры, необходимые для расшифровки содержимого конверта.
// Ключ идентифицируется по KeyID; сам ключ по протоколу не передается.
type EncryptMeta struct {
	KeyID     string `json:"keyId"`     // идентификатор ключа шифрования
	Algorithm string `json:"algorithm"` // алгоритм шифрования ("aes-256-gcm")
	IV        []byte `json:"iv"`        // nonce, уникальный для каждого конверта
	AuthTag   []byte `json:"authTag"`   // тег аутентичности AEAD
}

// ChangeEnvelope конверт с набором изменений для передачи через relay.
// Сервер хранит конверты как непрозрачные байты; Content содержит
// msgpack-кодированный набор изменений, зашифрованный при Encrypted=true.
type ChangeEnvelope struct {
	Timestamp string       `json:"timestamp"` // строковая метка самого нового изменения в конверте
	Encrypted bool         `json:"isEncrypted"`
	Content   []byte       `json:"content"`
	Meta      *EncryptMeta `json:"meta,omitempty"` // параметры расшифровки, nil если не зашифровано
}

// SyncRequest представляет запрос на синхронизацию от клиента
type SyncRequest struct {
	Messages []ChangeEnvelope `json:"messages"`
	FileID   string           `json:"fileId"`
	GroupID  string           `json:"groupId"`
	KeyID    string           `json:"keyId,omitempty"`
	Since    string           `json:"since"` // метка, после которой нужны чужие изменения
}

// SyncResponse представляет ответ сервера на синхронизацию
type SyncResponse struct {
	Messages  []ChangeEnvelope `json:"messages"`  // изменения других реплик
	Merkle    string           `json:"merkle"`    // непрозрачный слепок состояния сервера
	Timestamp string           `json:"timestamp"` // метка самого нового изменения на сервере
}

// KeyInfo описание зарегистрированного ключа шифрования файла
type KeyInfo struct {
	KeyID string `json:"keyId"` // UUID ключа
	Salt  string `json:"salt"`  // base64 encoded salt (32 bytes)
}

// CreateKeyRequest запрос на регистрацию нового ключа шифрования файла
type CreateKeyRequest struct {
	FileID string `json:"fileId"`
	KeyID  string `json:"keyId"`
	Salt   string `json:"salt"` // base64 encoded salt
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
