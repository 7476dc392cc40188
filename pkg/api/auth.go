package api

// LoginRequest представляет запрос на аутентификацию на relay-сервере
type LoginRequest struct {
	Password string `json:"password"` // серверный пароль (не путать с паролем шифрования)
}

// LoginResponse представляет ответ с токеном доступа
type LoginResponse struct {
	Token     string `json:"token"`     // непрозрачный bearer token
	UserID    string `json:"userId"`    // идентификатор пользователя
	ExpiresIn int64  `json:"expiresIn"` // время жизни токена в секундах
}

// FileInfo описание файла гроссбуха на relay-сервере
type FileInfo struct {
	FileID  string `json:"fileId"`                 // идентификатор файла
	GroupID string `json:"groupId"`                // группа синхронизации, пустая до первой привязки
	Name    string `json:"name"`                   // отображаемое имя
	KeyID   string `json:"encryptKeyId,omitempty"` // активный ключ шифрования, пустой если нет
	Deleted bool   `json:"deleted"`
}

// ListFilesResponse список файлов пользователя
type ListFilesResponse struct {
	Files []FileInfo `json:"files"`
}
