package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	stdsync "sync"

	"github.com/google/uuid"

	"github.com/iudanet/bookkeeper/internal/client/buffer"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/crdt"
	"github.com/iudanet/bookkeeper/internal/crypto"
	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/pkg/api"
)

// Ошибки сессии синхронизации
var (
	// ErrSessionError сессия в состоянии ошибки, нужен Reset
	ErrSessionError = errors.New("sync session is in error state")

	// ErrEncryptionKeyRequired файл зашифрован, но мастер-ключ не введён
	ErrEncryptionKeyRequired = errors.New("file is encrypted, password required")

	// ErrKeyMismatch конверт зашифрован не тем ключом, который введён
	ErrKeyMismatch = errors.New("envelope key does not match unlocked key")

	// ErrMalformedEnvelope конверт невозможно разобрать
	ErrMalformedEnvelope = errors.New("malformed change envelope")
)

// State состояние сессии синхронизации
type State string

// Состояния сессии. Error поглощающее: после любого сбоя
// новые обмены отклоняются до явного Reset.
const (
	StateIdle           State = "idle"
	StateSending        State = "sending"
	StateAwaitingRemote State = "awaiting_remote"
	StateApplying       State = "applying"
	StateError          State = "error"
)

// EncryptionContext мастер-ключ, введённый пользователем.
// Живёт только в памяти процесса и никогда не сохраняется.
type EncryptionContext struct {
	KeyID     string
	MasterKey []byte
}

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс сессии синхронизации
type Service interface {
	// Sync выполняет полный обмен с relay-сервером:
	// выгружает буфер изменений, получает чужие изменения и применяет их
	Sync(ctx context.Context) (*SyncResult, error)

	// SetupEncryption включает шифрование файла: генерирует ключ,
	// регистрирует его на сервере и запоминает в сессии
	SetupEncryption(ctx context.Context, password string) error

	// UnlockEncryption восстанавливает мастер-ключ по паролю
	// и соли, полученной с сервера
	UnlockEncryption(ctx context.Context, password string) error

	// State возвращает текущее состояние сессии
	State() State

	// Reset возвращает сессию из состояния ошибки в Idle
	Reset()

	// Pending возвращает количество локальных правок, ожидающих отправки
	Pending() int
}

// SyncResult contains sync operation results
type SyncResult struct {
	ServerTimestamp string // метка самого нового изменения на сервере
	Pushed          int    // количество отправленных изменений
	Pulled          int    // количество полученных изменений
	Applied         int    // количество применённых изменений
}

type service struct {
	relay    RelayAPI
	sessions storage.SessionStorage
	clocks   storage.ClockStorage
	buf      *buffer.Buffer
	applier  *Applier
	clock    *crdt.Clock
	logger   *slog.Logger

	mu    stdsync.Mutex
	state State
	enc   *EncryptionContext
}

// NewService creates a new sync service
func NewService(
	relay RelayAPI,
	sessions storage.SessionStorage,
	clocks storage.ClockStorage,
	buf *buffer.Buffer,
	applier *Applier,
	clock *crdt.Clock,
	logger *slog.Logger,
) Service {
	return &service{
		relay:    relay,
		sessions: sessions,
		clocks:   clocks,
		buf:      buf,
		applier:  applier,
		clock:    clock,
		logger:   logger,
		state:    StateIdle,
	}
}

// Sync performs full exchange with the relay server
// 1. Flushes the local change buffer and sends it as one envelope
// 2. Pulls envelopes of other replicas
// 3. Decodes and decrypts the whole batch, then applies it
// 4. Advances and persists the hybrid clock only after successful apply
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateError {
		return nil, ErrSessionError
	}

	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return nil, s.fail(fmt.Errorf("failed to load session: %w", err))
	}

	// Зашифрованный файл нельзя синхронизировать без мастер-ключа
	if session.KeyID != "" {
		if s.enc == nil {
			return nil, s.fail(ErrEncryptionKeyRequired)
		}
		if s.enc.KeyID != session.KeyID {
			return nil, s.fail(fmt.Errorf("active key %s: %w", session.KeyID, ErrKeyMismatch))
		}
	}

	s.state = StateSending
	s.logger.Info("Starting synchronization", "file_id", session.FileID)

	result := &SyncResult{}

	// Файл без группы ещё не привязан на сервере: отправка — no-op,
	// локальные правки остаются в буфере до первой привязки
	if session.GroupID == "" {
		s.logger.Warn("File has no sync group, keeping local changes buffered",
			"file_id", session.FileID, "pending", s.buf.Len())
		s.state = StateIdle
		return result, nil
	}

	outgoing, err := s.buf.Flush(ctx, s.clock)
	if err != nil {
		return nil, s.fail(fmt.Errorf("failed to flush buffer: %w", err))
	}
	var envelopes []api.ChangeEnvelope
	if len(outgoing) > 0 {
		envelope, err := s.buildEnvelope(outgoing)
		if err != nil {
			s.restore(ctx, outgoing)
			return nil, s.fail(err)
		}
		envelopes = append(envelopes, *envelope)
	}
	result.Pushed = len(outgoing)

	syncReq := api.SyncRequest{
		Messages: envelopes,
		FileID:   session.FileID,
		GroupID:  session.GroupID,
		KeyID:    session.KeyID,
		Since:    s.clock.Last().String(),
	}

	s.state = StateAwaitingRemote
	syncResp, err := s.relay.Sync(ctx, syncReq)
	if err != nil {
		s.restore(ctx, outgoing)
		return nil, s.fail(fmt.Errorf("sync request failed: %w", err))
	}

	// Разбираем и расшифровываем весь пакет до применения:
	// частично применённый пакет хуже, чем неприменённый
	incoming, err := s.decodeEnvelopes(syncResp.Messages)
	if err != nil {
		return nil, s.fail(err)
	}
	result.Pulled = len(incoming)

	// Применяем в порядке меток: результат не зависит от того,
	// как сервер сгруппировал конверты
	sort.SliceStable(incoming, func(i, j int) bool {
		return incoming[i].Timestamp < incoming[j].Timestamp
	})

	s.state = StateApplying
	if err := s.applier.Apply(ctx, incoming); err != nil {
		return nil, s.fail(fmt.Errorf("failed to apply incoming changes: %w", err))
	}
	result.Applied = len(incoming)

	// Продвигаем часы только после успешного применения: иначе при
	// повторной синхронизации пропущенные изменения не вернулись бы
	for _, rec := range incoming {
		remote, err := crdt.ParseTimestamp(rec.Timestamp)
		if err != nil {
			return nil, s.fail(fmt.Errorf("invalid remote timestamp %q: %w", rec.Timestamp, err))
		}
		s.clock.Recv(remote)
	}

	if err := s.clocks.SaveClock(ctx, &storage.ClockState{
		ClientID: s.clock.ClientID(),
		Last:     s.clock.Last().String(),
	}); err != nil {
		return nil, s.fail(fmt.Errorf("failed to persist clock: %w", err))
	}

	result.ServerTimestamp = syncResp.Timestamp
	s.state = StateIdle

	s.logger.Info("Synchronization completed",
		"pushed", result.Pushed,
		"pulled", result.Pulled,
		"applied", result.Applied)

	return result, nil
}

// buildEnvelope кодирует пакет изменений и шифрует его при необходимости
func (s *service) buildEnvelope(records []models.ChangeRecord) (*api.ChangeEnvelope, error) {
	payload, err := models.EncodeChangeSet(&models.ChangeSet{Records: records})
	if err != nil {
		return nil, err
	}

	// Метка конверта - самая новая метка внутри пакета
	newest := records[len(records)-1].Timestamp

	if s.enc == nil {
		return &api.ChangeEnvelope{
			Timestamp: newest,
			Encrypted: false,
			Content:   payload,
		}, nil
	}

	encrypted, err := crypto.Encrypt(s.enc.KeyID, s.enc.MasterKey, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt envelope: %w", err)
	}

	return &api.ChangeEnvelope{
		Timestamp: newest,
		Encrypted: true,
		Content:   encrypted.Value,
		Meta: &api.EncryptMeta{
			KeyID:     encrypted.Meta.KeyID,
			Algorithm: encrypted.Meta.Algorithm,
			IV:        encrypted.Meta.IV,
			AuthTag:   encrypted.Meta.AuthTag,
		},
	}, nil
}

// decodeEnvelopes расшифровывает и декодирует все входящие конверты
func (s *service) decodeEnvelopes(envelopes []api.ChangeEnvelope) ([]models.ChangeRecord, error) {
	var records []models.ChangeRecord

	for _, env := range envelopes {
		payload := env.Content

		if env.Encrypted {
			if env.Meta == nil {
				return nil, fmt.Errorf("encrypted envelope without meta: %w", ErrMalformedEnvelope)
			}
			if s.enc == nil {
				return nil, ErrEncryptionKeyRequired
			}
			if env.Meta.KeyID != s.enc.KeyID {
				return nil, fmt.Errorf("envelope key %s: %w", env.Meta.KeyID, ErrKeyMismatch)
			}

			decrypted, err := crypto.Decrypt(s.enc.MasterKey, env.Content, crypto.Meta{
				KeyID:     env.Meta.KeyID,
				Algorithm: env.Meta.Algorithm,
				IV:        env.Meta.IV,
				AuthTag:   env.Meta.AuthTag,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to decrypt envelope: %w", err)
			}
			payload = decrypted
		}

		cs, err := models.DecodeChangeSet(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
		}

		records = append(records, cs.Records...)
	}

	return records, nil
}

// SetupEncryption включает шифрование файла
func (s *service) SetupEncryption(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	keyID := uuid.New().String()
	salt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	masterKey, err := crypto.DeriveMasterKeyBase64(password, salt)
	if err != nil {
		return fmt.Errorf("failed to derive master key: %w", err)
	}

	// Регистрируем ключ на сервере: соль публична, сам ключ не передаётся
	if err := s.relay.CreateKey(ctx, api.CreateKeyRequest{
		FileID: session.FileID,
		KeyID:  keyID,
		Salt:   salt,
	}); err != nil {
		return fmt.Errorf("failed to register key: %w", err)
	}

	session.KeyID = keyID
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.enc = &EncryptionContext{KeyID: keyID, MasterKey: masterKey}

	s.logger.Info("Encryption enabled", "file_id", session.FileID, "key_id", keyID)

	return nil
}

// UnlockEncryption восстанавливает мастер-ключ по паролю
func (s *service) UnlockEncryption(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	info, err := s.relay.GetKey(ctx, session.FileID)
	if err != nil {
		return fmt.Errorf("failed to fetch key info: %w", err)
	}

	masterKey, err := crypto.DeriveMasterKeyBase64(password, info.Salt)
	if err != nil {
		return fmt.Errorf("failed to derive master key: %w", err)
	}

	s.enc = &EncryptionContext{KeyID: info.KeyID, MasterKey: masterKey}

	if session.KeyID != info.KeyID {
		session.KeyID = info.KeyID
		if err := s.sessions.SaveSession(ctx, session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	}

	s.logger.Info("Encryption unlocked", "file_id", session.FileID, "key_id", info.KeyID)

	return nil
}

// State возвращает текущее состояние сессии
func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset возвращает сессию из состояния ошибки в Idle
func (s *service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateError {
		s.logger.Info("Sync session reset")
	}
	s.state = StateIdle
}

// Pending возвращает количество локальных правок, ожидающих отправки
func (s *service) Pending() int {
	return s.buf.Len()
}

// fail переводит сессию в поглощающее состояние ошибки
func (s *service) fail(err error) error {
	s.state = StateError
	s.logger.Error("Synchronization failed", "error", err)
	return err
}

// restore возвращает невыгруженные значения обратно в буфер.
// Метки времени при этом теряются и будут назначены заново.
func (s *service) restore(ctx context.Context, records []models.ChangeRecord) {
	for _, rec := range records {
		if err := s.buf.Record(ctx, rec.Dataset, rec.Row, rec.Column, rec.Value); err != nil {
			s.logger.Error("Failed to restore buffered change", "error", err)
		}
	}
}
