package crdt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// ClientIDLength - длина идентификатора клиента в hex-символах
	ClientIDLength = 16
	// maxCounter - максимальное значение логического счетчика (16 бит)
	maxCounter = 0xffff
	// millisDigits - ширина поля millis в строковом представлении.
	// 13 десятичных цифр покрывают unix-время в миллисекундах до 2286 года.
	millisDigits = 13
)

// Timestamp представляет гибридную логическую метку времени (HLC):
// физическое время в миллисекундах + логический счетчик + идентификатор клиента.
// Метки со всех клиентов образуют строгий total order без синхронизации
// физических часов между устройствами.
type Timestamp struct {
	ClientID string // 16 hex-символов, уникален для каждой реплики
	Millis   uint64 // unix-время в миллисекундах
	Counter  uint16 // логический счетчик для событий внутри одной миллисекунды
}

// NewClientID генерирует новый идентификатор клиента:
// UUID без дефисов, усеченный до 16 символов.
func NewClientID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:ClientIDLength]
}

// String сериализует метку в строку фиксированной ширины
// "<millis 13 цифр>-<counter 4 hex>-<clientId>".
// Лексикографическое сравнение строк эквивалентно Compare.
func (t Timestamp) String() string {
	return fmt.Sprintf("%0*d-%04x-%s", millisDigits, t.Millis, t.Counter, t.ClientID)
}

// IsZero reports whether the timestamp is the zero value.
func (t Timestamp) IsZero() bool {
	return t.Millis == 0 && t.Counter == 0 && t.ClientID == ""
}

// Compare возвращает -1, 0 или +1 согласно total order:
// сначала Millis, затем Counter, затем ClientID лексикографически.
func Compare(a, b Timestamp) int {
	switch {
	case a.Millis < b.Millis:
		return -1
	case a.Millis > b.Millis:
		return 1
	}
	switch {
	case a.Counter < b.Counter:
		return -1
	case a.Counter > b.Counter:
		return 1
	}
	return strings.Compare(a.ClientID, b.ClientID)
}

// Before reports whether t is ordered strictly before other.
func (t Timestamp) Before(other Timestamp) bool {
	return Compare(t, other) < 0
}

// After reports whether t is ordered strictly after other.
func (t Timestamp) After(other Timestamp) bool {
	return Compare(t, other) > 0
}

// ParseTimestamp разбирает строковое представление метки обратно в Timestamp.
// Формат: "<millis>-<counter hex>-<clientId>".
func ParseTimestamp(s string) (Timestamp, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return Timestamp{}, fmt.Errorf("invalid timestamp format: %q", s)
	}

	millis, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp millis %q: %w", parts[0], err)
	}

	counter, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp counter %q: %w", parts[1], err)
	}

	if len(parts[2]) != ClientIDLength {
		return Timestamp{}, fmt.Errorf("invalid timestamp client id %q: expected %d characters", parts[2], ClientIDLength)
	}

	return Timestamp{
		Millis:   millis,
		Counter:  uint16(counter),
		ClientID: parts[2],
	}, nil
}
