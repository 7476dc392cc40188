package crdt

import (
	"sync"
	"time"
)

// Clock представляет гибридные логические часы (Hybrid Logical Clock)
// одной реплики. Комбинируют физическое время и логический счетчик,
// чтобы упорядочивать события между клиентами без синхронизации часов.
// Потокобезопасен, но один экземпляр принадлежит одной реплике.
type Clock struct {
	nowFn    func() time.Time // источник физического времени
	clientID string           // идентификатор этой реплики
	last     Timestamp        // последняя выданная метка
	mu       sync.Mutex
}

// NewClock создает новые часы для заданного клиента,
// использующие системное время.
func NewClock(clientID string) *Clock {
	return NewClockWithNow(clientID, time.Now)
}

// NewClockWithNow создает часы с внешним источником времени.
// Используется в тестах для детерминированного физического времени.
func NewClockWithNow(clientID string, nowFn func() time.Time) *Clock {
	return &Clock{
		clientID: clientID,
		nowFn:    nowFn,
	}
}

// ClientID возвращает идентификатор реплики, от имени которой выдаются метки.
func (c *Clock) ClientID() string {
	return c.clientID
}

// Last возвращает последнюю выданную метку без изменения состояния часов.
func (c *Clock) Last() Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// SetLast восстанавливает состояние часов из персистентного хранилища.
// Вызывается при старте реплики, чтобы метки оставались монотонными
// между перезапусками процесса.
func (c *Clock) SetLast(ts Timestamp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last = ts
}

// Now выдает новую метку для локального события.
// millis = max(физическое время, предыдущая метка); counter увеличивается
// только если millis не изменился, иначе сбрасывается в 0.
// Гарантирует строгий рост меток в рамках одного процесса.
func (c *Clock) Now() Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()

	wall := uint64(c.nowFn().UnixMilli())

	millis := wall
	if c.last.Millis > millis {
		millis = c.last.Millis
	}

	var counter uint16
	if millis == c.last.Millis {
		if c.last.Counter == maxCounter {
			// Переполнение счетчика: переносим метку на следующую миллисекунду
			millis++
		} else {
			counter = c.last.Counter + 1
		}
	}

	c.last = Timestamp{Millis: millis, Counter: counter, ClientID: c.clientID}
	return c.last
}

// Recv продвигает часы по метке, наблюдаемой от другой реплики.
// Правило слияния HLC:
// millis = max(локальная метка, удаленная метка, физическое время);
// counter наследуется от той стороны, чей millis совпал с результатом.
// Расхождение физических часов поглощается правилом, никогда не ошибка.
func (c *Clock) Recv(remote Timestamp) Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()

	wall := uint64(c.nowFn().UnixMilli())

	millis := wall
	if c.last.Millis > millis {
		millis = c.last.Millis
	}
	if remote.Millis > millis {
		millis = remote.Millis
	}

	var counter uint32
	switch {
	case millis == c.last.Millis && millis == remote.Millis:
		counter = maxUint32(uint32(c.last.Counter), uint32(remote.Counter)) + 1
	case millis == c.last.Millis:
		counter = uint32(c.last.Counter) + 1
	case millis == remote.Millis:
		counter = uint32(remote.Counter) + 1
	}

	if counter > maxCounter {
		millis++
		counter = 0
	}

	c.last = Timestamp{Millis: millis, Counter: uint16(counter), ClientID: c.clientID}
	return c.last
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
