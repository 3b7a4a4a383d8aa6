// Package notifications потребляет WebSocket-канал уведомлений бэкенда
// и раздает события подписчикам шлюза
package notifications

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

// Размер буфера недоставленных уведомлений на пользователя
const bufferSize = 100

// Размер канала подписчика; медленный подписчик отключается
const subscriberBuffer = 32

// Manager представляет центральный менеджер подписок на уведомления
type Manager struct {
	mu          sync.RWMutex
	subscribers map[int]map[uuid.UUID]chan models.Notification // userID -> подписчики
	buffers     map[int][]models.Notification                  // userID -> накопленные уведомления
	consumers   map[int]*Consumer                              // userID -> активное соединение
}

// NewManager создает новый экземпляр Manager
func NewManager() *Manager {
	return &Manager{
		subscribers: make(map[int]map[uuid.UUID]chan models.Notification),
		buffers:     make(map[int][]models.Notification),
		consumers:   make(map[int]*Consumer),
	}
}

// Publish раздает уведомление подписчикам пользователя и кладет его
// в буфер для опроса
func (m *Manager) Publish(userID int, n models.Notification) {
	m.mu.Lock()

	buf := append(m.buffers[userID], n)
	if len(buf) > bufferSize {
		buf = buf[len(buf)-bufferSize:] // Старые вытесняются
	}
	m.buffers[userID] = buf

	var slow []uuid.UUID
	for id, ch := range m.subscribers[userID] {
		select {
		case ch <- n:
		default:
			// Канал заполнен, подписчик слишком медленный
			slow = append(slow, id)
		}
	}
	m.mu.Unlock()

	for _, id := range slow {
		log.Printf("Subscriber %s too slow, dropping", id)
		m.Unsubscribe(userID, id)
	}
}

// Subscribe регистрирует подписчика на уведомления пользователя
func (m *Manager) Subscribe(userID int) (uuid.UUID, <-chan models.Notification) {
	id := uuid.New()
	ch := make(chan models.Notification, subscriberBuffer)

	m.mu.Lock()
	if _, ok := m.subscribers[userID]; !ok {
		m.subscribers[userID] = make(map[uuid.UUID]chan models.Notification)
	}
	m.subscribers[userID][id] = ch
	m.mu.Unlock()

	return id, ch
}

// Unsubscribe удаляет подписчика
func (m *Manager) Unsubscribe(userID int, id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if subs, ok := m.subscribers[userID]; ok {
		if ch, ok := subs[id]; ok {
			close(ch)
			delete(subs, id)
		}
		if len(subs) == 0 {
			delete(m.subscribers, userID)
		}
	}
}

// Drain возвращает накопленные уведомления пользователя и очищает буфер
func (m *Manager) Drain(userID int) []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := m.buffers[userID]
	delete(m.buffers, userID)
	return buf
}

// SetConsumer привязывает активное соединение пользователя,
// закрывая предыдущее
func (m *Manager) SetConsumer(userID int, c *Consumer) {
	m.mu.Lock()
	prev := m.consumers[userID]
	m.consumers[userID] = c
	m.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// StopConsumer закрывает соединение пользователя, если оно есть
func (m *Manager) StopConsumer(userID int) {
	m.mu.Lock()
	c := m.consumers[userID]
	delete(m.consumers, userID)
	m.mu.Unlock()

	if c != nil {
		c.Stop()
	}
}

// HasConsumer сообщает, открыт ли канал уведомлений пользователя
func (m *Manager) HasConsumer(userID int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.consumers[userID] != nil
}

// Shutdown закрывает все соединения и подписки
func (m *Manager) Shutdown() {
	m.mu.Lock()
	consumers := m.consumers
	m.consumers = make(map[int]*Consumer)
	for _, subs := range m.subscribers {
		for _, ch := range subs {
			close(ch)
		}
	}
	m.subscribers = make(map[int]map[uuid.UUID]chan models.Notification)
	m.mu.Unlock()

	for _, c := range consumers {
		c.Stop()
	}
}
