package notifications

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rajivgeraev/rewear-web/internal/models"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
)

const (
	// Максимальное время ожидания ping от сервера
	pongWait = 60 * time.Second

	// Интервал поддерживающих ping-сообщений
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер входящего сообщения
	maxMessageSize = 512 * 1024 // 512KB

	writeWait = 10 * time.Second
)

// Consumer представляет одно WebSocket-соединение с каналом уведомлений бэкенда.
// Токен передается query-параметром при установке соединения
type Consumer struct {
	userID  int
	conn    *websocket.Conn
	manager *Manager
	done    chan struct{}
}

// Dial устанавливает соединение с каналом уведомлений для владельца
// токена клиента. При пустом токене ошибка возвращается до любого
// сетевого вызова
func Dial(ctx context.Context, api *rewear.Client, userID int, manager *Manager) (*Consumer, error) {
	wsURL, err := api.NotificationSocketURL("/ws")
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, err
	}

	c := &Consumer{
		userID:  userID,
		conn:    conn,
		manager: manager,
		done:    make(chan struct{}),
	}
	return c, nil
}

// Start запускает горутины чтения и поддержания соединения
func (c *Consumer) Start() {
	go c.readPump()
	go c.pingLoop()
}

// Stop закрывает соединение
func (c *Consumer) Stop() {
	c.conn.Close()
}

// Done закрывается, когда соединение завершено
func (c *Consumer) Done() <-chan struct{} { return c.done }

// readPump читает уведомления и публикует их в менеджер
func (c *Consumer) readPump() {
	defer func() {
		c.conn.Close()
		close(c.done)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Unexpected close error: %v", err)
			}
			return
		}

		var n models.Notification
		if err := json.Unmarshal(message, &n); err != nil {
			log.Printf("Error unmarshaling notification: %v", err)
			continue
		}
		if n.Timestamp.IsZero() {
			n.Timestamp = time.Now()
		}

		c.manager.Publish(c.userID, n)
	}
}

// pingLoop поддерживает соединение ping-сообщениями
func (c *Consumer) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
