package rewear

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrNoToken возвращается при попытке построить WebSocket-URL без токена,
// до любого сетевого вызова
var ErrNoToken = errors.New("для WebSocket-соединения требуется авторизация")

// NotificationSocketURL строит URL WebSocket-канала уведомлений.
// Токен передается query-параметром token, схема http(s) меняется на ws(s)
func (c *Client) NotificationSocketURL(path string) (string, error) {
	if c.token == "" {
		return "", ErrNoToken
	}
	if path == "" {
		path = "/ws"
	}

	wsBase := c.baseURL
	switch {
	case strings.HasPrefix(wsBase, "https"):
		wsBase = "wss" + wsBase[len("https"):]
	case strings.HasPrefix(wsBase, "http"):
		wsBase = "ws" + wsBase[len("http"):]
	}
	return wsBase + path + "?token=" + url.QueryEscape(c.token), nil
}

// SendTestNotification отправляет тестовое уведомление пользователю (админ)
func (c *Client) SendTestNotification(ctx context.Context, userID int, message, notificationType string) (json.RawMessage, error) {
	if notificationType == "" {
		notificationType = "system_announcement"
	}
	q := url.Values{}
	q.Set("user_id", strconv.Itoa(userID))
	q.Set("message", message)
	q.Set("notification_type", notificationType)

	var raw json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/ws/admin/send-test-notification", q, nil, "", &raw)
	return raw, err
}

// WebSocketStats возвращает статистику WebSocket-соединений (админ)
func (c *Client) WebSocketStats(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/api/v1/ws/admin/websocket-stats", nil, &raw)
	return raw, err
}
