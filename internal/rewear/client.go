// Package rewear — клиент HTTP/JSON API бэкенда ReWear.
// Вся бизнес-логика (права, матчинг, учёт баллов, модерация) живёт на
// бэкенде; клиент только формирует запросы, подставляет bearer-токен и
// нормализует форму ответа.
package rewear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client выполняет запросы к API ReWear от имени одного токена.
// Значение с токеном получают через WithToken; базовый клиент анонимный.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// New создает новый экземпляр Client для заданного базового URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// WithToken возвращает копию клиента, привязанную к bearer-токену
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Token возвращает токен, к которому привязан клиент (пустая строка — аноним)
func (c *Client) Token() string { return c.token }

// BaseURL возвращает базовый URL бэкенда
func (c *Client) BaseURL() string { return c.baseURL }

// do выполняет запрос и декодирует JSON-ответ в out (если out != nil).
// Ошибки транспорта заворачиваются в *TransportError, ответы 4xx/5xx
// разбираются parseAPIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(resp.StatusCode, resp.Status, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	// Ответ возвращается как есть, без валидации схемы
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("разбор ответа %s %s: %w", method, path, err)
	}
	return nil
}

// getJSON выполняет GET и декодирует ответ
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// sendJSON сериализует body в JSON и выполняет запрос указанным методом
func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, query, r, "application/json", out)
}

// postForm выполняет POST с телом application/x-www-form-urlencoded
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}
