package rewear

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldError представляет ошибку валидации одного поля из тела `detail`
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError представляет ответ бэкенда со списком ошибок валидации полей
type ValidationError struct {
	Status int
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		name := f.Field
		if name == "" {
			name = "field"
		}
		parts = append(parts, name+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

// HTTPError представляет ответ 4xx/5xx с человекочитаемым сообщением.
// Message берется из поля detail, при нечитаемом теле — из статусной строки.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

// TransportError представляет сетевой сбой (DNS, отказ соединения) до получения ответа
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "ошибка сети: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// rawDetail представляет структурированное тело ошибки бэкенда: detail может быть
// строкой или списком {loc, msg}
type rawDetail struct {
	Detail json.RawMessage `json:"detail"`
}

type rawFieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// parseAPIError классифицирует тело ответа с ошибкой
func parseAPIError(status int, statusText string, body []byte) error {
	var rd rawDetail
	if err := json.Unmarshal(body, &rd); err == nil && len(rd.Detail) > 0 {
		// Список ошибок валидации по полям
		var list []rawFieldError
		if err := json.Unmarshal(rd.Detail, &list); err == nil && len(list) > 0 {
			fields := make([]FieldError, 0, len(list))
			for _, it := range list {
				fields = append(fields, FieldError{Field: joinLoc(it.Loc), Message: it.Msg})
			}
			return &ValidationError{Status: status, Fields: fields}
		}

		// Одиночное сообщение
		var msg string
		if err := json.Unmarshal(rd.Detail, &msg); err == nil && msg != "" {
			return &HTTPError{Status: status, Message: msg}
		}
	}

	// Нечитаемое тело — откатываемся на статусную строку
	return &HTTPError{Status: status, Message: fallbackMessage(status, statusText)}
}

// joinLoc собирает путь поля из loc, отбрасывая ведущий сегмент body
func joinLoc(loc []any) string {
	parts := make([]string, 0, len(loc))
	for i, seg := range loc {
		s := fmt.Sprint(seg)
		if i == 0 && (s == "body" || s == "query" || s == "path") {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}

func fallbackMessage(status int, statusText string) string {
	if statusText != "" {
		return statusText
	}
	return fmt.Sprintf("HTTP %d", status)
}
