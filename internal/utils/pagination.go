package utils

import "strconv"

// Дефолты пагинации интерфейса. MaxLimit — подразумеваемый потолок
// бэкенда, клиентски он не навязывается
const (
	DefaultLimit      = 20
	DefaultAdminLimit = 50
	DefaultOffset     = 0
	MaxLimit          = 100
)

// ParseIntDefault разбирает строку в int с дефолтом для пустых
// и нечитаемых значений
func ParseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// ParseLimit разбирает limit запроса: дефолт для пустых значений,
// потолок MaxLimit, отрицательные значения откатываются на дефолт
func ParseLimit(raw string, def int) int {
	n := ParseIntDefault(raw, def)
	if n < 0 {
		return def
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// ParseOffset разбирает offset запроса, отрицательные значения
// откатываются на DefaultOffset
func ParseOffset(raw string) int {
	n := ParseIntDefault(raw, DefaultOffset)
	if n < 0 {
		return DefaultOffset
	}
	return n
}
