package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired проверяет claim exp сохраненного токена без проверки
// подписи — секрет принадлежит бэкенду. Непрозрачные токены и токены
// без exp пропускаются дальше: решает бэкенд
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
