// Package jwt реализует выпуск и проверку JWT токенов сессии.
//
// Токен оборачивает произвольный claims-пейлоад (объект пользователя, как его
// прислал фронтенд) и срок действия. Содержимое пейлоада не валидируется:
// что подписали, то и вернётся при проверке.
//
// Maker определяет интерфейс для выпуска и проверки токенов.
// MakerImpl — конкретная реализация на секретном ключе и TTL.
package jwt

import (
	"errors"
	"time"
)

// Ошибки проверки токена. Middleware наружу их не различает,
// но тесты и логи — различают.
var (
	// ErrExpiredToken срок действия токена истёк.
	ErrExpiredToken = errors.New("token is expired")
	// ErrInvalidToken подпись не совпала или токен повреждён.
	ErrInvalidToken = errors.New("token is invalid")
)

// Maker описывает интерфейс для выпуска и проверки токенов сессии.
type Maker interface {
	// GenerateToken подписывает произвольный claims-пейлоад
	GenerateToken(claims map[string]any) (string, error)
	// ParseToken возвращает *CustomClaims с исходным пейлоадом
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
