// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization
// и в случае успеха добавляет в контекст claims для дальнейшего использования
// в обработчиках.
//
// Отсутствие заголовка возвращает HTTP 403, невалидный или просроченный токен — 401.
// Причину отказа (битый токен или истёкший) клиенту не раскрываем.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-manager/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// Claims — ключ, под которым в контексте лежат декодированные claims токена.
const Claims Key = "claims"

// Verifier описывает интерфейс проверки JWT токена.
type Verifier interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден, добавляет claims в контекст запроса,
// иначе завершает запрос ошибкой без вызова обработчика.
func JWTMiddleware(maker Verifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log = log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if authHeader == "" {
				log.Error("no token provided")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("No token provided"))
				return
			}

			// Ожидается формат "Bearer <token>", голый токен не принимается
			_, tokenStr, found := strings.Cut(authHeader, " ")
			if !found {
				log.Error("malformed authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid token"))
				return
			}

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid token"))
				return
			}
			ctx := context.WithValue(r.Context(), Claims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
