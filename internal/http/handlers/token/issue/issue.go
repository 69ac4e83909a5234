// Package issue реализует HTTP-обработчик выпуска токена сессии.
//
// Обработчик принимает произвольный JSON-объект пользователя, подписывает его
// как claims и возвращает токен. Содержимое объекта не проверяется:
// маршрут исторически открыт и повторяет то, что прислал фронтенд.
package issue

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
)

// Handler обрабатывает запросы на выпуск токена сессии.
type Handler struct {
	log   *slog.Logger
	maker Maker
}

// Maker описывает интерфейс выпуска токена с произвольным пейлоадом.
type Maker interface {
	GenerateToken(user map[string]any) (string, error)
}

// New создает новый Handler с переданным логгером и генератором токенов.
func New(log *slog.Logger, maker Maker) *Handler {
	return &Handler{
		log:   log,
		maker: maker,
	}
}

// ServeHTTP godoc
// @Summary Выпуск токена сессии
// @Description Подписывает присланный объект пользователя и возвращает JWT со сроком действия 24 часа.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body map[string]any true "Объект пользователя"
// @Success 200 {object} response.Response "Токен выпущен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /jwt [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.token.issue"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var user map[string]any
	if err := render.DecodeJSON(r.Body, &user); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	token, err := h.maker.GenerateToken(user)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to generate token"))
		return
	}

	log.Info("token issued")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
	}))
}
