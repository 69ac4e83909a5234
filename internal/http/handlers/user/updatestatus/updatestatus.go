// Package updatestatus реализует HTTP-обработчик перехода статуса пользователя.
//
// Переход Pending -> Accepted выполняется условным обновлением на стороне базы
// и вместе со статусом выставляет роль Trainer. Любое значение статуса,
// кроме Pending и Accepted, отклоняется без обращения к базе.
package updatestatus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/models"
	userservice "github.com/magabrotheeeer/gym-manager/internal/services/user"
)

// Handler обрабатывает запросы на смену статуса пользователя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики перехода статуса.
type Service interface {
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Смена статуса пользователя
// @Description Pending — идемпотентный возврат в ожидание; Accepted — условное одобрение, выставляющее роль Trainer.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя"
// @Param request body models.DummyStatusUpdate true "Новый статус"
// @Success 200 {object} response.Response "Статус обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или статус"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден или условие не выполнено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /user/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.updatestatus"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req models.DummyStatusUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	err = h.service.UpdateStatus(r.Context(), id, req.Status)
	switch {
	case errors.Is(err, userservice.ErrInvalidStatus):
		log.Error("invalid status value", slog.String("status", req.Status))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid status value"))
		return
	case errors.Is(err, userservice.ErrNotFound):
		log.Error("user not found or no change", slog.String("id", id.Hex()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("User not found or status not changed"))
		return
	case err != nil:
		log.Error("failed to update status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to update status."))
		return
	}

	log.Info("updated user status", slog.String("id", id.Hex()), slog.String("status", req.Status))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "Status updated successfully",
		"id":      id.Hex(),
	}))
}
