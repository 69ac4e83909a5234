// Package edit реализует HTTP-обработчик частичного редактирования профиля.
// Перезаписываются только поля, присутствующие в запросе; в ответ уходит
// запись после обновления.
package edit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/http/response"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/models"
	userservice "github.com/magabrotheeeer/gym-manager/internal/services/user"
)

// Handler обрабатывает запросы на частичное редактирование профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики редактирования профиля.
type Service interface {
	Edit(ctx context.Context, id primitive.ObjectID, req models.DummyEditUser) (*models.User, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Редактирование профиля
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя"
// @Param request body models.DummyEditUser true "Изменяемые поля"
// @Success 200 {object} response.Response "Профиль обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или пустой запрос"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /edit-user/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.edit"

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

	var req models.DummyEditUser
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	user, err := h.service.Edit(r.Context(), id, req)
	switch {
	case errors.Is(err, userservice.ErrNoFieldsToUpdate):
		log.Error("no fields to update")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no fields to update"))
		return
	case errors.Is(err, userservice.ErrNotFound):
		log.Error("user not found", slog.String("id", id.Hex()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("User not found"))
		return
	case err != nil:
		log.Error("failed to edit user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to update user."))
		return
	}

	log.Info("edited user", slog.String("id", id.Hex()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":     "User updated successfully",
		"updatedUser": user,
	}))
}
