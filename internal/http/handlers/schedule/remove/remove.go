package remove

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
	scheduleservice "github.com/magabrotheeeer/gym-manager/internal/services/schedule"
)

// Handler обрабатывает запросы на удаление слота занятия.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления слота.
type Service interface {
	Remove(ctx context.Context, id primitive.ObjectID) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление слота занятия
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID слота"
// @Success 200 {object} response.Response "Слот удалён"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Слот не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /schedule/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.schedule.remove"

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

	err = h.service.Remove(r.Context(), id)
	if errors.Is(err, scheduleservice.ErrNotFound) {
		log.Error("schedule not found", slog.String("id", id.Hex()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Schedule not found"))
		return
	}
	if err != nil {
		log.Error("failed to delete schedule", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to delete schedule."))
		return
	}

	log.Info("deleted schedule", slog.String("id", id.Hex()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "Schedule deleted successfully",
		"id":      id.Hex(),
	}))
}
