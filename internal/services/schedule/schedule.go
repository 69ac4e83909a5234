// Package services содержит бизнес-логику для управления расписаниями занятий
// и записью пользователей в слоты.
package services

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// ErrNotFound запись не найдена либо обновление не изменило ни одной записи.
var ErrNotFound = errors.New("not found or no change")

// ScheduleRepository определяет методы для работы с расписаниями в хранилище.
type ScheduleRepository interface {
	// InsertSchedule добавляет новый слот и возвращает его ID.
	InsertSchedule(ctx context.Context, schedule models.ClassSchedule) (string, error)
	// ListSchedules возвращает все слоты.
	ListSchedules(ctx context.Context) ([]*models.ClassSchedule, error)
	// RemoveSchedule удаляет слот по ID и возвращает количество удалённых записей.
	RemoveSchedule(ctx context.Context, id primitive.ObjectID) (int, error)
	// AppendBooking атомарно дописывает ID пользователя в bookings слота.
	AppendBooking(ctx context.Context, id primitive.ObjectID, userID string) (int, error)
}

// ScheduleService реализует бизнес-логику работы с расписаниями.
type ScheduleService struct {
	repo ScheduleRepository
	log  *slog.Logger
}

// NewScheduleService создает новый экземпляр ScheduleService.
func NewScheduleService(repo ScheduleRepository, log *slog.Logger) *ScheduleService {
	return &ScheduleService{
		repo: repo,
		log:  log,
	}
}

// Create создаёт новый слот занятия и возвращает его ID.
func (s *ScheduleService) Create(ctx context.Context, req models.DummySchedule) (string, error) {
	schedule := models.ClassSchedule{
		TrainerID: req.TrainerID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	id, err := s.repo.InsertSchedule(ctx, schedule)
	if err != nil {
		return "", err
	}

	s.log.Info("created new schedule", slog.String("id", id))
	return id, nil
}

// List возвращает все слоты занятий.
func (s *ScheduleService) List(ctx context.Context) ([]*models.ClassSchedule, error) {
	return s.repo.ListSchedules(ctx)
}

// Remove удаляет слот по ID, повторное удаление вернёт ErrNotFound.
func (s *ScheduleService) Remove(ctx context.Context, id primitive.ObjectID) error {
	count, err := s.repo.RemoveSchedule(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	s.log.Info("removed schedule", slog.String("id", id.Hex()))
	return nil
}

// Book дописывает пользователя в список записей слота. Дубликаты не отсекаются,
// лимит мест не проверяется: список только растёт.
func (s *ScheduleService) Book(ctx context.Context, id primitive.ObjectID, userID string) error {
	count, err := s.repo.AppendBooking(ctx, id, userID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	s.log.Info("added booking", slog.String("schedule_id", id.Hex()), slog.String("user_id", userID))
	return nil
}
