// Package services содержит бизнес-логику для управления пользователями зала:
// регистрация, чтение, удаление, редактирование профиля и переходы статуса.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/models"
	"github.com/magabrotheeeer/gym-manager/internal/storage/repository"
)

// Ошибки бизнес-логики. Обработчики транслируют их в HTTP-статусы.
var (
	// ErrNotFound запись не найдена либо условное обновление не изменило ни одной записи.
	// Эти два случая намеренно не различаются.
	ErrNotFound = errors.New("not found or no change")
	// ErrInvalidStatus неизвестное значение статуса в запросе перехода.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrNoFieldsToUpdate в запросе редактирования нет ни одного поля.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// InsertUser добавляет нового пользователя и возвращает его ID.
	InsertUser(ctx context.Context, user models.User) (string, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// FindUserByEmail возвращает пользователя по email.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// RemoveUser удаляет пользователя по ID и возвращает количество удалённых записей.
	RemoveUser(ctx context.Context, id primitive.ObjectID) (int, error)
	// SetUserStatusPending безусловно выставляет статус Pending.
	SetUserStatusPending(ctx context.Context, id primitive.ObjectID) (int, error)
	// ApproveTrainer условно переводит Pending -> Accepted с ролью Trainer.
	ApproveTrainer(ctx context.Context, id primitive.ObjectID) (int, error)
	// UpdateSalary перезаписывает зарплату пользователя.
	UpdateSalary(ctx context.Context, id primitive.ObjectID, salary float64) (int, error)
	// EditUser применяет частичное обновление профиля и возвращает запись после него.
	EditUser(ctx context.Context, id primitive.ObjectID, req models.DummyEditUser) (*models.User, error)
}

// UserService реализует бизнес-логику работы с пользователями.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// Create регистрирует нового пользователя и возвращает его ID.
func (s *UserService) Create(ctx context.Context, req models.DummyUser) (string, error) {
	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Country:        req.Country,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Status:         req.Status,
	}

	id, err := s.repo.InsertUser(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info("created new user", slog.String("id", id))
	return id, nil
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// ReadByEmail возвращает пользователя по email или ErrNotFound.
func (s *UserService) ReadByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Remove удаляет пользователя по ID. Успех только если удалена ровно одна запись,
// повторное удаление того же ID вернёт ErrNotFound.
func (s *UserService) Remove(ctx context.Context, id primitive.ObjectID) error {
	count, err := s.repo.RemoveUser(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	s.log.Info("removed user", slog.String("id", id.Hex()))
	return nil
}

// UpdateStatus выполняет переход статуса пользователя.
//
// Машина состояний:
//   - Pending: безусловный идемпотентный возврат в состояние Pending, роль не меняется;
//   - Accepted: срабатывает только если текущий статус Pending, тогда вместе со
//     статусом атомарно выставляется роль Trainer; иначе ErrNotFound;
//   - любое другое значение: ErrInvalidStatus, запрос к базе не выполняется.
func (s *UserService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	switch status {
	case models.StatusPending:
		count, err := s.repo.SetUserStatusPending(ctx, id)
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	case models.StatusAccepted:
		count, err := s.repo.ApproveTrainer(ctx, id)
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		s.log.Info("approved trainer", slog.String("id", id.Hex()))
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return nil
}

// UpdateSalary безусловно перезаписывает зарплату. Отсутствие записи
// не считается ошибкой: маршрут исторически отвечает успехом в любом случае.
func (s *UserService) UpdateSalary(ctx context.Context, id primitive.ObjectID, salary float64) error {
	count, err := s.repo.UpdateSalary(ctx, id, salary)
	if err != nil {
		return err
	}
	if count == 0 {
		s.log.Warn("salary update matched no user", slog.String("id", id.Hex()))
	}
	return nil
}

// Edit применяет частичное редактирование профиля: перезаписываются только
// присланные поля. Возвращает запись после обновления.
func (s *UserService) Edit(ctx context.Context, id primitive.ObjectID, req models.DummyEditUser) (*models.User, error) {
	if req.Name == nil && req.Phone == nil && req.Address == nil &&
		req.Country == nil && req.Specialization == nil && req.Experience == nil {
		return nil, ErrNoFieldsToUpdate
	}

	user, err := s.repo.EditUser(ctx, id, req)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.log.Info("edited user profile", slog.String("id", id.Hex()))
	return user, nil
}
