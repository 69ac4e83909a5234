package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// InsertUser вставляет нового пользователя и возвращает ID, назначенный базой.
func (s *Storage) InsertUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.InsertUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListUsers возвращает всех пользователей коллекции.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.User
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindUserByEmail возвращает пользователя по email или ErrNotFound.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"

	var result models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// RemoveUser удаляет пользователя по ID и возвращает количество удалённых записей.
func (s *Storage) RemoveUser(ctx context.Context, id primitive.ObjectID) (int, error) {
	const op = "storage.RemoveUser"

	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(res.DeletedCount), nil
}

// SetUserStatusPending безусловно выставляет статус Pending.
// Повторный перевод в Pending допустим, поэтому возвращается число совпавших записей.
func (s *Storage) SetUserStatusPending(ctx context.Context, id primitive.ObjectID) (int, error) {
	const op = "storage.SetUserStatusPending"

	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.StatusPending}},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(res.MatchedCount), nil
}

// ApproveTrainer атомарно переводит пользователя Pending -> Accepted и выставляет роль Trainer.
// Предикат status == Pending входит в фильтр обновления: конкурирующие запросы
// на одного пользователя не дадут двойного перехода. Возвращает число изменённых записей.
func (s *Storage) ApproveTrainer(ctx context.Context, id primitive.ObjectID) (int, error) {
	const op = "storage.ApproveTrainer"

	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.StatusPending},
		bson.M{"$set": bson.M{
			"status": models.StatusAccepted,
			"role":   models.RoleTrainer,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(res.ModifiedCount), nil
}

// UpdateSalary безусловно перезаписывает зарплату пользователя.
func (s *Storage) UpdateSalary(ctx context.Context, id primitive.ObjectID, salary float64) (int, error) {
	const op = "storage.UpdateSalary"

	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"salary": salary}},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(res.MatchedCount), nil
}

// EditUser применяет частичное обновление профиля: перезаписываются только
// поля, присутствующие в запросе. Возвращает запись после обновления или ErrNotFound.
func (s *Storage) EditUser(ctx context.Context, id primitive.ObjectID, req models.DummyEditUser) (*models.User, error) {
	const op = "storage.EditUser"

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.Specialization != nil {
		fields["specialization"] = *req.Specialization
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}

	var result models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
