package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// InsertSchedule вставляет новый слот занятия и возвращает ID, назначенный базой.
func (s *Storage) InsertSchedule(ctx context.Context, schedule models.ClassSchedule) (string, error) {
	const op = "storage.InsertSchedule"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.schedules.InsertOne(ctx, schedule)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListSchedules возвращает все слоты занятий.
func (s *Storage) ListSchedules(ctx context.Context) ([]*models.ClassSchedule, error) {
	const op = "storage.ListSchedules"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cursor, err := s.schedules.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.ClassSchedule
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveSchedule удаляет слот по ID и возвращает количество удалённых записей.
func (s *Storage) RemoveSchedule(ctx context.Context, id primitive.ObjectID) (int, error) {
	const op = "storage.RemoveSchedule"

	res, err := s.schedules.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(res.DeletedCount), nil
}

// AppendBooking атомарно дописывает ID пользователя в список bookings слота.
// Операция идёт одним $push без предварительного чтения, поэтому конкурирующие
// записи в один слот не теряются. Возвращает число изменённых записей.
func (s *Storage) AppendBooking(ctx context.Context, id primitive.ObjectID, userID string) (int, error) {
	const op = "storage.AppendBooking"

	res, err := s.schedules.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"bookings": userID}},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(res.ModifiedCount), nil
}
