// Package mongodb инкапсулирует подключение к MongoDB
// и хэндлы коллекций пользователей и расписаний.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/magabrotheeeer/gym-manager/internal/config"
)

// Storage хранит клиент MongoDB и коллекции приложения.
// Клиент безопасен для конкурентного использования из обработчиков.
type Storage struct {
	Client    *mongo.Client
	Users     *mongo.Collection
	Schedules *mongo.Collection
}

// New создаёт подключение к MongoDB и проверяет его пингом.
func New(ctx context.Context, cfg config.Mongo) (*Storage, error) {
	const op = "storage.mongodb.New"

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(cfg.Database)
	return &Storage{
		Client:    client,
		Users:     db.Collection("Users"),
		Schedules: db.Collection("Schedules"),
	}, nil
}

// Close разрывает подключение к MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	const op = "storage.mongodb.Close"
	if err := s.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
