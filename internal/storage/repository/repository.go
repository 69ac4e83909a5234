// Package repository реализует хранилище данных на основе MongoDB
// для управления пользователями зала и расписаниями занятий. Предоставляет методы
// создания, чтения, обновления и удаления записей, а также условные обновления,
// выполняемые атомарно на стороне базы.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/gym-manager/internal/storage/mongodb"
)

// ErrNotFound запись не найдена в коллекции.
var ErrNotFound = errors.New("record not found")

// Storage инкапсулирует коллекции MongoDB и реализует методы
// работы с пользователями и расписаниями.
type Storage struct {
	users     *mongo.Collection
	schedules *mongo.Collection
}

// New создаёт репозиторий поверх подключения к MongoDB.
func New(db *mongodb.Storage) *Storage {
	return &Storage{
		users:     db.Users,
		schedules: db.Schedules,
	}
}
