package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/gym-manager/internal/config"
	"github.com/magabrotheeeer/gym-manager/internal/models"
	"github.com/magabrotheeeer/gym-manager/internal/storage/mongodb"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	repo *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(repo *Storage) *TestDataFactory {
	return &TestDataFactory{repo: repo}
}

// CreateUser создает тестового пользователя и возвращает его ID
func (f *TestDataFactory) CreateUser(t *testing.T, user models.User) string {
	id, err := f.repo.InsertUser(context.Background(), user)
	require.NoError(t, err)
	return id
}

// CreateSchedule создает тестовый слот занятия и возвращает его ID
func (f *TestDataFactory) CreateSchedule(t *testing.T, schedule models.ClassSchedule) string {
	id, err := f.repo.InsertSchedule(context.Background(), schedule)
	require.NoError(t, err)
	return id
}

func setupTestDb(t *testing.T) (*Storage, *mongodb.Storage, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("27017/tcp"),
			wait.ForLog("Waiting for connections"),
		).WithDeadline(3 * time.Minute),
	}

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	port, err := mongoContainer.MappedPort(ctx, "27017")
	require.NoError(t, err, "failed to get port")

	uri := fmt.Sprintf("mongodb://localhost:%s", port.Port())

	// Пробуем подключиться несколько раз с ретраями
	var db *mongodb.Storage
	for i := 0; i < 10; i++ {
		db, err = mongodb.New(ctx, config.Mongo{
			URI:            uri,
			Database:       "GymWebTest",
			ConnectTimeout: 5 * time.Second,
		})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to connect to mongo after retries")

	repo := New(db)

	cleanup := func() {
		_ = db.Close(ctx)
		_ = mongoContainer.Terminate(ctx)
	}

	return repo, db, cleanup
}
