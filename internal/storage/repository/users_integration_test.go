package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

func TestUserLifecycle_Integration(t *testing.T) {
	repo, _, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(repo)

	id := factory.CreateUser(t, models.User{
		Name:   "Иван Петров",
		Email:  "ivan@example.com",
		Phone:  "+79990001122",
		Status: models.StatusPending,
		Role:   models.RoleTrainee,
	})
	require.NotEmpty(t, id)

	// Пользователь находится по email
	found, err := repo.FindUserByEmail(ctx, "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Иван Петров", found.Name)
	assert.Equal(t, models.StatusPending, found.Status)

	// После удаления поиск возвращает ErrNotFound
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	count, err := repo.RemoveUser(ctx, oid)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = repo.FindUserByEmail(ctx, "ivan@example.com")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRemoveUser_Idempotent_Integration(t *testing.T) {
	repo, _, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(repo)

	id := factory.CreateUser(t, models.User{
		Email:  "repeat@example.com",
		Status: models.StatusPending,
	})
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	count, err := repo.RemoveUser(ctx, oid)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Повторное удаление не ошибка, просто ноль удалённых записей
	count, err = repo.RemoveUser(ctx, oid)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestApproveTrainer_Integration(t *testing.T) {
	repo, _, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(repo)

	t.Run("Успешный перевод Pending в Accepted", func(t *testing.T) {
		id := factory.CreateUser(t, models.User{
			Email:  "pending@example.com",
			Status: models.StatusPending,
			Role:   models.RoleTrainee,
		})
		oid, err := primitive.ObjectIDFromHex(id)
		require.NoError(t, err)

		count, err := repo.ApproveTrainer(ctx, oid)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		found, err := repo.FindUserByEmail(ctx, "pending@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, found.Status)
		assert.Equal(t, models.RoleTrainer, found.Role)

		// Повторное одобрение ничего не меняет: статус уже не Pending
		count, err = repo.ApproveTrainer(ctx, oid)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Пользователь не в статусе Pending не одобряется", func(t *testing.T) {
		id := factory.CreateUser(t, models.User{
			Email:  "accepted@example.com",
			Status: models.StatusAccepted,
			Role:   models.RoleTrainee,
		})
		oid, err := primitive.ObjectIDFromHex(id)
		require.NoError(t, err)

		count, err := repo.ApproveTrainer(ctx, oid)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		// Роль осталась прежней
		found, err := repo.FindUserByEmail(ctx, "accepted@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.RoleTrainee, found.Role)
	})

	t.Run("Несуществующий пользователь", func(t *testing.T) {
		count, err := repo.ApproveTrainer(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestEditUser_Integration(t *testing.T) {
	repo, _, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(repo)

	id := factory.CreateUser(t, models.User{
		Name:    "Анна Смирнова",
		Email:   "anna@example.com",
		Phone:   "+79991112233",
		Country: "Russia",
		Status:  models.StatusPending,
	})
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	newPhone := "+79995556677"
	updated, err := repo.EditUser(ctx, oid, models.DummyEditUser{Phone: &newPhone})
	require.NoError(t, err)

	// Обновляется только переданное поле, остальные не трогаются
	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, "Анна Смирнова", updated.Name)
	assert.Equal(t, "Russia", updated.Country)

	_, err = repo.EditUser(ctx, primitive.NewObjectID(), models.DummyEditUser{Phone: &newPhone})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateSalary_Integration(t *testing.T) {
	repo, _, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(repo)

	id := factory.CreateUser(t, models.User{
		Email:  "trainer@example.com",
		Status: models.StatusAccepted,
		Role:   models.RoleTrainer,
	})
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	count, err := repo.UpdateSalary(ctx, oid, 45000)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	found, err := repo.FindUserByEmail(ctx, "trainer@example.com")
	require.NoError(t, err)
	require.NotNil(t, found.Salary)
	assert.InDelta(t, 45000, *found.Salary, 0.001)
}
