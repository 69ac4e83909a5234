package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

func TestScheduleLifecycle_Integration(t *testing.T) {
	repo, _, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(repo)

	id := factory.CreateSchedule(t, models.ClassSchedule{
		TrainerID: "trainer-1",
		Date:      "2025-06-15",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NotEmpty(t, id)

	list, err := repo.ListSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "trainer-1", list[0].TrainerID)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	count, err := repo.RemoveSchedule(ctx, oid)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Повторное удаление ничего не находит
	count, err = repo.RemoveSchedule(ctx, oid)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	list, err = repo.ListSchedules(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAppendBooking_Integration(t *testing.T) {
	repo, db, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(repo)

	id := factory.CreateSchedule(t, models.ClassSchedule{
		TrainerID: "trainer-1",
		Date:      "2025-06-15",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	count, err := repo.AppendBooking(ctx, oid, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.AppendBooking(ctx, oid, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Несуществующий слот
	count, err = repo.AppendBooking(ctx, primitive.NewObjectID(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var schedule models.ClassSchedule
	err = db.Schedules.FindOne(ctx, bson.M{"_id": oid}).Decode(&schedule)
	require.NoError(t, err)
	assert.Len(t, schedule.Bookings, 2)
	assert.Contains(t, schedule.Bookings, "user-1")
}

func TestAppendBooking_Concurrent_Integration(t *testing.T) {
	repo, db, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(repo)

	id := factory.CreateSchedule(t, models.ClassSchedule{
		TrainerID: "trainer-1",
		Date:      "2025-06-16",
		StartTime: "12:00",
		EndTime:   "13:00",
	})
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	// Две конкурирующие записи в один слот: обе должны сохраниться,
	// потому что добавление идёт атомарным $push без чтения-модификации-записи
	var wg sync.WaitGroup
	errs := make([]error, 2)
	users := []string{"user-a", "user-b"}
	for i, userID := range users {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			_, errs[i] = repo.AppendBooking(ctx, oid, userID)
		}(i, userID)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	var schedule models.ClassSchedule
	err = db.Schedules.FindOne(ctx, bson.M{"_id": oid}).Decode(&schedule)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-a", "user-b"}, schedule.Bookings)
}
