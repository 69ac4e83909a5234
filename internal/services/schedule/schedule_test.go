package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// MockRepo реализует интерфейс ScheduleRepository
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) InsertSchedule(ctx context.Context, schedule models.ClassSchedule) (string, error) {
	args := m.Called(ctx, schedule)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) ListSchedules(ctx context.Context) ([]*models.ClassSchedule, error) {
	args := m.Called(ctx)
	schedules, _ := args.Get(0).([]*models.ClassSchedule)
	return schedules, args.Error(1)
}

func (m *MockRepo) RemoveSchedule(ctx context.Context, id primitive.ObjectID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) AppendBooking(ctx context.Context, id primitive.ObjectID, userID string) (int, error) {
	args := m.Called(ctx, id, userID)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestScheduleService_Create(t *testing.T) {
	mockRepo := new(MockRepo)
	mockRepo.On("InsertSchedule", mock.Anything, mock.MatchedBy(func(s models.ClassSchedule) bool {
		return s.TrainerID == "trainer-1" && s.Date == "2025-09-01"
	})).Return("64f0c0ffee0c0ffee0c0ffee", nil)

	service := NewScheduleService(mockRepo, newNoopLogger())

	id, err := service.Create(context.Background(), models.DummySchedule{
		TrainerID: "trainer-1",
		Date:      "2025-09-01",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "64f0c0ffee0c0ffee0c0ffee", id)
	mockRepo.AssertExpectations(t)
}

func TestScheduleService_Book(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		setupMock func(*MockRepo)
		wantErr   error
	}{
		{
			name: "успешная запись в слот",
			setupMock: func(m *MockRepo) {
				m.On("AppendBooking", mock.Anything, id, "user-1").Return(1, nil)
			},
		},
		{
			name: "слот не найден",
			setupMock: func(m *MockRepo) {
				m.On("AppendBooking", mock.Anything, id, "user-1").Return(0, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "ошибка хранилища",
			setupMock: func(m *MockRepo) {
				m.On("AppendBooking", mock.Anything, id, "user-1").Return(0, errors.New("db error"))
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepo)
			tt.setupMock(mockRepo)

			service := NewScheduleService(mockRepo, newNoopLogger())

			err := service.Book(context.Background(), id, "user-1")

			switch tt.name {
			case "ошибка хранилища":
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrNotFound)
			default:
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestScheduleService_Remove(t *testing.T) {
	id := primitive.NewObjectID()

	mockRepo := new(MockRepo)
	mockRepo.On("RemoveSchedule", mock.Anything, id).Return(1, nil).Once()
	mockRepo.On("RemoveSchedule", mock.Anything, id).Return(0, nil).Once()

	service := NewScheduleService(mockRepo, newNoopLogger())

	// первое удаление проходит, повторное сообщает об отсутствии
	require.NoError(t, service.Remove(context.Background(), id))
	assert.ErrorIs(t, service.Remove(context.Background(), id), ErrNotFound)
	mockRepo.AssertExpectations(t)
}
