package consumer

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) CreateIfNotConsumed(ctx context.Context, n *domain.Notification, eventKey string) (bool, error) {
	args := m.Called(ctx, n, eventKey)
	return args.Bool(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBikeCreatedWorker_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("2024 bike persists a notification", func(t *testing.T) {
		repo := new(mockNotificationRepo)
		w := NewBikeCreatedWorker(nil, repo, discardLogger())

		repo.On("CreateIfNotConsumed", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.BikeID == "bike-1" &&
				n.BikeYear == 2024 &&
				n.Message == "Bike BIKE-0001 from 2024 created."
		}), "bike.created:bike-1").Return(true, nil)

		err := w.handle(ctx, []byte(`{"bikeId":"bike-1","identifier":"BIKE-0001","year":2024}`))
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Other years are dropped without persisting", func(t *testing.T) {
		repo := new(mockNotificationRepo)
		w := NewBikeCreatedWorker(nil, repo, discardLogger())

		err := w.handle(ctx, []byte(`{"bikeId":"bike-2","identifier":"BIKE-0002","year":2023}`))
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "CreateIfNotConsumed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redelivered event is a clean no-op", func(t *testing.T) {
		repo := new(mockNotificationRepo)
		w := NewBikeCreatedWorker(nil, repo, discardLogger())

		repo.On("CreateIfNotConsumed", ctx, mock.Anything, "bike.created:bike-1").Return(false, nil)

		err := w.handle(ctx, []byte(`{"bikeId":"bike-1","identifier":"BIKE-0001","year":2024}`))
		assert.NoError(t, err)
	})

	t.Run("Malformed payload is an error", func(t *testing.T) {
		repo := new(mockNotificationRepo)
		w := NewBikeCreatedWorker(nil, repo, discardLogger())

		err := w.handle(ctx, []byte(`{not json`))
		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreateIfNotConsumed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		repo := new(mockNotificationRepo)
		w := NewBikeCreatedWorker(nil, repo, discardLogger())

		repo.On("CreateIfNotConsumed", ctx, mock.Anything, mock.Anything).Return(false, assert.AnError)

		err := w.handle(ctx, []byte(`{"bikeId":"bike-1","identifier":"BIKE-0001","year":2024}`))
		assert.Error(t, err)
	})
}
