package wizard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	bookingModel "venue-booking/models/booking"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *Session {
	capacity := 500
	return &Session{
		ID:           "0b7c8a9e-3f21-4b5e-9d47-1c2a3e4f5a6b",
		Step:         StepDetails,
		PaymentState: PaymentIdle,
		Item: Item{
			Kind:     bookingModel.ItemKindVenue,
			ID:       1,
			Name:     "Luxury Banquet Hall",
			Price:    50000,
			Capacity: &capacity,
			City:     "Mumbai",
		},
		Date:      "2026-10-15",
		CreatedAt: time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisStoreSave(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	s := sampleSession()
	payload, err := json.Marshal(s)
	require.NoError(t, err)

	mock.ExpectSet(sessionKeyPrefix+s.ID, payload, SessionTTL).SetVal("OK")

	require.NoError(t, store.Save(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	s := sampleSession()
	payload, err := json.Marshal(s)
	require.NoError(t, err)

	mock.ExpectGet(sessionKeyPrefix + s.ID).SetVal(string(payload))

	got, err := store.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, StepDetails, got.Step)
	assert.Equal(t, "Luxury Banquet Hall", got.Item.Name)
	require.NotNil(t, got.Item.Capacity)
	assert.Equal(t, 500, *got.Item.Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGetMissing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	mock.ExpectGet(sessionKeyPrefix + "missing").RedisNil()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	mock.ExpectDel(sessionKeyPrefix + "some-id").SetVal(1)

	require.NoError(t, store.Delete(context.Background(), "some-id"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
