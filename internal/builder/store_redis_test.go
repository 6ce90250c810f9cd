package builder

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumate-backend/internal/resumes"
)

func TestRedisStorePutAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	session := NewSession(resumes.Resume{ID: "resume-1", OwnerID: "user-1", Title: "My Resume"})
	data, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet("builder:session:resume-1", data, time.Hour).SetVal("OK")
	require.NoError(t, store.Put(ctx, session))

	mock.ExpectGet("builder:session:resume-1").SetVal(string(data))
	got, err := store.Get(ctx, "resume-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.OwnerID)
	assert.Equal(t, "My Resume", got.Draft.Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreMissingSession(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, 0)

	mock.ExpectGet("builder:session:absent").RedisNil()

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, 0)

	mock.ExpectDel("builder:session:resume-1").SetVal(1)

	require.NoError(t, store.Delete(context.Background(), "resume-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
