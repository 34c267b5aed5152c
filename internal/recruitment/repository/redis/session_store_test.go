package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/gohire/recruitment-service/internal/recruitment/domain"
	store "github.com/gohire/recruitment-service/internal/recruitment/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) (*store.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewSessionStore(client), mr
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "b3f1c0de-0000-4000-8000-000000000001",
		PersonID:  7,
		Username:  "alice",
		Role:      domain.RoleRecruiter,
		CreatedAt: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, s.Save(ctx, session, 30*time.Minute))
	assert.True(t, mr.Exists("session:"+session.ID))
	assert.Equal(t, 30*time.Minute, mr.TTL("session:"+session.ID))

	got, err := s.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.PersonID, got.PersonID)
	assert.Equal(t, session.Username, got.Username)
	assert.Equal(t, session.Role, got.Role)
	assert.True(t, session.CreatedAt.Equal(got.CreatedAt))
}

func TestSessionStore_Expiry(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Session{ID: "short", PersonID: 1}, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := s.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Delete(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Session{ID: "gone", PersonID: 1}, time.Minute))
	require.NoError(t, s.Delete(ctx, "gone"))
	assert.False(t, mr.Exists("session:gone"))

	got, err := s.Get(ctx, "gone")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_GetUnknown(t *testing.T) {
	s, _ := newMiniredisStore(t)

	got, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_CorruptPayload(t *testing.T) {
	s, mr := newMiniredisStore(t)
	require.NoError(t, mr.Set("session:corrupt", "{not json"))

	_, err := s.Get(context.Background(), "corrupt")
	assert.ErrorContains(t, err, "failed to decode session")
}

func TestSessionStore_RedisErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := store.NewSessionStore(client)
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		mock.ExpectGet("session:abc").SetErr(errors.New("connection reset"))

		_, err := s.Get(ctx, "abc")
		assert.ErrorContains(t, err, "failed to load session")
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectDel("session:abc").SetErr(errors.New("connection reset"))

		err := s.Delete(ctx, "abc")
		assert.ErrorContains(t, err, "failed to delete session")
	})

	t.Run("ping", func(t *testing.T) {
		mock.ExpectPing().SetErr(errors.New("connection refused"))

		err := s.Ping(ctx)
		assert.ErrorContains(t, err, "redis ping failed")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
