package store

import (
	"context"
	"errors"
	"testing"

	"flashdeck/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	st := NewRedisStore(client)
	ctx := context.Background()

	mock.ExpectGet(DecksKey).SetVal(`[{"id":"d1"}]`)
	value, err := st.Get(ctx, DecksKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"d1"}]`, value)

	mock.ExpectGet(SessionKey).RedisNil()
	_, err = st.Get(ctx, SessionKey)
	assert.True(t, errors.Is(err, domain.ErrKeyNotFound))

	serverErr := errors.New("connection refused")
	mock.ExpectGet(ProgressKey).SetErr(serverErr)
	_, err = st.Get(ctx, ProgressKey)
	assert.ErrorIs(t, err, serverErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	st := NewRedisStore(client)
	ctx := context.Background()

	mock.ExpectSet(DecksKey, `[]`, 0).SetVal("OK")
	assert.NoError(t, st.Set(ctx, DecksKey, `[]`))

	setErr := errors.New("read only replica")
	mock.ExpectSet(DecksKey, `[]`, 0).SetErr(setErr)
	assert.ErrorIs(t, st.Set(ctx, DecksKey, `[]`), setErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	st := NewRedisStore(client)
	ctx := context.Background()

	mock.ExpectDel(SessionKey).SetVal(1)
	assert.NoError(t, st.Delete(ctx, SessionKey))

	// Deleting an absent key reports zero removed, which is still success.
	mock.ExpectDel(SessionKey).SetVal(0)
	assert.NoError(t, st.Delete(ctx, SessionKey))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	st := NewRedisStore(client)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, st.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
