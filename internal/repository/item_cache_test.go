package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/akulagin/itemshare/internal/domain"
	"github.com/akulagin/itemshare/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestCachedItemRepo_GetByID_CacheHit(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	inner := mocks.NewMockItemRepo(t)

	repo := NewCachedItemRepo(inner, rdb, time.Minute, newTestLogger(t))

	item := &domain.Item{ID: "i1", OwnerID: "owner", Name: "Drill", Available: true}
	data, err := json.Marshal(item)
	require.NoError(t, err)

	redisMock.ExpectGet("item:i1").SetVal(string(data))

	got, err := repo.GetByID(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, item, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCachedItemRepo_GetByID_CacheMissFillsCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	inner := mocks.NewMockItemRepo(t)

	repo := NewCachedItemRepo(inner, rdb, time.Minute, newTestLogger(t))

	item := &domain.Item{ID: "i1", OwnerID: "owner", Name: "Drill", Available: true}
	data, err := json.Marshal(item)
	require.NoError(t, err)

	redisMock.ExpectGet("item:i1").RedisNil()
	inner.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	redisMock.ExpectSet("item:i1", data, time.Minute).SetVal("OK")

	got, err := repo.GetByID(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, item, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCachedItemRepo_GetByID_RedisDownFallsThrough(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	inner := mocks.NewMockItemRepo(t)

	repo := NewCachedItemRepo(inner, rdb, time.Minute, newTestLogger(t))

	item := &domain.Item{ID: "i1", Name: "Drill"}
	data, err := json.Marshal(item)
	require.NoError(t, err)

	redisMock.ExpectGet("item:i1").SetErr(errors.New("connection refused"))
	inner.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	redisMock.ExpectSet("item:i1", data, time.Minute).SetErr(errors.New("connection refused"))

	got, err := repo.GetByID(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestCachedItemRepo_GetByID_InnerError(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	inner := mocks.NewMockItemRepo(t)

	repo := NewCachedItemRepo(inner, rdb, time.Minute, newTestLogger(t))

	redisMock.ExpectGet("item:i1").RedisNil()
	inner.EXPECT().GetByID(mock.Anything, "i1").Return(nil, domain.NewMissing("item not found"))

	_, err := repo.GetByID(context.Background(), "i1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCachedItemRepo_Update_Invalidates(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	inner := mocks.NewMockItemRepo(t)

	repo := NewCachedItemRepo(inner, rdb, time.Minute, newTestLogger(t))

	item := &domain.Item{ID: "i1", Name: "Drill"}

	inner.EXPECT().Update(mock.Anything, item).Return(nil)
	redisMock.ExpectDel("item:i1").SetVal(1)

	require.NoError(t, repo.Update(context.Background(), item))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCachedItemRepo_Update_InnerErrorSkipsInvalidation(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	inner := mocks.NewMockItemRepo(t)

	repo := NewCachedItemRepo(inner, rdb, time.Minute, newTestLogger(t))

	item := &domain.Item{ID: "i1"}
	inner.EXPECT().Update(mock.Anything, item).Return(errors.New("db down"))

	assert.Error(t, repo.Update(context.Background(), item))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCachedItemRepo_PassThroughMethods(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	inner := mocks.NewMockItemRepo(t)

	repo := NewCachedItemRepo(inner, rdb, time.Minute, newTestLogger(t))

	items := []*domain.Item{{ID: "i1"}}
	inner.EXPECT().ListByOwner(mock.Anything, "owner").Return(items, nil)
	inner.EXPECT().ListByRequestIDs(mock.Anything, []string{"r1"}).Return(items, nil)
	inner.EXPECT().Search(mock.Anything, "drill").Return(items, nil)
	inner.EXPECT().GetByIDForOwner(mock.Anything, "i1", "owner").Return(items[0], nil)

	got, err := repo.ListByOwner(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	got, err = repo.ListByRequestIDs(context.Background(), []string{"r1"})
	require.NoError(t, err)
	assert.Equal(t, items, got)

	got, err = repo.Search(context.Background(), "drill")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	one, err := repo.GetByIDForOwner(context.Background(), "i1", "owner")
	require.NoError(t, err)
	assert.Equal(t, items[0], one)
}
