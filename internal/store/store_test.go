package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolbalance/internal/config"
	"poolbalance/internal/store"
	"poolbalance/internal/store/model"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_NAME", ":memory:")
	t.Setenv("DB_CONNECT_RETRIES", "0")

	cfg, err := config.New()
	require.NoError(t, err)

	db, err := store.InitDB(cfg)
	require.NoError(t, err)

	s := store.NewStore(db)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestPoolCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.TODO()

	created, err := s.Pool().Create(ctx, model.NewPool("backyard", 40000, 10566.88, ""))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, model.UnitsMetric, created.DefaultUnits)

	got, err := s.Pool().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "backyard", got.Name)
	assert.Equal(t, 40000.0, got.VolumeLiters)
	assert.Equal(t, 10566.88, got.VolumeGallons)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestPoolGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Pool().Get(context.TODO(), uuid.New())
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestPoolListInCreationOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.TODO()

	first := model.NewPool("first", 1000, 264.17, model.UnitsMetric)
	second := model.NewPool("second", 2000, 528.34, model.UnitsImperial)
	second.CreatedAt = first.CreatedAt.Add(time.Minute)

	_, err := s.Pool().Create(ctx, second)
	require.NoError(t, err)
	_, err = s.Pool().Create(ctx, first)
	require.NoError(t, err)

	pools, err := s.Pool().List(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "first", pools[0].Name)
	assert.Equal(t, "second", pools[1].Name)
	assert.Equal(t, model.UnitsImperial, pools[1].DefaultUnits)

	count, err := s.Pool().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPoolDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.TODO()

	created, err := s.Pool().Create(ctx, model.NewPool("spa", 1500, 396.26, model.UnitsMetric))
	require.NoError(t, err)

	require.NoError(t, s.Pool().Delete(ctx, created.ID))

	_, err = s.Pool().Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	err = s.Pool().Delete(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestPoolCreateDuplicateID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.TODO()

	pool := model.NewPool("dup", 1000, 264.17, model.UnitsMetric)
	_, err := s.Pool().Create(ctx, pool)
	require.NoError(t, err)

	_, err = s.Pool().Create(ctx, pool)
	assert.ErrorIs(t, err, store.ErrDuplicateKey)
}
