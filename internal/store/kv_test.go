package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryKVSetGetDel(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set(ctx, "k", "v", 0))
	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, kv.Del(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryKVTTL(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "short", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, err := kv.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrMiss)

	// ttl=0 は無期限
	require.NoError(t, kv.Set(ctx, "forever", "v", 0))
	time.Sleep(5 * time.Millisecond)
	_, err = kv.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemoryKVDelPattern(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "views:consultations:a", "1", 0))
	require.NoError(t, kv.Set(ctx, "views:consultations:b", "2", 0))
	require.NoError(t, kv.Set(ctx, "other", "3", 0))

	require.NoError(t, kv.DelPattern(ctx, "views:consultations:*"))

	_, err := kv.Get(ctx, "views:consultations:a")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = kv.Get(ctx, "other")
	assert.NoError(t, err)
}

func TestViewCacheInvalidation(t *testing.T) {
	kv := NewMemoryKV()
	views := NewViewCache(kv, time.Minute, zap.NewNop())
	ctx := context.Background()

	views.SetConsultationList(ctx, `{"code":2000}`)
	views.SetConsultationDetail(ctx, "id-1", `{"id":"id-1"}`)
	views.SetConsultationDetail(ctx, "id-2", `{"id":"id-2"}`)

	// 個別の無効化は対象の詳細と一覧だけを落とす
	views.InvalidateConsultation(ctx, "id-1")
	_, err := views.GetConsultationList(ctx)
	assert.ErrorIs(t, err, ErrMiss)
	_, err = views.GetConsultationDetail(ctx, "id-1")
	assert.ErrorIs(t, err, ErrMiss)
	v, err := views.GetConsultationDetail(ctx, "id-2")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"id-2"}`, v)

	// 全件無効化
	views.SetConsultationList(ctx, `{"code":2000}`)
	views.InvalidateAllConsultations(ctx)
	_, err = views.GetConsultationDetail(ctx, "id-2")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = views.GetConsultationList(ctx)
	assert.ErrorIs(t, err, ErrMiss)
}
