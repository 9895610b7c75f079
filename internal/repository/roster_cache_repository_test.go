package repository

import (
	"attendance_backend/internal/model"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*RosterCacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRosterCacheRepository(rdb, time.Minute), mr
}

func TestRosterCacheRoundTrip(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	_, ok := cache.Get(ctx, 7)
	assert.False(t, ok)

	rows := []model.Attendance{{
		BaseModel: model.BaseModel{ID: 1},
		SessionID: 7,
		StudentID: 3,
		Status:    model.AttendanceLate,
		Student:   &model.Student{BaseModel: model.BaseModel{ID: 3}, Name: "Jane", FName: "Doe"},
	}}
	cache.Set(ctx, 7, rows)
	assert.True(t, mr.Exists("attendance:roster:7"))
	assert.Equal(t, time.Minute, mr.TTL("attendance:roster:7"))

	got, ok := cache.Get(ctx, 7)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, model.AttendanceLate, got[0].Status)
	assert.Equal(t, "Doe", got[0].Student.FName)

	cache.Invalidate(ctx, 7)
	assert.False(t, mr.Exists("attendance:roster:7"))
}

func TestRosterCacheIgnoresCorruptEntries(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, mr.Set("attendance:roster:9", "not json"))

	_, ok := cache.Get(context.Background(), 9)
	assert.False(t, ok)
}

func TestRosterCacheDisabled(t *testing.T) {
	cache := NewRosterCacheRepository(nil, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, 1, []model.Attendance{{SessionID: 1}})
	_, ok := cache.Get(ctx, 1)
	assert.False(t, ok)
	cache.Invalidate(ctx, 1)

	var nilCache *RosterCacheRepository
	_, ok = nilCache.Get(ctx, 1)
	assert.False(t, ok)
}
