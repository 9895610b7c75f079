package repository

import (
	"attendance_backend/internal/model"
	"attendance_backend/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RosterCacheRepository 缓存课次点名册；Redis 未启用时所有方法均为空操作
type RosterCacheRepository struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRosterCacheRepository(rdb *redis.Client, ttl time.Duration) *RosterCacheRepository {
	return &RosterCacheRepository{Redis: rdb, TTL: ttl}
}

func rosterKey(sessionID uint) string {
	return fmt.Sprintf("attendance:roster:%d", sessionID)
}

// Get 未命中或出错都返回 false，调用方回源数据库
func (r *RosterCacheRepository) Get(ctx context.Context, sessionID uint) ([]model.Attendance, bool) {
	if r == nil || r.Redis == nil {
		return nil, false
	}

	val, err := r.Redis.Get(ctx, rosterKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("roster cache read failed", zap.Uint("session_id", sessionID), zap.Error(err))
		}
		return nil, false
	}

	var rows []model.Attendance
	if err := json.Unmarshal(val, &rows); err != nil {
		logger.Log.Warn("roster cache decode failed", zap.Uint("session_id", sessionID), zap.Error(err))
		return nil, false
	}
	return rows, true
}

func (r *RosterCacheRepository) Set(ctx context.Context, sessionID uint, rows []model.Attendance) {
	if r == nil || r.Redis == nil {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := r.Redis.Set(ctx, rosterKey(sessionID), data, r.TTL).Err(); err != nil {
		logger.Log.Warn("roster cache write failed", zap.Uint("session_id", sessionID), zap.Error(err))
	}
}

func (r *RosterCacheRepository) Invalidate(ctx context.Context, sessionIDs ...uint) {
	if r == nil || r.Redis == nil || len(sessionIDs) == 0 {
		return
	}
	keys := make([]string, len(sessionIDs))
	for i, id := range sessionIDs {
		keys[i] = rosterKey(id)
	}
	if err := r.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("roster cache invalidate failed", zap.Uints("session_ids", sessionIDs), zap.Error(err))
	}
}
