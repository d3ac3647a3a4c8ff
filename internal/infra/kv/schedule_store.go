package kv

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/infra"
	"plugin-storefront/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// scheduleRecord keeps start and release times together so the schedule is
// written in one SETNX.
type scheduleRecord struct {
	StartTime    int64   `json:"startTime"`
	ReleaseTimes []int64 `json:"releaseTimes"`
}

type ScheduleStore struct {
	client *redis.Client
	keys   keyspace
	logger *slog.Logger
}

func NewScheduleStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *ScheduleStore {
	return &ScheduleStore{
		client: client,
		keys:   newKeyspace(cfg.Redis.KeyPrefix),
		logger: logger,
	}
}

func (s *ScheduleStore) Get(ctx context.Context, code string) (*promo.Schedule, error) {
	raw, err := s.client.Get(ctx, s.keys.schedule(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to read schedule", err)
	}

	var rec scheduleRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to decode schedule", err)
	}

	sched := promo.Schedule{
		StartTime:    time.UnixMilli(rec.StartTime).UTC(),
		ReleaseTimes: make([]time.Time, len(rec.ReleaseTimes)),
	}
	for i, ms := range rec.ReleaseTimes {
		sched.ReleaseTimes[i] = time.UnixMilli(ms).UTC()
	}
	return &sched, nil
}

func (s *ScheduleStore) CreateIfAbsent(ctx context.Context, code string, sched promo.Schedule) (bool, error) {
	rec := scheduleRecord{
		StartTime:    sched.StartTime.UnixMilli(),
		ReleaseTimes: make([]int64, len(sched.ReleaseTimes)),
	}
	for i, t := range sched.ReleaseTimes {
		rec.ReleaseTimes[i] = t.UnixMilli()
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to encode schedule", err)
	}

	created, err := s.client.SetNX(ctx, s.keys.schedule(code), raw, 0).Result()
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to store schedule", err)
	}
	return created, nil
}

func (s *ScheduleStore) Delete(ctx context.Context, code string) error {
	if err := s.client.Del(ctx, s.keys.schedule(code)).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to delete schedule", err)
	}
	return nil
}
