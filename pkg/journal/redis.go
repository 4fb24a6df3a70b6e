package journal

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/observability"
)

// redisKey is the hash holding all entries, field = date key, value = text.
const redisKey = "daygrid:entries"

// RedisStore keeps entries in a single redis hash. Useful when the same
// journal is opened from more than one machine; HSETNX gives the
// compare-and-set needed to keep "submit once" true under races.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisStore{client: client}, nil
}

// Load reads the full entry hash. Redis hash values are strings by
// construction, so no type filtering is needed here.
func (s *RedisStore) Load(ctx context.Context) (Entries, error) {
	start := time.Now()

	raw, err := s.client.HGetAll(ctx, redisKey).Result()
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "load entries")
		observability.Store().OnLoad(ctx, s.Backend(), 0, time.Since(start), werr)
		return nil, werr
	}

	entries := make(Entries, len(raw))
	for k, v := range raw {
		entries[DateKey(k)] = v
	}
	observability.Store().OnLoad(ctx, s.Backend(), len(entries), time.Since(start), nil)
	return entries, nil
}

// Save replaces the entry hash in full inside one transaction.
func (s *RedisStore) Save(ctx context.Context, entries Entries) error {
	start := time.Now()

	fields := make(map[string]string, len(entries))
	for k, v := range entries {
		fields[string(k)] = v
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisKey)
	if len(fields) > 0 {
		pipe.HSet(ctx, redisKey, fields)
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "save entries")
		observability.Store().OnSave(ctx, s.Backend(), len(entries), time.Since(start), werr)
		return werr
	}

	observability.Store().OnSave(ctx, s.Backend(), len(entries), time.Since(start), nil)
	return nil
}

// Submit writes the day's text with HSETNX; a false reply means another
// client already submitted the day.
func (s *RedisStore) Submit(ctx context.Context, key DateKey, text string) error {
	set, err := s.client.HSetNX(ctx, redisKey, string(key), text).Result()
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "submit %s", key)
		observability.Store().OnSubmit(ctx, s.Backend(), string(key), werr)
		return werr
	}
	if !set {
		lerr := errors.New(errors.ErrCodeDayLocked, "day %s already has an entry", key)
		observability.Store().OnSubmit(ctx, s.Backend(), string(key), lerr)
		return lerr
	}
	observability.Store().OnSubmit(ctx, s.Backend(), string(key), nil)
	return nil
}

// Backend returns "redis".
func (s *RedisStore) Backend() string { return "redis" }

// Close closes the redis client.
func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)
