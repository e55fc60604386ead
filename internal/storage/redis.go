package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/balatro-meta/pkg/storage"
)

const (
	backupKeyPrefix = "backup:"
	backupIndexKey  = "backups"
)

// RedisStorage implements the Storage interface using Redis. Each backup
// is a JSON value with a TTL; a sorted set indexes them by creation time.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage connects to redisURL (redis://host:port/db) and checks
// the connection.
func NewRedisStorage(ctx context.Context, redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("backup ttl must be positive, got %s", ttl)
	}

	r := &RedisStorage{
		client: redis.NewClient(opt),
		logger: logger,
		ttl:    ttl,
	}
	if err := r.Ping(ctx); err != nil {
		_ = r.client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Debug("Connected to Redis for backups", "addr", opt.Addr, "db", opt.DB)
	return r, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Debug("Redis connection closed")
	return nil
}

// Backup operations

func backupKey(id uuid.UUID) string {
	return backupKeyPrefix + id.String()
}

func (r *RedisStorage) SaveBackup(ctx context.Context, b *storage.Backup) error {
	if b == nil {
		return errors.New("backup cannot be nil")
	}

	data, err := json.Marshal(b)
	if err != nil {
		r.logger.Error("Failed to marshal backup", "backup_id", b.ID, "error", err)
		return fmt.Errorf("failed to marshal backup: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, backupKey(b.ID), data, r.ttl)
		pipe.ZAdd(ctx, backupIndexKey, redis.Z{
			Score:  float64(b.CreatedAt.UnixNano()),
			Member: b.ID.String(),
		})
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save backup", "backup_id", b.ID, "error", err)
		return fmt.Errorf("failed to save backup: %w", err)
	}

	r.logger.Debug("Backup saved", "backup_id", b.ID, "path", b.Path, "size", len(b.Data))
	return nil
}

func (r *RedisStorage) LoadBackup(ctx context.Context, id uuid.UUID) (*storage.Backup, error) {
	data, err := r.client.Get(ctx, backupKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Warn("Backup not found", "backup_id", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load backup", "backup_id", id, "error", err)
		return nil, fmt.Errorf("failed to load backup: %w", err)
	}

	var b storage.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		r.logger.Error("Failed to unmarshal backup", "backup_id", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal backup: %w", err)
	}
	return &b, nil
}

func (r *RedisStorage) DeleteBackup(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, backupKey(id))
		pipe.ZRem(ctx, backupIndexKey, id.String())
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to delete backup", "backup_id", id, "error", err)
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// ListBackups walks the index newest first. Index entries whose backup has
// expired are pruned.
func (r *RedisStorage) ListBackups(ctx context.Context) ([]storage.BackupInfo, error) {
	ids, err := r.client.ZRevRange(ctx, backupIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read backup index: %w", err)
	}
	if len(ids) == 0 {
		return []storage.BackupInfo{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = backupKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read backups: %w", err)
	}

	out := make([]storage.BackupInfo, 0, len(ids))
	var stale []any
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var b storage.Backup
		if err := json.Unmarshal([]byte(s), &b); err != nil {
			r.logger.Warn("Skipping unreadable backup", "backup_id", ids[i], "error", err)
			continue
		}
		out = append(out, b.Info())
	}

	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, backupIndexKey, stale...).Err(); err != nil {
			r.logger.Warn("Failed to prune backup index", "count", len(stale), "error", err)
		} else {
			r.logger.Debug("Pruned expired backups from index", "count", len(stale))
		}
	}

	return out, nil
}
