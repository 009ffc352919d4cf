package services

import (
  "context"
  "encoding/json"
  "errors"
  "time"

  "github.com/redis/go-redis/v9"

  "github.com/aralgen/aralgen-backend/internal/logger"
  "github.com/aralgen/aralgen-backend/internal/utils"
)

// GenerationCache short-circuits repeat generations: identical prompt
// fingerprints within the TTL return the stored content instead of another
// AI call. Disabled (every lookup misses) when REDIS_ADDR is unset.
type GenerationCache interface {
  Get(ctx context.Context, key string) (map[string]any, bool)
  Set(ctx context.Context, key string, val map[string]any)
  Enabled() bool
}

type generationCache struct {
  log    *logger.Logger
  client *redis.Client
  ttl    time.Duration
}

func NewGenerationCache(log *logger.Logger) GenerationCache {
  cacheLog := log.With("service", "GenerationCache")

  addr := utils.GetEnv("REDIS_ADDR", "", log)
  if addr == "" {
    cacheLog.Info("REDIS_ADDR not set, generation cache disabled")
    return &generationCache{log: cacheLog}
  }
  password := utils.GetEnv("REDIS_PASSWORD", "", log)
  dbNum := utils.GetEnvAsInt("REDIS_DB", 0, log)
  ttlSeconds := utils.GetEnvAsInt("GENERATION_CACHE_TTL_SECONDS", 86400, log)

  client := redis.NewClient(&redis.Options{
    Addr:     addr,
    Password: password,
    DB:       dbNum,
  })
  return &generationCache{
    log:    cacheLog,
    client: client,
    ttl:    time.Duration(ttlSeconds) * time.Second,
  }
}

func (c *generationCache) Enabled() bool {
  return c.client != nil
}

func cacheKey(fingerprint string) string {
  return "aralgen:gen:" + fingerprint
}

func (c *generationCache) Get(ctx context.Context, key string) (map[string]any, bool) {
  if c.client == nil {
    return nil, false
  }
  raw, err := c.client.Get(ctx, cacheKey(key)).Bytes()
  if err != nil {
    if !errors.Is(err, redis.Nil) {
      c.log.Warn("Cache get failed", "error", err)
    }
    return nil, false
  }
  var obj map[string]any
  if err := json.Unmarshal(raw, &obj); err != nil {
    c.log.Warn("Cache entry corrupt, dropping", "error", err)
    _ = c.client.Del(ctx, cacheKey(key)).Err()
    return nil, false
  }
  return obj, true
}

func (c *generationCache) Set(ctx context.Context, key string, val map[string]any) {
  if c.client == nil {
    return
  }
  raw, err := json.Marshal(val)
  if err != nil {
    c.log.Warn("Cache marshal failed", "error", err)
    return
  }
  if err := c.client.Set(ctx, cacheKey(key), raw, c.ttl).Err(); err != nil {
    c.log.Warn("Cache set failed", "error", err)
  }
}
