package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/workforce-analytics-backend/internal/config"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

// Generation identifies the dataset version a cached body was computed
// from. Invalidate moves the cache to a new generation.
type Generation int64

// ResponseCache stores rendered analytics bodies. Entries are scoped to a
// generation counter; Invalidate moves to a new generation so every earlier
// entry stops being visible at once.
//
// Get reports the generation it looked under and Set must be given that
// same generation, so a body computed before an Invalidate is filed under
// the old generation and never served after it.
type ResponseCache interface {
	Get(ctx context.Context, view string) ([]byte, Generation, bool, error)
	Set(ctx context.Context, view string, gen Generation, body []byte) error
	Invalidate(ctx context.Context) error
	Close() error
}

type responseCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewResponseCache connects to cfg.Addr. With no address configured it
// returns a cache that never hits.
func NewResponseCache(log *logger.Logger, cfg config.RedisConfig) (ResponseCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return NewNoopCache(), nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "wfa"
	}
	return &responseCache{
		log:    log.With("client", "RedisResponseCache"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    cfg.CacheTTL,
	}, nil
}

func (c *responseCache) Get(ctx context.Context, view string) ([]byte, Generation, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}
	raw, err := c.rdb.Get(ctx, viewKey(c.prefix, gen, view)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, gen, false, fmt.Errorf("redis get %s: %w", view, err)
	}
	return raw, gen, true, nil
}

func (c *responseCache) Set(ctx context.Context, view string, gen Generation, body []byte) error {
	if err := c.rdb.Set(ctx, viewKey(c.prefix, gen, view), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", view, err)
	}
	return nil
}

func (c *responseCache) Invalidate(ctx context.Context) error {
	gen, err := c.rdb.Incr(ctx, generationKey(c.prefix)).Result()
	if err != nil {
		return fmt.Errorf("redis incr generation: %w", err)
	}
	c.log.Debug("response cache invalidated", "generation", gen)
	return nil
}

func (c *responseCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *responseCache) generation(ctx context.Context) (Generation, error) {
	raw, err := c.rdb.Get(ctx, generationKey(c.prefix)).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	gen, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis generation %q: %w", raw, err)
	}
	return Generation(gen), nil
}

func generationKey(prefix string) string {
	return prefix + ":cache:generation"
}

func viewKey(prefix string, gen Generation, view string) string {
	return fmt.Sprintf("%s:cache:%d:%s", prefix, gen, view)
}

type noopCache struct{}

func NewNoopCache() ResponseCache { return noopCache{} }

func (noopCache) Get(context.Context, string) ([]byte, Generation, bool, error) {
	return nil, 0, false, nil
}
func (noopCache) Set(context.Context, string, Generation, []byte) error { return nil }
func (noopCache) Invalidate(context.Context) error                     { return nil }
func (noopCache) Close() error                                         { return nil }
