package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	landingPageTTL = 1 * time.Hour
)

var (
	ErrDisabled = errors.New("cache disabled")
	ErrMiss     = errors.New("key not found")
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client, for example one pointed at a test
// server.
func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client, enabled: client != nil}
}

// Disabled returns a cache on which every write is a no-op and every read
// misses.
func Disabled() *Cache {
	return &Cache{enabled: false}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

// operationContext bounds a Redis operation by the default timeout.
func (c *Cache) operationContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, defaultOperationTimeout)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrMiss
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

func landingPageKey(pageID uint) string {
	return fmt.Sprintf("landing_page:%d", pageID)
}

// CacheLandingPage stores a loaded page document.
func (c *Cache) CacheLandingPage(ctx context.Context, pageID uint, document interface{}) error {
	return c.Set(ctx, landingPageKey(pageID), document, landingPageTTL)
}

// GetCachedLandingPage reads a page document stored by CacheLandingPage.
func (c *Cache) GetCachedLandingPage(ctx context.Context, pageID uint, dest interface{}) error {
	return c.Get(ctx, landingPageKey(pageID), dest)
}

// InvalidateLandingPage drops the cached document of a page.
func (c *Cache) InvalidateLandingPage(ctx context.Context, pageID uint) error {
	return c.Delete(ctx, landingPageKey(pageID))
}
