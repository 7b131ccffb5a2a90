package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is the time to live for the cached value
	TTL time.Duration
	// Serializer is a custom serializer function
	Serializer func(interface{}) ([]byte, error)
	// Deserializer is a custom deserializer function
	Deserializer func([]byte, interface{}) error
	// CacheName is the name of the cache for TTL lookup and key prefixing
	CacheName string
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          10 * time.Minute,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

// WithCacheName sets the cache name for TTL lookup
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache provides high-level caching operations
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		client: client,
		opts:   opts,
	}
}

// getTTL returns the TTL for the cache, checking client configuration first
func (c *Cache) getTTL() time.Duration {
	if c.opts.CacheName != "" && c.client.config != nil {
		if clientTTL, exists := c.client.config.CacheTTLs[c.opts.CacheName]; exists {
			return clientTTL
		}
	}
	return c.opts.TTL
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get retrieves a value from cache and deserializes it into dest. Returns ErrCacheMiss when absent.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil {
		return err
	}
	if data == nil {
		return ErrCacheMiss
	}
	return c.opts.Deserializer(data, dest)
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.getTTL())
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// GetTTL returns the time to live of a key
func (c *Cache) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, c.buildCacheKey(key))
}
