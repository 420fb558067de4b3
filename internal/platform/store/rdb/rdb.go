// Package rdb provides a redis client for small keyed state
package rdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
type Config struct {
	// URL is a redis URL, e.g. redis://:pass@localhost:6379/0
	URL string

	// KeyPrefix namespaces every key written through the client
	KeyPrefix string

	DialTimeout time.Duration // default 5s
	PoolSize    int           // default 10
}

// Client wraps a redis client with error-returning lifecycle methods
type Client struct {
	cmd    redis.UniversalClient
	prefix string
}

// Open parses the URL and dials redis; the connection is verified with a ping
func Open(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("rdb: empty url")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rdb: parse url: %w", err)
	}
	opts.DialTimeout = cfg.DialTimeout
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}
	opts.PoolSize = cfg.PoolSize
	if opts.PoolSize <= 0 {
		opts.PoolSize = 10
	}

	c := New(redis.NewClient(opts), cfg.KeyPrefix)
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// New wraps an existing redis client
func New(c redis.UniversalClient, keyPrefix string) *Client {
	if keyPrefix == "" {
		keyPrefix = "formvoice"
	}
	return &Client{cmd: c, prefix: strings.TrimRight(keyPrefix, ":")}
}

// Cmd exposes the command surface for repos
func (c *Client) Cmd() redis.Cmdable { return c.cmd }

// Key joins parts under the client key prefix
func (c *Client) Key(parts ...string) string {
	return c.prefix + ":" + strings.Join(parts, ":")
}

// Ping checks server reachability
func (c *Client) Ping(ctx context.Context) error {
	if err := c.cmd.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("rdb: ping: %w", err)
	}
	return nil
}

// Close closes resources
func (c *Client) Close() error {
	if c == nil || c.cmd == nil {
		return nil
	}
	return c.cmd.Close()
}
