package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func unreachableRedis() *RedisCache {
	return NewRedisCacheFromClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))
}

func TestRedisCacheFromClientUnreachable(t *testing.T) {
	ctx := context.Background()
	c := unreachableRedis()
	defer c.Close()

	data, hit, err := c.Get(ctx, "ladder:abc")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Get error = %v, want ErrNetwork", err)
	}
	if hit || data != nil {
		t.Errorf("Get = %q, %v, want miss", data, hit)
	}
	if err := c.Set(ctx, "ladder:abc", []byte("{}"), time.Minute); !errors.Is(err, ErrNetwork) {
		t.Errorf("Set error = %v, want ErrNetwork", err)
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisOptions{Addr: "127.0.0.1:1"})
	if c != nil {
		c.Close()
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("NewRedisCache error = %v, want ErrNetwork", err)
	}
}
