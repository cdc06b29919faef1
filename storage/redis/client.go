package redis

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turi333-pixel/MoodFlow/config"
)

var (
	client *redis.Client
	once   sync.Once
	err    error
)

func Init() error {
	once.Do(func() {
		cfg := config.Cfg

		client = redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			MinIdleConns: 2,
			MaxRetries:   3,
		})

		if cfg.TracingEnabled {
			client.AddHook(NewTracingHook(cfg.ServiceName, cfg.RedisDB))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		defer cancel()

		if err = client.Ping(ctx).Err(); err != nil {
			return
		}
	})

	return err
}

func Client() *redis.Client {
	if client == nil {
		panic("Redis client not init")
	}
	return client
}

func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}

	return client.Close()
}

func Key(parts ...string) string {
	prefix := config.Cfg.RedisPrefix
	if prefix == "" {
		prefix = "mf"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	for _, part := range parts {
		if part != "" {

			sb.WriteString(":")
			sb.WriteString(part)
		}
	}

	return sb.String()
}

// Store 把 redis 连接适配成 storage.KV 后端。
type Store struct{}

// NewStore 需要先 Init 成功。
func NewStore() (*Store, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return &Store{}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := Client().Get(ctx, Key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	return val, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	// 记录是整体覆盖语义，不设 TTL
	return Client().Set(ctx, Key(key), value, 0).Err()
}

func (s *Store) Del(ctx context.Context, key string) error {
	return Client().Del(ctx, Key(key)).Err()
}

func (s *Store) Close(ctx context.Context) error {
	return Close(ctx)
}
