package storage

import (
	"context"
	"io/fs"
)

// 本地 KV 抽象：两条固定记录，整体读整体写，没有局部更新。
// disk 后端走 diskv，redis 后端走 go-redis，按配置二选一。

const (
	// KeyHistory 心情历史记录
	KeyHistory = "history"
	// KeySettings 提醒配置记录
	KeySettings = "settings"
)

// ErrNotFound 记录不存在。后端统一返回 fs.ErrNotExist，
// 避免 storage 与后端子包互相引用。
var ErrNotFound = fs.ErrNotExist

// KV 后端需要实现的最小接口，key 不存在时 Get 返回 ErrNotFound
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Close(ctx context.Context) error
}
