package storage

import (
	"fmt"
	"sync"

	"github.com/turi333-pixel/MoodFlow/config"
	"github.com/turi333-pixel/MoodFlow/storage/disk"
	"github.com/turi333-pixel/MoodFlow/storage/redis"
)

//统一 init storage 层

var (
	kv       KV
	initOnce sync.Once
	initErr  error
)

func Init() error {
	initOnce.Do(func() {
		switch config.Cfg.StorageBackend {
		case "disk":
			kv, initErr = disk.New(config.Cfg.StoragePath)
		case "redis":
			kv, initErr = redis.NewStore()
		default:
			initErr = fmt.Errorf("unsupported storage backend: %s", config.Cfg.StorageBackend)
		}
	})

	return initErr
}

// Backend 返回当前 KV 后端，Init 成功前调用会 panic。
func Backend() KV {
	if kv == nil {
		panic("storage not initialized, call storage.Init() first")
	}
	return kv
}
