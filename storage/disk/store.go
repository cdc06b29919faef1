package disk

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Store 基于 diskv 的本地落盘 KV，单用户默认后端。
type Store struct {
	d *diskv.Diskv
}

// New 创建落盘存储，basePath 不存在时由 diskv 自动建目录。
func New(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, errors.New("disk store: base path is empty")
	}

	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	return val, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *Store) Del(ctx context.Context, key string) error {
	if err := s.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	// diskv 没有需要释放的连接
	return nil
}
