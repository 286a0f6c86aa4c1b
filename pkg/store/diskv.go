package store

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Open creates a disk-backed KV using the provided config. A nil config
// loads the default one.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &diskvKV{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type diskvKV struct {
	d        *diskv.Diskv
	basePath string
}

func (s *diskvKV) Get(key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (s *diskvKV) Set(key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *diskvKV) Remove(key string) error {
	if err := s.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *diskvKV) Keys(ctx context.Context, prefix string) []string {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

// keyToPathTransform buckets `sched-42` as sched/42 on disk. Everything up
// to the first dash is the bucket; the rest is the file name.
func keyToPathTransform(s string) *diskv.PathKey {
	bucket, name, found := strings.Cut(s, "-")
	if !found {
		return &diskv.PathKey{Path: []string{}, FileName: s}
	}
	return &diskv.PathKey{Path: []string{bucket}, FileName: name}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "-") + "-" + pathKey.FileName
}
