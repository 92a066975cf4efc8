package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}

const (
	DefaultCacheSize = 1024

	LocalCacheType = "local"
)

// NewCache builds the cache named by cacheType. An empty type is the local cache.
func NewCache(cacheType string, size uint64) (Cache, error) {
	switch cacheType {
	case "", LocalCacheType:
		return NewLocalCache(size)
	default:
		return nil, fmt.Errorf("unsupported cache type %q, currently only local cache is supported", cacheType)
	}
}

type LocalCache struct {
	*lru.Cache
}

func NewLocalCache(size uint64) (Cache, error) {
	cache, err := lru.New(int(size))
	if err != nil {
		return nil, err
	}
	return &LocalCache{
		cache,
	}, nil
}

func (c *LocalCache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

func (c *LocalCache) Set(key string, value interface{}) {
	c.Cache.Add(key, value)
}
