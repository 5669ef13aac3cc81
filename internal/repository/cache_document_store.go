package repository

import (
	"context"

	"kenyareal/internal/cache"
)

type cacheDocumentStore struct {
	cache *cache.Client
}

// NewCacheDocumentStore stores documents as redis keys without expiry.
func NewCacheDocumentStore(c *cache.Client) DocumentStore {
	return &cacheDocumentStore{cache: c}
}

func (s *cacheDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.cache.Load(ctx, key)
}

func (s *cacheDocumentStore) Put(ctx context.Context, key string, value []byte) error {
	return s.cache.Store(ctx, key, value)
}

func (s *cacheDocumentStore) Delete(ctx context.Context, key string) error {
	return s.cache.Remove(ctx, key)
}
