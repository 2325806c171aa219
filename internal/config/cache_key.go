package config

import (
	"fmt"

	"github.com/google/uuid"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("session:%s", userID)
}

// PostListKey returns the cache key for a category's full post listing.
func (r *CacheKeyStruct) PostListKey(category string) string {
	return fmt.Sprintf("posts:%s:list", category)
}

// PostDetailKey returns the cache key for a single post detail by slug.
func (r *CacheKeyStruct) PostDetailKey(slug string) string {
	return fmt.Sprintf("posts:detail:%s", slug)
}

var CacheKey = NewCacheKeyStruct()
