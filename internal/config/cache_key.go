package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CacheKey builds the Redis keys used by the session store.
var CacheKey = NewCacheKeyStruct()

// SessionUserKey returns the store key holding the cached profile for
// a bearer token. Tokens are hashed so raw credentials never appear in
// Redis keyspace listings.
func (r *CacheKeyStruct) SessionUserKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("dashboard:session:%s:user", hex.EncodeToString(sum[:16]))
}
