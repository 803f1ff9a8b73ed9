package job

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	searchCachePrefix  = "jobs:search:"
	SearchCachePattern = searchCachePrefix + "*"
)

// SearchCacheKey derives the cache key for a keyword listing. Matching is
// case-insensitive so the key is too; whitespace is significant.
func SearchCacheKey(keyword string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(keyword)))
	return searchCachePrefix + hex.EncodeToString(sum[:])
}
