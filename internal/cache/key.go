package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

// Key builds the cache key for a match. Text and pattern are hashed so that
// arbitrarily large texts produce bounded keys.
func Key(algorithm starmatch.Algorithm, text, pattern string) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(len(pattern)) + ":" + pattern))
	h.Write([]byte(text))

	return core.CacheKeyPrefix + algorithm.String() + ":" + hex.EncodeToString(h.Sum(nil))
}
