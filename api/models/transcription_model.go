package models

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"
)

// DefaultTranscriptionTTL bounds how long a cached transcription stays valid.
const DefaultTranscriptionTTL = 15 * time.Minute

// cachedTranscription wraps the text so an empty transcription is still a
// cache hit (the TTL cache returns the zero value on miss).
type cachedTranscription struct {
	Text string
}

var (
	transcriptionMu sync.RWMutex
	transcriptions  = ttlworker.NewCache[string, *cachedTranscription](DefaultTranscriptionTTL)
)

// InitTranscriptionCache recreates the cache with the configured TTL.
// Call once at startup.
func InitTranscriptionCache(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTranscriptionTTL
	}
	transcriptionMu.Lock()
	defer transcriptionMu.Unlock()
	transcriptions = ttlworker.NewCache[string, *cachedTranscription](ttl)
}

// TranscriptionCacheKey derives the cache key for one image under one model.
// Identical bytes always map to the same key.
func TranscriptionCacheKey(model string, data []byte) string {
	sum := sha256.Sum256(data)
	return model + ":" + hex.EncodeToString(sum[:])
}

// LookupTranscription returns the cached text for key, if present.
func LookupTranscription(key string) (string, bool) {
	transcriptionMu.RLock()
	defer transcriptionMu.RUnlock()
	cached := transcriptions.Get(key)
	if cached == nil {
		return "", false
	}
	return cached.Text, true
}

// CacheTranscription stores the transcribed text for key.
func CacheTranscription(key, text string) {
	transcriptionMu.Lock()
	defer transcriptionMu.Unlock()
	transcriptions.Set(key, &cachedTranscription{Text: text})
}
