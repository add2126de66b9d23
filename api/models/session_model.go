package models

import (
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"
)

// DefaultSessionTTL matches the session cookie lifetime.
const DefaultSessionTTL = 2 * time.Hour

var (
	sessionMu sync.RWMutex
	// activeTokens tracks issued session tokens so strict-session mode and
	// logout can consult them. Entries expire with the cookie TTL.
	activeTokens = ttlworker.NewCache[string, bool](DefaultSessionTTL)
)

// InitSessionRegistry recreates the token registry with the configured TTL.
// Call once at startup, before the server accepts requests.
func InitSessionRegistry(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	sessionMu.Lock()
	defer sessionMu.Unlock()
	activeTokens = ttlworker.NewCache[string, bool](ttl)
}

// RegisterSessionToken records a freshly issued token.
func RegisterSessionToken(token string) {
	if token == "" {
		return
	}
	sessionMu.Lock()
	defer sessionMu.Unlock()
	activeTokens.Set(token, true)
}

// RevokeSessionToken removes a token from the registry. Revoking an unknown
// token is a no-op.
func RevokeSessionToken(token string) {
	if token == "" {
		return
	}
	sessionMu.Lock()
	defer sessionMu.Unlock()
	activeTokens.Delete(token)
}

// IsSessionTokenActive reports whether the token was issued by this process
// and has not expired or been revoked.
func IsSessionTokenActive(token string) bool {
	if token == "" {
		return false
	}
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return activeTokens.Get(token)
}
