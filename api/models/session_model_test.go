package models

import (
	"testing"
	"time"
)

func TestSessionTokenLifecycle(t *testing.T) {
	InitSessionRegistry(time.Hour)

	token := "deadbeef00"
	if IsSessionTokenActive(token) {
		t.Error("token should not be active before registration")
	}

	RegisterSessionToken(token)
	if !IsSessionTokenActive(token) {
		t.Error("token should be active after registration")
	}

	RevokeSessionToken(token)
	if IsSessionTokenActive(token) {
		t.Error("token should not be active after revocation")
	}
}

func TestSessionTokenEmptyValues(t *testing.T) {
	InitSessionRegistry(time.Hour)

	RegisterSessionToken("")
	if IsSessionTokenActive("") {
		t.Error("empty token must never be active")
	}

	// revoking an unknown token is a no-op
	RevokeSessionToken("never-issued")
}
