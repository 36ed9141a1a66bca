package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Revocation against a live redis is covered by the readiness probe in
// deployment; here we pin the fail-open contract when no client is wired.
func TestSessionStoreFailsOpenWithoutClient(t *testing.T) {
	ctx := context.Background()

	var store *SessionStore
	assert.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	assert.False(t, store.IsRevoked(ctx, "jti-1"))

	store = NewSessionStore(nil)
	assert.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	assert.False(t, store.IsRevoked(ctx, "jti-1"))
	assert.False(t, store.IsRevoked(ctx, ""))
}
