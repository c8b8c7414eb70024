package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevoke_MarksTokenUntilTTLExpires(t *testing.T) {
	store := NewRevokedTokens()

	store.Revoke("token-a", time.Hour)
	assert.True(t, store.IsRevoked("token-a"))
	assert.False(t, store.IsRevoked("token-b"))
}

func TestIsRevoked_ExpiredEntryAgesOut(t *testing.T) {
	store := NewRevokedTokens()

	store.Revoke("token-a", -time.Second)
	assert.False(t, store.IsRevoked("token-a"))
}
