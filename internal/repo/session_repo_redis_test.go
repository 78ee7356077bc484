package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Expiry validation runs before any Redis command is issued, so no client is
// needed: a past expiry must be rejected instead of stored without a TTL.
func TestSessionCreateRejectsPastExpiry(t *testing.T) {
	s := NewSessionRepoRedis(nil)
	ctx := context.Background()

	past := time.Now().Add(-time.Minute).UTC().Format(time.RFC3339)
	assert.Error(t, s.Create(ctx, "tok", "u1", past))

	require.Error(t, s.Create(ctx, "tok", "u1", "not-a-time"))
}
