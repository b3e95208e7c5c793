package token

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

func TestNewClaim_Window(t *testing.T) {
	c := NewClaim(identity{Username: "alice"}, 90*time.Second)

	require.NotNil(t, c.IssuedAt)
	require.NotNil(t, c.ExpiresAt)
	assert.Equal(t, 90*time.Second, c.ExpiresAt.Sub(c.IssuedAt.Time))
	assert.True(t, c.ExpiresAt.After(c.IssuedAt.Time))
}

func TestClaim_WireShape(t *testing.T) {
	c := NewClaim(identity{Username: "alice"}, time.Minute)

	b, err := json.Marshal(c)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))

	assert.Contains(t, raw, "exp")
	assert.Contains(t, raw, "iat")
	assert.Contains(t, raw, "data")
	assert.Len(t, raw, 3)

	var data identity
	require.NoError(t, json.Unmarshal(raw["data"], &data))
	assert.Equal(t, "alice", data.Username)
}

func TestClaim_Verify(t *testing.T) {
	t.Run("valid claim returns payload", func(t *testing.T) {
		c := NewClaim(identity{Username: "bob"}, time.Minute)
		got, err := c.Verify()
		require.NoError(t, err)
		assert.Equal(t, "bob", got.Username)
	})

	t.Run("expired claim", func(t *testing.T) {
		c := NewClaim(identity{Username: "bob"}, -time.Second)
		_, err := c.Verify()
		assert.ErrorIs(t, err, common.ErrTokenExpired)
	})

	t.Run("claim without expiry", func(t *testing.T) {
		var c Claim[identity]
		_, err := c.Verify()
		assert.ErrorIs(t, err, common.ErrTokenExpired)
	})
}
