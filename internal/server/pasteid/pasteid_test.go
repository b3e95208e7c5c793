package pasteid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LengthAndAlphabet(t *testing.T) {
	for _, length := range []int{1, 2, 8, 64, 128} {
		id, err := New(length)
		require.NoError(t, err)
		require.Len(t, id, length)

		for _, c := range id {
			assert.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q in id %q", c, id)
		}
	}
}

func TestNew_ZeroLength(t *testing.T) {
	id, err := New(0)
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

// With length 2 there are only 62² = 3844 possible identifiers, so drawing
// well past that count must produce a collision. At length 64 the expected
// collision probability for the same sample is ~n²/(2·62⁶⁴), i.e. zero for
// any practical purpose.
func TestNew_CollisionBound(t *testing.T) {
	t.Run("short ids collide", func(t *testing.T) {
		seen := make(map[string]struct{})
		collided := false
		for i := 0; i < 5000; i++ {
			id, err := New(2)
			require.NoError(t, err)
			if _, ok := seen[id]; ok {
				collided = true
				break
			}
			seen[id] = struct{}{}
		}
		assert.True(t, collided, "expected a collision among 5000 length-2 ids")
	})

	t.Run("realistic ids do not collide", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 2000; i++ {
			id, err := New(64)
			require.NoError(t, err)
			_, ok := seen[id]
			require.False(t, ok, "collision on length-64 id %q", id)
			seen[id] = struct{}{}
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"alphanumeric", "abc123XYZ", false},
		{"single char", "a", false},
		{"empty", "", true},
		{"dot segment", "..", true},
		{"path separator", "a/b", true},
		{"backslash", `a\b`, true},
		{"hidden file", ".credentials", true},
		{"space", "a b", true},
		{"unicode letter", "idé", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.id)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
