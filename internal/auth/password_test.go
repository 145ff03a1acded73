package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	for _, password := range []string{"pass1", "correct horse battery staple", "päss wörd"} {
		digest, err := HashPassword(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, digest)
		assert.True(t, CheckPassword(password, digest))
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	digest, err := HashPassword("pass1")
	require.NoError(t, err)
	assert.False(t, CheckPassword("pass2", digest))
}

func TestCheckPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("pass1")
	require.NoError(t, err)
	second, err := HashPassword("pass1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	// Corrupted digests must verify false, never panic.
	for _, digest := range []string{"", "not-a-digest", strings.Repeat("x", 60)} {
		assert.False(t, CheckPassword("pass1", digest))
	}
}
