package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken_Format(t *testing.T) {
	now := time.UnixMilli(1712345678901)

	tok, err := NewToken(now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tok, TokenPrefix))
	assert.Regexp(t, tokenRe, tok)
	assert.True(t, strings.HasSuffix(tok, "_1712345678901"))
}

func TestNewToken_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok, err := NewToken(now)
		require.NoError(t, err)
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %s", tok)
		seen[tok] = struct{}{}
	}
}
