package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("Should require a URL", func(t *testing.T) {
		_, err := options(Config{})
		assert.Error(t, err)
	})

	t.Run("Should default the port and read the URL password", func(t *testing.T) {
		opts, err := options(Config{URL: "redis://:pw@cache.internal"})
		require.NoError(t, err)
		assert.Equal(t, "cache.internal:6379", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Nil(t, opts.TLSConfig)
	})

	t.Run("Should enable TLS for rediss and prefer the explicit password", func(t *testing.T) {
		opts, err := options(Config{URL: "rediss://default:pw@cache.internal:6380", Password: "explicit"})
		require.NoError(t, err)
		assert.Equal(t, "cache.internal:6380", opts.Addr)
		assert.Equal(t, "explicit", opts.Password)
		assert.NotNil(t, opts.TLSConfig)
	})
}

func TestUninitializedClient(t *testing.T) {
	assert.Nil(t, Client())
	assert.False(t, IsAvailable(context.Background()))
	assert.NoError(t, Close())
}
