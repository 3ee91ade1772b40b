package deepl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndpointDerivation(t *testing.T) {
	t.Parallel()

	t.Run("free-tier keys route to the free API host", func(t *testing.T) {
		t.Parallel()
		c := New(Config{APIKey: "0000:fx"})
		require.Equal(t, freeBaseURL, c.baseURL)
	})

	t.Run("regular keys route to the paid API host", func(t *testing.T) {
		t.Parallel()
		c := New(Config{APIKey: "0000"})
		require.Equal(t, proBaseURL, c.baseURL)
	})

	t.Run("explicit endpoint overrides key-based routing", func(t *testing.T) {
		t.Parallel()
		c := New(Config{APIKey: "0000:fx", Endpoint: "http://localhost:9999/"})
		require.Equal(t, "http://localhost:9999", c.baseURL, "trailing slash is trimmed")
	})
}
