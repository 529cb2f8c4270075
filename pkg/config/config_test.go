package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapConfig(t *testing.T) {
	c := NewMapConfig(map[string]string{
		"SECRET_KEY":   "abc123",
		"TOCHLYD_PORT": "1380",
	})

	require.Equal(t, "abc123", c.GetKey("SECRET_KEY"))
	require.Equal(t, "", c.GetKey("NO_SUCH_KEY"))
	require.Equal(t, "fallback", c.GetKeyWithDefault("NO_SUCH_KEY", "fallback"))
	require.Equal(t, 1380, c.GetIntKey("TOCHLYD_PORT"))
	require.Equal(t, 42, c.GetIntKeyWithDefault("NO_SUCH_KEY", 42))
}

func TestDotenvConfigLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(path, []byte("TEST_DOTENV_KEY=value1\n"), 0644)
	require.NoError(t, err)

	c := NewDotenvConfig("")
	require.NoError(t, c.LoadFromPath(path))
	require.Equal(t, "value1", c.GetKey("TEST_DOTENV_KEY"))

	t.Cleanup(func() { os.Unsetenv("TEST_DOTENV_KEY") })
}
