package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	t.Setenv("NEWS_PRESS_TEST_A", "")
	os.Unsetenv("NEWS_PRESS_TEST_A")
	t.Setenv("NEWS_PRESS_TEST_B", "from-env")

	path := writeEnv(t, "NEWS_PRESS_TEST_A=from-file\nNEWS_PRESS_TEST_B=from-file\n")

	require.NoError(t, LoadDotEnv("local", path))
	assert.Equal(t, "from-file", os.Getenv("NEWS_PRESS_TEST_A"))
	assert.Equal(t, "from-env", os.Getenv("NEWS_PRESS_TEST_B"))
}

func TestLoadDotEnv_EnvPathOverridesDefaults(t *testing.T) {
	t.Setenv("NEWS_PRESS_TEST_C", "")
	os.Unsetenv("NEWS_PRESS_TEST_C")
	t.Setenv("ENV_PATH", writeEnv(t, "NEWS_PRESS_TEST_C=override\n"))

	require.NoError(t, LoadDotEnv("local", "does/not/exist.env"))
	assert.Equal(t, "override", os.Getenv("NEWS_PRESS_TEST_C"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	tests := []struct {
		env     string
		wantErr bool
	}{
		{env: "", wantErr: true},
		{env: "local", wantErr: true},
		{env: "production", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			err := LoadDotEnv(tt.env, missing)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
