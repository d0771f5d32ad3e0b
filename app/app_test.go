package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedback-collector/feedback-collector/internal/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		dumpJSON = false
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := run(t, "", "hash-password", "admin123")
	require.NoError(t, err)

	match, err := argon2id.ComparePasswordAndHash("admin123", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, match)

	out, err = run(t, "from-stdin\n", "hash-password")
	require.NoError(t, err)

	match, err = argon2id.ComparePasswordAndHash("from-stdin", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, match)
}

func TestHashPasswordCommandEmpty(t *testing.T) {
	_, err := run(t, "\n", "hash-password")
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	etc, err := filepath.Abs("../etc")
	require.NoError(t, err)

	t.Setenv(config.EnvAdminPasswordHash, "$argon2id$v=19$m=65536,t=1,p=2$c29tZXNhbHQ$c29tZWhhc2g")
	t.Setenv(config.EnvCookieKey, "ZmVlZGJhY2stY29sbGVjdG9yLXRlc3QtY29va2llLWs=")

	out, err := run(t, "", "config", "--config", etc+string(filepath.Separator))
	require.NoError(t, err)
	assert.Contains(t, out, "Feedback Collector")
	assert.Contains(t, out, "<redacted>")
	assert.NotContains(t, out, "c29tZWhhc2g")

	out, err = run(t, "", "config", "--json", "--config", etc+string(filepath.Separator))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}
