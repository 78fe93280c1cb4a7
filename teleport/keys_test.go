package teleport

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumcomm/teleport/teleport/sim"
)

func TestEnsureKeyGenerates(t *testing.T) {
	t.Setenv(KeyEnvVar, "")
	envPath := filepath.Join(t.TempDir(), ".env")
	backend := sim.NewLocal(rand.New(rand.NewSource(1)))

	key, err := EnsureKey(envPath, backend, rand.New(rand.NewSource(2)), zerolog.Nop())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(key), 2000)
	assert.LessOrEqual(t, len(key), 2500)
	for _, c := range key {
		assert.Contains(t, "01", string(c))
	}

	// The key must be exported and persisted.
	assert.Equal(t, key, os.Getenv(KeyEnvVar))
	data, err := os.ReadFile(envPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), KeyEnvVar+"="+key))
}

func TestEnsureKeyReusesEnv(t *testing.T) {
	t.Setenv(KeyEnvVar, "10110")
	envPath := filepath.Join(t.TempDir(), ".env")
	backend := sim.NewLocal(rand.New(rand.NewSource(1)))

	key, err := EnsureKey(envPath, backend, rand.New(rand.NewSource(2)), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "10110", key)

	// Nothing should have been written.
	_, err = os.Stat(envPath)
	assert.True(t, os.IsNotExist(err))
}

func TestEnsureKeyLoadsEnvFile(t *testing.T) {
	t.Setenv(KeyEnvVar, "")
	os.Unsetenv(KeyEnvVar)
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(KeyEnvVar+"=0101\n"), 0o600))
	backend := sim.NewLocal(rand.New(rand.NewSource(1)))

	key, err := EnsureKey(envPath, backend, rand.New(rand.NewSource(2)), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "0101", key)
}
