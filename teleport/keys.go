package teleport

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/quantumcomm/teleport/teleport/qrng"
	"github.com/quantumcomm/teleport/teleport/sim"
)

// KeyEnvVar is the environment variable holding the bootstrap private key.
const KeyEnvVar = "PRIVATE_KEY"

// EnsureKey loads envPath and returns the private key from the environment.
// When no key is present, a fresh one of random length (2000-2500 bits) is
// generated on the backend, exported to the process environment, and
// appended to envPath.
func EnsureKey(envPath string, b sim.Backend, rng *rand.Rand, logger zerolog.Logger) (string, error) {
	// The env file is optional; the variable may come from the process
	// environment instead.
	_ = godotenv.Load(envPath)
	if key := os.Getenv(KeyEnvVar); key != "" {
		return key, nil
	}

	n := 2000 + rng.Intn(501)
	logger.Warn().
		Int("bits", n).
		Str("env_file", envPath).
		Msg("no private key in the environment, generating a random key")
	bits, err := qrng.Bits(n, b)
	if err != nil {
		return "", fmt.Errorf("generating private key: %w", err)
	}
	key := bits.String()
	if err := os.Setenv(KeyEnvVar, key); err != nil {
		return "", fmt.Errorf("exporting private key: %w", err)
	}
	f, err := os.OpenFile(envPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("persisting private key: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s=%s\n", KeyEnvVar, key); err != nil {
		return "", fmt.Errorf("persisting private key: %w", err)
	}
	return key, nil
}
