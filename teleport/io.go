package teleport

import (
	"fmt"
	"os"
)

// TextFromFile reads the text payload to send from path.
func TextFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text from %q: %w", path, err)
	}
	return string(data), nil
}
