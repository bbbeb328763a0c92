package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadToken reads the bearer token from path. The file holds a single
// line; surrounding whitespace is trimmed and a leading ~ expands to
// the user home directory.
func LoadToken(path string) (string, error) {
	path = ExpandHome(path)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("token file not found: %s", path)
		}
		return "", err
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", fmt.Errorf("token file is empty: %s", path)
	}

	return token, nil
}

func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
