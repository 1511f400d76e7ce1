//go:build integration
// +build integration

package integration

import (
	"path/filepath"

	"github.com/joho/godotenv"
)

// init loads a project-root .env so integration tests can pick up API keys
// without requiring shell export. Existing env vars are not overwritten.
func init() {
	candidates := []string{
		".env",
		filepath.Join("..", ".env"),
		filepath.Join("..", "..", ".env"),
	}
	for _, p := range candidates {
		if err := godotenv.Load(p); err == nil {
			return
		}
	}
}
