package cli

import (
	"os"

	"github.com/joho/godotenv"
)

// apiKey returns the Anthropic API key from the environment, falling back
// to a .env file in the working directory.
func apiKey() string {
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		return k
	}
	_ = godotenv.Load()
	return os.Getenv("ANTHROPIC_API_KEY")
}
