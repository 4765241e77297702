package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads .env files from the conventional locations the app
// has always honoured: the working directory (env/.env then .env) and the
// user's home (.easy.env then .env.easy). godotenv never overrides
// variables that are already set, so real environment always wins.
func loadEnvFiles() {
	var candidates []string

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates,
			filepath.Join(cwd, "env", ".env"),
			filepath.Join(cwd, ".env"),
		)
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".easy.env"),
			filepath.Join(home, ".env.easy"),
		)
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		_ = godotenv.Load(path)
	}
}
