// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files
// and from a dotenv file. In the directory, each file represents one secret: the
// filename is the key name and the file contents (trimmed) are the value.
//
// Supported key files: gemini-api-key.
// Supported environment variables: GOOGLE_APPLICATION_API_KEY.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Names of the recommendation API key in each source.
const (
	GeminiKeyFile = "gemini-api-key"
	GeminiKeyEnv  = "GOOGLE_APPLICATION_API_KEY"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logrus.WithError(err).Warnf("could not read secret %s", name)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// LoadEnvFile parses a dotenv file without touching the process environment.
// A missing file yields an empty map.
func LoadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return env, nil
}

// GeminiAPIKey picks the recommendation key. Precedence: explicit (config or
// BOOK_FINDER_RECOMMEND_API_KEY), the secrets directory, the process
// environment, then the dotenv file.
func GeminiAPIKey(explicit string, dir, dotenv map[string]string) string {
	if explicit != "" {
		return explicit
	}
	if v := dir[GeminiKeyFile]; v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(GeminiKeyEnv)); v != "" {
		return v
	}
	return strings.TrimSpace(dotenv[GeminiKeyEnv])
}
