package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings captures the reddit script-app credentials and request metadata.
// Every field defaults to empty; reddit rejects the login in that case.
type Settings struct {
	Username     string
	ClientID     string
	ClientSecret string
	Password     string
	RedirectURI  string
	UserAgent    string

	// LogFile, when set, receives debug logging while the TUI owns the terminal.
	LogFile string
}

const (
	// EnvPrefix is prepended to every setting name when reading the environment.
	EnvPrefix = "REDDITSUCKS_"

	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"
)

// Load builds Settings from the process environment, falling back to values
// from envFile for names the environment does not set. A missing envFile is
// not an error; an empty path means DefaultEnvFile.
func Load(envFile string) (Settings, error) {
	path := strings.TrimSpace(envFile)
	if path == "" {
		path = DefaultEnvFile
	}

	fileValues, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("read env file %s: %w", path, err)
		}
		fileValues = map[string]string{}
	}

	lookup := func(name string) string {
		key := EnvPrefix + name
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileValues[key])
	}

	return Settings{
		Username:     lookup("USERNAME"),
		ClientID:     lookup("CLIENT_ID"),
		ClientSecret: lookup("CLIENT_SECRET"),
		Password:     lookup("PASSWORD"),
		RedirectURI:  lookup("REDIRECT_URI"),
		UserAgent:    lookup("USER_AGENT"),
		LogFile:      lookup("LOG_FILE"),
	}, nil
}

// HasCredentials reports whether every value needed for the password grant is set.
func (s Settings) HasCredentials() bool {
	return s.Username != "" && s.Password != "" && s.ClientID != "" && s.ClientSecret != ""
}
