package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var settingNames = []string{"USERNAME", "CLIENT_ID", "CLIENT_SECRET", "PASSWORD", "REDIRECT_URI", "USER_AGENT", "LOG_FILE"}

// clearEnv unsets every REDDITSUCKS_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range settingNames {
		key := EnvPrefix + name
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Unsetenv(%s): %v", key, err)
		}
	}
}

func TestLoad_MissingEnvFileDefaultsToEmpty(t *testing.T) {
	clearEnv(t)

	s, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s != (Settings{}) {
		t.Fatalf("Load = %+v, want zero Settings", s)
	}
	if s.HasCredentials() {
		t.Fatalf("HasCredentials = true, want false")
	}
}

func TestLoad_ReadsPrefixedEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDDITSUCKS_USERNAME", "  modbot  ")
	t.Setenv("REDDITSUCKS_CLIENT_ID", "cid")
	t.Setenv("REDDITSUCKS_CLIENT_SECRET", "secret")
	t.Setenv("REDDITSUCKS_PASSWORD", "hunter2")
	t.Setenv("REDDITSUCKS_REDIRECT_URI", "http://localhost:8080")
	t.Setenv("REDDITSUCKS_USER_AGENT", "modqueue by u/modbot")
	t.Setenv("USERNAME", "ignored-without-prefix")

	s, err := Load(filepath.Join(t.TempDir(), "none.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Settings{
		Username:     "modbot",
		ClientID:     "cid",
		ClientSecret: "secret",
		Password:     "hunter2",
		RedirectURI:  "http://localhost:8080",
		UserAgent:    "modqueue by u/modbot",
	}
	if s != want {
		t.Fatalf("Load = %+v, want %+v", s, want)
	}
	if !s.HasCredentials() {
		t.Fatalf("HasCredentials = false, want true")
	}
}

func TestLoad_EnvFileFillsUnsetValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDDITSUCKS_USERNAME", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(`
# credentials
REDDITSUCKS_USERNAME=from-file
REDDITSUCKS_CLIENT_ID=file-cid
REDDITSUCKS_USER_AGENT="quoted agent"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Username != "from-env" {
		t.Fatalf("Username = %q, want environment to win", s.Username)
	}
	if s.ClientID != "file-cid" {
		t.Fatalf("ClientID = %q, want %q", s.ClientID, "file-cid")
	}
	if s.UserAgent != "quoted agent" {
		t.Fatalf("UserAgent = %q, want %q", s.UserAgent, "quoted agent")
	}
	if s.Password != "" {
		t.Fatalf("Password = %q, want empty", s.Password)
	}
}

func TestLoad_UnreadableEnvFileFails(t *testing.T) {
	clearEnv(t)

	// A directory cannot be parsed as an env file.
	dir := t.TempDir()
	_, err := Load(dir)
	if err == nil {
		t.Fatalf("Load returned nil error, want read error")
	}
	if !strings.Contains(err.Error(), "read env file") {
		t.Fatalf("Load error = %q, want it to mention read env file", err.Error())
	}
}
