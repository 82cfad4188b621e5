package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Fib.N != 10 {
		t.Errorf("Fib.N = %d, want 10", cfg.Fib.N)
	}
	if cfg.Fib.Want == nil || *cfg.Fib.Want != 55 {
		t.Errorf("Fib.Want = %v, want 55", cfg.Fib.Want)
	}
	if cfg.Example.Name != "test" || cfg.Example.Value != 42 {
		t.Errorf("Example = %+v, want name=test value=42", cfg.Example)
	}
	if cfg.Example.Multiplier != 2.5 {
		t.Errorf("Example.Multiplier = %v, want 2.5", cfg.Example.Multiplier)
	}
}

func TestLoadFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)

	content := `log_level = "debug"

[fib]
n = 12
want = 144

[example]
name = "sample"
value = 7
multiplier = 3.0
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Fib.N != 12 {
		t.Errorf("Fib.N = %d, want 12", cfg.Fib.N)
	}
	if cfg.Fib.Want == nil || *cfg.Fib.Want != 144 {
		t.Errorf("Fib.Want = %v, want 144", cfg.Fib.Want)
	}
	if cfg.Example.Name != "sample" || cfg.Example.Value != 7 {
		t.Errorf("Example = %+v, want name=sample value=7", cfg.Example)
	}
	if cfg.Path != configPath {
		t.Errorf("Path = %q, want %q", cfg.Path, configPath)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)

	content := `[fib]
n = 20
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Fib.N != 20 {
		t.Errorf("Fib.N = %d, want 20", cfg.Fib.N)
	}
	// Untouched sections keep their built-in fixtures
	if cfg.Example.Name != "test" || cfg.Example.Multiplier != 2.5 {
		t.Errorf("Example = %+v, want built-in defaults", cfg.Example)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}
	if cfg.Fib.N != 10 {
		t.Errorf("Fib.N = %d, want 10", cfg.Fib.N)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "negative fib input",
			content: "[fib]\nn = -1\n",
			wantErr: "fib.n must be non-negative",
		},
		{
			name:    "empty example name",
			content: "[example]\nname = \"\"\n",
			wantErr: "example.name is required",
		},
		{
			name:    "bad log level",
			content: "log_level = \"loud\"\n",
			wantErr: "invalid log_level",
		},
		{
			name:    "malformed toml",
			content: "[fib\nn = 1\n",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}

			_, err := LoadFile(configPath)
			if err == nil {
				t.Fatal("LoadFile succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestFindFileSearchesUpward(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("[fib]\nn = 10\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	nested := filepath.Join(tempDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dirs: %v", err)
	}

	found, err := FindFile(nested)
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != configPath {
		t.Errorf("FindFile = %q, want %q", found, configPath)
	}
}
