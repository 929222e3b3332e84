package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStringValPrecedence(t *testing.T) {
	fileVal := "from-file"

	tests := []struct {
		name   string
		envVal string
		file   *string
		want   string
	}{
		{name: "env wins over file", envVal: "from-env", file: &fileVal, want: "from-env"},
		{name: "file wins over default", envVal: "", file: &fileVal, want: "from-file"},
		{name: "default when nothing set", envVal: "", file: nil, want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "SKILLBRIDGE_TEST_STRING"
			if tt.envVal != "" {
				t.Setenv(key, tt.envVal)
			}
			if got := stringVal(key, tt.file, "fallback"); got != tt.want {
				t.Errorf("stringVal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDurationVal(t *testing.T) {
	key := "SKILLBRIDGE_TEST_DURATION"

	t.Setenv(key, "250ms")
	if got := durationVal(key, nil, time.Second); got != 250*time.Millisecond {
		t.Errorf("durationVal() = %v, want 250ms", got)
	}

	t.Setenv(key, "not-a-duration")
	if got := durationVal(key, nil, time.Second); got != time.Second {
		t.Errorf("durationVal() invalid env = %v, want default", got)
	}

	fileVal := "1m"
	if got := durationVal("SKILLBRIDGE_TEST_DURATION_UNSET", &fileVal, time.Second); got != time.Minute {
		t.Errorf("durationVal() file = %v, want 1m", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a, b ,c", []string{"a", "b", "c"}},
		{`"a", 'b'`, []string{"a", "b"}},
		{"", nil},
		{" , , ", nil},
	}

	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.input, got, tt.want)
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.DebounceDelay != 300*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 300ms", cfg.DebounceDelay)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %v, want empty (file backend by default)", cfg.RedisAddr)
	}
	if cfg.CoursesSource != "data/courses.json" {
		t.Errorf("CoursesSource = %v, want data/courses.json", cfg.CoursesSource)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "listen_port: \":9090\"\ndebounce_delay: 150ms\nredis_addr: localhost:6379\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("SKILLBRIDGE_CONFIG_FILE", path)

	cfg := Load()

	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %v, want :9090 from file", cfg.ListenPort)
	}
	if cfg.DebounceDelay != 150*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 150ms from file", cfg.DebounceDelay)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %v, want file value", cfg.RedisAddr)
	}

	// Env still wins over the file.
	t.Setenv("SKILLBRIDGE_LISTEN_PORT", ":7070")
	cfg = Load()
	if cfg.ListenPort != ":7070" {
		t.Errorf("ListenPort = %v, want env to win over file", cfg.ListenPort)
	}
}

func TestLoadInvalidConfigFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_port: [broken"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("SKILLBRIDGE_CONFIG_FILE", path)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic on an unparseable config file")
		}
	}()
	_ = Load()
}
