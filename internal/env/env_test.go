package env

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestGetters(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "hello")
	t.Setenv("TEST_ENV_LIST", "a, b,,c ")

	if got := GetString("TEST_ENV_STRING", "x"); got != "hello" {
		t.Errorf("GetString() = %q, want hello", got)
	}
	if got := GetString("TEST_ENV_MISSING", "x"); got != "x" {
		t.Errorf("GetString() fallback = %q, want x", got)
	}
	if got := GetStrings("TEST_ENV_LIST", nil); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("GetStrings() = %v, want [a b c]", got)
	}
}

func TestParser(t *testing.T) {
	t.Setenv("TEST_ENV_INT", " 42 ")
	t.Setenv("TEST_ENV_FLOAT", "12.5")

	t.Run("Valid values", func(t *testing.T) {
		var p Parser
		if got := p.Int("TEST_ENV_INT", 0); got != 42 {
			t.Errorf("Int() = %d, want 42", got)
		}
		if got := p.Float("TEST_ENV_FLOAT", 0); got != 12.5 {
			t.Errorf("Float() = %v, want 12.5", got)
		}
		if got := p.Int("TEST_ENV_MISSING", 7); got != 7 {
			t.Errorf("Int() fallback = %d, want 7", got)
		}
		if err := p.Err(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("Malformed values are reported", func(t *testing.T) {
		t.Setenv("TEST_ENV_BAD_INT", "5O")
		t.Setenv("TEST_ENV_BAD_FLOAT", "1,5")

		var p Parser
		if got := p.Int("TEST_ENV_BAD_INT", 50); got != 50 {
			t.Errorf("Int() = %d, want fallback 50", got)
		}
		if got := p.Float("TEST_ENV_BAD_FLOAT", 2); got != 2 {
			t.Errorf("Float() = %v, want fallback 2", got)
		}

		err := p.Err()
		if err == nil {
			t.Fatalf("expected parse errors")
		}
		for _, key := range []string{"TEST_ENV_BAD_INT", "TEST_ENV_BAD_FLOAT"} {
			if !strings.Contains(err.Error(), key) {
				t.Errorf("expected error to name %s, got %v", key, err)
			}
		}
	})
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TEST_ENV_FROM_FILE=loaded\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("TEST_ENV_FROM_FILE", "")
	os.Unsetenv("TEST_ENV_FROM_FILE")

	LoadEnv(path)

	if got := GetString("TEST_ENV_FROM_FILE", ""); got != "loaded" {
		t.Errorf("expected value from env file, got %q", got)
	}
}
