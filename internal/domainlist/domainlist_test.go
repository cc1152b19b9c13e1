package domainlist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempList(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "domains.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeTempList(t, "example.com\n\n  spaced.com  \n\nother.org\n")

	domains, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"example.com", "spaced.com", "other.org"}
	if !reflect.DeepEqual(domains, want) {
		t.Fatalf("expected %v, got %v", want, domains)
	}
}

func TestLoad_KeepsDuplicatesAndMalformedEntries(t *testing.T) {
	// malformed entries pass through untouched and fail at resolution time
	path := writeTempList(t, "example.com\nexample.com\nnot a domain!\n")

	domains, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"example.com", "example.com", "not a domain!"}
	if !reflect.DeepEqual(domains, want) {
		t.Fatalf("expected %v, got %v", want, domains)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTempList(t, "\n\n   \n")

	if _, err := Load(path); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
