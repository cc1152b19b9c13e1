package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
input_file: targets.txt
workers: 20
nameserver: 9.9.9.9
timeout_seconds: 1.5
dkim_selectors:
  - google
  - k1
`)

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.InputFile != "targets.txt" {
		t.Errorf("expected input file targets.txt, got %s", profile.InputFile)
	}
	if profile.Workers != 20 {
		t.Errorf("expected workers 20, got %d", profile.Workers)
	}
	if profile.Nameserver != "9.9.9.9" {
		t.Errorf("expected nameserver 9.9.9.9, got %s", profile.Nameserver)
	}
	if profile.TimeoutSeconds != 1.5 {
		t.Errorf("expected timeout 1.5, got %f", profile.TimeoutSeconds)
	}

	if !reflect.DeepEqual(profile.DKIMSelectors, []string{"google", "k1"}) {
		t.Errorf("unexpected selectors: %v", profile.DKIMSelectors)
	}

	// omitted keys keep their struct-tag defaults
	if profile.OutputCSV != "domain_check_results.csv" {
		t.Errorf("expected default csv base name, got %s", profile.OutputCSV)
	}
	if profile.OutputHTML != "domain_check_results.html" {
		t.Errorf("expected default html base name, got %s", profile.OutputHTML)
	}
}

func TestLoadProfile_Defaults(t *testing.T) {
	path := writeProfile(t, "{}\n")

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.InputFile != "domains.txt" {
		t.Errorf("expected default input file, got %s", profile.InputFile)
	}
	if profile.Workers != 10 {
		t.Errorf("expected default workers 10, got %d", profile.Workers)
	}
	if profile.TimeoutSeconds != 3 {
		t.Errorf("expected default timeout 3, got %f", profile.TimeoutSeconds)
	}

	// an omitted selector list stays nil so callers fall back to the
	// default candidates; only an explicit empty list disables DKIM
	if profile.DKIMSelectors != nil {
		t.Errorf("expected nil selectors, got %v", profile.DKIMSelectors)
	}
}

func TestLoadProfile_ExplicitEmptySelectors(t *testing.T) {
	path := writeProfile(t, "dkim_selectors: []\n")

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.DKIMSelectors == nil || len(profile.DKIMSelectors) != 0 {
		t.Errorf("expected explicitly empty selector list, got %v", profile.DKIMSelectors)
	}
}

func TestLoadProfile_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr error
	}{
		{"zero workers", "workers: 0\n", ErrInvalidWorkers},
		{"negative timeout", "timeout_seconds: -1\n", ErrInvalidTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeProfile(t, tc.content)

			if _, err := LoadProfile(path); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestLoadProfile_MalformedYAML(t *testing.T) {
	path := writeProfile(t, "workers: [not an int\n")

	if _, err := LoadProfile(path); err == nil {
		t.Fatal("expected parse error")
	}
}
