package util

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWrapError(t *testing.T) {
	if WrapError("read", nil) != nil {
		t.Error("WrapError(nil) should be nil")
	}

	base := errors.New("boom")
	err := WrapError("read input", base)
	if !errors.Is(err, base) {
		t.Error("wrapped error lost its cause")
	}
	if got := err.Error(); got != "failed to read input: boom" {
		t.Errorf("message = %q", got)
	}
}

func TestIsConfigured(t *testing.T) {
	if !IsConfigured("a", "b") {
		t.Error("all set should be configured")
	}
	if IsConfigured("a", "") {
		t.Error("empty value should not be configured")
	}
	if !IsConfigured() {
		t.Error("no values should be configured")
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr string
	}{
		{"/var/log/pagegen.jsonl", ""},
		{"logs/build.jsonl", ""},
		{"", "is required"},
		{"../escape.jsonl", "cannot contain '..'"},
		{"logs/../../etc", "cannot contain '..'"},
	}

	for _, tt := range tests {
		err := ValidatePath("log.path", tt.path)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("ValidatePath(%q) = %v, want nil", tt.path, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("ValidatePath(%q) = %v, want error containing %q", tt.path, err, tt.wantErr)
		}
	}
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ExecutableDir = %q, want absolute path", dir)
	}
}

func TestResolveFrom(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "opt", "pagegen", "bin")

	if got, want := ResolveFrom(base, "../pages"), filepath.Join(string(filepath.Separator), "opt", "pagegen", "pages"); got != want {
		t.Errorf("ResolveFrom relative = %q, want %q", got, want)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "out")
	if got := ResolveFrom(base, abs); got != abs {
		t.Errorf("ResolveFrom absolute = %q, want %q", got, abs)
	}
}

func TestFormatHumanTime(t *testing.T) {
	if got := FormatHumanTime("unknown"); got != "unknown" {
		t.Errorf("FormatHumanTime(unknown) = %q", got)
	}
	if got := FormatHumanTime("not-a-time"); got != "not-a-time" {
		t.Errorf("FormatHumanTime(invalid) = %q", got)
	}
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got, want := FormatHumanTime(ts.Format(time.RFC3339)), ts.Local().Format(humanTimeFormat); got != want {
		t.Errorf("FormatHumanTime = %q, want %q", got, want)
	}
}
