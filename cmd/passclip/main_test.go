package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/passclip/passclip-go/internal/clipboard"
)

type recordingClipboard struct {
	text  string
	calls int
	err   error
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func runCLI(t *testing.T, clip clipboard.Writer, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr, clip)
	return stdout.String(), stderr.String(), err
}

func countIn(s, set string) int {
	n := 0
	for _, ch := range s {
		if strings.ContainsRune(set, ch) {
			n++
		}
	}
	return n
}

func TestRunDefaults(t *testing.T) {
	clip := &recordingClipboard{}
	stdout, _, err := runCLI(t, clip)
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	password := strings.TrimSuffix(stdout, "\n")
	if len(password) != 16 {
		t.Fatalf("password %q has length %d, want 16", password, len(password))
	}
	if clip.text != password {
		t.Errorf("clipboard = %q, want %q", clip.text, password)
	}
	if n := countIn(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"); n != 2 {
		t.Errorf("password %q has %d uppercase, want 2", password, n)
	}
	if n := countIn(password, "0123456789"); n != 2 {
		t.Errorf("password %q has %d digits, want 2", password, n)
	}
	if n := countIn(password, ")(*&^%$#@!~"); n != 2 {
		t.Errorf("password %q has %d specials, want 2", password, n)
	}
}

func TestRunFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantLength int
		wantUpper  int
		wantDigits int
	}{
		{name: "lowercase only", args: []string{"-l", "8", "-u", "0", "-d", "0", "-s", "0"}, wantLength: 8},
		{name: "counts exceed length", args: []string{"-l", "4"}, wantLength: 6, wantUpper: 2, wantDigits: 2},
		{name: "long flags", args: []string{"--length=20", "--upper=5", "--digits=1"}, wantLength: 20, wantUpper: 5, wantDigits: 1},
		{name: "unparseable falls back", args: []string{"-l", "lots", "-u", "x"}, wantLength: 16, wantUpper: 2, wantDigits: 2},
		{name: "negative falls back", args: []string{"-l=-4"}, wantLength: 16, wantUpper: 2, wantDigits: 2},
		{name: "out of range count falls back", args: []string{"-u", "9223372036854775807", "-d", "1"}, wantLength: 16, wantUpper: 2, wantDigits: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, &recordingClipboard{}, tt.args...)
			if err != nil {
				t.Fatalf("run() unexpected error: %v", err)
			}

			password := strings.TrimSuffix(stdout, "\n")
			if len(password) != tt.wantLength {
				t.Errorf("password %q has length %d, want %d", password, len(password), tt.wantLength)
			}
			if n := countIn(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"); n != tt.wantUpper {
				t.Errorf("password %q has %d uppercase, want %d", password, n, tt.wantUpper)
			}
			if n := countIn(password, "0123456789"); n != tt.wantDigits {
				t.Errorf("password %q has %d digits, want %d", password, n, tt.wantDigits)
			}
		})
	}
}

func TestRunClipboardFailureStillPrints(t *testing.T) {
	clip := &recordingClipboard{err: clipboard.ErrUnavailable}
	stdout, _, err := runCLI(t, clip)

	if !errors.Is(err, clipboard.ErrUnavailable) {
		t.Fatalf("run() error = %v, want ErrUnavailable", err)
	}
	if len(strings.TrimSuffix(stdout, "\n")) != 16 {
		t.Errorf("password not printed before clipboard failure: %q", stdout)
	}
}

func TestRunNoClipboard(t *testing.T) {
	clip := &recordingClipboard{}
	stdout, _, err := runCLI(t, clip, "--no-clipboard")
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	if clip.calls != 0 {
		t.Errorf("clipboard written %d times, want 0", clip.calls)
	}
	if stdout == "" {
		t.Error("password not printed")
	}
}

func TestRunSeedIsReproducible(t *testing.T) {
	first, _, err := runCLI(t, clipboard.Discard{}, "--seed", "correct horse", "-l", "24")
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	second, _, err := runCLI(t, clipboard.Discard{}, "--seed", "correct horse", "-l", "24")
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("seeded runs differ: %q vs %q", first, second)
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	stdout, _, err := runCLI(t, clipboard.Discard{}, "--version")
	if err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	if stdout != "passclip "+version+"\n" {
		t.Errorf("version output = %q", stdout)
	}

	stdout, stderr, err := runCLI(t, clipboard.Discard{}, "-h")
	if err != nil {
		t.Fatalf("run(-h) unexpected error: %v", err)
	}
	if stdout != "" {
		t.Errorf("help printed a password: %q", stdout)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("help output missing usage: %q", stderr)
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := [][]string{
		{"--bogus"},
		{"extra-argument"},
	}

	for _, args := range tests {
		_, _, err := runCLI(t, clipboard.Discard{}, args...)
		if !errors.Is(err, errUsage) {
			t.Errorf("run(%v) error = %v, want errUsage", args, err)
		}
	}
}
