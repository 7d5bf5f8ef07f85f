package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	testChdir(t, t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_TextReport(t *testing.T) {
	code, out, errOut := runCLI(t, "Austin, TX", "1800", "3", "2")
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{"WHOLESALE ESTIMATE", "After-repair value (ARV):", "Confidence score:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("non-terminal output should not be colored")
	}
}

func TestRun_JSONWithFlagsAfterPositionals(t *testing.T) {
	code, out, errOut := runCLI(t, "Austin, TX", "1800", "3", "2",
		"-condition", "heavy_rehab", "-property-type", "condo",
		"-year-built", "1940", "-lot-square-feet", "8000",
		"-target-assignment-fee", "7000", "-json")
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, out)
	}
	if decoded["assignment_fee"].(float64) != 7000 {
		t.Errorf("assignment_fee = %v, want 7000", decoded["assignment_fee"])
	}
}

func TestRun_FlagsBeforePositionals(t *testing.T) {
	code, out, errOut := runCLI(t, "-json", "-condition", "turnkey", "Dallas, TX", "1500", "3", "2")
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected JSON output, got:\n%s", out)
	}
}

func TestRun_Markets(t *testing.T) {
	code, out, _ := runCLI(t, "-markets")
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected several markets, got %q", out)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i-1] >= lines[i] {
			t.Errorf("markets not sorted: %v", lines)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"unknown market", []string{"Unknown City", "1500", "3", "2"}, exitError, "Available markets: "},
		{"bad square feet", []string{"Austin, TX", "0", "3", "2"}, exitError, "square footage must be positive"},
		{"bad condition", []string{"Austin, TX", "1500", "3", "2", "-condition", "gutted"}, exitError, "must be one of: turnkey"},
		{"not a number", []string{"Austin, TX", "big", "3", "2"}, exitUsage, "not a number"},
		{"missing args", []string{"Austin, TX", "1500"}, exitUsage, "expected 4 arguments"},
		{"unknown flag", []string{"-bogus", "Austin, TX", "1500", "3", "2"}, exitUsage, "flag provided but not defined"},
		{"bad year", []string{"Austin, TX", "1500", "3", "2", "-year-built", "old"}, exitUsage, "year-built"},
		{"empty condition", []string{"Austin, TX", "1500", "3", "2", "-condition", ""}, exitUsage, "-condition must not be empty"},
		{"empty property type", []string{"-property-type=", "Austin, TX", "1500", "3", "2"}, exitUsage, "-property-type must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr %q does not contain %q", errOut, tt.wantErr)
			}
			if out != "" {
				t.Errorf("stdout should be empty on failure, got %q", out)
			}
		})
	}
}

func TestRun_ErrorPrintedOnce(t *testing.T) {
	code, _, errOut := runCLI(t, "Unknown City", "1500", "3", "2")
	if code != exitError {
		t.Fatalf("exit code = %d, want %d", code, exitError)
	}
	if n := strings.Count(errOut, "Available markets"); n != 1 {
		t.Errorf("error reported %d times, want once:\n%s", n, errOut)
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errOut := runCLI(t, "-h")
	if code != exitOK {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(errOut, "Usage: estimator") {
		t.Errorf("usage not printed: %q", errOut)
	}
}
