package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/meetscan/meetscan/pkg/transcript"
)

func createFormatsTestDeps(files map[string]string) *FormatsCommandDeps {
	return &FormatsCommandDeps{
		ReadTranscript: func(path string) (string, error) {
			if raw, ok := files[path]; ok {
				return raw, nil
			}
			return "", &fileNotFoundError{path}
		},
		DetectFormat: transcript.DetectFormat,
	}
}

func runFormatsCommand(t *testing.T, deps *FormatsCommandDeps, args ...string) (string, error) {
	t.Helper()
	cmd := NewFormatsCommand(deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFormatsCommandListsLayouts(t *testing.T) {
	out, err := runFormatsCommand(t, createFormatsTestDeps(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"zoom", "meet", "plain", "HH:MM:SS"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestFormatsDetect(t *testing.T) {
	deps := createFormatsTestDeps(map[string]string{
		"zoom.txt":  "00:00:15 Sarah Chen: Hello\n",
		"plain.txt": "Sarah: Hello\n",
	})

	tests := []struct {
		file string
		want string
	}{
		{"zoom.txt", "zoom"},
		{"plain.txt", "plain"},
	}
	for _, tt := range tests {
		out, err := runFormatsCommand(t, deps, "detect", tt.file)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.file, err)
		}
		if strings.TrimSpace(out) != tt.want {
			t.Errorf("%s: got %q, want %q", tt.file, strings.TrimSpace(out), tt.want)
		}
	}
}

func TestFormatsDetectUnrecognized(t *testing.T) {
	deps := createFormatsTestDeps(map[string]string{
		"prose.txt": "a wall of text\nwith no structure\n",
	})

	_, err := runFormatsCommand(t, deps, "detect", "prose.txt")
	if err == nil || !strings.Contains(err.Error(), "no known layout matched") {
		t.Errorf("expected unrecognized error, got: %v", err)
	}
}
