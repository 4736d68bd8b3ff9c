package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandStructure(t *testing.T) {
	if rootCmd.Use != "meetscan" {
		t.Errorf("expected Use 'meetscan', got %q", rootCmd.Use)
	}

	expected := []string{"parse", "batch", "formats", "config", "version", "completion"}
	for _, name := range expected {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %q not registered", name)
		}
	}
}

func TestRootCommandGroups(t *testing.T) {
	groups := rootCmd.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 command groups, got %d", len(groups))
	}

	ids := map[string]bool{}
	for _, g := range groups {
		ids[g.ID] = true
	}
	for _, id := range []string{"extract", "setup"} {
		if !ids[id] {
			t.Errorf("expected group %q", id)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "meetscan version") {
		t.Errorf("unexpected version output:\n%s", out.String())
	}
}

func TestConfigSetCommand(t *testing.T) {
	t.Setenv("MEETSCAN_CONFIG_DIR", t.TempDir())

	var out bytes.Buffer
	configSetCmd.SetOut(&out)

	if err := configSetCmd.RunE(configSetCmd, []string{"output_format", "markdown"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Set output_format = markdown") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	t.Setenv("MEETSCAN_CONFIG_DIR", t.TempDir())

	err := configSetCmd.RunE(configSetCmd, []string{"nonsense", "value"})
	if err == nil || !strings.Contains(err.Error(), "unknown configuration key") {
		t.Errorf("expected unknown key error, got: %v", err)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"1", true, false},
		{"false", false, false},
		{"0", false, false},
		{"yes", false, true},
	}
	for _, tt := range tests {
		got, err := parseBool(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseBool(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseBool(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseBool(%q) = %t, want %t", tt.in, got, tt.want)
		}
	}
}
