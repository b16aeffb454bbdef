package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-slide/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTraceScenario(t *testing.T) {
	flagContactsOnly = false
	out, err := execute(t, "trace", "../../configs/scenarios/wall_slide.yaml")
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if !strings.Contains(out, "Candidate") {
		t.Errorf("missing table header: %q", out)
	}
	if !strings.Contains(out, "(272.0, 230.0)") {
		t.Errorf("missing final slide position: %q", out)
	}
}

func TestTraceContactsOnly(t *testing.T) {
	defer func() { flagContactsOnly = false }()
	out, err := execute(t, "trace", "--contacts-only", "../../configs/scenarios/wall_slide.yaml")
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	// The two free moves before contact are dropped
	if strings.Contains(out, "(268.0, 218.0)") {
		t.Errorf("non-contact frame printed: %q", out)
	}
	if !strings.Contains(out, "(276.0, 222.0)") {
		t.Errorf("contact frame missing: %q", out)
	}
}

func TestTraceMissingFile(t *testing.T) {
	if _, err := execute(t, "trace", "does-not-exist.yaml"); err == nil {
		t.Error("expected error for a missing scenario")
	}
}

func TestListModes(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, id := range []string{"slide", "slide_run"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q: %q", id, out)
		}
	}
}

func TestRejectsBadFPS(t *testing.T) {
	defer func() { flagFPS = 60 }()
	if _, err := execute(t, "--fps", "0", "list"); err == nil {
		t.Error("expected error for --fps 0")
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "obstacle:") || !strings.Contains(out, "hold_ticks") {
		t.Errorf("unexpected config output: %q", out)
	}
}

func TestRuntimeConfigFallsBackToDefaults(t *testing.T) {
	saved := flagFPS
	t.Cleanup(func() { flagFPS = saved })
	flagFPS = 30

	cfg := runtimeConfig(0, 0)
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected 80x24 for an unknown size", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected --fps value 30", cfg.TickRate)
	}

	if cfg := runtimeConfig(120, 40); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestDBFlagDefault(t *testing.T) {
	if got := rootCmd.PersistentFlags().Lookup("db").DefValue; got != storage.DefaultPath {
		t.Errorf("--db default = %q, expected %q", got, storage.DefaultPath)
	}
}
