package tui

import (
	"testing"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDetectMode_ForcedNonInteractive(t *testing.T) {
	got := detectMode(envOf(map[string]string{EnvNonInteractive: "1"}), true, true)
	if got != ModeNonInteractive {
		t.Errorf("detectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	got := detectMode(envOf(map[string]string{"CI": "true"}), true, true)
	if got != ModeNonInteractive {
		t.Errorf("detectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_NoColorStaysInteractive(t *testing.T) {
	got := detectMode(envOf(map[string]string{"NO_COLOR": "1"}), true, true)
	if got != ModeInteractive {
		t.Errorf("detectMode() = %d, want ModeInteractive", got)
	}
}

func TestDetectMode_PipedInput(t *testing.T) {
	if got := detectMode(envOf(nil), false, true); got != ModeNonInteractive {
		t.Errorf("detectMode() = %d, want ModeNonInteractive", got)
	}
	if got := detectMode(envOf(nil), true, false); got != ModeNonInteractive {
		t.Errorf("detectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// In test context, stdin/stdout are not terminals
	t.Setenv(EnvNonInteractive, "")
	t.Setenv("CI", "")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}
