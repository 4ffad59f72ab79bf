package logger

import "testing"

func TestNew(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		log, err := New(level)
		if err != nil {
			t.Errorf("New(%q) failed: %v", level, err)
			continue
		}
		_ = log.Sync()
	}

	if _, err := New("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
