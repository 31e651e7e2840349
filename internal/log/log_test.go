package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "flipclock.log")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Infow("mode changed", "mode", "timer")
	Infof("config loaded from %s", "config.yml")
	Warnw("countdown entry rejected", "input", "ab")
	LogError("export failed", errors.New("boom"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"mode changed", "config loaded from config.yml", "countdown entry rejected", "boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log file, got %q", want, out)
		}
	}
}

func TestInitEmptyPathIsNop(t *testing.T) {
	if err := Init("", true); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if GetSugaredLogger() == nil {
		t.Fatalf("expected non-nil logger")
	}
	Debugw("dropped", "n", 1)
}
