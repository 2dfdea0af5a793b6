package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Debug("hidden")
	l.Info("shown", "seed", 42)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message leaked at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "seed=42") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("Generated 3 sprites")
	out := buf.String()
	if !strings.Contains(out, "Generated 3 sprites (") || !strings.Contains(out, "s)") {
		t.Fatalf("progress output = %q", out)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("before")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("after")
	if strings.Contains(buf.String(), "before") || !strings.Contains(buf.String(), "after") {
		t.Fatalf("log output = %q", buf.String())
	}
}
