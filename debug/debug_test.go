package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSwitches(t *testing.T) {
	defer SetKeys(Keys())
	SetKeys(true)
	if !Keys() {
		t.Error("keys switch not set")
	}
	SetKeys(false)
	if Keys() {
		t.Error("keys switch not cleared")
	}
}

func TestLog(t *testing.T) {
	buf := &bytes.Buffer{}
	defer SetLogger(theLog)
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Log("encode descend", "path", "$.a")
	Logf("count %d", 3)
	out := buf.String()
	if !strings.Contains(out, `msg="encode descend" path=$.a`) {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, `msg="count 3"`) {
		t.Errorf("got %q", out)
	}
}
