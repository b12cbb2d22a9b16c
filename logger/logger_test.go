package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitDefaultsToInfo(t *testing.T) {
	Init("not-a-level")
	if log == nil {
		t.Fatal("log not initialized")
	}
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", log.GetLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	Init("warn")
	var buf bytes.Buffer
	log.SetOutput(&buf)

	Debug("hidden debug")
	Infof("hidden %s", "info")
	Warn("visible warn")
	Errorf("visible %s", "error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("suppressed levels leaked: %s", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Fatalf("expected warn and error lines: %s", out)
	}
}

func TestFatalUsesExitFunc(t *testing.T) {
	Init("info")
	log.SetOutput(&bytes.Buffer{})
	exited := 0
	log.ExitFunc = func(int) { exited++ }

	Fatal("boom")
	Fatalf("%s", "boom")
	if exited != 2 {
		t.Fatalf("exit func called %d times, want 2", exited)
	}
}
