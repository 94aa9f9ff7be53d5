// internal/platform/logx/logx_test.go
package logx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelWarn)

	l.Debug("invisible")
	l.Info("invisible")
	l.Warn("visible warning")

	out := buf.String()
	if strings.Contains(out, "invisible") {
		t.Fatalf("low levels leaked: %q", out)
	}
	if !strings.Contains(out, "WRN visible warning") {
		t.Fatalf("warning missing: %q", out)
	}
}

func TestKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug)

	l.Info("stage finished", "stage", "direct", "factors", 2)

	out := buf.String()
	if !strings.Contains(out, "stage=direct") || !strings.Contains(out, "factors=2") {
		t.Fatalf("kv pairs missing: %q", out)
	}
}

func TestOddKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug)

	l.Info("msg", "orphan")
	if !strings.Contains(buf.String(), "orphan=(missing)") {
		t.Fatalf("orphan key not marked: %q", buf.String())
	}
}

func TestErrNilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug)

	l.Err(nil)
	if buf.Len() != 0 {
		t.Fatalf("nil error produced output: %q", buf.String())
	}

	l.Err(errors.New("boom"), "stage", "cyclotomic")
	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "stage=cyclotomic") {
		t.Fatalf("error line incomplete: %q", out)
	}
}

func TestWithScope(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug).With("component", "sieve")

	l.Info("primes generated", "count", 1229)

	out := buf.String()
	if !strings.Contains(out, "component=sieve") {
		t.Fatalf("scoped field missing: %q", out)
	}
	if !strings.Contains(out, "count=1229") {
		t.Fatalf("call field missing: %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelError)

	l.Info("dropped")
	l.SetLevel(LevelInfo)
	l.Info("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Fatalf("SetLevel not applied: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q): got %d, want %d", in, got, want)
		}
	}
}
