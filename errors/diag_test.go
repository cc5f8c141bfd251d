package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestDiagError(t *testing.T) {
	d := Warnf("detect_arch", "unsupported CPU architecture %q", "m68k")
	if !strings.Contains(d.Error(), "detect_arch") || !strings.Contains(d.Error(), "m68k") {
		t.Fatalf("unexpected message: %s", d.Error())
	}
}

func TestDiagUnwrap(t *testing.T) {
	cause := stderrors.New("exec: not found")
	d := WarnErr("detect_endianness", cause, "probe failed")
	if !stderrors.Is(d, cause) {
		t.Fatalf("diag should unwrap to its cause")
	}
}

func TestCollect(t *testing.T) {
	if err := Collect(nil, nil); err != nil {
		t.Fatalf("all-nil collect should be nil, got %v", err)
	}

	d1 := Warnf("lipo", "no artifacts")
	d2 := Warnf("detect_mvk", "not found")
	err := Collect(d1, nil, d2)
	if err == nil {
		t.Fatal("expected merged error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "no artifacts") || !strings.Contains(msg, "not found") {
		t.Fatalf("merged error missing parts: %s", msg)
	}
}
