package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrIs(t *testing.T) {
	e1 := ErrUnsupportedUnit.WithInternalMsg("unit 'fortnight'")
	e2 := ErrUnsupportedUnit.WithInternalMsg("unit 'eon'")

	if !errors.Is(e1, ErrUnsupportedUnit) {
		t.Fatal("e1 should match ErrUnsupportedUnit")
	}
	if !errors.Is(e2, ErrUnsupportedUnit) {
		t.Fatal("e2 should match ErrUnsupportedUnit")
	}
	if errors.Is(e1, ErrOutOfRange) {
		t.Fatal("e1 should not match ErrOutOfRange")
	}
}

func TestErrWrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	e := ErrIllegalArgument.Wrapf(cause, "while validating %v", "zone")
	if e == nil {
		t.Fatal("wrapping non-nil cause should not be nil")
	}
	if !errors.Is(e, ErrIllegalArgument) {
		t.Fatal("wrapped error should keep its code")
	}
	if !errors.Is(e, cause) {
		t.Fatal("wrapped error should unwrap to cause")
	}
	if !strings.Contains(e.Error(), "underlying failure") {
		t.Fatalf("cause missing from message: %v", e.Error())
	}

	if ErrIllegalArgument.Wrap(nil) != nil {
		t.Fatal("wrapping nil should be nil")
	}
	if ErrIllegalArgument.Wrapf(nil, "ctx") != nil {
		t.Fatal("wrapping nil should be nil")
	}
}

func TestErrStack(t *testing.T) {
	e := NewErrf("boom")
	if e.StackTrace() == "" {
		t.Fatal("stack should be captured")
	}

	st, ok := UnwrapErrStack(WrapErr(fmt.Errorf("plain")))
	if !ok || st == "" {
		t.Fatal("WrapErr should capture a stack")
	}

	if got := ErrorStackTrace(nil); got != "nil" {
		t.Fatalf("expected 'nil', got %v", got)
	}
}

func TestErrCode(t *testing.T) {
	if ErrOutOfRange.Code() != ErrCodeOutOfRange {
		t.Fatal("wrong code")
	}
	if !ErrOutOfRange.HasCode() {
		t.Fatal("should have code")
	}
	if NewErrf("plain").HasCode() {
		t.Fatal("plain error should have no code")
	}

	e := NewErrf("x").WithCode("Y")
	if e.Code() != "Y" {
		t.Fatal("WithCode should set the code")
	}
}
