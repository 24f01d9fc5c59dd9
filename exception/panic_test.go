package exception_test

import (
	"testing"

	"github.com/paluchbiz/go-testing/exception"
)

func TestPanicRecoverPair(t *testing.T) {
	defer func() {
		if recovered := exception.Recover(recover()); recovered != nil {
			checkStackTrace(t, recovered.GetStackTrace(), "/exception_test.TestPanicRecoverPair")
		}
	}()
	exception.Panic("Test")
}

func TestRecoverRawPanic(t *testing.T) {
	defer func() {
		if recovered := exception.Recover(recover()); recovered != nil {
			checkStackTrace(t, recovered.GetStackTrace(), "/exception_test.TestRecoverRawPanic")
		}
	}()
	panic("Test")
}

func TestRecoverNil(t *testing.T) {
	if recovered := exception.Recover(nil); recovered != nil {
		t.Fatalf("expected nil, got %v", recovered)
	}
}

func TestRecoverKeepsRecoveredValue(t *testing.T) {
	defer func() {
		recovered := exception.Recover(recover())
		if recovered == nil {
			t.Fatalf("expected an exception")
		}
		if recovered.GetType() != string(exception.PanicError) {
			t.Fatalf("expected type %q, got %q", exception.PanicError, recovered.GetType())
		}
		if recovered.GetRecovered() != 42 {
			t.Fatalf("expected recovered value 42, got %v", recovered.GetRecovered())
		}
	}()
	panic(42)
}
