// internal/testutil/helpers.go
package testutil

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"domainsearch/internal/platform/logx"
)

// AssertEqual verifica que dos valores sean iguales.
func AssertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// AssertNotEqual verifica que dos valores sean diferentes.
func AssertNotEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got == want {
		t.Errorf("%s: got %v, should not equal %v", msg, got, want)
	}
}

// AssertNil verifica que un valor sea nil.
func AssertNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	if !isNil(got) {
		t.Errorf("%s: expected nil, got %v", msg, got)
	}
}

// AssertNotNil verifica que un valor no sea nil.
func AssertNotNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	if isNil(got) {
		t.Errorf("%s: expected non-nil value", msg)
	}
}

// AssertError verifica que un error no sea nil.
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected error, got nil", msg)
	}
}

// AssertNoError verifica que no haya error.
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", msg, err)
	}
}

// AssertErrorIs verifica que err envuelva target.
func AssertErrorIs(t *testing.T, err, target error, msg string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%s: expected error wrapping %v, got %v", msg, target, err)
	}
}

// AssertTrue verifica que una condición sea verdadera.
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Errorf("%s: expected true, got false", msg)
	}
}

// AssertFalse verifica que una condición sea falsa.
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Errorf("%s: expected false, got true", msg)
	}
}

// AssertContains verifica que un slice contenga un elemento O que un string contenga un substring.
func AssertContains(t *testing.T, container interface{}, element string, msg string) {
	t.Helper()

	switch v := container.(type) {
	case []string:
		for _, item := range v {
			if item == element {
				return
			}
		}
		t.Errorf("%s: slice %v does not contain %s", msg, v, element)
	case string:
		if !strings.Contains(v, element) {
			t.Errorf("%s: string %q does not contain %q", msg, v, element)
		}
	default:
		t.Errorf("%s: unsupported type for AssertContains", msg)
	}
}

// AssertLen verifica la longitud de un slice de strings.
func AssertLen(t *testing.T, slice []string, want int, msg string) {
	t.Helper()
	if len(slice) != want {
		t.Errorf("%s: got length %d, want %d", msg, len(slice), want)
	}
}

// AssertDurationBetween verifica que min <= d <= max.
func AssertDurationBetween(t *testing.T, d, min, max time.Duration, msg string) {
	t.Helper()
	if d < min || d > max {
		t.Errorf("%s: duration %s not in [%s, %s]", msg, d, min, max)
	}
}

// TestLogger es un logx.Logger silencioso para tests.
type TestLogger struct{}

func (l *TestLogger) Debug(msg string, kv ...any) {}
func (l *TestLogger) Info(msg string, kv ...any)  {}
func (l *TestLogger) Warn(msg string, kv ...any)  {}
func (l *TestLogger) Err(err error, kv ...any)    {}
func (l *TestLogger) With(kv ...any) logx.Logger  { return l }
func (l *TestLogger) SetLevel(lvl logx.Level)     {}

// NewTestLogger retorna un logger silencioso para tests.
func NewTestLogger() logx.Logger {
	return &TestLogger{}
}

// isNil también detecta punteros, mapas, slices y canales nil dentro de la interfaz.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
