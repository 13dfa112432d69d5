package util

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func AssertExpected(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("error, expected: %v, got: %v (-expected +got)\n%s", expected, got, diff)
		return false
	}
	return true
}

func AssertLen(t testing.TB, expected, got int) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertEqual(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertTrue(t testing.TB, got bool) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t testing.TB, got bool) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

// AssertError checks that err matches target using errors.Is
func AssertError(t testing.TB, err, target error) bool {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error, expected: %v, got: %v\n", target, err)
		return false
	}
	return true
}

func AssertNoError(t testing.TB, err error) bool {
	t.Helper()
	if err != nil {
		t.Errorf("error, expected: no error, got: %v\n", err)
		return false
	}
	return true
}

func AssertNil(t testing.TB, got interface{}) bool {
	t.Helper()
	if !isNil(got) {
		t.Errorf("error, expected: nil, got: %v\n", got)
		return false
	}
	return true
}

func AssertNotNil(t testing.TB, got interface{}) bool {
	t.Helper()
	if isNil(got) {
		t.Errorf("error, expected: not nil, got: %v\n", got)
		return false
	}
	return true
}

// AssertPanics checks that fn panics
func AssertPanics(t testing.TB, fn func()) (ok bool) {
	t.Helper()
	defer func() {
		ok = recover() != nil
		if !ok {
			t.Errorf("error, expected: panic, got: none\n")
		}
	}()
	fn()
	return
}

// isNil also catches typed nil pointers stored in an interface
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
