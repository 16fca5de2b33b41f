/*
Package assert holds the few test helpers shared by the custody packages.
Every helper stops the test on failure and reports the caller's line.
*/
package assert

import (
	"bytes"
	"reflect"

	"github.com/iov-one/custody/errors"
)

// Tester is the part of testing.TB the helpers use.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
	Logf(string, ...interface{})
}

// Nil also accepts typed nil pointers, slices and maps. Errors are printed
// with %+v to show their stack trace.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		t.Fatalf("want nil, got %+v", value)
	}
}

func NotNil(t Tester, value interface{}) {
	t.Helper()
	if isNil(value) {
		t.Fatal("want a non nil value")
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Equal compares with reflect.DeepEqual, except that byte slices of any
// named type, such as addresses, compare by content. A nil and an empty
// slice are then equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	wb, wok := asBytes(want)
	gb, gok := asBytes(got)
	if wok && gok {
		if !bytes.Equal(wb, gb) {
			t.Fatalf("bytes differ\nwant %X\n got %X", wb, gb)
		}
		return
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values differ\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

func asBytes(v interface{}) ([]byte, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}
	return rv.Bytes(), true
}

func True(t Tester, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Fatalf("want true: %s", msg)
	}
}

// Panics fails unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	panicked := func() (p bool) {
		defer func() { p = recover() != nil }()
		fn()
		return false
	}()
	if !panicked {
		t.Fatal("want a panic")
	}
}

// FieldError checks that err holds exactly one error for field and that it
// is of kind want. A nil want checks that field has no error at all.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()
	found := errors.FieldErrors(err, field)
	switch {
	case want == nil && len(found) == 0:
		return
	case want == nil:
		logAll(t, found)
		t.Fatalf("want no error for %q, got %d", field, len(found))
	case len(found) == 0:
		t.Fatalf("no error for %q in %+v", field, err)
	case len(found) > 1:
		logAll(t, found)
		t.Fatalf("want one error for %q, got %d", field, len(found))
	case !want.Is(found[0]):
		t.Fatalf("want %q for %q, got %q", want, field, found[0])
	}
}

func logAll(t Tester, errs []error) {
	for i, e := range errs {
		t.Logf("\terror %d: %q", i+1, e)
	}
}

// IsErr passes when got is of kind want, checked with want's Is method
// when it has one. A typed nil *errors.Error want accepts only nil.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}
