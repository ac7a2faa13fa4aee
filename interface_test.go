// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/variant"
)

// Fallible has an interface-typed alternative, whose nil value is a value.
type Fallible = variant.Types2[error, int]

var errBoom = errors.New("boom")

func TestInterfaceAlternativeNil(t *testing.T) {
	v := variant.New[Fallible](error(nil))
	if !v.Valid() || v.Index() != 0 {
		t.Fatalf("got valid=%v index=%d, want valid index 0", v.Valid(), v.Index())
	}
	if !variant.Is[error](v) {
		t.Fatal("nil error must be the active alternative")
	}
	got, err := variant.Get[error](v)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}

	if !v.Equal(Fallible{}.A(nil)) {
		t.Fatal("positional and type-indexed nil must be equal")
	}
	c := v.Clone()
	if !c.Equal(v) {
		t.Fatalf("clone %v != %v", c, v)
	}
	if v.Compare(c) != 0 {
		t.Fatal("nil values must order equal")
	}
	if s := fmt.Sprint(v); s != "<nil>" {
		t.Fatalf("got %q, want %q", s, "<nil>")
	}

	kind := variant.Match2(v,
		func(e error) string {
			if e == nil {
				return "nil"
			}
			return "err"
		},
		func(int) string { return "int" },
	)
	if kind != "nil" {
		t.Fatalf("got %q, want %q", kind, "nil")
	}
	if got := variant.Visit(v, func(x any) bool { return x == nil }); !got {
		t.Fatal("Visit must pass the nil value")
	}

	v.Release()
	c.Release()
	if v.Valid() || c.Valid() {
		t.Fatal("released containers must be empty")
	}
}

func TestInterfaceAlternativeUpdateFromNil(t *testing.T) {
	v := Fallible{}.A(nil)
	if err := variant.Update(&v, func(e *error) { *e = errBoom }); err != nil {
		t.Fatal(err)
	}
	got := variant.MustGet[error](v)
	if !errors.Is(got, errBoom) {
		t.Fatalf("got %v, want %v", got, errBoom)
	}
	if err := variant.Update(&v, func(e *error) { *e = nil }); err != nil {
		t.Fatal(err)
	}
	if got := variant.MustGet[error](v); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestInterfaceAlternativeNonNil(t *testing.T) {
	v := variant.New[Fallible](errBoom)
	if !variant.Is[error](v) {
		t.Fatal("error must be the active alternative")
	}
	if got := variant.MustGet[error](v); got != errBoom {
		t.Fatalf("got %v, want %v", got, errBoom)
	}
	if !v.Equal(v.Clone()) {
		t.Fatal("clone must equal the original")
	}
	if v.Equal(Fallible{}.A(nil)) {
		t.Fatal("non-nil error must not equal nil")
	}
	if s := v.String(); s != "boom" {
		t.Fatalf("got %q, want %q", s, "boom")
	}

	variant.Set(&v, error(nil))
	if got := variant.MustGet[error](v); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestAnyAlternativeNil(t *testing.T) {
	type L = variant.Types2[any, string]
	v := variant.New[L](any(nil))
	if !variant.Is[any](v) {
		t.Fatal("nil any must be the active alternative")
	}
	if got := variant.MustGet[any](v); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
	if got := variant.Visit2[any, string, string](v, anyVisitor{}); got != "any <nil>" {
		t.Fatalf("got %q, want %q", got, "any <nil>")
	}
}

type anyVisitor struct{}

func (anyVisitor) VisitA(x any) string    { return fmt.Sprint("any ", x) }
func (anyVisitor) VisitB(s string) string { return "string " + s }

func TestEqualUncomparableDynamicValue(t *testing.T) {
	type L = variant.Types2[any, int]
	a := variant.New[L](any([]int{1}))
	b := variant.New[L](any([]int{1}))
	expectPanic(t, variant.ErrIncomparable, func() { a.Equal(b) })

	if a.Equal(variant.New[L](any(1))) {
		t.Fatal("values of different dynamic types must not be equal")
	}
	if !variant.New[L](any(1)).Equal(variant.New[L](any(1))) {
		t.Fatal("comparable dynamic values must compare with ==")
	}
}

func TestEqualStructWithUncomparableField(t *testing.T) {
	type holder struct{ v any }
	type L = variant.Types2[holder, int]
	a := variant.New[L](holder{v: map[string]int{}})
	expectPanic(t, variant.ErrIncomparable, func() { a.Equal(a.Clone()) })

	if !variant.New[L](holder{v: 1}).Equal(variant.New[L](holder{v: 1})) {
		t.Fatal("comparable field values must compare with ==")
	}
}

func TestCompareDynamicTypes(t *testing.T) {
	type L = variant.Types2[any, string]
	one, two := variant.New[L](any(1)), variant.New[L](any(2))
	if !one.Less(two) {
		t.Fatal("same dynamic type must use its natural order")
	}
	expectPanic(t, variant.ErrUnordered, func() {
		one.Compare(variant.New[L](any("x")))
	})
}
