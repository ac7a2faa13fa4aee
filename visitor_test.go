// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"fmt"
	"strconv"
	"testing"

	"code.hybscloud.com/variant"
)

// describe is a Visitor2 over Number that counts its calls.
type describe struct{ calls int }

func (d *describe) VisitA(n int) string {
	d.calls++
	return "int " + strconv.Itoa(n)
}

func (d *describe) VisitB(s string) string {
	d.calls++
	return "string " + s
}

func TestVisit2CallsExactlyOnce(t *testing.T) {
	tests := []struct {
		name string
		v    variant.Variant[Number]
		want string
	}{
		{"int", variant.New[Number](3), "int 3"},
		{"string", variant.New[Number]("x"), "string x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := &describe{}
			if got := variant.Visit2[int, string, string](tc.v, d); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
			if d.calls != 1 {
				t.Fatalf("got %d calls, want 1", d.calls)
			}
		})
	}
}

func TestVisit2Empty(t *testing.T) {
	var v variant.Variant[Number]
	d := &describe{}
	expectPanic(t, variant.ErrEmpty, func() {
		variant.Visit2[int, string, string](v, d)
	})
	if d.calls != 0 {
		t.Fatalf("got %d calls on an empty container, want 0", d.calls)
	}
}

type kind3 struct{}

func (kind3) VisitA(int) string     { return "A" }
func (kind3) VisitB(string) string  { return "B" }
func (kind3) VisitC(float64) string { return "C" }

func TestVisit3(t *testing.T) {
	type L = variant.Types3[int, string, float64]
	for _, tc := range []struct {
		v    variant.Variant[L]
		want string
	}{
		{L{}.A(1), "A"},
		{L{}.B("b"), "B"},
		{L{}.C(1.5), "C"},
	} {
		if got := variant.Visit3[int, string, float64, string](tc.v, kind3{}); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}

type kind4 struct{}

func (kind4) VisitA(int) int     { return 0 }
func (kind4) VisitB(string) int  { return 1 }
func (kind4) VisitC(float64) int { return 2 }
func (kind4) VisitD(bool) int    { return 3 }

func TestVisit4AgreesWithIndex(t *testing.T) {
	type L = variant.Types4[int, string, float64, bool]
	for _, v := range []variant.Variant[L]{L{}.A(1), L{}.B("b"), L{}.C(1.5), L{}.D(true)} {
		got := variant.Visit4[int, string, float64, bool, int](v, kind4{})
		if variant.Index(got) != v.Index() {
			t.Fatalf("visited %d, active index %d", got, v.Index())
		}
	}
}

func TestMatch(t *testing.T) {
	v := variant.New[Number](12)
	got := variant.Match2(v,
		func(n int) string { return strconv.Itoa(n * 2) },
		func(s string) string { return s },
	)
	if got != "24" {
		t.Fatalf("got %q, want %q", got, "24")
	}

	type L3 = variant.Types3[int, string, bool]
	b := variant.Match3(L3{}.C(true),
		func(int) bool { return false },
		func(string) bool { return false },
		func(b bool) bool { return b },
	)
	if !b {
		t.Fatal("Match3 took the wrong case")
	}

	type L4 = variant.Types4[int, string, bool, float64]
	f := variant.Match4(L4{}.D(2.5),
		func(int) float64 { return 0 },
		func(string) float64 { return 0 },
		func(bool) float64 { return 0 },
		func(x float64) float64 { return x * 2 },
	)
	if f != 5 {
		t.Fatalf("got %v, want 5", f)
	}
}

func TestVisitTypeIndexed(t *testing.T) {
	calls := 0
	got := variant.Visit(variant.New[Number]("hi"), func(v any) string {
		calls++
		return fmt.Sprintf("%T:%v", v, v)
	})
	if got != "string:hi" {
		t.Fatalf("got %q, want %q", got, "string:hi")
	}
	if calls != 1 {
		t.Fatalf("got %d calls, want 1", calls)
	}

	var e variant.Variant[Number]
	expectPanic(t, variant.ErrEmpty, func() {
		variant.Visit(e, func(any) int { return 0 })
	})
}

func TestVisitUnwrapsBox(t *testing.T) {
	type L = variant.Types2[int, variant.Box[string]]
	v := variant.New[L]("boxed")
	got := variant.Visit(v, func(x any) string {
		s, ok := x.(string)
		if !ok {
			t.Fatalf("visitor received %T, want string", x)
		}
		return s
	})
	if got != "boxed" {
		t.Fatalf("got %q, want %q", got, "boxed")
	}
}

func TestPositionalDispatchPassesBoxHandle(t *testing.T) {
	type L = variant.Types2[int, variant.Box[string]]
	v := variant.New[L]("inside")
	got := variant.Match2(v,
		func(int) string { return "" },
		func(b variant.Box[string]) string { return b.Get() },
	)
	if got != "inside" {
		t.Fatalf("got %q, want %q", got, "inside")
	}
}
