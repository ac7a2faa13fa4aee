// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"code.hybscloud.com/variant"
)

var sinkInt int

type lenVisitor struct{}

func (lenVisitor) VisitA(n int) int    { return n }
func (lenVisitor) VisitB(s string) int { return len(s) }

type pairLen struct{}

func (pairLen) VisitAA(x, y int) int        { return x + y }
func (pairLen) VisitAB(x int, y string) int { return x + len(y) }
func (pairLen) VisitBA(x string, y int) int { return len(x) + y }
func (pairLen) VisitBB(x, y string) int     { return len(x) + len(y) }

func BenchmarkIs(b *testing.B) {
	v := variant.New[Number]("hi")
	for b.Loop() {
		if variant.Is[string](v) {
			sinkInt++
		}
	}
}

func BenchmarkGet(b *testing.B) {
	v := variant.New[Number](7)
	for b.Loop() {
		n, _ := variant.Get[int](v)
		sinkInt += n
	}
}

func BenchmarkVisit(b *testing.B) {
	v := variant.New[Number]("hi")
	for b.Loop() {
		sinkInt += variant.Visit(v, func(x any) int {
			if s, ok := x.(string); ok {
				return len(s)
			}
			return 0
		})
	}
}

func BenchmarkVisit2(b *testing.B) {
	v := variant.New[Number]("hi")
	for b.Loop() {
		sinkInt += variant.Visit2[int, string, int](v, lenVisitor{})
	}
}

func BenchmarkVisitPair2(b *testing.B) {
	l, r := variant.New[Number](1), variant.New[Number]("hi")
	for b.Loop() {
		sinkInt += variant.VisitPair2[int, string, int](l, r, pairLen{})
	}
}

func BenchmarkEqual(b *testing.B) {
	l, r := variant.New[Number]("abc"), variant.New[Number]("abc")
	for b.Loop() {
		if l.Equal(r) {
			sinkInt++
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	l, r := variant.New[Number](1), variant.New[Number](2)
	for b.Loop() {
		sinkInt += l.Compare(r)
	}
}

func BenchmarkSet(b *testing.B) {
	var v variant.Variant[Number]
	for b.Loop() {
		variant.Set(&v, 1)
		variant.Set(&v, "x")
	}
}

func BenchmarkCloneRecursive(b *testing.B) {
	e := sample()
	for b.Loop() {
		c := e.Clone()
		c.Release()
	}
}
