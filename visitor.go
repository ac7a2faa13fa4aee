// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Positional single dispatch.
//
// A positional visitor has one method per declared alternative, each
// statically typed. Implementing the interface is the exhaustiveness check:
// a visitor missing a case does not compile. Methods receive the declared
// alternative type as is, including Box alternatives.

// Visitor2 visits a Variant[Types2[A, B]] with result type R.
//
// Unlike [Visit], a Box alternative is not unwrapped: a method declared for
// Box[Node] receives the Box[Node] handle and calls [Box.Get] or [Box.Ptr]
// to reach the Node.
type Visitor2[A, B, R any] interface {
	VisitA(A) R
	VisitB(B) R
}

// Visitor3 visits a Variant[Types3[A, B, C]] with result type R.
type Visitor3[A, B, C, R any] interface {
	VisitA(A) R
	VisitB(B) R
	VisitC(C) R
}

// Visitor4 visits a Variant[Types4[A, B, C, D]] with result type R.
type Visitor4[A, B, C, D, R any] interface {
	VisitA(A) R
	VisitB(B) R
	VisitC(C) R
	VisitD(D) R
}

// Visit2 calls the method of vis matching the active alternative of v.
// Panics with [ErrEmpty] if v is empty.
func Visit2[A, B, R any](v Variant[Types2[A, B]], vis Visitor2[A, B, R]) R {
	switch v.Index() {
	case 0:
		return vis.VisitA(view[A](v))
	case 1:
		return vis.VisitB(view[B](v))
	case Invalid:
		emptyDispatch("visit")
	}
	dispatchFailure("visit", v.Index(), "unary dispatch")
	var zero R
	return zero
}

// Visit3 calls the method of vis matching the active alternative of v.
// Panics with [ErrEmpty] if v is empty.
func Visit3[A, B, C, R any](v Variant[Types3[A, B, C]], vis Visitor3[A, B, C, R]) R {
	switch v.Index() {
	case 0:
		return vis.VisitA(view[A](v))
	case 1:
		return vis.VisitB(view[B](v))
	case 2:
		return vis.VisitC(view[C](v))
	case Invalid:
		emptyDispatch("visit")
	}
	dispatchFailure("visit", v.Index(), "unary dispatch")
	var zero R
	return zero
}

// Visit4 calls the method of vis matching the active alternative of v.
// Panics with [ErrEmpty] if v is empty.
func Visit4[A, B, C, D, R any](v Variant[Types4[A, B, C, D]], vis Visitor4[A, B, C, D, R]) R {
	switch v.Index() {
	case 0:
		return vis.VisitA(view[A](v))
	case 1:
		return vis.VisitB(view[B](v))
	case 2:
		return vis.VisitC(view[C](v))
	case 3:
		return vis.VisitD(view[D](v))
	case Invalid:
		emptyDispatch("visit")
	}
	dispatchFailure("visit", v.Index(), "unary dispatch")
	var zero R
	return zero
}

// match2 adapts case functions to Visitor2.
type match2[A, B, R any] struct {
	a func(A) R
	b func(B) R
}

func (m match2[A, B, R]) VisitA(x A) R { return m.a(x) }
func (m match2[A, B, R]) VisitB(x B) R { return m.b(x) }

// Match2 calls the case function matching the active alternative of v.
//
// Example:
//
//	s := variant.Match2(v,
//		func(n int) string { return strconv.Itoa(n) },
//		func(s string) string { return s },
//	)
func Match2[A, B, R any](v Variant[Types2[A, B]], onA func(A) R, onB func(B) R) R {
	return Visit2[A, B, R](v, match2[A, B, R]{onA, onB})
}

type match3[A, B, C, R any] struct {
	a func(A) R
	b func(B) R
	c func(C) R
}

func (m match3[A, B, C, R]) VisitA(x A) R { return m.a(x) }
func (m match3[A, B, C, R]) VisitB(x B) R { return m.b(x) }
func (m match3[A, B, C, R]) VisitC(x C) R { return m.c(x) }

// Match3 calls the case function matching the active alternative of v.
func Match3[A, B, C, R any](v Variant[Types3[A, B, C]], onA func(A) R, onB func(B) R, onC func(C) R) R {
	return Visit3[A, B, C, R](v, match3[A, B, C, R]{onA, onB, onC})
}

type match4[A, B, C, D, R any] struct {
	a func(A) R
	b func(B) R
	c func(C) R
	d func(D) R
}

func (m match4[A, B, C, D, R]) VisitA(x A) R { return m.a(x) }
func (m match4[A, B, C, D, R]) VisitB(x B) R { return m.b(x) }
func (m match4[A, B, C, D, R]) VisitC(x C) R { return m.c(x) }
func (m match4[A, B, C, D, R]) VisitD(x D) R { return m.d(x) }

// Match4 calls the case function matching the active alternative of v.
func Match4[A, B, C, D, R any](v Variant[Types4[A, B, C, D]], onA func(A) R, onB func(B) R, onC func(C) R, onD func(D) R) R {
	return Visit4[A, B, C, D, R](v, match4[A, B, C, D, R]{onA, onB, onC, onD})
}
