// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Positional double dispatch.
//
// A pair visitor has one method per ordered pair of alternatives. When both
// containers hold the same alternative X, VisitXX receives both values at
// type X; otherwise VisitXY receives each value at its own type. Exactly one
// method is called. As with positional single dispatch, Box alternatives are
// passed as Box handles.

// PairVisitor2 visits two Variant[Types2[A, B]] values with result type R.
type PairVisitor2[A, B, R any] interface {
	VisitAA(A, A) R
	VisitAB(A, B) R
	VisitBA(B, A) R
	VisitBB(B, B) R
}

// VisitPair2 resolves the active alternatives of l and r and calls the
// matching method of vis. Panics with [ErrEmpty] if either container is empty.
func VisitPair2[A, B, R any](l, r Variant[Types2[A, B]], vis PairVisitor2[A, B, R]) R {
	if l.tag == 0 || r.tag == 0 {
		emptyDispatch("binary visit")
	}
	switch l.Index() {
	case 0:
		x := view[A](l)
		switch r.Index() {
		case 0:
			return vis.VisitAA(x, view[A](r))
		case 1:
			return vis.VisitAB(x, view[B](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	case 1:
		x := view[B](l)
		switch r.Index() {
		case 0:
			return vis.VisitBA(x, view[A](r))
		case 1:
			return vis.VisitBB(x, view[B](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	}
	dispatchFailure("binary visit", l.Index(), "left operand")
	var zero R
	return zero
}

// PairVisitor3 visits two Variant[Types3[A, B, C]] values with result type R.
type PairVisitor3[A, B, C, R any] interface {
	VisitAA(A, A) R
	VisitAB(A, B) R
	VisitAC(A, C) R
	VisitBA(B, A) R
	VisitBB(B, B) R
	VisitBC(B, C) R
	VisitCA(C, A) R
	VisitCB(C, B) R
	VisitCC(C, C) R
}

// VisitPair3 resolves the active alternatives of l and r and calls the
// matching method of vis. Panics with [ErrEmpty] if either container is empty.
func VisitPair3[A, B, C, R any](l, r Variant[Types3[A, B, C]], vis PairVisitor3[A, B, C, R]) R {
	if l.tag == 0 || r.tag == 0 {
		emptyDispatch("binary visit")
	}
	switch l.Index() {
	case 0:
		x := view[A](l)
		switch r.Index() {
		case 0:
			return vis.VisitAA(x, view[A](r))
		case 1:
			return vis.VisitAB(x, view[B](r))
		case 2:
			return vis.VisitAC(x, view[C](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	case 1:
		x := view[B](l)
		switch r.Index() {
		case 0:
			return vis.VisitBA(x, view[A](r))
		case 1:
			return vis.VisitBB(x, view[B](r))
		case 2:
			return vis.VisitBC(x, view[C](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	case 2:
		x := view[C](l)
		switch r.Index() {
		case 0:
			return vis.VisitCA(x, view[A](r))
		case 1:
			return vis.VisitCB(x, view[B](r))
		case 2:
			return vis.VisitCC(x, view[C](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	}
	dispatchFailure("binary visit", l.Index(), "left operand")
	var zero R
	return zero
}

// PairVisitor4 visits two Variant[Types4[A, B, C, D]] values with result type R.
type PairVisitor4[A, B, C, D, R any] interface {
	VisitAA(A, A) R
	VisitAB(A, B) R
	VisitAC(A, C) R
	VisitAD(A, D) R
	VisitBA(B, A) R
	VisitBB(B, B) R
	VisitBC(B, C) R
	VisitBD(B, D) R
	VisitCA(C, A) R
	VisitCB(C, B) R
	VisitCC(C, C) R
	VisitCD(C, D) R
	VisitDA(D, A) R
	VisitDB(D, B) R
	VisitDC(D, C) R
	VisitDD(D, D) R
}

// VisitPair4 resolves the active alternatives of l and r and calls the
// matching method of vis. Panics with [ErrEmpty] if either container is empty.
func VisitPair4[A, B, C, D, R any](l, r Variant[Types4[A, B, C, D]], vis PairVisitor4[A, B, C, D, R]) R {
	if l.tag == 0 || r.tag == 0 {
		emptyDispatch("binary visit")
	}
	switch l.Index() {
	case 0:
		x := view[A](l)
		switch r.Index() {
		case 0:
			return vis.VisitAA(x, view[A](r))
		case 1:
			return vis.VisitAB(x, view[B](r))
		case 2:
			return vis.VisitAC(x, view[C](r))
		case 3:
			return vis.VisitAD(x, view[D](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	case 1:
		x := view[B](l)
		switch r.Index() {
		case 0:
			return vis.VisitBA(x, view[A](r))
		case 1:
			return vis.VisitBB(x, view[B](r))
		case 2:
			return vis.VisitBC(x, view[C](r))
		case 3:
			return vis.VisitBD(x, view[D](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	case 2:
		x := view[C](l)
		switch r.Index() {
		case 0:
			return vis.VisitCA(x, view[A](r))
		case 1:
			return vis.VisitCB(x, view[B](r))
		case 2:
			return vis.VisitCC(x, view[C](r))
		case 3:
			return vis.VisitCD(x, view[D](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	case 3:
		x := view[D](l)
		switch r.Index() {
		case 0:
			return vis.VisitDA(x, view[A](r))
		case 1:
			return vis.VisitDB(x, view[B](r))
		case 2:
			return vis.VisitDC(x, view[C](r))
		case 3:
			return vis.VisitDD(x, view[D](r))
		}
		dispatchFailure("binary visit", r.Index(), "right operand")
	}
	dispatchFailure("binary visit", l.Index(), "left operand")
	var zero R
	return zero
}
