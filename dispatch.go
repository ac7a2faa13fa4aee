// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "go.uber.org/zap"

// dispatchFailure logs and panics for a discriminant that names no
// alternative, or storage that does not hold the named alternative.
// Both mean internal state is corrupt; the panic is an assertion failure,
// not a recoverable error.
//
//go:noinline
func dispatchFailure(op string, i Index, detail string) {
	Logger().Error("variant: dispatch failure",
		zap.String("op", op),
		zap.Int("index", int(i)),
		zap.String("detail", detail))
	fault(KindDispatch, op, "", "", detail)
}

// invalidAlternative logs and panics for a type outside the alternative list.
//
//go:noinline
func invalidAlternative[L List](op, name string) {
	var l L
	Logger().Error("variant: type is not an alternative",
		zap.String("op", op),
		zap.String("type", name),
		zap.Int("alternatives", l.size()))
	fault(KindInvalidAlternative, op, name, "", "")
}

// emptyDispatch panics for visitation of an empty container.
//
//go:noinline
func emptyDispatch(op string) {
	fault(KindEmpty, op, "", emptyName, "")
}

// active resolves the alternative of a non-empty container for dispatch.
func active[L List](v Variant[L], op string) alternative {
	if v.tag == 0 {
		emptyDispatch(op)
	}
	return v.resolve(op)
}

// view returns the storage of v as T for positional dispatch.
func view[T any, L List](v Variant[L]) T {
	t, ok := v.data.(T)
	if !ok && !isNilOf[T](v.data) {
		dispatchFailure("visit", v.Index(), "storage does not hold "+slot[T]{}.name())
	}
	return t
}

// Visit calls f exactly once with the active value of v and returns its
// result. A Box alternative is unwrapped: f receives the payload.
//
// Resolution is a fixed O(N) match over the alternative list. Use the
// positional [Visit2], [Visit3], [Visit4] or [Match2] family when f should
// be statically typed per alternative.
//
// Panics with [ErrEmpty] if v is empty.
func Visit[R any, L List](v Variant[L], f func(value any) R) R {
	return f(active(v, "visit").unwrap(v.data))
}

// VisitPair calls f exactly once with the active values of l and r, each
// unwrapped like [Visit].
//
// Panics with [ErrEmpty] if either container is empty.
func VisitPair[R any, L List](l, r Variant[L], f func(x, y any) R) R {
	la := active(l, "binary visit")
	ra := active(r, "binary visit")
	return f(la.unwrap(l.data), ra.unwrap(r.data))
}
