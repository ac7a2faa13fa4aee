// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Variant holds exactly one value of one of the alternatives declared by L,
// or nothing. The zero value is empty.
//
// The discriminant and the storage always agree: when the discriminant
// names alternative T, storage holds exactly one live T. Every mutation
// goes through the lifetime helper of the outgoing alternative first.
//
// Go assignment copies the container header; reference-typed payloads are
// then shared, as with slices. Use [Variant.Clone] for a deep copy and
// [Variant.Move] to transfer ownership.
type Variant[L List] struct {
	tag  uint8 // 0: empty; i+1: alternative i
	data any
}

// holding wraps storage for alternative i.
func holding[L List](i Index, x any) Variant[L] {
	return Variant[L]{tag: uint8(i) + 1, data: x}
}

// New returns a container holding x. The container adopts x.
//
// T is either an alternative of L or the payload of a Box alternative, in
// which case x is boxed. Panics with [ErrInvalidAlternative] otherwise; the
// positional constructors ([Types2.A] and friends) reject non-members at
// compile time instead.
func New[L List, T any](x T) Variant[L] {
	i := mustIndexOf[T, L]("new")
	return holding[L](i, alternativeAt[L](i).construct(x))
}

// Valid reports whether the container holds a value.
func (v Variant[L]) Valid() bool {
	return v.tag != 0
}

// Index returns the discriminant: the declaration position of the active
// alternative, or [Invalid] if empty.
func (v Variant[L]) Index() Index {
	return Index(v.tag) - 1
}

// Is reports whether T is the active alternative of v.
// For a Box alternative, T may also be the boxed payload type.
func Is[T any, L List](v Variant[L]) bool {
	i := indexOf[L](keyOf[T]())
	return i != Invalid && i == v.Index()
}

// Get returns the active value as T.
// If T is not the active alternative, Get returns the zero T and an *Error
// matching [ErrTypeMismatch]; check [Is] first to avoid it. A T outside the
// alternative list yields [ErrInvalidAlternative].
func Get[T any, L List](v Variant[L]) (T, error) {
	var zero T
	i := indexOf[L](keyOf[T]())
	if i == Invalid {
		return zero, &Error{Kind: KindInvalidAlternative, Op: "get", Want: slot[T]{}.name()}
	}
	if i != v.Index() {
		return zero, &Error{Kind: KindTypeMismatch, Op: "get", Want: slot[T]{}.name(), Got: v.typeName()}
	}
	switch x := v.data.(type) {
	case T:
		return x, nil
	case interface{ ptr() *T }:
		return *x.ptr(), nil
	}
	if isNilOf[T](v.data) {
		return zero, nil
	}
	dispatchFailure("get", v.Index(), "storage does not hold "+slot[T]{}.name())
	return zero, nil
}

// MustGet is like [Get] but panics with the *Error.
func MustGet[T any, L List](v Variant[L]) T {
	x, err := Get[T](v)
	if err != nil {
		panic(err)
	}
	return x
}

// Set makes x the active value of v. The previous value is released
// first. T follows the rules of [New].
//
// Setting a box handle that shares its cell with the active box is a no-op.
// Otherwise x must not share owned resources with the active value, which
// is released before x is stored; pass a [Variant.Clone] or [Box.Clone]
// copy instead.
func Set[T any, L List](v *Variant[L], x T) {
	i := mustIndexOf[T, L]("set")
	data := alternativeAt[L](i).construct(x)
	if sameCell(v.data, data) {
		return
	}
	v.destroy()
	v.data = data
	v.tag = uint8(i) + 1
}

// sameCell reports whether a and b are box handles sharing one cell.
// Box handles are comparable, and == on differing dynamic types is false.
func sameCell(a, b any) bool {
	_, ok := a.(unboxer)
	return ok && a == b
}

// Update calls f with a pointer to the active value, which must be T.
// Mutations are visible in v. For a Box alternative, f receives a pointer
// to the payload. Errors follow [Get].
func Update[T any, L List](v *Variant[L], f func(*T)) error {
	i := indexOf[L](keyOf[T]())
	if i == Invalid {
		return &Error{Kind: KindInvalidAlternative, Op: "update", Want: slot[T]{}.name()}
	}
	if i != v.Index() {
		return &Error{Kind: KindTypeMismatch, Op: "update", Want: slot[T]{}.name(), Got: v.typeName()}
	}
	switch x := v.data.(type) {
	case T:
		f(&x)
		v.data = x
		return nil
	case interface{ ptr() *T }:
		f(x.ptr())
		return nil
	}
	if isNilOf[T](v.data) {
		var x T
		f(&x)
		v.data = x
		return nil
	}
	dispatchFailure("update", v.Index(), "storage does not hold "+slot[T]{}.name())
	return nil
}

// Clone returns a deep copy of v: the active value is copied through its
// Clone method when it has one.
func (v Variant[L]) Clone() Variant[L] {
	if v.tag == 0 {
		return Variant[L]{}
	}
	return Variant[L]{tag: v.tag, data: v.resolve("copy").copy(v.data)}
}

// Move transfers the value of v to the returned container and leaves v
// empty. Releasing the moved-from v is a no-op.
func (v *Variant[L]) Move() Variant[L] {
	var m Variant[L]
	if v.tag != 0 {
		m.data = v.resolve("move").move(v.data)
		m.tag = v.tag
	}
	v.tag, v.data = 0, nil
	return m
}

// Swap exchanges the contents of v and o.
func (v *Variant[L]) Swap(o *Variant[L]) {
	v.tag, o.tag = o.tag, v.tag
	v.data, o.data = o.data, v.data
}

// Assign replaces the value of v with a copy of o's value.
// The copy is built before v is touched, so a panicking Clone leaves v
// unmodified. Self-assignment is safe.
func (v *Variant[L]) Assign(o Variant[L]) {
	tmp := o.Clone()
	v.Swap(&tmp)
	tmp.Release()
}

// Release releases the active value and leaves v empty.
// Releasing an empty container is a no-op.
func (v *Variant[L]) Release() {
	v.destroy()
}

// release releases the payload of a container stored by value inside
// another container or box.
func (v Variant[L]) release() {
	if v.tag != 0 {
		v.resolve("release").destroy(v.data)
	}
}

func (v *Variant[L]) destroy() {
	if v.tag != 0 {
		v.resolve("release").destroy(v.data)
	}
	v.tag, v.data = 0, nil
}

// resolve returns the lifetime helper of the active alternative.
// v must not be empty.
func (v Variant[L]) resolve(op string) alternative {
	a := alternativeAt[L](v.Index())
	if a == nil || !a.holds(v.data) {
		dispatchFailure(op, v.Index(), "discriminant does not name the stored value")
	}
	return a
}

// typeName returns the name of the active alternative, or "<empty>".
func (v Variant[L]) typeName() string {
	if a := alternativeAt[L](v.Index()); a != nil {
		return a.name()
	}
	return emptyName
}
