// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "reflect"

// Cloner is implemented by alternatives whose copies must not share state.
// Clone plays the role of a copy constructor: [Variant.Clone] and
// [Box.Clone] call it instead of copying the value.
type Cloner[T any] interface {
	Clone() T
}

// Releaser is implemented by alternatives that own resources.
// Release plays the role of a destructor: it runs exactly once when the
// alternative stops being the active value of a container, through
// [Variant.Release], [Set] or [Variant.Assign].
type Releaser interface {
	Release()
}

// destroyer is the value-receiver release of containers and boxes, so that
// they release their payload when stored by value inside another container.
type destroyer interface {
	release()
}

// boxer is implemented by *Box[T]. Its methods never dereference the
// receiver, so they are called on typed nil pointers.
type boxer interface {
	payloadKey() any
	box(x any) any
}

// unboxer is implemented by Box[T] values.
type unboxer interface {
	unbox() any
}

// alternative is the lifetime helper for one alternative type.
// It is the only code that treats opaque storage as a concrete type.
type alternative interface {
	key() any
	payloadKey() any
	name() string
	holds(data any) bool
	construct(x any) any
	destroy(data any)
	copy(data any) any
	move(data any) any
	unwrap(data any) any
	equal(l, r any) bool
	compare(l, r any) int
}

// slot implements alternative for T.
type slot[T any] struct{}

func (slot[T]) key() any { return keyOf[T]() }

func (slot[T]) payloadKey() any {
	if b, ok := any((*T)(nil)).(boxer); ok {
		return b.payloadKey()
	}
	return nil
}

func (slot[T]) name() string { return reflect.TypeFor[T]().String() }

func (slot[T]) holds(data any) bool {
	_, ok := data.(T)
	return ok || isNilOf[T](data)
}

// view is the typed view of storage. Storage holding anything but T means
// the discriminant is out of sync with the value.
func (s slot[T]) view(data any) T {
	t, ok := data.(T)
	if !ok && !isNilOf[T](data) {
		dispatchFailure("view", Invalid, "storage does not hold "+s.name())
	}
	return t
}

// construct converts x into storage for T. x is either a T or, when T is a
// Box, the payload the box wraps.
func (s slot[T]) construct(x any) any {
	if t, ok := x.(T); ok {
		return t
	}
	if isNilOf[T](x) {
		return nil
	}
	if b, ok := any((*T)(nil)).(boxer); ok {
		return b.box(x)
	}
	dispatchFailure("construct", Invalid, "cannot construct "+s.name())
	return nil
}

func (s slot[T]) destroy(data any) {
	releaseOf(s.view(data))
}

func (s slot[T]) copy(data any) any {
	return copyOf(s.view(data))
}

// move transfers the stored value. The caller clears the source, which
// leaves the value owned by exactly one container.
func (s slot[T]) move(data any) any {
	return s.view(data)
}

func (s slot[T]) unwrap(data any) any {
	t := s.view(data)
	if u, ok := any(t).(unboxer); ok {
		return u.unbox()
	}
	return t
}

func (s slot[T]) equal(l, r any) bool {
	return equalOf(s.view(l), s.view(r))
}

func (s slot[T]) compare(l, r any) int {
	return compareOf(s.view(l), s.view(r))
}

// isNilOf reports whether data is the storage of a nil T. Only interface
// types have a nil value that boxes to a nil any; it holds no dynamic type
// for an assertion to match.
func isNilOf[T any](data any) bool {
	return data == nil && reflect.TypeFor[T]().Kind() == reflect.Interface
}

// copyOf copies x through its Clone method when it has one.
func copyOf[T any](x T) T {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x
}

// releaseOf runs the destructor of x, if it has one.
func releaseOf[T any](x T) {
	switch r := any(x).(type) {
	case destroyer:
		r.release()
	case Releaser:
		r.Release()
	}
}
