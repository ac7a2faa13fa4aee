// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"
	"sync/atomic"
)

// Box is a value-semantic heap indirection.
// It owns exactly one heap-allocated payload of type T.
//
// Box lets an alternative refer to the container's own type: declare
// Box[Node] as the alternative, where Node embeds the container. Every
// type-indexed access, dispatch, comparison and formatting path unwraps
// the box, so callers name Node, never Box[Node].
//
// Go assignment copies the handle, not the payload; [Box.Clone] is the
// deep copy. Release is affine: the payload is released at most once, no
// matter how many handles share it.
type Box[T any] struct {
	c *cell[T]
}

type cell[T any] struct {
	released atomic.Uintptr
	value    T
}

// NewBox allocates a box owning v.
func NewBox[T any](v T) Box[T] {
	return Box[T]{c: &cell[T]{value: v}}
}

// Valid reports whether the box owns a live payload.
// Moved-from, released and zero boxes are not valid.
func (b Box[T]) Valid() bool {
	return b.c != nil && b.c.released.Load() == 0
}

// Get returns a copy of the payload.
// Panics if the box is empty.
func (b Box[T]) Get() T {
	return *b.Ptr()
}

// Ptr returns a pointer to the payload for in-place mutation.
// Panics if the box is empty.
func (b Box[T]) Ptr() *T {
	if !b.Valid() {
		fault(KindEmpty, "box", slot[T]{}.name(), emptyName, "")
	}
	return &b.c.value
}

// Clone returns a box owning a deep copy of the payload.
// The copy uses the payload's Clone method when it has one.
// Cloning an empty box returns an empty box.
func (b Box[T]) Clone() Box[T] {
	if !b.Valid() {
		return Box[T]{}
	}
	return NewBox(copyOf(b.c.value))
}

// Move transfers ownership of the payload to the returned box.
// The receiver is left empty and safe to release.
func (b *Box[T]) Move() Box[T] {
	m := *b
	b.c = nil
	return m
}

// Release releases the payload and empties the box.
// Releasing an empty box is a no-op.
func (b *Box[T]) Release() {
	b.release()
	b.c = nil
}

// release releases the payload once; later calls through any handle
// sharing the cell are no-ops.
func (b Box[T]) release() {
	if b.c == nil || b.c.released.Add(1) != 1 {
		return
	}
	releaseOf(b.c.value)
	var zero T
	b.c.value = zero
}

// Equal reports whether both boxes hold equal payloads.
// Two empty boxes are equal.
func (b Box[T]) Equal(o Box[T]) bool {
	bv, ov := b.Valid(), o.Valid()
	if !bv || !ov {
		return bv == ov
	}
	return equalOf(b.c.value, o.c.value)
}

// Compare orders boxes by payload. An empty box orders first.
func (b Box[T]) Compare(o Box[T]) int {
	bv, ov := b.Valid(), o.Valid()
	switch {
	case !bv && !ov:
		return 0
	case !bv:
		return -1
	case !ov:
		return 1
	}
	return compareOf(b.c.value, o.c.value)
}

// Format writes the payload with the caller's verb and flags.
func (b Box[T]) Format(f fmt.State, verb rune) {
	if !b.Valid() {
		fmt.Fprint(f, emptyName)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), b.c.value)
}

// String returns the payload formatted with %v.
func (b Box[T]) String() string {
	return fmt.Sprint(b)
}

func (*Box[T]) payloadKey() any { return keyOf[T]() }

func (*Box[T]) box(x any) any { return NewBox(x.(T)) }

func (b Box[T]) unbox() any { return b.Get() }

// ptr gives [Update] in-place access to the payload.
func (b Box[T]) ptr() *T { return b.Ptr() }
