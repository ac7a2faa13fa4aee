// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Index is a discriminant: the declaration position of an alternative.
// The first declared alternative has Index 0.
//
// Index values are meaningful only relative to one alternative list and
// must not be persisted or exchanged.
type Index int

// Invalid is the discriminant of an empty container, and the result of
// looking up a type that is not an alternative.
const Invalid Index = -1

// List is the compile-time alternative list of a [Variant].
// It is implemented only by [Types2], [Types3] and [Types4].
type List interface {
	size() int
	alternative(i Index) alternative
}

// Types2 declares a two-alternative list.
type Types2[A, B any] struct{}

func (Types2[A, B]) size() int { return 2 }

func (Types2[A, B]) alternative(i Index) alternative {
	switch i {
	case 0:
		return slot[A]{}
	case 1:
		return slot[B]{}
	}
	return nil
}

// Types3 declares a three-alternative list.
type Types3[A, B, C any] struct{}

func (Types3[A, B, C]) size() int { return 3 }

func (Types3[A, B, C]) alternative(i Index) alternative {
	switch i {
	case 0:
		return slot[A]{}
	case 1:
		return slot[B]{}
	case 2:
		return slot[C]{}
	}
	return nil
}

// Types4 declares a four-alternative list.
// Larger sets nest: a Variant is itself a valid alternative.
type Types4[A, B, C, D any] struct{}

func (Types4[A, B, C, D]) size() int { return 4 }

func (Types4[A, B, C, D]) alternative(i Index) alternative {
	switch i {
	case 0:
		return slot[A]{}
	case 1:
		return slot[B]{}
	case 2:
		return slot[C]{}
	case 3:
		return slot[D]{}
	}
	return nil
}

// keyOf returns the registry key of T: a typed nil pointer.
// Two keys compare equal iff their types are identical.
func keyOf[T any]() any { return (*T)(nil) }

// indexOf resolves a registry key against L.
// Exact alternatives match first; the payload of a Box alternative second.
func indexOf[L List](key any) Index {
	var l L
	n := l.size()
	for i := range n {
		if l.alternative(Index(i)).key() == key {
			return Index(i)
		}
	}
	for i := range n {
		if pk := l.alternative(Index(i)).payloadKey(); pk != nil && pk == key {
			return Index(i)
		}
	}
	return Invalid
}

// alternativeAt returns the lifetime helper for position i of L, or nil.
func alternativeAt[L List](i Index) alternative {
	var l L
	if i < 0 || int(i) >= l.size() {
		return nil
	}
	return l.alternative(i)
}

// mustIndexOf resolves T against L, logging and panicking for non-members.
func mustIndexOf[T any, L List](op string) Index {
	i := indexOf[L](keyOf[T]())
	if i == Invalid {
		invalidAlternative[L](op, slot[T]{}.name())
	}
	return i
}

// Positional constructors. They accept only declared types, so a
// non-member is rejected by the compiler.

// A returns a container holding the first alternative.
func (Types2[A, B]) A(x A) Variant[Types2[A, B]] { return holding[Types2[A, B]](0, x) }

// B returns a container holding the second alternative.
func (Types2[A, B]) B(x B) Variant[Types2[A, B]] { return holding[Types2[A, B]](1, x) }

// A returns a container holding the first alternative.
func (Types3[A, B, C]) A(x A) Variant[Types3[A, B, C]] { return holding[Types3[A, B, C]](0, x) }

// B returns a container holding the second alternative.
func (Types3[A, B, C]) B(x B) Variant[Types3[A, B, C]] { return holding[Types3[A, B, C]](1, x) }

// C returns a container holding the third alternative.
func (Types3[A, B, C]) C(x C) Variant[Types3[A, B, C]] { return holding[Types3[A, B, C]](2, x) }

// A returns a container holding the first alternative.
func (Types4[A, B, C, D]) A(x A) Variant[Types4[A, B, C, D]] {
	return holding[Types4[A, B, C, D]](0, x)
}

// B returns a container holding the second alternative.
func (Types4[A, B, C, D]) B(x B) Variant[Types4[A, B, C, D]] {
	return holding[Types4[A, B, C, D]](1, x)
}

// C returns a container holding the third alternative.
func (Types4[A, B, C, D]) C(x C) Variant[Types4[A, B, C, D]] {
	return holding[Types4[A, B, C, D]](2, x)
}

// D returns a container holding the fourth alternative.
func (Types4[A, B, C, D]) D(x D) Variant[Types4[A, B, C, D]] {
	return holding[Types4[A, B, C, D]](3, x)
}
