// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package variant provides a generic tagged union with value semantics.
//
// A [Variant] stores exactly one value of one of a fixed, ordered list of
// alternative types, or nothing. The alternative list is a type argument,
// declared once:
//
//	type Number = variant.Types2[int, string]
//
//	a := Number{}.A(5)                    // positional, checked by the compiler
//	b := variant.New[Number]("hi")        // type-indexed
//
// # Design Philosophy
//
// variant provides:
//   - A compile-time alternative registry: the list type resolves each
//     alternative to a stable discriminant
//   - A single lifetime helper per alternative: copy, move and release all
//     route through it
//   - Statically typed single and double dispatch
//   - Value operations (equality, ordering, formatting) built on dispatch
//
// # Alternative Registry
//
//   - [List]: Sealed alternative-list interface
//   - [Types2], [Types3], [Types4]: Alternative lists of two to four types
//   - [Index]: Discriminant, the declaration position of an alternative
//   - [Invalid]: Discriminant of the empty container
//
// Larger sets nest: a Variant is itself a valid alternative.
//
// # Container
//
// Construction:
//
//   - [New]: Construct from a value (type-indexed)
//   - [Types2.A], [Types2.B], ...: Construct from a value (positional)
//   - [Variant.Clone]: Deep copy
//   - [Variant.Move]: Transfer ownership, leaving the source empty
//
// Access:
//
//   - [Is]: Is T the active alternative?
//   - [Variant.Valid]: Does the container hold a value?
//   - [Variant.Index]: Raw discriminant
//   - [Get]: Returns (value, error); [ErrTypeMismatch] on mismatch
//   - [MustGet]: Like Get, panics on mismatch
//
// Mutation:
//
//   - [Set]: Release the current value, then store a new one
//   - [Update]: Mutate the active value in place
//   - [Variant.Swap]: Exchange two containers
//   - [Variant.Assign]: Copy-and-swap assignment
//   - [Variant.Release]: Release the value, leaving the container empty
//
// # Lifetime Protocols
//
// Alternatives opt into copy and release semantics by implementing:
//
//   - [Cloner]: Clone() T, used instead of a plain Go copy
//   - [Releaser]: Release(), run once when the value leaves a container
//
// Release runs exactly once per stored value: Set and Assign release the
// outgoing value, Move transfers it without releasing, and a moved-from
// container releases nothing.
//
// # Indirection
//
// [Box] is a heap-owned, value-semantic wrapper that lets an alternative
// refer to the container's own type:
//
//	type Expr = variant.Variant[variant.Types2[int, variant.Box[Add]]]
//	type Add struct{ L, R Expr }
//
// [Is], [Get], [Set], [Update], [Visit], [VisitPair], equality, ordering and
// formatting unwrap a Box alternative, so callers name Add, not Box[Add].
//
// # Dispatch
//
// Type-indexed, with box unwrapping:
//
//   - [Visit]: Call f(value) with the active value
//   - [VisitPair]: Call f(x, y) with the active values of two containers
//
// Positional, statically typed per alternative:
//
//   - [Visitor2], [Visitor3], [Visitor4] with [Visit2], [Visit3], [Visit4]
//   - [Match2], [Match3], [Match4]: Case functions instead of a visitor
//   - [PairVisitor2], [PairVisitor3], [PairVisitor4] with [VisitPair2],
//     [VisitPair3], [VisitPair4]: one method per ordered pair; a shared
//     alternative is passed at one type to both arguments
//
// Positional methods and case functions are typed by the declared
// alternatives, so a Box[Node] alternative arrives as the Box[Node] handle,
// not the Node; open it with [Box.Get]:
//
//	variant.Match2(e,
//		func(n int) int { return n },
//		func(b variant.Box[Node]) int { return eval(b.Get()) },
//	)
//
// # Value Operations
//
//   - [Variant.Equal]: Different alternatives are never equal
//   - [Variant.Compare], [Variant.Less]: Different alternatives order by
//     declaration position, equal alternatives by their own ordering
//   - [Variant.Format], [Variant.String]: The active value's own formatting
//   - [Variant.MarshalLogObject]: zap object encoding
//
// Alternatives supply equality and ordering with [Equaler] and [Comparer];
// comparable types fall back to ==, and integer, float and string kinds to
// their natural order.
//
// # Errors
//
// [Get] and [Update] return an [*Error] on type mismatch. Every other fault
// is a programming error and panics with an [*Error]:
//
//   - [ErrInvalidAlternative]: The type is not in the alternative list
//   - [ErrEmpty]: Visiting an empty container, or reading an empty box
//   - [ErrDispatch]: The discriminant does not name what storage holds
//   - [ErrIncomparable], [ErrUnordered]: No equality or ordering
//
// Dispatch failures and invalid alternatives are logged through [Logger]
// before the panic. Install a logger with [SetLogger].
//
// # Concurrency
//
// A Variant is a plain value. Concurrent reads are safe; concurrent
// mutation of one container requires external synchronization.
package variant
