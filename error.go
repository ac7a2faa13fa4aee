// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "strings"

// Kind categorizes a variant fault.
type Kind string

const (
	// KindTypeMismatch: the requested type is not the active alternative.
	KindTypeMismatch Kind = "type_mismatch"
	// KindInvalidAlternative: the type is not declared in the alternative list.
	KindInvalidAlternative Kind = "invalid_alternative"
	// KindDispatch: the discriminant does not name what storage holds.
	KindDispatch Kind = "dispatch_failure"
	// KindEmpty: the container or box holds no value.
	KindEmpty Kind = "empty"
	// KindIncomparable: the alternative has no equality.
	KindIncomparable Kind = "incomparable"
	// KindUnordered: the alternative has no ordering.
	KindUnordered Kind = "unordered"
)

// Error is the fault type returned or panicked by this package.
//
// Type mismatches are returned from [Get]. Every other kind signals a
// programming error and is raised with panic(*Error).
type Error struct {
	Kind   Kind
	Op     string // operation, e.g. "get", "visit"
	Want   string // requested type
	Got    string // active type
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("variant: ")
	b.WriteString(string(e.Kind))
	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}
	if e.Want != "" || e.Got != "" {
		b.WriteString(": ")
		if e.Want != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
		}
		if e.Want != "" && e.Got != "" {
			b.WriteString(", ")
		}
		if e.Got != "" {
			b.WriteString("got ")
			b.WriteString(e.Got)
		}
	}
	if e.Detail != "" {
		if e.Want != "" || e.Got != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrTypeMismatch       = &Error{Kind: KindTypeMismatch}
	ErrInvalidAlternative = &Error{Kind: KindInvalidAlternative}
	ErrDispatch           = &Error{Kind: KindDispatch}
	ErrEmpty              = &Error{Kind: KindEmpty}
	ErrIncomparable       = &Error{Kind: KindIncomparable}
	ErrUnordered          = &Error{Kind: KindUnordered}
)

// emptyName is the type name reported for a container with no value.
const emptyName = "<empty>"

// fault panics with a descriptive *Error.
// Extracted as a noinline function so that accessors remain inlineable.
//
//go:noinline
func fault(kind Kind, op, want, got, detail string) {
	panic(&Error{Kind: kind, Op: op, Want: want, Got: got, Detail: detail})
}
