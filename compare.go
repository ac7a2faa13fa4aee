// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"cmp"
	"reflect"
)

// Equaler is implemented by alternatives with their own equality.
type Equaler[T any] interface {
	Equal(T) bool
}

// Comparer is implemented by alternatives with their own ordering.
// Compare returns a negative number, zero or a positive number when the
// receiver orders before, with or after the argument, like [cmp.Compare].
type Comparer[T any] interface {
	Compare(T) int
}

// Equal reports whether v and o hold equal values.
//
// Containers with different active alternatives are never equal. Two empty
// containers are equal. Otherwise the alternative's own equality decides:
// its Equal method, or == for comparable types. Panics with
// [ErrIncomparable] for an alternative with neither.
func (v Variant[L]) Equal(o Variant[L]) bool {
	if v.tag != o.tag {
		return false
	}
	if v.tag == 0 {
		return true
	}
	return v.resolve("equal").equal(v.data, o.data)
}

// Compare orders v against o.
//
// Containers holding different alternatives order by declaration position
// of the alternative, with the empty container first. This is a positional
// tie-break, not a semantic order across types. The empty container orders
// before every alternative because its discriminant, [Invalid], is -1;
// designs that encode "no value" as the largest discriminant order it last
// instead. Containers holding the same
// alternative order by the alternative's Compare method, or by the natural
// order of integer, float and string kinds. Panics with [ErrUnordered] for
// an alternative with neither.
func (v Variant[L]) Compare(o Variant[L]) int {
	if v.tag != o.tag {
		return cmp.Compare(v.tag, o.tag)
	}
	if v.tag == 0 {
		return 0
	}
	return v.resolve("compare").compare(v.data, o.data)
}

// Less reports whether v orders before o. See [Variant.Compare].
func (v Variant[L]) Less(o Variant[L]) bool {
	return v.Compare(o) < 0
}

// equalOf compares two values of T with T's own equality.
func equalOf[T any](x, y T) bool {
	if e, ok := any(x).(Equaler[T]); ok {
		return e.Equal(y)
	}
	t := reflect.TypeFor[T]()
	if !t.Comparable() {
		fault(KindIncomparable, "equal", slot[T]{}.name(), "", "no Equal method and not comparable")
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Struct, reflect.Array:
		// == compares dynamic values held in interfaces, which may not be
		// comparable even when T is.
		xv := reflect.ValueOf(any(x))
		if xv.IsValid() && !xv.Comparable() && xv.Type() == reflect.TypeOf(any(y)) {
			fault(KindIncomparable, "equal", xv.Type().String(), "", "dynamic value not comparable")
		}
	}
	return any(x) == any(y)
}

// compareOf orders two values of T with T's own ordering.
func compareOf[T any](x, y T) int {
	if c, ok := any(x).(Comparer[T]); ok {
		return c.Compare(y)
	}
	// Interface alternatives may hold different dynamic types.
	xt, yt := reflect.TypeOf(any(x)), reflect.TypeOf(any(y))
	if xt != yt {
		fault(KindUnordered, "compare", slot[T]{}.name(), "", "dynamic types differ")
	}
	if xt == nil {
		return 0
	}
	switch a := any(x).(type) {
	case int:
		return cmp.Compare(a, any(y).(int))
	case string:
		return cmp.Compare(a, any(y).(string))
	case float64:
		return cmp.Compare(a, any(y).(float64))
	}
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	if xv.IsValid() && yv.IsValid() {
		switch xv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(xv.Int(), yv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(xv.Uint(), yv.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(xv.Float(), yv.Float())
		case reflect.String:
			return cmp.Compare(xv.String(), yv.String())
		}
	}
	fault(KindUnordered, "compare", slot[T]{}.name(), "", "no Compare method and not an ordered kind")
	return 0
}
