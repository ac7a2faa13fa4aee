// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/variant"
)

// Number is the two-alternative list used across tests.
type Number = variant.Types2[int, string]

// tracked counts its releases in a shared counter.
type tracked struct {
	id       int
	released *int
}

func (t tracked) Release() { *t.released++ }

// ints is a slice alternative with a deep Clone.
type ints []int

func (s ints) Clone() ints {
	return append(ints(nil), s...)
}

// expectPanic runs f and fails unless it panics with an *Error matching target.
func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic matching %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("got panic %v, want %v", err, target)
		}
	}()
	f()
}
