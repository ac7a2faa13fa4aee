// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Format implements [fmt.Formatter]. The active value is written with the
// caller's verb, flags, width and precision; the container adds nothing of
// its own. Box alternatives write their payload. An empty container writes
// "<empty>".
func (v Variant[L]) Format(f fmt.State, verb rune) {
	if v.tag == 0 {
		fmt.Fprint(f, emptyName)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.resolve("format").unwrap(v.data))
}

// String returns the active value formatted with %v.
func (v Variant[L]) String() string {
	return fmt.Sprint(v)
}

// MarshalLogObject implements [zapcore.ObjectMarshaler], so a container
// can be logged with zap.Object.
func (v Variant[L]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("index", int(v.Index()))
	enc.AddString("type", v.typeName())
	if v.tag != 0 {
		enc.AddString("value", v.String())
	}
	return nil
}
