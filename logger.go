// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	logger    atomic.Pointer[zap.Logger]
)

// Logger returns the package logger.
// It is a no-op logger unless one was installed with [SetLogger].
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger installs l as the package logger. A nil l restores the no-op logger.
//
// Only faults are logged: dispatch failures and rejected non-member
// alternatives, each immediately before the corresponding panic.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
