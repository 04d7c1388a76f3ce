// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package log wraps apex/log with a compact stdout handler. The level is
// taken from the CONFIGPROXY_LOG environment variable and defaults to error
// so the library stays quiet inside host applications. Setup is lazy: the
// first logging call configures the handler and level.
package log
