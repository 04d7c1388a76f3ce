// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package configproxy

import "sync"

// The shared default Proxy serves Properties constructed without an explicit
// one. It is an ordinary Proxy behind a guarded slot, constructible and
// replaceable, not a hidden policy.
var (
	defaultMu    sync.RWMutex
	defaultProxy *Proxy
)

// Default returns the shared default Proxy, constructing one with zero
// Options on first use.
func Default() *Proxy {
	defaultMu.RLock()
	if p := defaultProxy; p != nil {
		defaultMu.RUnlock()
		return p
	}
	defaultMu.RUnlock()

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultProxy == nil {
		defaultProxy = New(Options{})
	}
	return defaultProxy
}

// SetDefault replaces the shared default Proxy. Pass nil to reset to the
// lazily constructed zero-Options Proxy.
func SetDefault(p *Proxy) {
	defaultMu.Lock()
	defaultProxy = p
	defaultMu.Unlock()
}

// Reload swaps the shared default Proxy for a fresh instance with the same
// policy, forcing the configuration file to be located and parsed again on
// the next lookup. Proxies already handed out keep their memoized document.
func Reload() *Proxy {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	opts := Options{}
	if defaultProxy != nil {
		opts = defaultProxy.opts
	}
	defaultProxy = New(opts)
	return defaultProxy
}
