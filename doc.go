// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package configproxy resolves named configuration values by checking, in
// priority order: an environment variable, a JSON-path into a configuration
// file, and a static default.
//
// Two types cooperate. A Proxy owns the file-resolution policy (which
// environment variable names an explicit file path, which candidate file
// names are searched in the working directory) and parses the discovered
// file exactly once. A Property binds a JSON-path, an optional environment
// variable name and an optional default to a Proxy, and produces a single
// resolved value on demand:
//
//	host := configproxy.NewString("database.host", "DATABASE_HOST", "localhost")
//	v, err := host.Value()
//
// Configuration files are UTF-8 JSON; files named *.yaml or *.yml are
// accepted and normalized to JSON before lookup. An optional JSON Schema may
// be attached through Options and is checked once, right after the parse.
package configproxy
