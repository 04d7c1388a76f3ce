// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package jsonpath evaluates JSON-path expressions against a JSON document.
//
// Supported syntax: an optional $ root, dotted member access (a.b.c), bracket
// indexing (a[0]), quoted member access (a["k.k"] or a['k.k']), the wildcard
// * (first matching member, or first element of an array), and recursive
// descent (..key, depth-first first match). Expressions resolve to at most
// one value; anything malformed or unmatched is reported as not found, never
// as an error.
package jsonpath
