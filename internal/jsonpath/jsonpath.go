// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package jsonpath

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

type segKind int

const (
	segKey segKind = iota
	segIndex
	segWild
	segRecurse
)

type segment struct {
	kind  segKind
	key   string
	index int
}

// Get evaluates expr against doc and returns the first matching value. The
// second return is false when the expression is malformed, the document is
// empty, or nothing matches.
func Get(doc []byte, expr string) (gjson.Result, bool) {
	if len(doc) == 0 {
		return gjson.Result{}, false
	}

	segs, ok := parse(expr)
	if !ok {
		return gjson.Result{}, false
	}

	current := gjson.ParseBytes(doc)
	for _, s := range segs {
		switch s.kind {
		case segKey:
			current = current.Get(escape(s.key))
		case segIndex:
			if !current.IsArray() {
				return gjson.Result{}, false
			}
			arr := current.Array()
			if s.index >= len(arr) {
				return gjson.Result{}, false
			}
			current = arr[s.index]
		case segWild:
			if current.IsArray() {
				arr := current.Array()
				if len(arr) == 0 {
					return gjson.Result{}, false
				}
				current = arr[0]
			} else {
				current = current.Get("*")
			}
		case segRecurse:
			found, ok := dig(current, s.key)
			if !ok {
				return gjson.Result{}, false
			}
			current = found
		}

		if !current.Exists() {
			return gjson.Result{}, false
		}
	}

	return current, true
}

// dig performs a depth-first search for key below r and returns the first
// value found.
func dig(r gjson.Result, key string) (gjson.Result, bool) {
	if r.IsObject() {
		if v := r.Get(escape(key)); v.Exists() {
			return v, true
		}
	}

	var found gjson.Result
	ok := false
	r.ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() || v.IsArray() {
			if f, o := dig(v, key); o {
				found, ok = f, true
				return false
			}
		}
		return true
	})

	return found, ok
}

// parse tokenizes a JSON-path expression into segments. Returns false for
// anything it cannot make sense of.
func parse(expr string) ([]segment, bool) {
	if expr == "" {
		return nil, false
	}

	rest := strings.TrimPrefix(expr, "$")
	var segs []segment

	for rest != "" {
		switch {
		case strings.HasPrefix(rest, ".."):
			key, tail, ok := ident(rest[2:])
			if !ok {
				return nil, false
			}
			segs = append(segs, segment{kind: segRecurse, key: key})
			rest = tail

		case strings.HasPrefix(rest, "."):
			rest = rest[1:]
			if rest == "" || strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, "[") {
				return nil, false
			}

		case strings.HasPrefix(rest, "["):
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, false
			}
			seg, ok := bracket(rest[1:end])
			if !ok {
				return nil, false
			}
			segs = append(segs, seg)
			rest = rest[end+1:]

		default:
			key, tail, ok := ident(rest)
			if !ok {
				return nil, false
			}
			if key == "*" {
				segs = append(segs, segment{kind: segWild})
			} else {
				segs = append(segs, segment{kind: segKey, key: key})
			}
			rest = tail
		}
	}

	return segs, true
}

// bracket interprets the content between [ and ]: a numeric index, the
// wildcard *, or a quoted member name.
func bracket(content string) (segment, bool) {
	if content == "*" {
		return segment{kind: segWild}, true
	}

	if len(content) >= 2 {
		if q := content[0]; (q == '\'' || q == '"') && content[len(content)-1] == q {
			return segment{kind: segKey, key: content[1 : len(content)-1]}, true
		}
	}

	i, err := strconv.Atoi(content)
	if err != nil || i < 0 {
		return segment{}, false
	}
	return segment{kind: segIndex, index: i}, true
}

// ident consumes a member name (or bare *) up to the next . or [ boundary.
func ident(s string) (key, tail string, ok bool) {
	end := strings.IndexAny(s, ".[")
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return "", "", false
	}
	return s[:end], s[end:], true
}

// escape protects gjson's special characters in a literal member name.
func escape(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
