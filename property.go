// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package configproxy

import "os"

// Source identifies the tier that served a resolved value.
type Source int

const (
	SourceNone Source = iota
	SourceEnv
	SourceFile
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "environment"
	case SourceFile:
		return "file"
	case SourceDefault:
		return "default"
	default:
		return "none"
	}
}

// Resolution is the outcome of a single Property access: the value, whether
// any tier produced one, and which tier it was.
type Resolution struct {
	Value  any
	Found  bool
	Source Source
}

// Property is a configuration accessor combining three tiers: an environment
// variable, a JSON-path into the bound Proxy's document, and a static
// default. A Property is immutable after construction and resolution is
// computed per access, so environment changes between accesses are observed
// while the document stays memoized in the Proxy.
type Property struct {
	// Path is a JSON-path expression locating the value in the document.
	Path string

	// Env names the environment variable consulted first. Presence wins
	// even when the variable is set to the empty string. Optional.
	Env string

	// Default is returned when neither environment nor document yields a
	// value. Nil means no default.
	Default any

	// Proxy serves the file tier. Nil selects the shared default Proxy.
	Proxy *Proxy
}

// Resolve runs the three-tier lookup and reports the value together with the
// tier that served it. Exhausting all tiers is not an error; the error
// return carries only the Proxy's file, parse and schema failures.
func (p Property) Resolve() (Resolution, error) {
	if p.Env != "" {
		if v, ok := os.LookupEnv(p.Env); ok {
			return Resolution{Value: v, Found: true, Source: SourceEnv}, nil
		}
	}

	if p.Path != "" {
		v, ok, err := p.proxy().Value(p.Path)
		if err != nil {
			return Resolution{}, err
		}
		if ok {
			return Resolution{Value: v, Found: true, Source: SourceFile}, nil
		}
	}

	if p.Default != nil {
		return Resolution{Value: p.Default, Found: true, Source: SourceDefault}, nil
	}

	return Resolution{}, nil
}

// Lookup returns the resolved value and whether any tier produced one.
func (p Property) Lookup() (any, bool, error) {
	res, err := p.Resolve()
	return res.Value, res.Found, err
}

// Value returns the resolved value, nil when no tier produced one.
func (p Property) Value() (any, error) {
	res, err := p.Resolve()
	return res.Value, err
}

func (p Property) proxy() *Proxy {
	if p.Proxy != nil {
		return p.Proxy
	}
	return Default()
}
