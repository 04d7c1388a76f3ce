// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package configproxy

import "fmt"

// FileError reports that an explicitly named configuration file (via the
// Options.EnvLocation environment variable) does not exist or is unreadable.
// Candidate-name scanning never produces a FileError for a missing name.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("configproxy: config file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError reports that a configuration file exists but its content is not
// valid JSON (or YAML, for *.yaml/*.yml files).
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("configproxy: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports that a parsed document failed the configured JSON
// Schema. Err carries the validation detail. Path is empty when the schema
// was checked against the empty document of a Proxy with no resolvable file.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configproxy: validate empty document: %v", e.Err)
	}
	return fmt.Sprintf("configproxy: validate %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TypeError reports that a resolved raw value could not be converted to a
// typed Property's declared type. Path and Env identify the property, Value
// is the offending raw value and Target the declared type.
type TypeError struct {
	Path   string
	Env    string
	Value  any
	Target string
	Err    error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("configproxy: property path=%q env=%q: cannot convert %v (%T) to %s: %v",
		e.Path, e.Env, e.Value, e.Value, e.Target, e.Err)
}

func (e *TypeError) Unwrap() error { return e.Err }
