// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package configproxy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/configproxy/configproxy/internal/jsonpath"
	"github.com/configproxy/configproxy/internal/log"
)

// Proxy discovers and parses exactly one configuration file and exposes
// path-based value extraction. The file is located and parsed lazily on the
// first lookup and the outcome, success or failure, is memoized for the
// lifetime of the instance. A Proxy with no resolvable file serves an empty
// document rather than failing.
type Proxy struct {
	opts Options

	once   sync.Once
	doc    []byte // normalized JSON bytes; nil when no file resolved
	source string // path of the file loaded, "" when none
	err    error  // terminal load error, re-surfaced on every access
}

// New returns a Proxy with the given resolution policy. Zero fields of opts
// take the package defaults.
func New(opts Options) *Proxy {
	return &Proxy{opts: opts.withDefaults()}
}

// Options returns the policy the Proxy was constructed with, defaults
// applied.
func (p *Proxy) Options() Options {
	return p.opts
}

// Value evaluates a JSON-path expression against the parsed document and
// returns the first matching value decoded to Go (string, float64, bool,
// map[string]any, []any, or nil for JSON null). The second return is false
// when nothing matches or the document is empty; that is not an error. The
// error return carries file, parse and schema failures from the one-time
// load.
func (p *Proxy) Value(path string) (any, bool, error) {
	if err := p.load(); err != nil {
		return nil, false, err
	}

	res, ok := jsonpath.Get(p.doc, path)
	if !ok {
		return nil, false, nil
	}
	return res.Value(), true, nil
}

// Path returns the resolved configuration file path, or "" when the Proxy
// serves an empty document.
func (p *Proxy) Path() (string, error) {
	if err := p.load(); err != nil {
		return "", err
	}
	return p.source, nil
}

// Document returns the parsed document as normalized JSON bytes. The slice
// is shared; callers must not modify it. Nil when no file was resolved.
func (p *Proxy) Document() ([]byte, error) {
	if err := p.load(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

// load runs the resolve/read/parse/validate sequence at most once.
func (p *Proxy) load() error {
	p.once.Do(func() {
		p.err = p.loadOnce()
	})
	return p.err
}

func (p *Proxy) loadOnce() error {
	path, err := p.resolveFile()
	if err != nil {
		return err
	}
	if path == "" {
		log.Debugf("no config file resolved; serving empty document")
		// A configured schema still applies: the empty document must
		// satisfy it.
		return p.validateSchema("", map[string]any{})
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	doc, decoded, err := decodeFile(path, raw)
	if err != nil {
		return err
	}

	if err := p.validateSchema(path, decoded); err != nil {
		return err
	}

	p.doc = doc
	p.source = path
	return nil
}

// resolveFile picks the configuration file path. An explicit path from the
// EnvLocation environment variable must be honored or surfaced as a
// FileError; the candidate-name scan silently skips missing names. Neither
// yielding a path is not an error.
func (p *Proxy) resolveFile() (string, error) {
	if path := os.Getenv(p.opts.EnvLocation); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return "", &FileError{Path: path, Err: fmt.Errorf("%s names a missing file: %w", p.opts.EnvLocation, err)}
		}
		if info.IsDir() {
			return "", &FileError{Path: path, Err: fmt.Errorf("%s points to a directory", p.opts.EnvLocation)}
		}
		log.Infof("using config file from %s: %s", p.opts.EnvLocation, path)
		return path, nil
	}

	for _, dir := range p.opts.SearchDirs {
		for _, name := range p.opts.FileNames {
			candidate := filepath.Join(dir, name)
			log.Debugf("searching for config file at %s", candidate)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				log.Debugf("using config file: %s", candidate)
				return candidate, nil
			}
		}
	}

	return "", nil
}

// decodeFile parses raw as JSON, or as YAML normalized to JSON for files
// named *.yaml / *.yml. Returns the JSON bytes used for lookups and the
// decoded document used for schema validation.
func decodeFile(path string, raw []byte) ([]byte, any, error) {
	var decoded any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &decoded); err != nil {
			return nil, nil, &ParseError{Path: path, Err: err}
		}
		normalized, err := json.Marshal(decoded)
		if err != nil {
			return nil, nil, &ParseError{Path: path, Err: err}
		}
		// Round-trip so the decoded shape matches the JSON bytes
		// (map[string]any, float64 numbers).
		if err := json.Unmarshal(normalized, &decoded); err != nil {
			return nil, nil, &ParseError{Path: path, Err: err}
		}
		return normalized, decoded, nil

	default:
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, nil, &ParseError{Path: path, Err: err}
		}
		return raw, decoded, nil
	}
}

// validateSchema checks the decoded document against the configured JSON
// Schema, if any. A SchemaPath that does not exist logs a warning and
// validation is skipped.
func (p *Proxy) validateSchema(path string, decoded any) error {
	src := p.opts.Schema
	name := "schema.json"

	if len(src) == 0 {
		if p.opts.SchemaPath == "" {
			return nil
		}
		raw, err := os.ReadFile(p.opts.SchemaPath)
		if err != nil {
			log.Warnf("configuration schema not found at %s; continuing without schema", p.opts.SchemaPath)
			return nil
		}
		src = raw
		name = p.opts.SchemaPath
	}

	sch, err := jsonschema.CompileString(name, string(src))
	if err != nil {
		return &ValidationError{Path: path, Err: err}
	}
	if err := sch.Validate(decoded); err != nil {
		return &ValidationError{Path: path, Err: err}
	}

	return nil
}
