// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package configproxy

// Default policy values applied when the corresponding Options field is left
// zero.
const (
	DefaultEnvLocation = "CONFIG_PATH"
	DefaultFileName    = "config.json"
)

// Options is the resolution policy for a Proxy. The zero value is usable:
// the configuration path is taken from the CONFIG_PATH environment variable,
// falling back to a search for config.json in the current working directory.
//
// Policy customization is done by constructing a Proxy with a non-zero
// Options value and passing that Proxy to your Properties.
type Options struct {
	// EnvLocation names the environment variable that may hold an explicit
	// path to the configuration file. An explicit path is honored or
	// surfaced as a FileError; it is never silently skipped.
	EnvLocation string

	// FileNames are candidate file names searched, in order, when no
	// explicit path is set. Missing candidates are skipped without error.
	FileNames []string

	// SearchDirs are the directories the candidate scan walks, in order.
	// Defaults to the current working directory only.
	SearchDirs []string

	// Schema is an inline JSON Schema source. When set, the parsed document
	// is validated immediately after load.
	Schema []byte

	// SchemaPath names a JSON Schema file. A path that does not exist logs
	// a warning and validation is skipped. Ignored when Schema is set.
	SchemaPath string
}

// withDefaults fills the zero fields of o with the package defaults.
func (o Options) withDefaults() Options {
	if o.EnvLocation == "" {
		o.EnvLocation = DefaultEnvLocation
	}
	if len(o.FileNames) == 0 {
		o.FileNames = []string{DefaultFileName}
	}
	if len(o.SearchDirs) == 0 {
		o.SearchDirs = []string{"."}
	}
	return o
}
