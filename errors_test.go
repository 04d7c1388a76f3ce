// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package configproxy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesAndUnwrap(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "file error",
			err:  &FileError{Path: "/etc/app/config.json", Err: cause},
			want: []string{"config file", "/etc/app/config.json", "boom"},
		},
		{
			name: "parse error",
			err:  &ParseError{Path: "config.json", Err: cause},
			want: []string{"parse", "config.json"},
		},
		{
			name: "validation error",
			err:  &ValidationError{Path: "config.json", Err: cause},
			want: []string{"validate", "config.json"},
		},
		{
			name: "type error",
			err:  &TypeError{Path: "a.b", Env: "APP_B", Value: 0.5, Target: "int64", Err: cause},
			want: []string{`path="a.b"`, `env="APP_B"`, "0.5", "int64"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fragment := range tt.want {
				assert.Contains(t, tt.err.Error(), fragment)
			}
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

// TestErrorsAsThroughWrapping checks the taxonomy survives fmt.Errorf %w
// wrapping at call sites.
func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading settings: %w", &ParseError{Path: "x.json", Err: errors.New("bad")})

	var parseErr *ParseError
	assert.ErrorAs(t, wrapped, &parseErr)
	assert.Equal(t, "x.json", parseErr.Path)
}
