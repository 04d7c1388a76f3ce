// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package configproxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyResolveTiers(t *testing.T) {
	tests := []struct {
		name       string
		prop       Property
		envValue   *string
		want       any
		wantFound  bool
		wantSource Source
	}{
		{
			name:       "environment wins over file and default",
			prop:       Property{Path: "database.host", Env: "CPXTEST_HOST", Default: "localhost"},
			envValue:   strPtr("overridden.database.com"),
			want:       "overridden.database.com",
			wantFound:  true,
			wantSource: SourceEnv,
		},
		{
			name:       "empty environment value still counts as present",
			prop:       Property{Path: "database.host", Env: "CPXTEST_HOST", Default: "localhost"},
			envValue:   strPtr(""),
			want:       "",
			wantFound:  true,
			wantSource: SourceEnv,
		},
		{
			name:       "file tier when environment is absent",
			prop:       Property{Path: "database.host", Env: "CPXTEST_HOST", Default: "localhost"},
			want:       "mydbhost.databases.com",
			wantFound:  true,
			wantSource: SourceFile,
		},
		{
			name:       "default when path is unmatched",
			prop:       Property{Path: "database.nope", Env: "CPXTEST_HOST", Default: "localhost"},
			want:       "localhost",
			wantFound:  true,
			wantSource: SourceDefault,
		},
		{
			name:       "default preserved exactly",
			prop:       Property{Path: "database.nope", Default: []string{"a", "b"}},
			want:       []string{"a", "b"},
			wantFound:  true,
			wantSource: SourceDefault,
		},
		{
			name:       "no tier produces a value",
			prop:       Property{Path: "database.nope", Env: "CPXTEST_HOST"},
			wantFound:  false,
			wantSource: SourceNone,
		},
		{
			name:       "file null is a found value, not a fall-through",
			prop:       Property{Path: "empty", Default: "fallback"},
			want:       nil,
			wantFound:  true,
			wantSource: SourceFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prop.Proxy = testdataProxy(t, "config.json")
			if tt.envValue != nil {
				t.Setenv("CPXTEST_HOST", *tt.envValue)
			}

			res, err := tt.prop.Resolve()

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFound, res.Found)
			assert.Equal(t, tt.wantSource, res.Source)
			assert.Equal(t, tt.want, res.Value)
		})
	}
}

// TestPropertyEnvRechecked verifies the environment is consulted on every
// access while the document stays memoized.
func TestPropertyEnvRechecked(t *testing.T) {
	prop := Property{Path: "database.host", Env: "CPXTEST_HOST", Proxy: testdataProxy(t, "config.json")}

	v, err := prop.Value()
	require.NoError(t, err)
	assert.Equal(t, "mydbhost.databases.com", v)

	t.Setenv("CPXTEST_HOST", "late-override")

	v, err = prop.Value()
	require.NoError(t, err)
	assert.Equal(t, "late-override", v)
}

func TestPropertyProxyErrorPropagates(t *testing.T) {
	prop := Property{Path: "database.host", Default: "localhost", Proxy: testdataProxy(t, "invalid.json")}

	_, _, err := prop.Lookup()

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

// TestPropertyDefaultProxy verifies a Property with no Proxy falls back to
// the shared default one.
func TestPropertyDefaultProxy(t *testing.T) {
	SetDefault(testdataProxy(t, "config.json"))
	defer SetDefault(nil)

	prop := Property{Path: "database.host"}

	v, err := prop.Value()
	assert.NoError(t, err)
	assert.Equal(t, "mydbhost.databases.com", v)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "environment", SourceEnv.String())
	assert.Equal(t, "file", SourceFile.String())
	assert.Equal(t, "default", SourceDefault.String())
	assert.Equal(t, "none", SourceNone.String())
}

func strPtr(s string) *string { return &s }
