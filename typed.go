// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package configproxy

import "time"

// Typed properties run the same three-tier resolution as Property and then
// coerce the raw value to the declared type. Coercion applies only when a
// value was found; absence yields the zero value and found=false, never a
// TypeError. Constructors take at most one default; extra defaults are
// ignored. The Proxy field may be set after construction to bind a
// non-default Proxy.

// StringProperty resolves to a string.
type StringProperty struct{ Property }

// NewString returns a string property for the given JSON-path and
// environment variable; def is an optional fallback.
func NewString(path, env string, def ...string) *StringProperty {
	p := &StringProperty{Property{Path: path, Env: env}}
	if len(def) > 0 {
		p.Default = def[0]
	}
	return p
}

// Lookup resolves the property, reporting whether any tier produced a value.
func (p *StringProperty) Lookup() (string, bool, error) {
	res, err := p.Resolve()
	if err != nil || !res.Found {
		return "", false, err
	}
	v, err := toString(res.Value)
	if err != nil {
		return "", false, p.typeError(res.Value, "string", err)
	}
	return v, true, nil
}

// Value resolves the property, returning "" when no tier produced a value.
func (p *StringProperty) Value() (string, error) {
	v, _, err := p.Lookup()
	return v, err
}

// IntProperty resolves to an int64. File-tier numbers must be integral.
type IntProperty struct{ Property }

func NewInt(path, env string, def ...int64) *IntProperty {
	p := &IntProperty{Property{Path: path, Env: env}}
	if len(def) > 0 {
		p.Default = def[0]
	}
	return p
}

func (p *IntProperty) Lookup() (int64, bool, error) {
	res, err := p.Resolve()
	if err != nil || !res.Found {
		return 0, false, err
	}
	v, err := toInt64(res.Value)
	if err != nil {
		return 0, false, p.typeError(res.Value, "int64", err)
	}
	return v, true, nil
}

func (p *IntProperty) Value() (int64, error) {
	v, _, err := p.Lookup()
	return v, err
}

// FloatProperty resolves to a float64.
type FloatProperty struct{ Property }

func NewFloat(path, env string, def ...float64) *FloatProperty {
	p := &FloatProperty{Property{Path: path, Env: env}}
	if len(def) > 0 {
		p.Default = def[0]
	}
	return p
}

func (p *FloatProperty) Lookup() (float64, bool, error) {
	res, err := p.Resolve()
	if err != nil || !res.Found {
		return 0, false, err
	}
	v, err := toFloat64(res.Value)
	if err != nil {
		return 0, false, p.typeError(res.Value, "float64", err)
	}
	return v, true, nil
}

func (p *FloatProperty) Value() (float64, error) {
	v, _, err := p.Lookup()
	return v, err
}

// BoolProperty resolves to a bool.
type BoolProperty struct{ Property }

func NewBool(path, env string, def ...bool) *BoolProperty {
	p := &BoolProperty{Property{Path: path, Env: env}}
	if len(def) > 0 {
		p.Default = def[0]
	}
	return p
}

func (p *BoolProperty) Lookup() (bool, bool, error) {
	res, err := p.Resolve()
	if err != nil || !res.Found {
		return false, false, err
	}
	v, err := toBool(res.Value)
	if err != nil {
		return false, false, p.typeError(res.Value, "bool", err)
	}
	return v, true, nil
}

func (p *BoolProperty) Value() (bool, error) {
	v, _, err := p.Lookup()
	return v, err
}

// DurationProperty resolves to a time.Duration from Go duration strings or
// bare nanosecond counts.
type DurationProperty struct{ Property }

func NewDuration(path, env string, def ...time.Duration) *DurationProperty {
	p := &DurationProperty{Property{Path: path, Env: env}}
	if len(def) > 0 {
		p.Default = def[0]
	}
	return p
}

func (p *DurationProperty) Lookup() (time.Duration, bool, error) {
	res, err := p.Resolve()
	if err != nil || !res.Found {
		return 0, false, err
	}
	v, err := toDuration(res.Value)
	if err != nil {
		return 0, false, p.typeError(res.Value, "time.Duration", err)
	}
	return v, true, nil
}

func (p *DurationProperty) Value() (time.Duration, error) {
	v, _, err := p.Lookup()
	return v, err
}

// StringSliceProperty resolves to a []string. Environment values are split
// on commas.
type StringSliceProperty struct{ Property }

func NewStringSlice(path, env string, def ...[]string) *StringSliceProperty {
	p := &StringSliceProperty{Property{Path: path, Env: env}}
	if len(def) > 0 {
		p.Default = def[0]
	}
	return p
}

func (p *StringSliceProperty) Lookup() ([]string, bool, error) {
	res, err := p.Resolve()
	if err != nil || !res.Found {
		return nil, false, err
	}
	v, err := toStringSlice(res.Value)
	if err != nil {
		return nil, false, p.typeError(res.Value, "[]string", err)
	}
	return v, true, nil
}

func (p *StringSliceProperty) Value() ([]string, error) {
	v, _, err := p.Lookup()
	return v, err
}

// IntSliceProperty resolves to an []int64. Environment values are split on
// commas.
type IntSliceProperty struct{ Property }

func NewIntSlice(path, env string, def ...[]int64) *IntSliceProperty {
	p := &IntSliceProperty{Property{Path: path, Env: env}}
	if len(def) > 0 {
		p.Default = def[0]
	}
	return p
}

func (p *IntSliceProperty) Lookup() ([]int64, bool, error) {
	res, err := p.Resolve()
	if err != nil || !res.Found {
		return nil, false, err
	}
	v, err := toInt64Slice(res.Value)
	if err != nil {
		return nil, false, p.typeError(res.Value, "[]int64", err)
	}
	return v, true, nil
}

func (p *IntSliceProperty) Value() ([]int64, error) {
	v, _, err := p.Lookup()
	return v, err
}

func (p Property) typeError(value any, target string, err error) error {
	return &TypeError{Path: p.Path, Env: p.Env, Value: value, Target: target, Err: err}
}
