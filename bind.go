// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package configproxy

import (
	"encoding/json"
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/configproxy/configproxy/internal/jsonpath"
)

// Bind populates target, a non-nil struct pointer, by layering the three
// tiers at struct granularity: environment variables read through `env`
// struct tags, then the configuration document decoded through `json` tags,
// then whatever field values the caller pre-set, which act as defaults.
// Higher tiers win field by field; a later layer only fills fields the
// earlier ones left at their zero value.
func (p *Proxy) Bind(target any) error {
	return p.BindAt("", target)
}

// BindAt is Bind scoped to the sub-document at a JSON-path. An unmatched
// path binds from an empty document, leaving the environment and default
// tiers to supply values.
func (p *Proxy) BindAt(path string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("configproxy: bind target must be a non-nil struct pointer, got %T", target)
	}
	elem := rv.Elem().Type()

	doc, err := p.Document()
	if err != nil {
		return err
	}
	if path != "" {
		if res, ok := jsonpath.Get(doc, path); ok {
			doc = []byte(res.Raw)
		} else {
			doc = nil
		}
	}

	envCfg := reflect.New(elem)
	if err := env.Parse(envCfg.Interface()); err != nil {
		return fmt.Errorf("configproxy: parsing environment: %w", err)
	}

	fileCfg := reflect.New(elem)
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, fileCfg.Interface()); err != nil {
			return fmt.Errorf("configproxy: decoding document: %w", err)
		}
	}

	// Merge order is priority order: mergo fills only zero fields, so the
	// environment layer shadows the file layer, which shadows the caller's
	// pre-set defaults.
	merged := reflect.New(elem)
	for _, layer := range []any{envCfg.Interface(), fileCfg.Interface(), target} {
		if err := mergo.Merge(merged.Interface(), layer); err != nil {
			return fmt.Errorf("configproxy: merging configuration layers: %w", err)
		}
	}

	rv.Elem().Set(merged.Elem())
	return nil
}
