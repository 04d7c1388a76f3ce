// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package configproxy

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Conversion rules for typed properties. The environment tier always yields
// strings, so every converter accepts a string rendition; the file tier
// yields the JSON decode shapes (string, float64, bool, []any, nil). JSON
// null is present but unconvertible and always errors.

var errNull = errors.New("value is null")

func toString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case nil:
		return "", errNull
	default:
		return "", errors.New("value is not a string")
	}
}

func toInt64(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("number %v has a fractional part", t)
		}
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as an integer", t)
		}
		return n, nil
	case nil:
		return 0, errNull
	default:
		return 0, errors.New("value is not an integer")
	}
}

func toFloat64(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a number", t)
		}
		return f, nil
	case nil:
		return 0, errNull
	default:
		return 0, errors.New("value is not a number")
	}
}

func toBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, fmt.Errorf("cannot parse %q as a bool", t)
		}
		return b, nil
	case nil:
		return false, errNull
	default:
		return false, errors.New("value is not a bool")
	}
}

// toDuration accepts Go duration strings ("1h30m") and bare numbers, which
// count nanoseconds like time.Duration itself.
func toDuration(v any) (time.Duration, error) {
	switch t := v.(type) {
	case time.Duration:
		return t, nil
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a duration", t)
		}
		return d, nil
	case float64:
		return time.Duration(t), nil
	case int:
		return time.Duration(t), nil
	case int64:
		return time.Duration(t), nil
	case nil:
		return 0, errNull
	default:
		return 0, errors.New("value is not a duration")
	}
}

// toStringSlice accepts a JSON array of strings, a []string default, or a
// comma-separated string (the environment rendition of a list).
func toStringSlice(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return t, nil
	case []any:
		result := make([]string, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is not a string", i)
			}
			result[i] = s
		}
		return result, nil
	case string:
		return splitList(t), nil
	case nil:
		return nil, errNull
	default:
		return nil, errors.New("value is not a string list")
	}
}

// toInt64Slice accepts a JSON array of integers, an []int64 default, or a
// comma-separated string of integers.
func toInt64Slice(v any) ([]int64, error) {
	switch t := v.(type) {
	case []int64:
		return t, nil
	case []any:
		result := make([]int64, len(t))
		for i, item := range t {
			n, err := toInt64(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			result[i] = n
		}
		return result, nil
	case string:
		parts := splitList(t)
		result := make([]int64, len(parts))
		for i, part := range parts {
			n, err := toInt64(part)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			result[i] = n
		}
		return result, nil
	case nil:
		return nil, errNull
	default:
		return nil, errors.New("value is not an integer list")
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
