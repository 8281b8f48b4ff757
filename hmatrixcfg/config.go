// Package hmatrixcfg models the flat configuration map a measure's
// Configure reads at startup (spec.md §6): delimiter specification,
// measure name, and per-measure parameters such as a cost matrix path,
// n-gram length, normalization mode, Jaro-Winkler prefix scale, or Lee
// alphabet size.
//
// Loading the map from a config file is an external collaborator's job
// (spec.md §1); this package only models the map and the typed access a
// measure needs once it has one.
package hmatrixcfg

import (
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// Config is the flat name->value map queried during measure Configure.
// Nested structured parameters (a sub-map, e.g. for a cost matrix) are
// values whose dynamic type is map[string]interface{} or
// []interface{}, decodable via Decode.
type Config map[string]any

// String returns cfg[key] as a string, or def if absent or not a string.
func (cfg Config) String(key, def string) string {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}

	return s
}

// Int returns cfg[key] as an int, or def if absent or not numeric.
func (cfg Config) Int(key string, def int) int {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}

	return def
}

// Float returns cfg[key] as a float64, or def if absent or not numeric.
func (cfg Config) Float(key string, def float64) float64 {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}

	return def
}

// Bool returns cfg[key] as a bool, or def if absent or not a bool.
func (cfg Config) Bool(key string, def bool) bool {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}

	return b
}

// Decode unmarshals cfg[key] (expected to be a nested map or slice) into
// out via mapstructure, letting a measure's Configure accept a typed
// parameter struct instead of hand-walking interface{} values.
func (cfg Config) Decode(key string, out any) error {
	v, ok := cfg[key]
	if !ok {
		return nil
	}

	return mapstructure.Decode(v, out)
}
