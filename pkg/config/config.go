package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

// MapConfig reads nested values with dotted keys such as
// "error_handler.also_log". Values come from YAML (uint64/int64), JSON
// (float64) or the environment (bool, int, float64 or string), so the
// typed getters convert between those shapes.
type MapConfig struct {
	values map[string]any
}

var _ contracts.Config = (*MapConfig)(nil)

func (c *MapConfig) Has(key string) bool {
	_, ok := c.find(key)
	return ok
}

func (c *MapConfig) Get(key string) any {
	value, _ := c.find(key)
	return value
}

func (c *MapConfig) GetString(key string, defaultVal ...string) string {
	v, ok := c.find(key)
	switch {
	case !ok:
		return getFirst(defaultVal)
	case v == nil:
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// GetInt falls back to the default when the value is not a whole number
// that fits an int, e.g. reserved_memory: "lots".
func (c *MapConfig) GetInt(key string, defaultVal ...int) int {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	if i, ok := toInt(v); ok {
		return i
	}
	return getFirst(defaultVal)
}

func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), val >= math.MinInt && val <= math.MaxInt
	case uint64:
		return int(val), val <= math.MaxInt
	case float64:
		if val != math.Trunc(val) || val < math.MinInt || val > math.MaxInt {
			return 0, false
		}
		return int(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(val))
		return i, err == nil
	}
	return 0, false
}

func (c *MapConfig) GetBool(key string, defaultVal ...bool) bool {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "on", "yes", "y":
			return true
		case "false", "0", "off", "no", "n":
			return false
		}
	default:
		if i, ok := toInt(v); ok {
			return i != 0
		}
	}
	return getFirst(defaultVal)
}

// GetStringSlice accepts a list or a separated string, so also_log can
// be given as "warning,notice" through the environment.
func (c *MapConfig) GetStringSlice(key string, separator ...string) []string {
	v, ok := c.find(key)
	if !ok || v == nil {
		return nil
	}

	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			result = append(result, fmt.Sprint(item))
		}
		return result
	case string:
		sep := ","
		if len(separator) > 0 {
			sep = separator[0]
		}
		parts := strings.Split(val, sep)
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return parts
	}
	return []string{fmt.Sprint(v)}
}

func (c *MapConfig) GetSub(key string) (contracts.Config, bool) {
	sub, ok := c.find(key)
	if !ok {
		return nil, false
	}
	subMap, ok := sub.(map[string]any)
	if !ok {
		return nil, false
	}
	return NewMapConfig(subMap), true
}

// All returns a shallow copy of the top level.
func (c *MapConfig) All() map[string]any {
	cp := make(map[string]any, len(c.values))
	for k, v := range c.values {
		cp[k] = v
	}
	return cp
}

func (c *MapConfig) find(path string) (any, bool) {
	var current any = c.values
	for _, k := range strings.Split(path, ".") {
		var (
			next   any
			exists bool
		)
		switch cur := current.(type) {
		case map[string]any:
			next, exists = cur[k]
		case map[any]any:
			next, exists = cur[k]
		}
		if !exists {
			return nil, false
		}
		current = next
	}
	return current, true
}

func getFirst[T any](values []T) T {
	var zero T
	if len(values) > 0 {
		return values[0]
	}
	return zero
}
