// Package convert turns configuration values of any dynamic type into the
// integers the commands need.
//
// Integer inputs (as produced by TOML config files) go through [safemath] so
// negative or oversized values are rejected instead of wrapping. Strings (from
// flags and environment variables) go through [cast]; a 0x prefix selects
// hexadecimal.
package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Integer is a type constraint for integers that both [cast] and [safemath]
// support.
type Integer interface {
	cast.Basic
	safemath.Integer
}

// Uint64 converts v to a uint64, as used for seeds.
func Uint64(v any) (uint64, error) {
	return To[uint64](v)
}

// Int converts v to an int, as used for counts.
func Int(v any) (int, error) {
	return To[int](v)
}

// To converts v to the integer type I.
func To[I Integer](v any) (I, error) {
	if isIntVal(v) {
		return safemath.ConvertAny[I](v)
	}

	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if hex, found := strings.CutPrefix(strings.ToLower(s), "0x"); found {
			u, err := strconv.ParseUint(hex, 16, 64)
			if err != nil {
				var zero I
				return zero, fmt.Errorf("invalid hex value %q: %w", s, err)
			}
			return safemath.ConvertAny[I](u)
		}
		v = s
	}

	return cast.ToE[I](v)
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
