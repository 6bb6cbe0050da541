// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

const errUint32RangeExceeded = "value %d exceeds uint32 range"

// IntToUint32 safely converts an int to uint32 using cast and checks for overflow
func IntToUint32(value int) (uint32, error) {
	if value < 0 || value > math.MaxUint32 {
		return 0, fmt.Errorf(errUint32RangeExceeded, value)
	}

	return cast.ToUint32E(value)
}

// Uint64ToUint32 safely converts a uint64 to uint32 using cast and checks for overflow
func Uint64ToUint32(value uint64) (uint32, error) {
	if value > math.MaxUint32 {
		return 0, fmt.Errorf(errUint32RangeExceeded, value)
	}

	return cast.ToUint32E(value)
}

// Int64ToUint32 safely converts an int64 to uint32 using cast and checks for overflow
func Int64ToUint32(value int64) (uint32, error) {
	if value < 0 || value > math.MaxUint32 {
		return 0, fmt.Errorf(errUint32RangeExceeded, value)
	}

	return cast.ToUint32E(value)
}
