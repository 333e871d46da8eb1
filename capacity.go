package chaintable

import (
	"github.com/pkg/errors"
)

const (
	// DefaultSlots is the slot count used when no WithSlots option is given
	DefaultSlots = 16

	// MaxSlots is the largest slot count representable as a 32-bit power of two
	MaxSlots = 1 << 30
)

// ErrInvalidArgument is returned when a slot count can not be turned into a table size
var ErrInvalidArgument = errors.New("chaintable: invalid argument")

// TableSize returns the smallest power of two greater than or equal to x.
//
// The rounding smears the highest set bit of x-1 into every lower bit and
// then adds one, which works for 32-bit magnitudes:
//
//	TableSize(3) = 4
//	TableSize(4) = 4
//	TableSize(5) = 8
//
// TableSize(0) is 1. Negative input and input above MaxSlots fail with
// ErrInvalidArgument.
func TableSize(x int) (int, error) {
	if x < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "size can not be less than zero: %d", x)
	}
	if x > MaxSlots {
		return 0, errors.Wrapf(ErrInvalidArgument, "size %d exceeds maximum of %d slots", x, MaxSlots)
	}

	v := uint32(x)
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++

	// 0-1 wraps to all ones, and all ones plus one wraps back to 0
	if v == 0 {
		return 1, nil
	}
	return int(v), nil
}
