package bitvector

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange reports a position at or beyond the vector's size, or a
	// string position beyond the end of the string.
	ErrOutOfRange = errors.New("out of range")
	// ErrLength reports a size larger than MaxLen.
	ErrLength = errors.New("length error")
	// ErrOverflow reports a vector too wide for the requested integer type.
	ErrOverflow = errors.New("overflow")
	// ErrInvalidArgument reports malformed text or mismatched operand sizes.
	ErrInvalidArgument = errors.New("invalid argument")
)

func outOfRange(op string, pos, size uint) error {
	return errors.Wrapf(ErrOutOfRange, "bitvector: %s(%d) with size %d", op, pos, size)
}

func sizeMismatch(op string, a, b uint) error {
	return errors.Wrapf(ErrInvalidArgument, "bitvector: %s of sizes %d and %d", op, a, b)
}
