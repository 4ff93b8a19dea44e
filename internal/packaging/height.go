package packaging

import (
	"errors"
	"fmt"
	"strconv"
)

// PackagingHeight is the height of the packaging every product is checked against.
const PackagingHeight = 1000

// ErrZeroHeight is returned by NewHeight when the candidate height is zero.
var ErrZeroHeight = errors.New("height must be non-zero")

// Height is a product height that is known to be non-zero.
//
// It stores the height minus one, so every value of the type, including the
// zero value Height{} (a height of 1), is a valid divisor. Code that
// receives a Height never needs to check it for zero again.
type Height struct {
	minusOne uint32
}

// NewHeight validates candidate and wraps it in a Height.
// It returns ErrZeroHeight if candidate is zero.
func NewHeight(candidate uint32) (Height, error) {
	if candidate == 0 {
		return Height{}, ErrZeroHeight
	}
	return Height{minusOne: candidate - 1}, nil
}

// MustHeight is like NewHeight but panics if candidate is zero.
// It is meant for heights known when the program is written.
func MustHeight(candidate uint32) Height {
	h, err := NewHeight(candidate)
	if err != nil {
		panic(fmt.Sprintf("packaging: invalid height %d: %v", candidate, err))
	}
	return h
}

// Value returns the height as a plain integer. It is never zero.
func (h Height) Value() uint32 {
	return h.minusOne + 1
}

// String returns the decimal representation of the height.
func (h Height) String() string {
	return strconv.FormatUint(uint64(h.Value()), 10)
}

// Fits reports whether a product of height h fits exactly in the packaging,
// that is, whether h evenly divides PackagingHeight.
func Fits(h Height) bool {
	// Value is at least 1 for every Height, so the divisor is non-zero.
	return PackagingHeight%h.Value() == 0
}
