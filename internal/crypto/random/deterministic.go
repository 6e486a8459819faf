package random

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Fixed is a source that always returns the same value. Range requests
// return the value even when it lies outside the range, which lets callers
// exercise their own handling of unusable draws.
type Fixed struct {
	v uint256.Int
}

var _ ecmath.RandomSource = (*Fixed)(nil)

// NewFixed returns a Fixed source for v.
func NewFixed(v *uint256.Int) *Fixed {
	return &Fixed{v: *v}
}

// Uint256 returns the fixed value.
func (f *Fixed) Uint256() (*uint256.Int, error) {
	return f.v.Clone(), nil
}

// Uint256Range returns the fixed value. It fails only on an empty range.
func (f *Fixed) Uint256Range(low, high *uint256.Int) (*uint256.Int, error) {
	if err := checkRange(low, high); err != nil {
		return nil, err
	}
	return f.v.Clone(), nil
}

// Sequence returns a predetermined list of values in order and fails with
// ErrSamplingExhausted once the list is used up. Like Fixed, it does not
// enforce requested ranges.
type Sequence struct {
	mtx    sync.Mutex
	values []uint256.Int
	next   int
}

var _ ecmath.RandomSource = (*Sequence)(nil)

// NewSequence returns a Sequence over values.
func NewSequence(values ...*uint256.Int) *Sequence {
	s := &Sequence{values: make([]uint256.Int, len(values))}
	for i, v := range values {
		s.values[i] = *v
	}
	return s
}

// Uint256 returns the next value.
func (s *Sequence) Uint256() (*uint256.Int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.next >= len(s.values) {
		return nil, ecmath.NewError(ecmath.ErrSamplingExhausted,
			fmt.Sprintf("sequence of %d values exhausted", len(s.values)))
	}
	v := s.values[s.next].Clone()
	s.next++
	return v, nil
}

// Uint256Range returns the next value. It fails on an empty range.
func (s *Sequence) Uint256Range(low, high *uint256.Int) (*uint256.Int, error) {
	if err := checkRange(low, high); err != nil {
		return nil, err
	}
	return s.Uint256()
}

// Remaining returns the number of unused values.
func (s *Sequence) Remaining() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.values) - s.next
}
