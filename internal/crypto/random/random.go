// Package random provides ecmath.RandomSource implementations: a sampler over
// any io.Reader, backed by crypto/rand by default, and deterministic sources
// for tests and reproducible runs.
package random

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// MaxAttempts bounds the rejection sampling loop of Uint256Range.
const MaxAttempts = 256

// Source draws uniformly distributed values from an io.Reader.
type Source struct {
	r io.Reader
}

var _ ecmath.RandomSource = (*Source)(nil)

// New returns a Source reading entropy from r.
func New(r io.Reader) *Source {
	return &Source{r: r}
}

// Default returns a Source backed by crypto/rand.
func Default() *Source {
	return New(rand.Reader)
}

// Uint256 reads 32 bytes and interprets them as a big-endian integer.
func (s *Source) Uint256() (*uint256.Int, error) {
	var buf [32]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return nil, errors.Wrap(err, "read random bytes")
	}
	return new(uint256.Int).SetBytes32(buf[:]), nil
}

// Uint256Range returns a value in [low, high). Draws are masked to the bit
// length of high and rejected when they fall outside the range, which keeps
// the result uniform. After MaxAttempts rejections it fails with
// ErrSamplingExhausted.
func (s *Source) Uint256Range(low, high *uint256.Int) (*uint256.Int, error) {
	if err := checkRange(low, high); err != nil {
		return nil, err
	}

	mask := new(uint256.Int).SetAllOne()
	mask.Rsh(mask, uint(256-high.BitLen()))

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		v, err := s.Uint256()
		if err != nil {
			return nil, err
		}
		v.And(v, mask)
		if !v.Lt(low) && v.Lt(high) {
			return v, nil
		}
		log.Debugf("rejected sample %d outside [%s, %s)", attempt, low.Hex(), high.Hex())
	}

	return nil, ecmath.NewError(ecmath.ErrSamplingExhausted,
		fmt.Sprintf("no value in [%s, %s) after %d attempts", low.Hex(), high.Hex(), MaxAttempts))
}

func checkRange(low, high *uint256.Int) error {
	if !low.Lt(high) {
		return ecmath.NewError(ecmath.ErrInvalidRange,
			fmt.Sprintf("empty range [%s, %s)", low.Hex(), high.Hex()))
	}
	return nil
}
