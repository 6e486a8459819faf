package sign

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/digest"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// SignBatch signs every message with d, drawing a fresh nonce per message.
// Signatures are returned in message order.
func SignBatch(dg *digest.Digester, curve *curves.Curve, src ecmath.RandomSource, d *uint256.Int, messages [][]byte) ([]*Signature, error) {
	if len(messages) == 0 {
		return nil, nil
	}

	sigs := make([]*Signature, 0, len(messages))
	for i, msg := range messages {
		sig, err := SignWith(dg, curve, src, d, msg)
		if err != nil {
			return nil, errors.Wrapf(err, "sign message %d", i)
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

// VerifyBatch verifies each item and returns the outcomes in order. An error
// for any item aborts the batch.
func VerifyBatch(dg *digest.Digester, curve *curves.Curve, items []BatchItem) ([]ecmath.Verification, error) {
	results := make([]ecmath.Verification, len(items))
	for i, item := range items {
		if item.Signature == nil {
			return nil, errors.Wrapf(ecmath.NewError(ecmath.ErrInvalidSignature,
				"missing signature"), "verify item %d", i)
		}
		v, err := VerifyWith(dg, curve, item.PublicKey, item.Message, item.Signature)
		if err != nil {
			return nil, errors.Wrapf(err, "verify item %d", i)
		}
		results[i] = v
	}
	return results, nil
}
