package main

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/config"
	"github.com/smallyu/go-ecmath/internal/crypto/codec"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/protocol/sign"
)

// parseScalar accepts a "0x"-prefixed hex or decimal literal.
func parseScalar(name, s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.Errorf("missing --%s", name)
	}
	v, err := config.ParseLiteral(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", name)
	}
	return v, nil
}

// parsePoint accepts "G", "inf", an "x,y" pair of literals or, on
// secp256k1, a SEC1 hex encoding.
func parsePoint(curve *curves.Curve, name, s string) (curves.ECPoint, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return curves.Infinity(), errors.Errorf("missing --%s", name)
	case "g":
		return curve.G(), nil
	case "inf", "infinity":
		return curves.Infinity(), nil
	}

	if x, y, ok := strings.Cut(s, ","); ok {
		xv, err := config.ParseLiteral(x)
		if err != nil {
			return curves.Infinity(), errors.Wrapf(err, "invalid --%s x", name)
		}
		yv, err := config.ParseLiteral(y)
		if err != nil {
			return curves.Infinity(), errors.Wrapf(err, "invalid --%s y", name)
		}
		p, err := curve.Validate(curves.Finite(xv, yv))
		return p, errors.Wrapf(err, "invalid --%s", name)
	}

	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return curves.Infinity(), errors.Wrapf(err, "invalid --%s", name)
	}
	p, err := codec.ParsePublicKey(curve, b)
	return p, errors.Wrapf(err, "invalid --%s", name)
}

// formatPoint prints p as compressed SEC1 hex when the curve supports it and
// as decimal coordinates otherwise.
func formatPoint(curve *curves.Curve, p curves.ECPoint) string {
	if p.IsInfinity() {
		return p.String()
	}
	if b, err := codec.SerializePublicKey(curve, p, true); err == nil {
		return hex.EncodeToString(b)
	}
	return p.String()
}

// parseSignature accepts an "r,s" pair of literals, a 65-byte compact
// signature or a DER signature, both hex encoded.
func parseSignature(s string) (*sign.Signature, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("missing --sig")
	}
	if r, sv, ok := strings.Cut(s, ","); ok {
		rv, err := config.ParseLiteral(r)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --sig r")
		}
		svv, err := config.ParseLiteral(sv)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --sig s")
		}
		return &sign.Signature{R: *rv, S: *svv}, nil
	}

	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid --sig")
	}
	if len(b) == codec.CompactSignatureLen {
		sig, _, err := codec.ParseCompactSignature(b)
		return sig, err
	}
	return codec.ParseSignature(b)
}
