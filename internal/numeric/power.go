package numeric

import (
	"errors"
	"math/big"
)

var (
	// ErrNegativeExponent is returned by Pow for exponents below zero.
	ErrNegativeExponent = errors.New("negative exponent")

	// ErrPowerTooLarge is returned by Pow when the result would exceed the bit limit.
	ErrPowerTooLarge = errors.New("power result exceeds size limit")
)

var one = big.NewInt(1)

// Pow returns base raised to exp as an exact arbitrary-precision integer.
// maxBits caps the size of the result; values <= 0 disable the cap.
func Pow(base *big.Int, exp int64, maxBits int) (*big.Int, error) {
	if exp < 0 {
		return nil, ErrNegativeExponent
	}
	if maxBits <= 0 || base.CmpAbs(one) <= 0 {
		return new(big.Int).Exp(base, big.NewInt(exp), nil), nil
	}

	// 2^(BitLen-1) <= |base| < 2^BitLen bounds the result between
	// (BitLen-1)*exp+1 and BitLen*exp bits.
	if exp > int64(maxBits) {
		return nil, ErrPowerTooLarge
	}
	bits := int64(base.BitLen())
	if (bits-1)*exp+1 > int64(maxBits) {
		return nil, ErrPowerTooLarge
	}

	result := new(big.Int).Exp(base, big.NewInt(exp), nil)
	if bits*exp > int64(maxBits) && result.BitLen() > maxBits {
		return nil, ErrPowerTooLarge
	}
	return result, nil
}
