// Package numeric holds the integer algorithms behind the computed intents.
package numeric

import "math/big"

// IsPrime reports whether n is prime.
// Numbers <= 1 are never prime. Candidates are checked by trial division
// against 2 and every odd divisor up to the integer square root.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	limit := ISqrt(n)
	for i := int64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// ISqrt returns the floor of the square root of n. It returns -1 for negative n.
func ISqrt(n int64) int64 {
	if n < 0 {
		return -1
	}
	return new(big.Int).Sqrt(big.NewInt(n)).Int64()
}

// FilterPrimes returns the primes in nums, keeping their original order.
func FilterPrimes(nums []int64) []int64 {
	var primes []int64
	for _, n := range nums {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}
