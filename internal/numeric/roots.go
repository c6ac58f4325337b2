package numeric

// maxCubeRoot is the largest r with r*r*r <= math.MaxInt64.
const maxCubeRoot = 2097151

// ICbrt returns the floor of the cube root of n. It returns -1 for negative n.
func ICbrt(n int64) int64 {
	if n < 0 {
		return -1
	}
	lo, hi := int64(0), int64(maxCubeRoot)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if mid*mid*mid <= n {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// IsPerfectSquare reports whether n is the square of a non-negative integer.
func IsPerfectSquare(n int64) bool {
	r := ISqrt(n)
	return r >= 0 && r*r == n
}

// IsPerfectCube reports whether n is the cube of a non-negative integer.
// Negative cubes are rejected; they can never also be squares.
func IsPerfectCube(n int64) bool {
	r := ICbrt(n)
	return r >= 0 && r*r*r == n
}

// IsSquareAndCube reports whether n is both a perfect square and a perfect
// cube, i.e. a perfect sixth power.
func IsSquareAndCube(n int64) bool {
	return IsPerfectSquare(n) && IsPerfectCube(n)
}

// FilterSquareAndCubes returns the numbers in nums that are both squares and
// cubes, keeping their original order.
func FilterSquareAndCubes(nums []int64) []int64 {
	var out []int64
	for _, n := range nums {
		if IsSquareAndCube(n) {
			out = append(out, n)
		}
	}
	return out
}
