package intent

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when a number list contains a token that is
// not a valid integer.
var ErrInvalidNumber = errors.New("invalid number")

var listSeparator = regexp.MustCompile(`[,\s]+`)

// listPattern matches phrase followed by a colon/whitespace separator and
// captures everything up to an optional trailing question mark.
func listPattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(phrase + `[:\s]+([^?]*)\??`)
}

// ParseNumberList parses a comma or whitespace separated list of integers.
// Tokens must be plain digit runs; a sign makes the token invalid. Empty
// tokens are skipped. Parsing is atomic: a single invalid token rejects the
// whole list.
func ParseNumberList(s string) ([]int64, error) {
	var nums []int64
	for _, tok := range listSeparator.Split(strings.TrimSpace(s), -1) {
		if tok == "" {
			continue
		}
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil || !isDigit(tok[0]) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// joinNumbers renders nums as a comma-and-space separated decimal list.
func joinNumbers(nums []int64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, ", ")
}
