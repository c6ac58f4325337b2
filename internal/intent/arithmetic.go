package intent

import (
	"math/big"
	"regexp"
	"strconv"
)

// operation pairs one operator phrase with its computation.
type operation struct {
	pattern *regexp.Regexp
	apply   func(a, b int64) Outcome
}

// ArithmeticMatcher answers "what is <a> <op> <b>" for plus, minus,
// multiplied by and divided by. Operators are tried in that order.
type ArithmeticMatcher struct {
	ops []operation
}

// NewArithmeticMatcher returns a matcher for the four basic operations.
func NewArithmeticMatcher() *ArithmeticMatcher {
	return &ArithmeticMatcher{
		ops: []operation{
			{pattern: binaryPattern("plus"), apply: exact((*big.Int).Add)},
			{pattern: binaryPattern("minus"), apply: exact((*big.Int).Sub)},
			{pattern: binaryPattern("multiplied by"), apply: exact((*big.Int).Mul)},
			{pattern: binaryPattern("divided by"), apply: divide},
		},
	}
}

func binaryPattern(op string) *regexp.Regexp {
	return regexp.MustCompile(`what is (\d+) ` + op + ` (\d+)\??`)
}

// Intent implements Matcher.
func (m *ArithmeticMatcher) Intent() Intent { return IntentArithmetic }

// Match implements Matcher.
func (m *ArithmeticMatcher) Match(text string) Outcome {
	for _, op := range m.ops {
		groups := op.pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		a, errA := strconv.ParseInt(groups[1], 10, 64)
		b, errB := strconv.ParseInt(groups[2], 10, 64)
		if errA != nil || errB != nil {
			return ErrorOutcome(InvalidArithmeticMessage)
		}
		return op.apply(a, b)
	}
	return Unmatched
}

// exact lifts a big.Int operation so results never wrap past int64.
func exact(op func(z, x, y *big.Int) *big.Int) func(a, b int64) Outcome {
	return func(a, b int64) Outcome {
		z := op(new(big.Int), big.NewInt(a), big.NewInt(b))
		return ValueOutcome(z.String())
	}
}

// divide formats the quotient with two decimals, halves rounded away from zero.
func divide(a, b int64) Outcome {
	if b == 0 {
		return ErrorOutcome(DivideByZeroMessage)
	}
	return ValueOutcome(big.NewRat(a, b).FloatString(2))
}
