package intent

import (
	"errors"
	"math/big"
	"regexp"
	"strconv"

	"github.com/drewdunne/responder/internal/numeric"
)

// DefaultMaxPowerBits caps exponentiation results at 1 Mi bits.
const DefaultMaxPowerBits = 1 << 20

// PowerMatcher answers "what is <base> to the power of <exp>" with an exact
// arbitrary-precision result.
type PowerMatcher struct {
	pattern *regexp.Regexp
	maxBits int
}

// NewPowerMatcher returns an exponentiation matcher. maxBits bounds the
// result size; values <= 0 select DefaultMaxPowerBits.
func NewPowerMatcher(maxBits int) *PowerMatcher {
	if maxBits <= 0 {
		maxBits = DefaultMaxPowerBits
	}
	return &PowerMatcher{
		pattern: regexp.MustCompile(`what is (\d+) to the power of (\d+)\??`),
		maxBits: maxBits,
	}
}

// Intent implements Matcher.
func (m *PowerMatcher) Intent() Intent { return IntentPower }

// Match implements Matcher.
func (m *PowerMatcher) Match(text string) Outcome {
	groups := m.pattern.FindStringSubmatch(text)
	if groups == nil {
		return Unmatched
	}
	base, ok := new(big.Int).SetString(groups[1], 10)
	if !ok {
		return ErrorOutcome(InvalidPowerMessage)
	}
	exp, err := strconv.ParseInt(groups[2], 10, 64)
	if err != nil {
		return ErrorOutcome(InvalidPowerMessage)
	}
	if exp < 0 {
		return ErrorOutcome(NegativeExponentMessage)
	}

	result, err := numeric.Pow(base, exp, m.maxBits)
	switch {
	case errors.Is(err, numeric.ErrNegativeExponent):
		return ErrorOutcome(NegativeExponentMessage)
	case err != nil:
		return ErrorOutcome(PowerFailedMessage)
	}
	return ValueOutcome(result.String())
}
