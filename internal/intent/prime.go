package intent

import (
	"regexp"

	"github.com/drewdunne/responder/internal/numeric"
)

// PrimeMatcher answers "which of the following numbers are primes" and the
// singular "is a prime" form.
type PrimeMatcher struct {
	pattern *regexp.Regexp
}

// NewPrimeMatcher returns a matcher for prime-filtering questions.
func NewPrimeMatcher() *PrimeMatcher {
	return &PrimeMatcher{pattern: listPattern(`which of the following numbers (?:are primes|is a prime)`)}
}

// Intent implements Matcher.
func (m *PrimeMatcher) Intent() Intent { return IntentPrime }

// Match implements Matcher.
func (m *PrimeMatcher) Match(text string) Outcome {
	groups := m.pattern.FindStringSubmatch(text)
	if groups == nil {
		return Unmatched
	}
	nums, err := ParseNumberList(groups[1])
	if err != nil {
		return ErrorOutcome(InvalidNumberMessage)
	}
	if len(nums) == 0 {
		return ErrorOutcome(EmptyPrimeMessage)
	}
	primes := numeric.FilterPrimes(nums)
	if len(primes) == 0 {
		return ValueOutcome(NoPrimesMessage)
	}
	return ValueOutcome(joinNumbers(primes))
}
