package intent

import (
	"regexp"

	"github.com/drewdunne/responder/internal/numeric"
)

// SquareCubeMatcher answers "which of the following numbers is both a square
// and a cube".
type SquareCubeMatcher struct {
	pattern *regexp.Regexp
}

// NewSquareCubeMatcher returns a matcher for square-and-cube questions.
func NewSquareCubeMatcher() *SquareCubeMatcher {
	return &SquareCubeMatcher{pattern: listPattern(`which of the following numbers is both a square and a cube`)}
}

// Intent implements Matcher.
func (m *SquareCubeMatcher) Intent() Intent { return IntentSquareCube }

// Match implements Matcher.
// An empty list is not an error here; it simply has no qualifying numbers.
func (m *SquareCubeMatcher) Match(text string) Outcome {
	groups := m.pattern.FindStringSubmatch(text)
	if groups == nil {
		return Unmatched
	}
	nums, err := ParseNumberList(groups[1])
	if err != nil {
		return ErrorOutcome(InvalidNumberMessage)
	}
	found := numeric.FilterSquareAndCubes(nums)
	if len(found) == 0 {
		return ValueOutcome(NoSquareCubesMessage)
	}
	return ValueOutcome(joinNumbers(found))
}
