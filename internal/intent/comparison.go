package intent

import (
	"regexp"
	"slices"
	"strconv"
)

// ComparisonMatcher answers "which of the following numbers is the largest".
type ComparisonMatcher struct {
	pattern *regexp.Regexp
}

// NewComparisonMatcher returns a matcher for largest-number questions.
func NewComparisonMatcher() *ComparisonMatcher {
	return &ComparisonMatcher{pattern: listPattern(`which of the following numbers is the largest`)}
}

// Intent implements Matcher.
func (m *ComparisonMatcher) Intent() Intent { return IntentComparison }

// Match implements Matcher.
func (m *ComparisonMatcher) Match(text string) Outcome {
	groups := m.pattern.FindStringSubmatch(text)
	if groups == nil {
		return Unmatched
	}
	nums, err := ParseNumberList(groups[1])
	if err != nil {
		return ErrorOutcome(InvalidNumberMessage)
	}
	if len(nums) == 0 {
		return ErrorOutcome(EmptyComparisonMessage)
	}
	return ValueOutcome(strconv.FormatInt(slices.Max(nums), 10))
}
