package intent

import (
	"github.com/drewdunne/responder/internal/config"
)

// DefaultMatchers returns the built-in matchers in dispatch order:
// fixed facts first, then arithmetic, comparison, prime, power and
// square-and-cube.
func DefaultMatchers(cfg config.ResponderConfig) []Matcher {
	return []Matcher{
		NewShakespeareMatcher(),
		NewNameMatcher(cfg.Name),
		NewArithmeticMatcher(),
		NewComparisonMatcher(),
		NewPrimeMatcher(),
		NewPowerMatcher(cfg.MaxPowerBits),
		NewSquareCubeMatcher(),
	}
}

// NewDispatcher creates a Dispatcher with the default matchers.
func NewDispatcher(cfg config.ResponderConfig) *Dispatcher {
	return New(DefaultMatchers(cfg)...)
}
