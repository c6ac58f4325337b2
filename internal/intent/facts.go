package intent

import "strings"

// containsMatcher answers with a fixed string whenever the text contains needle.
type containsMatcher struct {
	intent Intent
	needle string
	answer string
}

func (m containsMatcher) Intent() Intent { return m.intent }

func (m containsMatcher) Match(text string) Outcome {
	if strings.Contains(text, m.needle) {
		return ValueOutcome(m.answer)
	}
	return Unmatched
}

// NewShakespeareMatcher answers any question mentioning Shakespeare.
func NewShakespeareMatcher() Matcher {
	return containsMatcher{intent: IntentShakespeare, needle: "shakespeare", answer: ShakespeareAnswer}
}

// NewNameMatcher answers "your name" questions with name, or DefaultName
// when name is empty.
func NewNameMatcher(name string) Matcher {
	if name == "" {
		name = DefaultName
	}
	return containsMatcher{intent: IntentName, needle: "your name", answer: name}
}
