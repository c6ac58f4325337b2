package intent

// Matcher recognizes one intent in normalized text and computes its answer.
type Matcher interface {
	// Intent names the intent this matcher recognizes.
	Intent() Intent

	// Match returns Unmatched when text does not fit the matcher's pattern.
	// Text is already normalized.
	Match(text string) Outcome
}
