// Package intent classifies a single free-text question into one of a fixed
// set of intents and computes its answer.
package intent

// Intent names a recognized category of question.
type Intent string

const (
	IntentShakespeare Intent = "shakespeare"
	IntentName        Intent = "name"
	IntentArithmetic  Intent = "arithmetic"
	IntentComparison  Intent = "comparison"
	IntentPrime       Intent = "prime"
	IntentPower       Intent = "power"
	IntentSquareCube  Intent = "square_cube"

	// IntentFallback is reported when no matcher recognizes the query.
	IntentFallback Intent = "fallback"
	// IntentClarify is reported for empty or whitespace-only queries.
	IntentClarify Intent = "clarify"
)

// Kind discriminates the outcome of a single matcher.
type Kind int

const (
	// NoMatch means the text does not fit the matcher's pattern.
	NoMatch Kind = iota
	// Value is a computed answer.
	Value
	// Error is a recognized but invalid input, reported as text.
	Error
)

func (k Kind) String() string {
	switch k {
	case Value:
		return "value"
	case Error:
		return "error"
	default:
		return "no_match"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name. Unknown names decode as NoMatch.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "value":
		*k = Value
	case "error":
		*k = Error
	default:
		*k = NoMatch
	}
	return nil
}

// Outcome is the result of one matcher.
type Outcome struct {
	Kind Kind
	Text string
}

// Unmatched lets dispatch continue to the next matcher.
var Unmatched = Outcome{Kind: NoMatch}

// ValueOutcome wraps a computed answer.
func ValueOutcome(text string) Outcome {
	return Outcome{Kind: Value, Text: text}
}

// ErrorOutcome wraps a user-facing error message.
func ErrorOutcome(text string) Outcome {
	return Outcome{Kind: Error, Text: text}
}

// Matched reports whether the outcome ends dispatch.
func (o Outcome) Matched() bool {
	return o.Kind != NoMatch
}

// Answer is the final result of dispatching one query.
type Answer struct {
	// Intent is the matcher that produced the answer, or fallback/clarify.
	Intent Intent `json:"intent"`

	// Kind is NoMatch for fallback and clarify answers.
	Kind Kind `json:"kind"`

	// Text is the user-facing answer.
	Text string `json:"answer"`
}
