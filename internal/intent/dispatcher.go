package intent

// Dispatcher runs matchers in a fixed priority order and returns the first
// outcome that is not NoMatch. It holds no per-call state and is safe for
// concurrent use.
type Dispatcher struct {
	matchers []Matcher
}

// New creates a Dispatcher that tries matchers in the given order.
func New(matchers ...Matcher) *Dispatcher {
	return &Dispatcher{matchers: matchers}
}

// Intents lists the matcher intents in dispatch order.
func (d *Dispatcher) Intents() []Intent {
	intents := make([]Intent, len(d.matchers))
	for i, m := range d.matchers {
		intents[i] = m.Intent()
	}
	return intents
}

// Resolve normalizes query once, dispatches it, and reports which intent
// produced the answer.
func (d *Dispatcher) Resolve(query string) Answer {
	text, ok := Normalize(query)
	if !ok {
		return Answer{Intent: IntentClarify, Kind: NoMatch, Text: ClarifyMessage}
	}

	for _, m := range d.matchers {
		if out := m.Match(text); out.Matched() {
			return Answer{Intent: m.Intent(), Kind: out.Kind, Text: out.Text}
		}
	}

	return Answer{Intent: IntentFallback, Kind: NoMatch, Text: FallbackMessage}
}

// Process returns the textual answer for query.
func (d *Dispatcher) Process(query string) string {
	return d.Resolve(query).Text
}
