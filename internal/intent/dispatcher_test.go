package intent_test

import (
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/drewdunne/responder/internal/config"
	"github.com/drewdunne/responder/internal/intent"
)

func newDispatcher() *intent.Dispatcher {
	return intent.NewDispatcher(config.DefaultConfig().Responder)
}

func TestProcess(t *testing.T) {
	d := newDispatcher()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "empty", query: "", want: intent.ClarifyMessage},
		{name: "whitespace only", query: " \t\n ", want: intent.ClarifyMessage},
		{name: "shakespeare", query: "Who was Shakespeare?", want: intent.ShakespeareAnswer},
		{name: "shakespeare wins over arithmetic", query: "what is 1 plus 1 SHAKESPEARE", want: intent.ShakespeareAnswer},
		{name: "name", query: "What is your name?", want: "Team12"},
		{name: "addition", query: "What is 5 plus 3?", want: "8"},
		{name: "subtraction", query: "what is 3 minus 10", want: "-7"},
		{name: "multiplication", query: "what is 12 multiplied by 12", want: "144"},
		{name: "division", query: "what is 7 divided by 2", want: "3.50"},
		{name: "division rounds half up", query: "what is 1 divided by 8", want: "0.13"},
		{name: "division repeating", query: "what is 2 divided by 3", want: "0.67"},
		{name: "division by zero", query: "what is 10 divided by 0", want: intent.DivideByZeroMessage},
		{name: "arithmetic overflow", query: "what is 99999999999999999999 plus 1", want: intent.InvalidArithmeticMessage},
		{name: "addition past int64", query: "what is 9223372036854775807 plus 1", want: "9223372036854775808"},
		{name: "subtraction past int64", query: "what is 0 minus 9223372036854775807", want: "-9223372036854775807"},
		{name: "multiplication past int64", query: "what is 9999999999 multiplied by 9999999999", want: "99999999980000000001"},
		{name: "prefixed query", query: "e1b3f4c0: what is 4 plus 4", want: "8"},
		{name: "largest", query: "which of the following numbers is the largest: 28, 87, 33?", want: "87"},
		{name: "largest whitespace separated", query: "Which of the following numbers is the largest 5 19 3", want: "19"},
		{name: "largest invalid", query: "which of the following numbers is the largest: 28, abc, 33?", want: intent.InvalidNumberMessage},
		{name: "largest negative token", query: "which of the following numbers is the largest: -5, 3", want: intent.InvalidNumberMessage},
		{name: "largest empty", query: "which of the following numbers is the largest:", want: intent.EmptyComparisonMessage},
		{name: "primes", query: "which of the following numbers are primes: 8, 39, 43, 13, 78?", want: "43, 13"},
		{name: "singular prime", query: "which of the following numbers is a prime: 4, 7", want: "7"},
		{name: "no primes", query: "which of the following numbers are primes: 1, 4, 9", want: intent.NoPrimesMessage},
		{name: "primes invalid", query: "which of the following numbers are primes: 2, x", want: intent.InvalidNumberMessage},
		{name: "primes signed tokens", query: "which of the following numbers are primes: +7, -7", want: intent.InvalidNumberMessage},
		{name: "primes empty", query: "which of the following numbers are primes: ?", want: intent.EmptyPrimeMessage},
		{name: "power", query: "what is 2 to the power of 10", want: "1024"},
		{name: "power zero exponent", query: "what is 27 to the power of 0?", want: "1"},
		{name: "power exponent overflow", query: "what is 2 to the power of 99999999999999999999", want: intent.InvalidPowerMessage},
		{name: "power too large", query: "what is 2 to the power of 2000000", want: intent.PowerFailedMessage},
		{name: "power too large for base three", query: "what is 3 to the power of 1048575", want: intent.PowerFailedMessage},
		{
			name:  "square and cube",
			query: "which of the following numbers is both a square and a cube: 1459, 4096, 1895, 676, 4474, 729, 2396?",
			want:  "4096, 729",
		},
		{name: "square and cube none", query: "which of the following numbers is both a square and a cube: 2, 3", want: intent.NoSquareCubesMessage},
		{name: "square and cube empty", query: "which of the following numbers is both a square and a cube:", want: intent.NoSquareCubesMessage},
		{name: "square and cube invalid", query: "which of the following numbers is both a square and a cube: 64, 1.5", want: intent.InvalidNumberMessage},
		{name: "unknown", query: "what colour is the sky?", want: intent.FallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Process(tt.query); got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestProcess_ArithmeticLaws(t *testing.T) {
	d := newDispatcher()

	pairs := [][2]int64{{0, 0}, {1, 2}, {17, 5}, {1000, 999}, {123456, 654321}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if got, want := d.Process(fmt.Sprintf("what is %d plus %d", a, b)), fmt.Sprint(a+b); got != want {
			t.Errorf("%d plus %d = %q, want %q", a, b, got, want)
		}
		if got, want := d.Process(fmt.Sprintf("what is %d minus %d", a, b)), fmt.Sprint(a-b); got != want {
			t.Errorf("%d minus %d = %q, want %q", a, b, got, want)
		}
		if got, want := d.Process(fmt.Sprintf("what is %d multiplied by %d", a, b)), fmt.Sprint(a*b); got != want {
			t.Errorf("%d multiplied by %d = %q, want %q", a, b, got, want)
		}
	}
}

func TestProcess_LargePowerIsExact(t *testing.T) {
	d := newDispatcher()

	want := new(big.Int).Exp(big.NewInt(27), big.NewInt(200), nil).String()
	if got := d.Process("What is 27 to the power of 200?"); got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestProcess_Idempotent(t *testing.T) {
	d := newDispatcher()

	queries := []string{
		"what is 7 divided by 2",
		"which of the following numbers are primes: 8, 39, 43, 13, 78?",
		"hello",
		"",
	}
	for _, q := range queries {
		if first, second := d.Process(q), d.Process(q); first != second {
			t.Errorf("Process(%q) not idempotent: %q then %q", q, first, second)
		}
	}
}

func TestProcess_Concurrent(t *testing.T) {
	d := newDispatcher()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := fmt.Sprintf("what is %d plus %d", i, i)
			if got, want := d.Process(q), fmt.Sprint(2*i); got != want {
				t.Errorf("Process(%q) = %q, want %q", q, got, want)
			}
		}(i)
	}
	wg.Wait()
}

func TestResolve_ReportsIntent(t *testing.T) {
	d := newDispatcher()

	tests := []struct {
		query  string
		intent intent.Intent
		kind   intent.Kind
	}{
		{query: "", intent: intent.IntentClarify, kind: intent.NoMatch},
		{query: "shakespeare", intent: intent.IntentShakespeare, kind: intent.Value},
		{query: "your name", intent: intent.IntentName, kind: intent.Value},
		{query: "what is 1 plus 1", intent: intent.IntentArithmetic, kind: intent.Value},
		{query: "what is 1 divided by 0", intent: intent.IntentArithmetic, kind: intent.Error},
		{query: "which of the following numbers is the largest: 1", intent: intent.IntentComparison, kind: intent.Value},
		{query: "which of the following numbers are primes: 2", intent: intent.IntentPrime, kind: intent.Value},
		{query: "what is 2 to the power of 2", intent: intent.IntentPower, kind: intent.Value},
		{query: "which of the following numbers is both a square and a cube: 64", intent: intent.IntentSquareCube, kind: intent.Value},
		{query: "which of the following numbers is both a square and a cube: z", intent: intent.IntentSquareCube, kind: intent.Error},
		{query: "nothing to see", intent: intent.IntentFallback, kind: intent.NoMatch},
	}

	for _, tt := range tests {
		got := d.Resolve(tt.query)
		if got.Intent != tt.intent || got.Kind != tt.kind {
			t.Errorf("Resolve(%q) = (%s, %s), want (%s, %s)", tt.query, got.Intent, got.Kind, tt.intent, tt.kind)
		}
	}
}

func TestNewDispatcher_Order(t *testing.T) {
	want := []intent.Intent{
		intent.IntentShakespeare,
		intent.IntentName,
		intent.IntentArithmetic,
		intent.IntentComparison,
		intent.IntentPrime,
		intent.IntentPower,
		intent.IntentSquareCube,
	}

	got := newDispatcher().Intents()
	if len(got) != len(want) {
		t.Fatalf("Intents() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Intents()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNewDispatcher_CustomName(t *testing.T) {
	d := intent.NewDispatcher(config.ResponderConfig{Name: "Quizzers"})
	if got := d.Process("what is your name"); got != "Quizzers" {
		t.Errorf("Process() = %q, want %q", got, "Quizzers")
	}
}

// stubMatcher records calls and returns a fixed outcome.
type stubMatcher struct {
	intent intent.Intent
	out    intent.Outcome
	calls  int
}

func (s *stubMatcher) Intent() intent.Intent { return s.intent }

func (s *stubMatcher) Match(text string) intent.Outcome {
	s.calls++
	return s.out
}

func TestDispatcher_FirstMatchWins(t *testing.T) {
	skip := &stubMatcher{intent: "skip", out: intent.Unmatched}
	fail := &stubMatcher{intent: "fail", out: intent.ErrorOutcome("bad input")}
	never := &stubMatcher{intent: "never", out: intent.ValueOutcome("unreachable")}

	got := intent.New(skip, fail, never).Resolve("anything")

	if got.Text != "bad input" || got.Intent != "fail" {
		t.Errorf("Resolve() = %+v, want error from fail matcher", got)
	}
	if skip.calls != 1 || fail.calls != 1 {
		t.Errorf("calls = (%d, %d), want (1, 1)", skip.calls, fail.calls)
	}
	if never.calls != 0 {
		t.Errorf("matcher after a match was called %d times", never.calls)
	}
}

func TestDispatcher_NoMatchers(t *testing.T) {
	if got := intent.New().Process("what is 1 plus 1"); got != intent.FallbackMessage {
		t.Errorf("Process() = %q, want fallback", got)
	}
}
