package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/drewdunne/responder/internal/intent"
)

// Metrics tracks operational metrics.
type Metrics struct {
	QueriesReceived uint64            `json:"queries_received"`
	QueriesAnswered uint64            `json:"queries_answered"`
	QueriesErrored  uint64            `json:"queries_errored"`
	Fallbacks       uint64            `json:"fallbacks"`
	Clarifications  uint64            `json:"clarifications"`
	ByIntent        map[string]uint64 `json:"by_intent"`
}

var (
	global = &Metrics{}

	// intentCounts maps intent name to *uint64.
	intentCounts sync.Map
)

// QueryReceived increments the count of queries received.
func QueryReceived() { atomic.AddUint64(&global.QueriesReceived, 1) }

// QueryAnswered increments the count of queries answered with a value.
func QueryAnswered() { atomic.AddUint64(&global.QueriesAnswered, 1) }

// QueryErrored increments the count of queries answered with an error message.
func QueryErrored() { atomic.AddUint64(&global.QueriesErrored, 1) }

// Fallback increments the count of queries no matcher recognized.
func Fallback() { atomic.AddUint64(&global.Fallbacks, 1) }

// Clarification increments the count of empty queries.
func Clarification() { atomic.AddUint64(&global.Clarifications, 1) }

// IntentMatched increments the per-intent counter for name.
func IntentMatched(name string) {
	v, _ := intentCounts.LoadOrStore(name, new(uint64))
	atomic.AddUint64(v.(*uint64), 1)
}

// Observe records one dispatched answer.
func Observe(a intent.Answer) {
	QueryReceived()
	switch a.Intent {
	case intent.IntentFallback:
		Fallback()
		return
	case intent.IntentClarify:
		Clarification()
		return
	}

	IntentMatched(string(a.Intent))
	if a.Kind == intent.Error {
		QueryErrored()
	} else {
		QueryAnswered()
	}
}

// Get returns a snapshot of the current metrics.
func Get() Metrics {
	byIntent := make(map[string]uint64)
	intentCounts.Range(func(k, v any) bool {
		byIntent[k.(string)] = atomic.LoadUint64(v.(*uint64))
		return true
	})

	return Metrics{
		QueriesReceived: atomic.LoadUint64(&global.QueriesReceived),
		QueriesAnswered: atomic.LoadUint64(&global.QueriesAnswered),
		QueriesErrored:  atomic.LoadUint64(&global.QueriesErrored),
		Fallbacks:       atomic.LoadUint64(&global.Fallbacks),
		Clarifications:  atomic.LoadUint64(&global.Clarifications),
		ByIntent:        byIntent,
	}
}

// Reset resets all metrics to zero (useful for testing).
func Reset() {
	atomic.StoreUint64(&global.QueriesReceived, 0)
	atomic.StoreUint64(&global.QueriesAnswered, 0)
	atomic.StoreUint64(&global.QueriesErrored, 0)
	atomic.StoreUint64(&global.Fallbacks, 0)
	atomic.StoreUint64(&global.Clarifications, 0)
	intentCounts.Range(func(k, _ any) bool {
		intentCounts.Delete(k)
		return true
	})
}
