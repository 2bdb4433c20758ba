// Package metrics provides application-level counters using stdlib expvar.
// Counters are automatically exported on the /debug/vars HTTP endpoint
// when net/http/pprof is imported in the main binary.
package metrics

import "expvar"

// Operation counters.
var (
	OpensTotal          = expvar.NewInt("gedgraph_opens_total")
	ProvenanceQueries   = expvar.NewInt("gedgraph_provenance_queries_total")
	DanglingRefsDropped = expvar.NewInt("gedgraph_dangling_refs_dropped_total")
	UnresolvedDates     = expvar.NewInt("gedgraph_unresolved_dates_total")
)

// Inc increments the given counter by 1.
func Inc(counter *expvar.Int) { counter.Add(1) }
