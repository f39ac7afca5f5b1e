// Package report aggregates the outcome of a batch run of the demo CLI:
// how many presentation-format records were parsed from a zone file, how
// many lines failed to parse, and how long the run took.
package report

import (
	"time"

	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

// Run represents the aggregation of results from one invocation of the
// demo CLI. It stores the start and end times of the run, the source
// being processed (a zone file path or a TSIG stream identifier), a
// tally of parsed records per record type, and a count of failures.
//
// Fields:
//
//	Start: The time the run started. Set when the Run is constructed.
//
//	End: The time the run ended. Initially zero; set when Finish is
//	     called.
//
//	Source: A string identifying what was processed (a file path, or a
//	        similar label for a TSIG stream).
//
//	Parsed: A map from record type code (rrtype.RecordType) to the count
//	        of records of that type successfully parsed.
//
//	Failed: The count of lines that failed to parse, independent of type.
//
// Constructor:
//
//	NewRun: Creates and initialises a new Run for the given source. The
//	        start time is set to the current time and the tally map is
//	        initialised empty.
//
// Methods:
//
//	Begin: Resets the start time to now. Useful for restarting a run.
//
//	Finish: Marks the end of the run by setting End to the current time.
//
//	RecordParsed: Increments the tally for a successfully parsed record
//	              of the given type.
//
//	RecordFailure: Increments the failure tally.
type Run struct {
	Start  time.Time
	End    time.Time
	Source string
	Parsed map[rrtype.RecordType]int
	Failed int
}

// NewRun creates and initialises a Run for source, with Start set to the
// current time and an empty tally map.
func NewRun(source string) *Run {
	return &Run{
		Start:  time.Now(),
		Source: source,
		Parsed: make(map[rrtype.RecordType]int),
	}
}

// Begin resets the start time of the run to now. It does not touch Parsed,
// Failed, or Source.
func (r *Run) Begin() {
	r.Start = time.Now()
}

// Finish marks the end of the run by recording the current time in End.
// Calling it more than once overwrites End with the most recent call's
// time.
func (r *Run) Finish() {
	r.End = time.Now()
}

// RecordParsed increments the tally for a successfully parsed record of
// the given type.
func (r *Run) RecordParsed(t rrtype.RecordType) {
	r.Parsed[t]++
}

// RecordFailure increments the run's failure tally.
func (r *Run) RecordFailure() {
	r.Failed++
}

// Total returns the number of successfully parsed records across all
// types.
func (r *Run) Total() int {
	total := 0
	for _, count := range r.Parsed {
		total += count
	}
	return total
}

// Duration returns how long the run took. It is zero until Finish has
// been called.
func (r *Run) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}
