package report

import (
	"testing"
	"time"

	"github.com/jacksonbarreto/dnssecproto/pkg/rrtype"
)

func TestNewRun(t *testing.T) {
	before := time.Now()
	run := NewRun("zone.db")
	after := time.Now()

	if run.Source != "zone.db" {
		t.Errorf("expected Source to be zone.db, got %s", run.Source)
	}
	if run.Parsed == nil {
		t.Errorf("expected Parsed to be initialised, got nil")
	}
	if run.Start.Before(before) || run.Start.After(after) {
		t.Errorf("expected Start within [%v, %v], got %v", before, after, run.Start)
	}
}

func TestRunBegin(t *testing.T) {
	run := NewRun("zone.db")
	original := run.Start
	time.Sleep(time.Millisecond)

	run.Begin()

	if !run.Start.After(original) {
		t.Errorf("expected Start to advance after Begin, got %v (was %v)", run.Start, original)
	}
}

func TestRunFinishAndDuration(t *testing.T) {
	run := NewRun("zone.db")
	if run.Duration() != 0 {
		t.Errorf("expected zero Duration before Finish, got %v", run.Duration())
	}
	time.Sleep(time.Millisecond)
	run.Finish()

	if run.End.IsZero() {
		t.Errorf("expected End to be set after Finish")
	}
	if run.Duration() <= 0 {
		t.Errorf("expected positive Duration after Finish, got %v", run.Duration())
	}
}

func TestRunRecordParsedAndFailure(t *testing.T) {
	run := NewRun("zone.db")
	run.RecordParsed(rrtype.A)
	run.RecordParsed(rrtype.A)
	run.RecordParsed(rrtype.DNSKEY)
	run.RecordFailure()

	if run.Parsed[rrtype.A] != 2 {
		t.Errorf("expected 2 A records, got %d", run.Parsed[rrtype.A])
	}
	if run.Parsed[rrtype.DNSKEY] != 1 {
		t.Errorf("expected 1 DNSKEY record, got %d", run.Parsed[rrtype.DNSKEY])
	}
	if run.Failed != 1 {
		t.Errorf("expected 1 failure, got %d", run.Failed)
	}
	if run.Total() != 3 {
		t.Errorf("expected total of 3 parsed records, got %d", run.Total())
	}
}
