// internal/core/domain/partition_test.go
package domain

import (
	"errors"
	"testing"

	"domainsearch/internal/testutil"
)

func TestPartition_Add(t *testing.T) {
	p := NewPartition()
	p.Add(NewSuccess("a.example", "dns", 0))
	p.Add(NewFailure("b.example", "dns", errors.New("no such host"), 0))

	testutil.AssertEqual(t, p.SucceededCount(), 1, "succeeded count")
	testutil.AssertEqual(t, p.FailedCount(), 1, "failed count")
	testutil.AssertEqual(t, p.Total(), 2, "total")
	testutil.AssertTrue(t, p.HasSucceeded("a.example"), "a succeeded")
	testutil.AssertTrue(t, p.HasFailed("b.example"), "b failed")
	testutil.AssertFalse(t, p.HasFailed("a.example"), "a not failed")
}

func TestPartition_Disjoint(t *testing.T) {
	p := NewPartition()
	p.Add(NewFailure("a.example", "dns", nil, 0))
	p.Add(NewSuccess("a.example", "dns", 0))
	p.Add(NewFailure("a.example", "dns", nil, 0))

	testutil.AssertEqual(t, p.SucceededCount(), 1, "success wins")
	testutil.AssertEqual(t, p.FailedCount(), 0, "never in both sets")
}

func TestPartition_SortedAccessors(t *testing.T) {
	p := NewPartition()
	for _, c := range []Candidate{"c.example", "a.example", "b.example"} {
		p.Add(NewSuccess(c, "dns", 0))
	}

	got := Strings(p.Succeeded())
	testutil.AssertEqual(t, got[0], "a.example", "sorted 0")
	testutil.AssertEqual(t, got[1], "b.example", "sorted 1")
	testutil.AssertEqual(t, got[2], "c.example", "sorted 2")
	testutil.AssertLen(t, Strings(p.Failed()), 0, "no failures")
}

func TestProbeResult(t *testing.T) {
	ok := NewSuccess("a.example", "port", 0)
	testutil.AssertTrue(t, ok.Succeeded(), "success")
	testutil.AssertTrue(t, ok.Outcome.IsValid(), "valid outcome")
	testutil.AssertEqual(t, ok.String(), "port a.example success", "string")

	bad := NewFailure("b.example", "port", errors.New("refused"), 0)
	testutil.AssertFalse(t, bad.Succeeded(), "failure")
	testutil.AssertEqual(t, bad.String(), "port b.example failure (refused)", "string with cause")
}
