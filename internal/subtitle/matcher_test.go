package subtitle

import "testing"

func TestMatchPicksNearestWithinTolerance(t *testing.T) {
	p := newTestProcessor()

	original := []Line{
		{Index: 0, Start: 1000, End: 2000, PlainText: "hello", StyledText: "hello"},
	}
	translation := []Line{
		{Index: 0, Start: 900, End: 1900, PlainText: "bonjour"}, // midpoint 1400
		{Index: 1, Start: 3500, End: 4500, PlainText: "au loin"}, // midpoint 4000
	}

	matched := p.Match(original, translation, 1000)
	if len(matched) != 1 {
		t.Fatalf("expected 1 line, got %d", len(matched))
	}
	if matched[0].Translation != "bonjour" {
		t.Errorf("translation = %q, want %q", matched[0].Translation, "bonjour")
	}
}

func TestMatchNothingWithinTolerance(t *testing.T) {
	p := newTestProcessor()

	original := []Line{
		{Index: 0, Start: 1000, End: 2000, PlainText: "hello"},
	}
	translation := []Line{
		{Index: 0, Start: 10000, End: 12000, PlainText: "far away"},
	}

	matched := p.Match(original, translation, 1000)
	if matched[0].Translation != "" {
		t.Errorf("translation = %q, want empty", matched[0].Translation)
	}
}

func TestMatchTieBreaksOnFirstCandidate(t *testing.T) {
	p := newTestProcessor()

	original := []Line{
		{Index: 0, Start: 1000, End: 2000}, // midpoint 1500
	}
	translation := []Line{
		{Index: 0, Start: 1100, End: 2100, PlainText: "first"}, // midpoint 1600
		{Index: 1, Start: 900, End: 1900, PlainText: "second"}, // midpoint 1400
	}

	matched := p.Match(original, translation, 1000)
	if matched[0].Translation != "first" {
		t.Errorf("translation = %q, want first-encountered candidate on tie",
			matched[0].Translation)
	}
}

func TestMatchDoesNotMutateInputs(t *testing.T) {
	p := newTestProcessor()

	original := []Line{{Index: 0, Start: 1000, End: 2000}}
	translation := []Line{{Index: 0, Start: 1000, End: 2000, PlainText: "x"}}

	_ = p.Match(original, translation, 1000)
	if original[0].Translation != "" {
		t.Error("matcher mutated its input")
	}

	// re-running with a narrower tolerance produces a fresh result
	rematched := p.Match(original, translation, 1)
	if rematched[0].Translation != "x" {
		t.Errorf("translation = %q, want %q", rematched[0].Translation, "x")
	}
}

func TestMatchFullLengthResult(t *testing.T) {
	p := newTestProcessor()

	original := []Line{
		{Index: 0, Start: 0, End: 1000},
		{Index: 1, Start: 2000, End: 3000},
		{Index: 2, Start: 60000, End: 61000},
	}
	translation := []Line{
		{Index: 0, Start: 2100, End: 3100, PlainText: "deux"},
	}

	matched := p.Match(original, translation, DefaultToleranceMS)
	if len(matched) != len(original) {
		t.Fatalf("result length %d, want %d", len(matched), len(original))
	}
	if matched[0].Translation != "" || matched[2].Translation != "" {
		t.Error("unmatched lines must keep an empty translation")
	}
	if matched[1].Translation != "deux" {
		t.Errorf("line 1 translation = %q, want %q", matched[1].Translation, "deux")
	}
}

func TestMatchEmptyTracks(t *testing.T) {
	p := newTestProcessor()

	if got := p.Match(nil, nil, 1000); len(got) != 0 {
		t.Errorf("nil tracks: got %d lines", len(got))
	}

	original := []Line{{Index: 0, Start: 0, End: 1000}}
	got := p.Match(original, nil, 1000)
	if len(got) != 1 || got[0].Translation != "" {
		t.Errorf("empty translation track: got %+v", got)
	}
}
