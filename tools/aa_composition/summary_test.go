package aa_composition

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{4.5, 1.8, 3.8})
	if s.Count != 3 {
		t.Fatalf("count = %d", s.Count)
	}
	if !approx(s.Mean, (4.5+1.8+3.8)/3) {
		t.Errorf("mean = %v", s.Mean)
	}
	if !approx(s.Median, 3.8) {
		t.Errorf("median = %v, want 3.8", s.Median)
	}
	if !approx(s.Min, 1.8) || !approx(s.Max, 4.5) {
		t.Errorf("range = [%v, %v]", s.Min, s.Max)
	}
	if s.StdDev <= 0 {
		t.Errorf("stddev = %v, want > 0", s.StdDev)
	}
}

func TestSummarizeDegenerate(t *testing.T) {
	if s := Summarize(nil); s != (BucketSummary{}) {
		t.Errorf("empty summary = %+v", s)
	}
	s := Summarize([]float64{-3.5})
	if s.Count != 1 || s.StdDev != 0 || !approx(s.Median, -3.5) {
		t.Errorf("single summary = %+v", s)
	}
}

func TestSummarizeDoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Summarize(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Fatalf("input modified: %v", in)
	}
}

func TestGravyAndPercent(t *testing.T) {
	comp := Classify("AID")
	b := Partition(comp.Filtered)
	if got := Gravy(b); !approx(got, (1.8+4.5-3.5)/3) {
		t.Errorf("gravy = %v", got)
	}
	if got := Gravy(Buckets{}); got != 0 {
		t.Errorf("gravy of empty = %v", got)
	}
	if got := Percent(Classify("AACG"), 'A'); !approx(got, 50) {
		t.Errorf("percent A = %v, want 50", got)
	}
	if got := Percent(Classify(""), 'A'); got != 0 {
		t.Errorf("percent of empty = %v", got)
	}
}
