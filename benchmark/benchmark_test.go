package benchmark

import (
	"testing"
	"time"
)

func TestMeasureRunsFunction(t *testing.T) {
	called := false
	u := Measure(func() {
		called = true
		time.Sleep(5 * time.Millisecond)
	})
	if !called {
		t.Fatal("wrapped function was not called")
	}
	if u.Elapsed < 5*time.Millisecond {
		t.Fatalf("elapsed = %v, want >= 5ms", u.Elapsed)
	}
	if u.TotalAllocMB < 0 {
		t.Fatalf("total alloc = %v", u.TotalAllocMB)
	}
}
