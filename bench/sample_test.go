package bench

import (
	"strings"
	"testing"
)

func TestSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		workers int
	}{
		{n: 0, workers: 1},
		{n: 1, workers: 1},
		{n: 5_000, workers: 1},
		{n: 5_000, workers: 4},
		{n: 5_003, workers: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("", func(t *testing.T) {
			t.Parallel()
			r := Sample(tt.n, tt.workers, 1)
			if r.Samples != uint64(tt.n) {
				t.Errorf("unexpected samples: got=%d want=%d", r.Samples, tt.n)
			}
			if r.Illegal != 0 {
				t.Errorf("unexpected illegal ranks: got=%d", r.Illegal)
			}
			var kings uint64
			for f, c := range r.Kings {
				if (f == 0 || f == 7) && c != 0 {
					t.Errorf("king drawn on corner file %d", f)
				}
				kings += c
			}
			if kings != uint64(tt.n) {
				t.Errorf("unexpected king total: got=%d want=%d", kings, tt.n)
			}
			if tt.n >= 5_000 && r.Distinct < 500 {
				t.Errorf("unexpectedly few distinct ranks: got=%d", r.Distinct)
			}
			if r.Distinct > 960 {
				t.Errorf("unexpected distinct ranks: got=%d", r.Distinct)
			}
		})
	}
}

func TestSampleDeterministic(t *testing.T) {
	t.Parallel()
	a, b := Sample(1_000, 1, 42), Sample(1_000, 1, 42)
	if a.Kings != b.Kings || a.Distinct != b.Distinct {
		t.Errorf("unexpected divergence: %v != %v", a.Kings, b.Kings)
	}
}

func TestReportString(t *testing.T) {
	t.Parallel()
	r := Report{Samples: 12_345, Distinct: 960}
	if got := r.String(); !strings.Contains(got, "n=12,345") || !strings.Contains(got, "distinct=960/960") {
		t.Errorf("unexpected report: %s", got)
	}
}
