package bench

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessboard/board"
)

// Report summarises a run of Chess960 back-rank draws.
type Report struct {
	Samples uint64
	Illegal uint64
	// Kings counts king placements per file a..h.
	Kings    [board.Width]uint64
	Distinct int
	Elapsed  time.Duration
}

func (r Report) String() string {
	rate := 0
	if r.Elapsed > 0 {
		rate = int(float64(r.Samples) / r.Elapsed.Seconds())
	}
	return message.NewPrinter(language.English).
		Sprintf("n=%d distinct=%d/960 illegal=%d rate=%dn/s kings=%v (%.3fs elapsed)",
			r.Samples, r.Distinct, r.Illegal, rate, r.Kings, r.Elapsed.Seconds())
}

// Sample draws n back ranks. With workers > 1 the draws are split across
// goroutines, worker i using its own source seeded with seed+i.
func Sample(n, workers int, seed int64) Report {
	var (
		report Report
		seen   map[board.Rank]struct{}
		run    sampleFunc
	)
	if workers > 1 {
		run = runSampleParallel
	} else {
		run = runSample
		workers = 1
	}

	start := time.Now()
	seen = run(n, workers, seed, &report)
	report.Elapsed = time.Since(start)
	report.Distinct = len(seen)
	return report
}

type sampleFunc func(n, workers int, seed int64, report *Report) map[board.Rank]struct{}

func runSample(n, _ int, seed int64, report *Report) map[board.Rank]struct{} {
	seen := make(map[board.Rank]struct{}, 960)
	r := board.NewRandom(seed)
	for i := 0; i < n; i++ {
		rank := board.Chess960Rank(r)
		report.Samples++
		if !board.IsChess960Rank(rank) {
			report.Illegal++
			continue
		}
		seen[rank] = struct{}{}
		report.Kings[kingFile(rank)]++
	}
	return seen
}

func runSampleParallel(n, workers int, seed int64, report *Report) map[board.Rank]struct{} {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		seen  = make(map[board.Rank]struct{}, 960)
		share = n / workers
	)
	for w := 0; w < workers; w++ {
		count := share
		if w == workers-1 {
			count = n - share*(workers-1)
		}
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make(map[board.Rank]struct{}, 960)
			r := board.NewRandom(seed + int64(w))
			for i := 0; i < count; i++ {
				rank := board.Chess960Rank(r)
				atomic.AddUint64(&report.Samples, 1)
				if !board.IsChess960Rank(rank) {
					atomic.AddUint64(&report.Illegal, 1)
					continue
				}
				local[rank] = struct{}{}
				atomic.AddUint64(&report.Kings[kingFile(rank)], 1)
			}
			mu.Lock()
			for rank := range local {
				seen[rank] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	return seen
}

func kingFile(rank board.Rank) int {
	for f, k := range rank {
		if k == board.KindKing {
			return f
		}
	}
	return 0
}
