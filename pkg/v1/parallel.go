package snapline

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/paulmach/orb"
)

// SnapLines snaps a batch of lines, optionally in parallel.
//
// Snapping is embarrassingly parallel: every line only reads the shared
// index, so lines are distributed over a worker pool with no locking. The
// returned slice always has one Result per input line, in input order,
// regardless of computation order.
//
// Per-line failures are isolated: a line that falls back to its original
// geometry never disturbs the processing of any other line. Fallbacks are
// reported via BatchOptions.ErrorLog when set.
//
// Example:
//
//	results := snapper.SnapLines(lines, snapline.BatchOptions{
//	    Parallel: true,
//	    Progress: func(done, total int) {
//	        fmt.Printf("\rSnapping: %d/%d", done, total)
//	    },
//	    ErrorLog: os.Stderr,
//	})
func (s *Snapper) SnapLines(lines []orb.LineString, opts BatchOptions) []Result {
	if len(lines) == 0 {
		return []Result{}
	}

	if !opts.Parallel {
		return s.snapLinesSerial(lines, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(lines) {
		workers = len(lines)
	}

	type lineResult struct {
		index  int
		result Result
	}

	jobs := make(chan int, len(lines))
	resultCh := make(chan lineResult, len(lines))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				resultCh <- lineResult{
					index:  index,
					result: s.SnapLine(lines[index]),
				}
			}
		}()
	}

	for i := range lines {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]Result, len(lines))
	done := 0

	for r := range resultCh {
		done++

		if opts.Progress != nil {
			opts.Progress(done, len(lines))
		}

		if r.result.Err != nil && opts.ErrorLog != nil {
			fmt.Fprintf(opts.ErrorLog, "line %d kept original: %v\n", r.index, r.result.Err)
		}

		results[r.index] = r.result
	}

	return results
}

// snapLinesSerial snaps lines one at a time (fallback when Parallel=false).
func (s *Snapper) snapLinesSerial(lines []orb.LineString, opts BatchOptions) []Result {
	results := make([]Result, len(lines))

	for i, line := range lines {
		results[i] = s.SnapLine(line)

		if results[i].Err != nil && opts.ErrorLog != nil {
			fmt.Fprintf(opts.ErrorLog, "line %d kept original: %v\n", i, results[i].Err)
		}

		if opts.Progress != nil {
			opts.Progress(i+1, len(lines))
		}
	}

	return results
}
