// Package benchdriver drives combgen.Generate for a given (n,k) pair and
// times it, sampling peak RSS throughout, the Go analogue of
// original_source/bench.py's run_generator loop. Where bench.py shells out
// to a child lotogen.py process and polls it with psutil, benchdriver runs
// combgen in-process and samples its own RSS periodically on a background
// goroutine, since there is no child process to poll. It logs to its own
// bench.csv schema (throughput/output-size columns), distinct from
// internal/recorder's cover-quality coverK_log.csv contract.
package benchdriver

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/lmarques/covercore/internal/combgen"
	"github.com/lmarques/covercore/internal/errs"
	"github.com/lmarques/covercore/internal/recorder"
)

// SampleInterval is how often the peak-RSS watcher goroutine samples,
// mirroring bench.py's 100ms polling loop.
const SampleInterval = 100 * time.Millisecond

// Result is one generation run's timing and resource profile.
type Result struct {
	N            int
	K            int
	Rows         int64
	Elapsed      time.Duration
	OutputBytes  int64
	PeakRSSBytes uint64
}

// RowsPerSecond is Rows / Elapsed, 0 if Elapsed is 0.
func (r Result) RowsPerSecond() float64 {
	s := r.Elapsed.Seconds()
	if s == 0 {
		return 0
	}
	return float64(r.Rows) / s
}

// Run generates C(n,k) rows to path, timing the run and sampling peak RSS
// throughout (via internal/recorder.SampleRSS).
func Run(path string, n, k int) (Result, error) {
	f, err := os.Create(path)
	if err != nil {
		return Result{}, errs.IOError("benchdriver: create "+path, err)
	}
	defer f.Close()

	pid := int32(os.Getpid())
	var peakRSS uint64
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(SampleInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rss := recorder.SampleRSS(pid)
				for {
					cur := atomic.LoadUint64(&peakRSS)
					if rss <= cur || atomic.CompareAndSwapUint64(&peakRSS, cur, rss) {
						break
					}
				}
			case <-done:
				return
			}
		}
	}()

	start := time.Now()
	rows, genErr := combgen.Generate(f, n, k)
	elapsed := time.Since(start)
	close(done)

	if genErr != nil {
		return Result{}, genErr
	}

	info, statErr := f.Stat()
	var size int64
	if statErr == nil {
		size = info.Size()
	}

	return Result{
		N:            n,
		K:            k,
		Rows:         rows,
		Elapsed:      elapsed,
		OutputBytes:  size,
		PeakRSSBytes: atomic.LoadUint64(&peakRSS),
	}, nil
}

var logHeader = []string{"k", "combinations", "elapsed_s", "rows_per_s", "output_bytes", "peak_rss_bytes"}

// AppendLog writes r as one row to path (bench.csv), writing the header
// first if the file does not yet exist, mirroring bench.py's save_csv.
func AppendLog(path string, r Result) error {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.IOError("benchdriver: open "+path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(logHeader); err != nil {
			return errs.IOError("benchdriver: write header", err)
		}
	}
	row := []string{
		strconv.Itoa(r.K),
		strconv.FormatInt(r.Rows, 10),
		fmt.Sprintf("%.3f", r.Elapsed.Seconds()),
		fmt.Sprintf("%.1f", r.RowsPerSecond()),
		strconv.FormatInt(r.OutputBytes, 10),
		strconv.FormatUint(r.PeakRSSBytes, 10),
	}
	if err := w.Write(row); err != nil {
		return errs.IOError("benchdriver: write row", err)
	}
	w.Flush()
	return w.Error()
}
