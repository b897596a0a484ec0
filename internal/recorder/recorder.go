// Package recorder appends one cover run's approximation-quality metrics to
// a per-scenario CSV log (spec §4.6, §6): SB_size, Lower_bound,
// Approx_factor, ln|U|+1, Alpha_over_ln, Tempo (s), Pico_RAM(MB). This is
// the Go analogue of original_source/bench.py's save_csv, narrowed to the
// quality-of-cover columns the core pipeline is required to report, rather
// than bench.py's own generation-throughput columns (those belong to
// internal/benchdriver, which logs separately).
package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/lmarques/covercore/internal/errs"
	"github.com/lmarques/covercore/internal/scenario"
)

var header = []string{
	"SB_size", "Lower_bound", "Approx_factor", "ln|U|+1", "Alpha_over_ln", "Tempo (s)", "Pico_RAM(MB)",
}

// Metrics is one run's approximation-quality record (spec §4.6): how many
// rows the greedy selector chose, the trivial packing lower bound, the
// resulting approximation factor α = SB_size / Lower_bound, the classical
// greedy bound ln|U|+1, and how α compares to that bound.
type Metrics struct {
	SBSize       int
	LowerBound   int64
	ApproxFactor float64
	LnBoundPlus1 float64
	AlphaOverLn  float64
	Elapsed      time.Duration
	PeakRSSBytes uint64
}

// NewMetrics derives a Metrics record from a completed run: sc carries the
// scenario's lower bound and ln|U|+1 (scenario.Scenario.LowerBound,
// LnBoundPlus1), chosen is the greedy selector's output size, elapsed is
// wall time, and peakRSSBytes is the sampled peak resident set size.
func NewMetrics(sc scenario.Scenario, chosen int, elapsed time.Duration, peakRSSBytes uint64) Metrics {
	lowerBound := sc.LowerBound()
	lnBoundPlus1 := sc.LnBoundPlus1()

	approxFactor := 0.0
	if lowerBound > 0 {
		approxFactor = float64(chosen) / float64(lowerBound)
	}
	alphaOverLn := 0.0
	if lnBoundPlus1 > 0 {
		alphaOverLn = approxFactor / lnBoundPlus1
	}

	return Metrics{
		SBSize:       chosen,
		LowerBound:   lowerBound,
		ApproxFactor: approxFactor,
		LnBoundPlus1: lnBoundPlus1,
		AlphaOverLn:  alphaOverLn,
		Elapsed:      elapsed,
		PeakRSSBytes: peakRSSBytes,
	}
}

// PeakRSSMB converts the sampled peak RSS to mebibytes.
func (m Metrics) PeakRSSMB() float64 {
	return float64(m.PeakRSSBytes) / (1 << 20)
}

// Append writes m as one CSV row to path (a scenario's coverK_log.csv),
// writing the header first if the file does not yet exist.
func Append(path string, m Metrics) error {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.IOError("recorder: open "+path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(header); err != nil {
			return errs.IOError("recorder: write header", err)
		}
	}
	row := []string{
		strconv.Itoa(m.SBSize),
		strconv.FormatInt(m.LowerBound, 10),
		fmt.Sprintf("%.4f", m.ApproxFactor),
		fmt.Sprintf("%.4f", m.LnBoundPlus1),
		fmt.Sprintf("%.4f", m.AlphaOverLn),
		fmt.Sprintf("%.3f", m.Elapsed.Seconds()),
		fmt.Sprintf("%.1f", m.PeakRSSMB()),
	}
	if err := w.Write(row); err != nil {
		return errs.IOError("recorder: write row", err)
	}
	w.Flush()
	return w.Error()
}

// Summary renders m in the human-readable one-line form the command
// surface logs alongside the structured record (spec §9 observability note).
func Summary(m Metrics) string {
	return fmt.Sprintf(
		"sb_size=%s lower_bound=%s approx_factor=%.4f ln_bound_plus1=%.4f alpha_over_ln=%.4f elapsed=%s peak_rss=%s",
		humanize.Comma(int64(m.SBSize)),
		humanize.Comma(m.LowerBound),
		m.ApproxFactor,
		m.LnBoundPlus1,
		m.AlphaOverLn,
		m.Elapsed.Round(time.Millisecond),
		humanize.Bytes(m.PeakRSSBytes),
	)
}

// SampleRSS reads the current process's resident set size. It returns 0 on
// platforms or sandboxes where gopsutil cannot read /proc (or the Windows
// and Darwin equivalents), treating a failed sample as "no new peak" rather
// than aborting the run.
func SampleRSS(pid int32) uint64 {
	p, err := process.NewProcess(pid)
	if err != nil {
		return 0
	}
	info, err := p.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return info.RSS
}
