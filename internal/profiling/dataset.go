package profiling

import (
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
)

// Profiler runs the full analysis over a table snapshot. The zero
// value profiles sequentially; Parallel fans per-column work out to a
// worker per column. Both paths produce identical reports, so callers
// may pick either freely.
type Profiler struct {
	Parallel bool
}

// NewProfiler creates a sequential profiler
func NewProfiler() *Profiler {
	return &Profiler{}
}

// NewParallelProfiler creates a profiler that fans out per column.
// Column statistics share no state, so no coordination is needed
// beyond the join.
func NewParallelProfiler() *Profiler {
	return &Profiler{Parallel: true}
}

// Analyze profiles every column plus the whole-table duplicate scan
// and assembles the dataset report. The table is read-only from the
// engine's perspective; recomputing from the same table yields an
// identical report.
func (p *Profiler) Analyze(t *table.Table) *profile.DatasetReport {
	start := time.Now()

	report := &profile.DatasetReport{
		TotalRows:     t.RowCount(),
		TotalColumns:  t.ColumnCount(),
		DuplicateRows: countDuplicateRows(t),
		Columns:       make(map[string]profile.ColumnProfile, t.ColumnCount()),
	}

	if p.Parallel && t.ColumnCount() > 1 {
		p.analyzeColumnsParallel(t, report)
	} else {
		for _, name := range t.Columns {
			report.Columns[name] = ProfileColumn(name, t.ColumnValues(name))
		}
	}

	log.Printf("[Profiler] analyzed %d rows x %d columns in %.2fms (parallel=%t)",
		report.TotalRows, report.TotalColumns,
		float64(time.Since(start).Nanoseconds())/1e6, p.Parallel)

	return report
}

// analyzeColumnsParallel computes per-column profiles concurrently.
// Results land in a slice indexed by column position so the assembly
// below stays deterministic.
func (p *Profiler) analyzeColumnsParallel(t *table.Table, report *profile.DatasetReport) {
	profiles := make([]profile.ColumnProfile, len(t.Columns))

	var g errgroup.Group
	for i, name := range t.Columns {
		g.Go(func() error {
			profiles[i] = ProfileColumn(name, t.ColumnValues(name))
			return nil
		})
	}
	// Workers never return errors; the computation is total.
	_ = g.Wait()

	for i, name := range t.Columns {
		report.Columns[name] = profiles[i]
	}
}

// countDuplicateRows counts rows whose full structural content matches
// an earlier row in scan order. The first occurrence of any value set
// is never counted.
func countDuplicateRows(t *table.Table) int {
	seen := make(map[string]struct{}, t.RowCount())
	duplicates := 0
	for _, row := range t.Rows {
		key := row.CanonicalKey()
		if _, ok := seen[key]; ok {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
	}
	return duplicates
}
