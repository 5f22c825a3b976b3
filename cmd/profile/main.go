// Command profile runs a one-shot analysis of a CSV or XLSX file and
// prints the dataset report as JSON on stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Nitesh1413/ai-data-cleaner/adapters/tabular"
	"github.com/Nitesh1413/ai-data-cleaner/internal/profiling"
	"github.com/Nitesh1413/ai-data-cleaner/internal/render"
)

func main() {
	parallel := flag.Bool("parallel", false, "profile columns concurrently")
	markdown := flag.Bool("markdown", false, "emit a Markdown quality report instead of JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: profile [-parallel] [-markdown] <file.csv|file.xlsx>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	tbl, err := tabular.NewDataReader(path).ReadTable()
	if err != nil {
		log.Fatalf("[Profile] import failed: %v", err)
	}

	profiler := profiling.NewProfiler()
	if *parallel {
		profiler = profiling.NewParallelProfiler()
	}
	report := profiler.Analyze(tbl)

	if *markdown {
		fmt.Print(render.ReportMarkdown(path, tbl.Columns, report))
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("[Profile] failed to encode report: %v", err)
	}
}
