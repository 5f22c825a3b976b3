// Package render turns dataset reports into human-readable documents.
package render

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
)

// ReportMarkdown renders a dataset report as a Markdown quality
// report. Columns appear in the table's display order.
func ReportMarkdown(name string, columns []string, report *profile.DatasetReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Data Quality Report: %s\n\n", name)
	fmt.Fprintf(&b, "- **Rows:** %d\n", report.TotalRows)
	fmt.Fprintf(&b, "- **Columns:** %d\n", report.TotalColumns)
	fmt.Fprintf(&b, "- **Duplicate rows:** %d\n\n", report.DuplicateRows)

	for _, colName := range columns {
		col, ok := report.Columns[colName]
		if !ok {
			continue
		}
		writeColumnSection(&b, col)
	}

	if !report.HasIssues() {
		b.WriteString("No data quality issues detected.\n")
	}

	return b.String()
}

func writeColumnSection(b *strings.Builder, col profile.ColumnProfile) {
	fmt.Fprintf(b, "## %s\n\n", col.Name)
	fmt.Fprintf(b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Type | %s |\n", col.InferredType)
	fmt.Fprintf(b, "| Count | %d |\n", col.Count)
	fmt.Fprintf(b, "| Unique | %d |\n", col.Unique)
	fmt.Fprintf(b, "| Missing | %d |\n", col.Missing)

	if ns := col.NumericStats; ns != nil {
		fmt.Fprintf(b, "| Mean | %.4g |\n", ns.Mean)
		fmt.Fprintf(b, "| Median | %.4g |\n", ns.Median)
		fmt.Fprintf(b, "| Std Dev | %.4g |\n", ns.StdDev)
		fmt.Fprintf(b, "| Min | %.4g |\n", ns.Min)
		fmt.Fprintf(b, "| Max | %.4g |\n", ns.Max)
		if len(ns.Mode) > 0 {
			fmt.Fprintf(b, "| Mode | %s |\n", joinCells(ns.Mode))
		}
	}
	if ds := col.DateStats; ds != nil {
		fmt.Fprintf(b, "| Earliest | %s |\n", ds.Earliest)
		fmt.Fprintf(b, "| Latest | %s |\n", ds.Latest)
		fmt.Fprintf(b, "| Invalid dates | %d |\n", ds.InvalidCount)
	}
	b.WriteString("\n")

	if len(col.Issues) > 0 {
		b.WriteString("Issues:\n\n")
		for _, issue := range col.Issues {
			fmt.Fprintf(b, "- %s\n", issue)
		}
		b.WriteString("\n")
	}
}

func joinCells(cells []table.Cell) string {
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ", ")
}

// ReportHTML renders the Markdown quality report to HTML for the API
// surface.
func ReportHTML(name string, columns []string, report *profile.DatasetReport) []byte {
	md := ReportMarkdown(name, columns, report)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
