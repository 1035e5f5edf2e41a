package commands

import (
	"fmt"
	"sort"

	"github.com/gradebook-labs/gradebook/internal/cli/output"
	"github.com/gradebook-labs/gradebook/internal/gradebook"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the full grade report",
		Long: `Render every student with their mark and letter grade, plus a
summary line.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table
  - JSON: Machine-readable rows

Use --output to override: auto, text, markdown, json`,
		Example: `  # Full report in roster order
  gradebook report --roster class.csv

  # Report sorted by name
  gradebook report --roster class.csv --sort name

  # Report as JSON
  gradebook report --roster class.csv --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, sortBy)
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "insertion", "Row order: insertion, name, or mark")

	return cmd
}

func runReport(cmd *cobra.Command, sortBy string) error {
	cmdCtx := NewCommandContext(cmd)

	book, err := loadRoster(cmdCtx)
	if err != nil {
		return err
	}

	rows := gradebook.ReportRows(book, gradebook.DefaultScale)
	if err := sortRows(rows, sortBy); err != nil {
		return err
	}

	return renderReport(cmdCtx.Renderer, book, rows)
}

// sortRows reorders report rows in place. Insertion order is the
// default; sorts are stable so ties keep roster order.
func sortRows(rows []gradebook.ReportRow, sortBy string) error {
	switch sortBy {
	case "", "insertion":
	case "name":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	case "mark":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Mark > rows[j].Mark })
	default:
		return fmt.Errorf("unknown sort order %q (use insertion, name, or mark)", sortBy)
	}
	return nil
}

// renderReport writes the grade report in the renderer's effective
// mode. Shared by the report command and the interactive shell.
func renderReport(r *output.Renderer, book *gradebook.Gradebook, rows []gradebook.ReportRow) error {
	var summary *gradebook.Summary
	if book.Len() > 0 {
		s, err := gradebook.Summarize(book)
		if err != nil {
			return err
		}
		summary = &s
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		out := output.ReportOutput{Rows: make([]output.RowInfo, 0, len(rows))}
		for _, row := range rows {
			out.Rows = append(out.Rows, output.RowInfo{
				Name:  row.Name,
				Mark:  row.Mark,
				Grade: string(row.Grade),
			})
		}
		if summary != nil {
			s := statsOutput(*summary)
			out.Summary = &s
		}
		return r.JSON(out)

	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Grade Report"))
		r.Println("")
		if len(rows) == 0 {
			r.Println("No records.")
			return nil
		}
		r.Println("| Name | Mark | Grade |")
		r.Println("| --- | --- | --- |")
		for _, row := range rows {
			r.Printf("| %s | %s | %s |\n", row.Name, gradebook.FormatMark(row.Mark), row.Grade)
		}
		if summary != nil {
			r.Println("")
			r.Println(output.FormatKeyValue("Students", fmt.Sprintf("%d", summary.Count)))
			r.Println(output.FormatKeyValue("Average", fmt.Sprintf("%.2f", summary.Average)))
		}
		return nil

	default:
		r.Header(1, "Grade Report")
		if len(rows) == 0 {
			r.Muted("No records.")
			return nil
		}
		renderRowsTable(r, rows)
		if summary != nil {
			r.Muted(fmt.Sprintf("%d students, average %.2f", summary.Count, summary.Average))
		}
		return nil
	}
}

// renderRowsTable renders report rows as an aligned table.
func renderRowsTable(r *output.Renderer, rows []gradebook.ReportRow) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Mark", "Grade"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Name, gradebook.FormatMark(row.Mark), string(row.Grade)})
	}
	t.Render()
}
