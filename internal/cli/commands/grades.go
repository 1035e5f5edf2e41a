package commands

import (
	"fmt"
	"strconv"

	"github.com/gradebook-labs/gradebook/internal/cli/output"
	"github.com/gradebook-labs/gradebook/internal/gradebook"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewGradesCommand creates the grades command.
func NewGradesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Show the grade distribution",
		Long: `Count how many students earned each letter grade (A through F)
on the standard scale: >=90 A, >=80 B, >=70 C, >=60 D, else F.

Use --output to override the format: auto, text, markdown, json`,
		Example: `  # Distribution for the configured roster
  gradebook grades --roster class.csv

  # Distribution as JSON
  gradebook grades --roster class.csv --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGrades(cmd)
		},
	}

	return cmd
}

func runGrades(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	book, err := loadRoster(cmdCtx)
	if err != nil {
		return err
	}

	dist := gradebook.Distribution(book, gradebook.DefaultScale)
	return renderDistribution(cmdCtx.Renderer, dist, book.Len())
}

// renderDistribution writes the grade distribution in the renderer's
// effective mode. Shared by the grades command and the interactive shell.
func renderDistribution(r *output.Renderer, dist []gradebook.GradeCount, total int) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		out := output.DistributionOutput{
			Counts: make([]output.GradeCountInfo, 0, len(dist)),
			Total:  total,
		}
		for _, gc := range dist {
			out.Counts = append(out.Counts, output.GradeCountInfo{
				Grade: string(gc.Grade),
				Count: gc.Count,
			})
		}
		return r.JSON(out)

	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Grade Distribution"))
		r.Println("")
		for _, gc := range dist {
			r.Println(output.FormatKeyValue("Grade "+string(gc.Grade), strconv.Itoa(gc.Count)))
		}
		r.Println("")
		r.Println(output.FormatKeyValue("Total", strconv.Itoa(total)))
		return nil

	default:
		r.Header(1, "Grade Distribution")
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Grade", "Students"})
		for _, gc := range dist {
			t.AppendRow(table.Row{string(gc.Grade), gc.Count})
		}
		t.Render()
		r.Muted(fmt.Sprintf("%d students", total))
		return nil
	}
}
