package commands

import (
	"fmt"
	"strings"

	"github.com/gradebook-labs/gradebook/internal/cli/output"
	"github.com/gradebook-labs/gradebook/internal/gradebook"
	"github.com/spf13/cobra"
)

// NewFilterCommand creates the filter command.
func NewFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Partition students into pass and fail",
		Long: `Split the roster into passing (mark >= threshold) and failing
(mark < threshold) students. The boundary is inclusive: a mark equal to
the threshold passes.

The threshold defaults to 40 and can be overridden with --threshold or
the pass_threshold config key.`,
		Example: `  # Pass/fail at the default threshold of 40
  gradebook filter --roster class.csv

  # Pass/fail at 50
  gradebook filter --roster class.csv --threshold 50

  # Partition as JSON
  gradebook filter --roster class.csv --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd)
		},
	}

	return cmd
}

func runFilter(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	book, err := loadRoster(cmdCtx)
	if err != nil {
		return err
	}

	threshold := cmdCtx.Cfg.PassThreshold
	pass := gradebook.Passing(book, threshold)
	fail := gradebook.Failing(book, threshold)

	return renderFilter(cmdCtx.Renderer, threshold, pass, fail)
}

// renderFilter writes the pass/fail partition in the renderer's
// effective mode. Shared by the filter command and the interactive shell.
func renderFilter(r *output.Renderer, threshold float64, pass, fail []gradebook.Record) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		out := output.FilterOutput{
			Threshold: threshold,
			Passing:   recordInfos(pass),
			Failing:   recordInfos(fail),
			Summary: output.FilterSummary{
				PassCount: len(pass),
				FailCount: len(fail),
			},
		}
		return r.JSON(out)

	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Pass/Fail Summary"))
		r.Println("")
		r.Println(output.FormatKeyValue("Threshold", gradebook.FormatMark(threshold)))
		r.Println("")
		r.Println(output.FormatHeader(2, fmt.Sprintf("Passed (%d)", len(pass))))
		for _, rec := range pass {
			r.Printf("- %s (%s)\n", rec.Name, gradebook.FormatMark(rec.Mark))
		}
		r.Println("")
		r.Println(output.FormatHeader(2, fmt.Sprintf("Failed (%d)", len(fail))))
		for _, rec := range fail {
			r.Printf("- %s (%s)\n", rec.Name, gradebook.FormatMark(rec.Mark))
		}
		return nil

	default:
		r.Header(1, "Pass/Fail Summary")
		r.KeyValue("Threshold", gradebook.FormatMark(threshold))
		r.Println("")
		r.Header(2, fmt.Sprintf("Passed (%d)", len(pass)))
		if len(pass) > 0 {
			r.Println("  " + joinNames(pass))
		}
		r.Println("")
		r.Header(2, fmt.Sprintf("Failed (%d)", len(fail)))
		if len(fail) > 0 {
			r.Println("  " + joinNames(fail))
		}
		return nil
	}
}

func recordInfos(recs []gradebook.Record) []output.RecordInfo {
	out := make([]output.RecordInfo, 0, len(recs))
	for _, rec := range recs {
		out = append(out, output.RecordInfo{Name: rec.Name, Mark: rec.Mark})
	}
	return out
}

func joinNames(recs []gradebook.Record) string {
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.Name)
	}
	return strings.Join(names, ", ")
}
