package commands

import (
	"fmt"
	"strconv"

	"github.com/gradebook-labs/gradebook/internal/cli/output"
	"github.com/gradebook-labs/gradebook/internal/gradebook"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show classroom statistics",
		Long: `Compute the average, median, highest, and lowest marks over the roster.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Statistics for the configured roster
  gradebook stats --roster class.csv

  # Statistics as JSON
  gradebook stats --roster class.csv --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd)
		},
	}

	return cmd
}

func runStats(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	book, err := loadRoster(cmdCtx)
	if err != nil {
		return err
	}

	summary, err := gradebook.Summarize(book)
	if err != nil {
		return fmt.Errorf("statistics unavailable: %w", err)
	}

	return renderStats(cmdCtx.Renderer, summary)
}

// renderStats writes the summary in the renderer's effective mode. It
// is shared by the stats command and the interactive shell.
func renderStats(r *output.Renderer, s gradebook.Summary) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(statsOutput(s))
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Classroom Statistics"))
		r.Println("")
		r.Println(output.FormatKeyValue("Students", strconv.Itoa(s.Count)))
		r.Println(output.FormatKeyValue("Average", fmt.Sprintf("%.2f", s.Average)))
		r.Println(output.FormatKeyValue("Median", gradebook.FormatMark(s.Median)))
		r.Println(output.FormatKeyValue("Highest", formatExtreme(s.Highest)))
		r.Println(output.FormatKeyValue("Lowest", formatExtreme(s.Lowest)))
		return nil
	default:
		r.Header(1, "Classroom Statistics")
		r.KeyValue("Students", strconv.Itoa(s.Count))
		r.KeyValue("Average", fmt.Sprintf("%.2f", s.Average))
		r.KeyValue("Median", gradebook.FormatMark(s.Median))
		r.KeyValue("Highest", formatExtreme(s.Highest))
		r.KeyValue("Lowest", formatExtreme(s.Lowest))
		return nil
	}
}

// formatExtreme renders "95 (Alice)" for highest/lowest lines.
func formatExtreme(rec gradebook.Record) string {
	return fmt.Sprintf("%s (%s)", gradebook.FormatMark(rec.Mark), rec.Name)
}

func statsOutput(s gradebook.Summary) output.StatsOutput {
	return output.StatsOutput{
		Count:   s.Count,
		Average: s.Average,
		Median:  s.Median,
		Highest: output.RecordInfo{Name: s.Highest.Name, Mark: s.Highest.Mark},
		Lowest:  output.RecordInfo{Name: s.Lowest.Name, Mark: s.Lowest.Mark},
	}
}
