package commands

import (
	"fmt"
	"strings"

	"github.com/gradebook-labs/gradebook/internal/cli/output"
	"github.com/gradebook-labs/gradebook/internal/gradebook"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the grade report to a CSV file",
		Long: `Serialize the report (name,mark,grade header, one row per student
in roster order) to a CSV file. A .csv extension is appended when the
given filename lacks one.

A write failure is reported without touching the loaded roster.`,
		Example: `  # Export the report
  gradebook export report.csv --roster class.csv

  # Extension appended automatically
  gradebook export report --roster class.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0])
		},
	}

	return cmd
}

func runExport(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)

	book, err := loadRoster(cmdCtx)
	if err != nil {
		return err
	}

	return exportReport(cmdCtx.Renderer, book, path)
}

// exportReport writes the report CSV and confirms it in the renderer's
// effective mode. Shared by the export command and the interactive shell.
func exportReport(r *output.Renderer, book *gradebook.Gradebook, path string) error {
	path = ensureCSVExt(path)

	if err := gradebook.ExportCSV(path, book, gradebook.DefaultScale); err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.ExportOutput{File: path, Rows: book.Len()})
	case output.ModeMarkdown:
		r.Println(output.FormatKeyValue("Saved", path))
		r.Println(output.FormatKeyValue("Rows", fmt.Sprintf("%d", book.Len())))
		return nil
	default:
		r.Success(fmt.Sprintf("Saved %d rows to %s", book.Len(), path))
		return nil
	}
}

// ensureCSVExt appends .csv when the filename has no such suffix.
func ensureCSVExt(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return path
	}
	return path + ".csv"
}
