package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gradebook-labs/gradebook/internal/cli/output"
	"github.com/gradebook-labs/gradebook/internal/gradebook"
	"github.com/spf13/cobra"
)

// NewShellCommand creates the interactive shell command.
func NewShellCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive gradebook session",
		Long: `Start an interactive session for manual data entry and analysis.

Records live in memory for the duration of the session. When --roster
is set, the roster is loaded on startup. Errors are reported at the
prompt; they never end the session.`,
		Example: `  # Empty session with manual entry
  gradebook shell

  # Session preloaded from a roster
  gradebook shell --roster class.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd)
		},
	}

	return cmd
}

func runShell(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	book := gradebook.New()

	// Preload roster when configured
	if cmdCtx.Cfg.RosterPath != "" {
		loaded, skipped, err := gradebook.LoadCSV(cmdCtx.Cfg.RosterPath)
		if err != nil {
			r.Errorf("%v", err)
		} else {
			book = loaded
			for _, pe := range skipped {
				r.Warnf("%v", pe)
			}
			r.Printf("Loaded %d records from %s\n", book.Len(), cmdCtx.Cfg.RosterPath)
		}
	}

	historyFile := filepath.Join(os.TempDir(), "gradebook_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "gradebook> ",
		HistoryFile:     historyFile,
		AutoComplete:    shellCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r.Println("Gradebook interactive shell")
	r.Println("Type help for commands, quit to exit")
	r.Println("")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		quit, err := dispatchShellCommand(cmdCtx, book, line)
		if err != nil {
			// Recovered at the shell boundary: report and re-prompt
			r.Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}

	return nil
}

// dispatchShellCommand executes one shell line against the session
// gradebook. It returns true when the session should end.
func dispatchShellCommand(cmdCtx *CommandContext, book *gradebook.Gradebook, line string) (bool, error) {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	r := cmdCtx.Renderer

	switch command {
	case "quit", "exit":
		return true, nil

	case "help":
		printShellHelp(r.Writer())
		return false, nil

	case "add":
		if len(args) < 2 {
			return false, errors.New("usage: add <name> <mark>")
		}
		markField := args[len(args)-1]
		mark, err := strconv.ParseFloat(markField, 64)
		if err != nil {
			return false, fmt.Errorf("invalid mark %q: enter a numeric value", markField)
		}
		name := strings.Join(args[:len(args)-1], " ")
		rec, err := book.Add(name, mark)
		if err != nil {
			return false, err
		}
		r.Printf("Added %s (%s)\n", rec.Name, gradebook.FormatMark(rec.Mark))
		return false, nil

	case "load":
		if len(args) != 1 {
			return false, errors.New("usage: load <file.csv>")
		}
		loaded, skipped, err := gradebook.LoadCSV(args[0])
		if err != nil {
			return false, err
		}
		for _, pe := range skipped {
			r.Warnf("%v", pe)
		}
		for _, rec := range loaded.Records() {
			book.Append(rec)
		}
		if r.EffectiveMode() == output.ModeJSON {
			return false, r.JSON(output.LoadOutput{
				File:    args[0],
				Loaded:  loaded.Len(),
				Skipped: len(skipped),
			})
		}
		r.Printf("Loaded %d records from %s\n", loaded.Len(), args[0])
		return false, nil

	case "stats":
		s, err := gradebook.Summarize(book)
		if err != nil {
			return false, fmt.Errorf("statistics unavailable: %w", err)
		}
		return false, renderStats(r, s)

	case "report":
		rows := gradebook.ReportRows(book, gradebook.DefaultScale)
		return false, renderReport(r, book, rows)

	case "grades":
		dist := gradebook.Distribution(book, gradebook.DefaultScale)
		return false, renderDistribution(r, dist, book.Len())

	case "filter":
		if len(args) > 1 {
			return false, errors.New("usage: filter [threshold]")
		}
		threshold := cmdCtx.Cfg.PassThreshold
		if len(args) == 1 {
			t, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return false, fmt.Errorf("invalid threshold %q", args[0])
			}
			threshold = t
		}
		pass := gradebook.Passing(book, threshold)
		fail := gradebook.Failing(book, threshold)
		return false, renderFilter(r, threshold, pass, fail)

	case "export":
		if len(args) != 1 {
			return false, errors.New("usage: export <file.csv>")
		}
		return false, exportReport(r, book, args[0])

	case "reset", "clear":
		book.Clear()
		r.Println("Cleared all records")
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %q (type help)", command)
	}
}

func printShellHelp(w io.Writer) {
	help := `
Commands:
  add <name> <mark>   Add a student record
  load <file.csv>     Append records from a roster CSV
  stats               Show average, median, highest, lowest
  report              Show the full grade report
  grades              Show the grade distribution
  filter [threshold]  Pass/fail partition (default threshold 40)
  export <file.csv>   Write the report to a CSV file
  reset / clear       Discard all records
  help                Show this help message
  quit / exit         End the session

Tips:
  - Names with spaces work: add Mary Ann 88
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// shellCompleter completes shell commands at the prompt.
func shellCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("load"),
		readline.PcItem("stats"),
		readline.PcItem("report"),
		readline.PcItem("grades"),
		readline.PcItem("filter"),
		readline.PcItem("export"),
		readline.PcItem("reset"),
		readline.PcItem("clear"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
		readline.PcItem("exit"),
	)
}
