package commands

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/gradebook-labs/gradebook/internal/cli/config"
	"github.com/gradebook-labs/gradebook/internal/cli/output"
	"github.com/gradebook-labs/gradebook/internal/gradebook"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's
// configuration and context. The renderer stored by the root command
// is reused; one is built from the command's streams otherwise.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := config.GetRenderer(cmd.Context())
	if r == nil {
		mode := output.Mode(cfg.OutputFormat)
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration. It uses
// config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	threshold := float64(config.DefaultPassThreshold)
	if v := os.Getenv("GRADEBOOK_PASS_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			threshold = f
		}
	}

	return &config.Config{
		RosterPath:    os.Getenv("GRADEBOOK_ROSTER"),
		PassThreshold: threshold,
		OutputFormat:  os.Getenv("GRADEBOOK_OUTPUT"),
		Verbose:       os.Getenv("GRADEBOOK_VERBOSE") == "true",
	}
}

// loadRoster loads the configured roster CSV. Skipped rows are reported
// as warnings on stderr; they never abort the load.
func loadRoster(cmdCtx *CommandContext) (*gradebook.Gradebook, error) {
	if cmdCtx.Cfg.RosterPath == "" {
		return nil, errors.New("no roster configured: pass --roster or set roster in gradebook.yaml")
	}

	cmdCtx.Logger.Debug("loading roster", "path", cmdCtx.Cfg.RosterPath)

	book, skipped, err := gradebook.LoadCSV(cmdCtx.Cfg.RosterPath)
	if err != nil {
		return nil, err
	}
	for _, pe := range skipped {
		cmdCtx.Renderer.Warnf("%v", pe)
	}

	cmdCtx.Logger.Debug("roster loaded", "records", book.Len(), "skipped", len(skipped))
	return book, nil
}
