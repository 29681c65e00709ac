// Package cli wires a demo program into a cobra command: it prompts for the
// selection, dispatches it, and applies the program's failure policy.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/creational/internal/config"
	"github.com/JonMunkholm/creational/internal/core"
	"github.com/JonMunkholm/creational/internal/display"
	"github.com/JonMunkholm/creational/internal/logging"
	"github.com/JonMunkholm/creational/internal/prompt"
)

// FailurePolicy decides what a failed run does to the process.
type FailurePolicy int

const (
	// AbortOnFailure returns the error so the process exits non-zero.
	AbortOnFailure FailurePolicy = iota
	// ReportOnFailure prints a user message and exits normally.
	ReportOnFailure
)

// RunFunc dispatches a selection and writes the program's output to w.
type RunFunc func(ctx context.Context, selection string, w io.Writer) error

// Program describes one demo executable.
type Program struct {
	Use     string
	Short   string
	Prompt  string
	Choices []string
	Policy  FailurePolicy
	Style   *display.Style // optional; held for the whole run
	Run     RunFunc
}

// NewCommand builds the cobra command for p. A nil cfg uses defaults.
func NewCommand(p Program, cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.Default()
	}

	return &cobra.Command{
		Use:          p.Use,
		Short:        p.Short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), p, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func run(ctx context.Context, p Program, cfg *config.Config, in io.Reader, out io.Writer) error {
	ctx, _ = logging.WithRunID(ctx)
	logger := logging.WithFields(ctx, "program", p.Use)

	if p.Style != nil {
		mode, err := display.ParseMode(cfg.Display.Color)
		if err != nil {
			logger.Warn("ignoring color mode", "error", err)
		}
		sess := display.Acquire(out, *p.Style, display.Options{Mode: mode, SetTitle: cfg.Display.SetTitle})
		defer sess.Release()
	}

	selection, err := prompt.ReadLine(in, out, prompt.Label(p.Prompt, p.Choices))
	if err == nil {
		err = p.Run(ctx, selection, out)
	}
	if err == nil {
		logger.Info("run completed")
		return nil
	}

	if p.Policy == ReportOnFailure {
		logger.Warn("run failed", "error", err, "code", core.MapError(err).Code)
		fmt.Fprintln(out, "Error: "+core.FormatUserError(err))
		return nil
	}

	logger.Error("run failed", "error", err)
	return err
}
