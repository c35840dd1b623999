// Package cli implements the tsvsql command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags
var version = "dev"

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", red("Error:"), err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tsvsql",
		Short: "Turn a TSV file into SQL",
		Long: `tsvsql reads a tab separated file, infers the narrowest SQL type of each
column and prints CREATE TABLE and INSERT INTO statements for it.

Compressed input (.gz, .bz2, .xz, .zst), the first sheet of .xlsx
workbooks and .parquet files are read as well.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.bindFlags(rootCmd)

	rootCmd.AddCommand(
		newHeaderCmd(opts),
		newTableCmd(opts),
		newInsertCmd(opts),
		newAllCmd(opts),
		newLoadCmd(opts),
	)
	return rootCmd
}

// newLogger returns a text logger on w. Without --verbose only warnings
// are shown.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
