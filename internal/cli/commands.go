package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/nao1215/tsvsql"
	"github.com/spf13/cobra"
)

// emitCmd builds a command that parses one file and prints render(table)
func emitCmd(opts *options, use, short string, render func(*tsvsql.Table) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.parse(cmd, args[0], newLogger(cmd.ErrOrStderr(), opts.verbose))
			if err != nil {
				return err
			}
			return opts.write(cmd, render(table))
		},
	}
}

func newHeaderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the inferred type of every column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.parse(cmd, args[0], newLogger(cmd.ErrOrStderr(), opts.verbose))
			if err != nil {
				return err
			}
			if mixed := table.MixedTypeColumns(); len(mixed) > 0 {
				yellow := color.New(color.FgYellow).SprintFunc()
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", yellow("mixed types:"), strings.Join(mixed, ", "))
			}
			return opts.write(cmd, table.HeaderSummary())
		},
	}
}

func newTableCmd(opts *options) *cobra.Command {
	return emitCmd(opts, "table", "Print the CREATE TABLE statement", (*tsvsql.Table).CreateTableSQL)
}

func newAllCmd(opts *options) *cobra.Command {
	return emitCmd(opts, "all", "Print CREATE TABLE followed by INSERT INTO", (*tsvsql.Table).SQL)
}

func newInsertCmd(opts *options) *cobra.Command {
	var badLines bool
	cmd := emitCmd(opts, "insert", "Print the INSERT INTO statement", func(t *tsvsql.Table) string {
		if badLines {
			return t.BadLinesReport()
		}
		return t.InsertSQL()
	})
	cmd.Flags().BoolVar(&badLines, "bad-lines", false, "Print the lines whose cell count differs from the header instead")
	return cmd
}

func newLoadCmd(opts *options) *cobra.Command {
	var sqlitePath string
	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load the file into a SQLite database",
		Long: `load creates the table and inserts every row in a single transaction.
Without --sqlite the statements run against an in-memory database, which
checks that the generated SQL is accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.parse(cmd, args[0], newLogger(cmd.ErrOrStderr(), opts.verbose))
			if err != nil {
				return err
			}

			target := sqlitePath
			if target == "" {
				target = ":memory:"
			}
			db, err := tsvsql.OpenSQLite(cmd.Context(), target)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close() // Ignore close error; the load result is already known
			}()
			// A second pooled connection would see a different in-memory database.
			db.SetMaxOpenConns(1)

			if err := tsvsql.LoadSQLite(cmd.Context(), db, table); err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d rows into %s (%s)\n",
				green("loaded"), len(table.Records()), table.Name(), target)
			return nil
		},
	}
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite database file to load into (default: in-memory)")
	return cmd
}

// write prints text, or writes it to --output when given
func (o *options) write(cmd *cobra.Command, text string) error {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if o.output != "" {
		return tsvsql.WriteSQLFile(o.output, text)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}
