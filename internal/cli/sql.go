package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/wyvern/querysql"
)

// SQLOptions holds flags for the sql command.
type SQLOptions struct {
	*RootOptions
	Count  bool // emit the COUNT statement instead of SELECT
	Params bool // parameterized mode: placeholders plus an args listing
}

// sqlResult is the JSON shape of the sql command output.
type sqlResult struct {
	Query string `json:"query"`
	Args  []any  `json:"args,omitempty"`
}

// NewSQLCommand creates the sql command.
func NewSQLCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SQLOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sql <criteria.yaml>",
		Short: "Generate SQL from a criteria description",
		Long: `Generate the SQL statement wyvern's translation engine produces for a
YAML criteria description.

By default the SELECT statement is printed with literal values inlined.
Use --count for the COUNT statement and --params for placeholder output
with a separate argument listing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Count, "count", false, "generate the COUNT statement")
	cmd.Flags().BoolVar(&opts.Params, "params", false, "parameterized output with placeholders")

	return cmd
}

func runSQL(opts *SQLOptions, path string, cmd *cobra.Command) error {
	table, criteria, err := LoadCriteria(path)
	if err != nil {
		return err
	}

	var result sqlResult
	switch {
	case opts.Count && opts.Params:
		result.Query, result.Args = querysql.BuildCountArgs(table, criteria)
	case opts.Count:
		result.Query = querysql.BuildCount(table, criteria)
	case opts.Params:
		result.Query, result.Args = querysql.BuildSelectArgs(table, criteria)
	default:
		result.Query = querysql.BuildSelect(table, criteria)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	fmt.Fprintln(out, result.Query)
	if opts.Params {
		for i, arg := range result.Args {
			fmt.Fprintf(out, "  $%d = %v\n", i+1, arg)
		}
	}
	return nil
}
