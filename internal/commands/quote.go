package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mevdschee/pgescape"
)

// nullMarker is the spelling of NULL accepted by literal --null, as in COPY text format.
const nullMarker = `\N`

func newIdentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ident <identifier>...",
		Short: "Quotes identifiers, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), pgescape.QuoteIdentifier(arg)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newLiteralCmd() *cobra.Command {
	var nullable bool
	cmd := &cobra.Command{
		Use:   "literal <literal>...",
		Short: "Quotes literals, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				quoted := pgescape.QuoteLiteral(arg)
				if nullable && arg == nullMarker {
					quoted = pgescape.QuoteNullable(nil)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), quoted); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&nullable, "null", false, `print NULL for arguments equal to \N`)
	return cmd
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <format> [argument]...",
		Short: "Formats a statement with %I, %L and %s conversions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := pgescape.Format(args[0], toAny(args[1:])...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func toAny(args []string) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		out[i] = arg
	}
	return out
}
