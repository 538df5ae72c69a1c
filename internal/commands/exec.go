package commands

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mevdschee/pgescape"
)

func newExecCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <format> [argument]...",
		Short: "Formats a statement and executes it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := opts.cfg.RequireDSN()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = log.Logger.WithContext(ctx)

			client, err := pgescape.NewClient(ctx, dsn)
			if err != nil {
				return fmt.Errorf("create client: %w", err)
			}
			defer client.Close()

			return runExec(ctx, client, cmd.OutOrStdout(), args)
		},
	}
}

func runExec(ctx context.Context, client *pgescape.Client, out io.Writer, args []string) error {
	q := client.Query(args[0])
	q.Arguments = toAny(args[1:])
	res, err := q.Exec(ctx)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	log.Info().Str("sql", q.SQL()).Int64("rows", affected).Msg("statement executed")
	_, err = fmt.Fprintf(out, "%d\n", affected)
	return err
}
