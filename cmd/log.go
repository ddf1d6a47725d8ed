package cmd

import (
	"fmt"

	"github.com/bnema/officehours/internal/application"
	"github.com/spf13/cobra"
)

func newLogCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "log <start|stop|lock|unlock>",
		Short:     "Append an event stamped with the current minute to the event log",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"start", "stop", "lock", "unlock"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := application.ParseRecordKind(args[0])
			if err != nil {
				return err
			}

			timepoint, err := app.service.Record(cmd.Context(), kind)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged %s\n", timepoint)
			return err
		},
	}
}
