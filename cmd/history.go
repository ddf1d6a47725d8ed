package cmd

import (
	"fmt"

	reportrender "github.com/bnema/officehours/internal/adapters/render/report"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved daily reports",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved daily reports by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := app.service.History(cmd.Context())
			if err != nil {
				return err
			}

			if len(reports) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No saved reports.")
				return err
			}

			for _, daily := range reports {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s-%s\tworking %s\tresting %s\n",
					daily.Date, daily.Report.Start, daily.Report.End, daily.Report.Working, daily.Report.Resting); err != nil {
					return fmt.Errorf("write history: %w", err)
				}
			}

			return nil
		},
	}
}

func newHistoryShowCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <YYYY-MM-DD>",
		Short: "Print one saved daily report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := reportrender.ParseFormat(output)
			if err != nil {
				return err
			}

			daily, err := app.service.HistoryEntry(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return reportrender.Encode(cmd.OutOrStdout(), format, daily.Report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(reportrender.FormatJSON), "output format: json, yaml, toml or text")

	return cmd
}
