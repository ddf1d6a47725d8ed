package cmd

import (
	"bufio"
	"fmt"
	"io"

	reportrender "github.com/bnema/officehours/internal/adapters/render/report"
	"github.com/bnema/officehours/internal/application"
	"github.com/bnema/officehours/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *app) *cobra.Command {
	var output string
	var save bool
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the time account reconstructed from the event log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := reportrender.ParseFormat(output)
			if err != nil {
				return err
			}

			var report domain.Report
			var saved string
			switch {
			case fromStdin:
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				report, err = application.ReportFromLines(lines, app.location, app.clock)
				if err != nil {
					return err
				}
			case save:
				daily, err := app.service.SaveReport(cmd.Context())
				if err != nil {
					return err
				}
				report = daily.Report
				saved = daily.Date
			default:
				report, err = app.service.Report(cmd.Context())
				if err != nil {
					return err
				}
			}

			if err := reportrender.Encode(cmd.OutOrStdout(), format, report); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}

			if saved != "" {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Saved report for %s\n", saved)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(reportrender.FormatJSON), "output format: json, yaml, toml or text")
	cmd.Flags().BoolVar(&save, "save", false, "store the report of a closed day in the history")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read log lines from standard input instead of the event log")
	cmd.MarkFlagsMutuallyExclusive("stdin", "save")

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read standard input: %w", err)
	}

	return lines, nil
}
