package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/officehours/internal/adapters/render/status"
	"github.com/bnema/officehours/internal/application"
	"github.com/bnema/officehours/internal/domain"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	Report   domain.Report   `json:"report"`
	Open     bool            `json:"open"`
	Events   int             `json:"events"`
	Progress *progressOutput `json:"progress,omitempty"`
}

type progressOutput struct {
	Target       string  `json:"target"`
	Remaining    string  `json:"remaining"`
	Overtime     string  `json:"overtime"`
	ExpectedExit string  `json:"expected_exit"`
	Percent      float64 `json:"percent"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's account against the workday target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.service.Status(cmd.Context())
			if err != nil {
				return err
			}

			return writeStatusOutput(cmd, app, status, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the status as JSON")

	return cmd
}

func writeStatusOutput(cmd *cobra.Command, app *app, status application.Status, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(newStatusOutput(status))
	}

	rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{
		Now:     app.clock.Now(),
		LogPath: app.logPath,
	})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func newStatusOutput(status application.Status) statusOutput {
	out := statusOutput{
		Report: status.Report,
		Open:   status.Open,
		Events: status.Account.Events,
	}
	if p := status.Progress; p != nil {
		out.Progress = &progressOutput{
			Target:       domain.FormatDuration(p.Target),
			Remaining:    domain.FormatDuration(p.Remaining),
			Overtime:     domain.FormatDuration(p.Overtime),
			ExpectedExit: domain.FormatClock(p.ExpectedExit),
			Percent:      p.Percent,
		}
	}

	return out
}
