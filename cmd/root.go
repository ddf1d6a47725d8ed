package cmd

import (
	"github.com/bnema/officehours/internal/ports"
	"github.com/spf13/cobra"
)

const (
	flagFile     = "file"
	flagLogLevel = "log-level"
	flagConfig   = "config"

	// skipWireAnnotation marks commands that run without config or log access.
	skipWireAnnotation = "officehours/skip-wire"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(ports.SystemClock{})
}

func newRootCmdWith(clock ports.Clock) *cobra.Command {
	app := &app{clock: clock}

	rootCmd := &cobra.Command{
		Use:   "oh",
		Short: "Office hours (oh): working time from your session lock log",
		Long: "oh reads the lock/unlock log written by your session logger and reconstructs the day's time account: " +
			"when it started, when it ended, and how much of it was spent working or resting.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] != "" {
				return nil
			}
			return app.wire(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagFile, "", "event log file (default ~/.sessionLock.log)")
	flags.String(flagLogLevel, "", "log level: debug, info, warn, error or off (default warn)")
	flags.String(flagConfig, "", "config file (default ~/.officehours/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newReportCmd(app),
		newStatusCmd(app),
		newLogCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
