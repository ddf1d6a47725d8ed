package cmd

import (
	"fmt"
	"time"

	fileeventlog "github.com/bnema/officehours/internal/adapters/eventlog/file"
	statusadapter "github.com/bnema/officehours/internal/adapters/render/status"
	tomlrepo "github.com/bnema/officehours/internal/adapters/repo/toml"
	"github.com/bnema/officehours/internal/application"
	"github.com/bnema/officehours/internal/config"
	"github.com/bnema/officehours/internal/logging"
	"github.com/bnema/officehours/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	clock          ports.Clock
	service        *application.Service
	logPath        string
	location       *time.Location
	logger         zerolog.Logger
	statusRenderer func(application.Status, statusadapter.RenderOptions) (string, error)
}

// wire resolves configuration once flags are parsed and builds the service
// graph behind every command.
func (a *app) wire(cmd *cobra.Command) error {
	homeDir, err := config.HomeDir()
	if err != nil {
		return err
	}

	v := config.New(homeDir)
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(config.KeyLogPath, flags.Lookup(flagFile)); err != nil {
		return fmt.Errorf("bind --%s: %w", flagFile, err)
	}
	if err := v.BindPFlag(config.KeyLogLevel, flags.Lookup(flagLogLevel)); err != nil {
		return fmt.Errorf("bind --%s: %w", flagLogLevel, err)
	}
	if path, _ := flags.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
	}

	cfg, err := config.Load(v, homeDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	events, err := fileeventlog.NewLog(cfg.LogPath, cfg.Location)
	if err != nil {
		return fmt.Errorf("wire event log: %w", err)
	}

	v.Set(config.KeyHistoryPath, cfg.HistoryPath)
	history, err := tomlrepo.NewRepository(v)
	if err != nil {
		return fmt.Errorf("wire report history: %w", err)
	}

	clock := a.clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	a.clock = clock
	a.logPath = events.Path()
	a.location = cfg.Location
	a.logger = logger
	a.statusRenderer = statusadapter.Render
	a.service = application.NewService(events, history, clock, application.Config{
		Schedule: cfg.Schedule,
		Location: cfg.Location,
	}, logger)

	logger.Debug().
		Str("log", a.logPath).
		Str("timezone", cfg.Location.String()).
		Msg("wired application")

	return nil
}
