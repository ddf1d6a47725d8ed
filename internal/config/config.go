package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/officehours/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".officehours"
	envPrefix  = "OH"

	KeyLogPath     = "log.path"
	KeyHistoryPath = "history.path"
	KeyLogLevel    = "log_level"
	KeyTimezone    = "timezone"

	keySchedule = "schedule"

	defaultLogFile     = ".sessionLock.log"
	defaultHistoryFile = "history.toml"
	defaultLogLevel    = "warn"
	defaultTimezone    = "Local"
)

type Config struct {
	LogPath     string
	HistoryPath string
	LogLevel    string
	Location    *time.Location
	Schedule    domain.Schedule
}

// New returns a viper instance preloaded with defaults, search paths and
// OH_* environment overrides. homeDir anchors the default file locations.
func New(homeDir string) *viper.Viper {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogPath, filepath.Join(homeDir, defaultLogFile))
	v.SetDefault(KeyHistoryPath, filepath.Join(homeDir, configDir, defaultHistoryFile))
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyTimezone, defaultTimezone)
	for day, target := range domain.DefaultSchedule() {
		v.SetDefault(scheduleKey(day), target.String())
	}

	return v
}

// Load reads the config file, if any, and resolves every setting. A missing
// config file is not an error.
func Load(v *viper.Viper, homeDir string) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	location, err := loadLocation(v.GetString(KeyTimezone))
	if err != nil {
		return Config{}, err
	}

	schedule, err := loadSchedule(v)
	if err != nil {
		return Config{}, err
	}

	logPath := expandHome(v.GetString(KeyLogPath), homeDir)
	if logPath == "" {
		return Config{}, errors.New("event log path is empty")
	}

	return Config{
		LogPath:     logPath,
		HistoryPath: expandHome(v.GetString(KeyHistoryPath), homeDir),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		Location:    location,
		Schedule:    schedule,
	}, nil
}

func loadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, defaultTimezone) {
		return time.Local, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}

	return location, nil
}

func loadSchedule(v *viper.Viper) (domain.Schedule, error) {
	for name := range v.GetStringMap(keySchedule) {
		if _, err := domain.ParseWeekday(name); err != nil {
			return nil, fmt.Errorf("%s: %w", keySchedule, err)
		}
	}

	schedule := make(domain.Schedule, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		raw := strings.TrimSpace(v.GetString(scheduleKey(day)))
		if raw == "" {
			schedule[day] = 0
			continue
		}

		target, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", scheduleKey(day), err)
		}
		schedule[day] = target
	}

	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("validate schedule: %w", err)
	}

	return schedule, nil
}

func scheduleKey(day time.Weekday) string {
	return keySchedule + "." + strings.ToLower(day.String())
}

func expandHome(path, homeDir string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// HomeDir resolves the user's home directory for New and Load.
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return homeDir, nil
}
