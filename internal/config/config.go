// Package config loads ticktock's start-up settings from an optional
// ticktock.yaml and TICKTOCK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/sadopc/ticktock/internal/timesheet"
)

const (
	envPrefix  = "TICKTOCK"
	fileName   = "ticktock" // .yaml is implicit
	pathEnvVar = "TICKTOCK_CONFIG_PATH"
)

const (
	KeyPageSize      = "page_size"
	KeyWeeklyTarget  = "weekly_target"
	KeySortColumn    = "sort_column"
	KeySortAscending = "sort_ascending"
	KeyDebug         = "debug"
	KeyLogFile       = "log_file"
	KeyExportDir     = "export_dir"
)

type Config struct {
	PageSize      int
	WeeklyTarget  float64
	SortColumn    timesheet.Column
	SortAscending bool
	Debug         bool
	LogFile       string
	ExportDir     string

	// File is the config file that was read, empty when none was found.
	File string
}

// Load reads configuration. An explicit file must exist; otherwise the
// search path is $TICKTOCK_CONFIG_PATH, ~/.config/ticktock and ./ and a
// missing file just means defaults.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		if override := os.Getenv(pathEnvVar); override != "" {
			if p, err := homedir.Expand(override); err == nil {
				v.AddConfigPath(p)
			}
		}
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ticktock"))
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPageSize, timesheet.DefaultPageSize)
	v.SetDefault(KeyWeeklyTarget, timesheet.WeeklyTarget)
	v.SetDefault(KeySortColumn, string(timesheet.ColumnWeek))
	v.SetDefault(KeySortAscending, true)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, "ticktock.log")
	v.SetDefault(KeyExportDir, "~")
}

func fromViper(v *viper.Viper) (*Config, error) {
	col, ok := timesheet.ParseColumn(v.GetString(KeySortColumn))
	if !ok {
		return nil, fmt.Errorf("invalid %s %q", KeySortColumn, v.GetString(KeySortColumn))
	}

	pageSize := v.GetInt(KeyPageSize)
	if pageSize < 1 {
		return nil, fmt.Errorf("invalid %s %d: must be at least 1", KeyPageSize, pageSize)
	}

	target := v.GetFloat64(KeyWeeklyTarget)
	if target <= 0 {
		return nil, fmt.Errorf("invalid %s %v: must be positive", KeyWeeklyTarget, target)
	}

	exportDir, err := homedir.Expand(v.GetString(KeyExportDir))
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyExportDir, err)
	}
	logFile, err := homedir.Expand(v.GetString(KeyLogFile))
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyLogFile, err)
	}

	return &Config{
		PageSize:      pageSize,
		WeeklyTarget:  target,
		SortColumn:    col,
		SortAscending: v.GetBool(KeySortAscending),
		Debug:         v.GetBool(KeyDebug),
		LogFile:       logFile,
		ExportDir:     exportDir,
		File:          v.ConfigFileUsed(),
	}, nil
}

// Settings returns the values that seed the store's settings table.
func (c *Config) Settings() map[string]string {
	return map[string]string{
		KeyPageSize:      strconv.Itoa(c.PageSize),
		KeyWeeklyTarget:  strconv.FormatFloat(c.WeeklyTarget, 'f', -1, 64),
		KeySortColumn:    string(c.SortColumn),
		KeySortAscending: strconv.FormatBool(c.SortAscending),
	}
}
