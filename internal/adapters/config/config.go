package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/qrforge/qrforge/pkg/logger"
)

const settingsName = "qrforge"

// Settings are the persisted application preferences. They are loaded with
// defaults at startup and written back on save.
type Settings struct {
	Theme          string
	OutputDir      string
	LastFormat     string
	NamingTemplate string
	DefaultSize    int
	Debug          bool
	LogToFile      bool
	LogsDir        string
}

// Get loads settings from the working directory and initializes the logger.
// Startup failures here are unrecoverable.
func Get() *Settings {
	settings, err := Load(".")
	if err != nil {
		panic(err)
	}

	err = logger.Init(logger.Config{
		Debug:     settings.Debug,
		LogToFile: settings.LogToFile,
		LogsDir:   settings.LogsDir,
	})
	if err != nil {
		panic(err)
	}

	return settings
}

// Load reads qrforge.yaml from dir. A missing file is not an error: defaults
// apply.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName(settingsName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Settings{
		Theme:          v.GetString("settings.theme"),
		OutputDir:      v.GetString("settings.output-dir"),
		LastFormat:     v.GetString("settings.format"),
		NamingTemplate: v.GetString("settings.naming-template"),
		DefaultSize:    v.GetInt("settings.default-size"),
		Debug:          v.GetBool("settings.debug"),
		LogToFile:      v.GetBool("settings.log-to-file"),
		LogsDir:        v.GetString("settings.logs-dir"),
	}, nil
}

// Save writes the settings back to qrforge.yaml in dir.
func (s *Settings) Save(dir string) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("settings.theme", s.Theme)
	v.Set("settings.output-dir", s.OutputDir)
	v.Set("settings.format", s.LastFormat)
	v.Set("settings.naming-template", s.NamingTemplate)
	v.Set("settings.default-size", s.DefaultSize)
	v.Set("settings.debug", s.Debug)
	v.Set("settings.log-to-file", s.LogToFile)
	v.Set("settings.logs-dir", s.LogsDir)
	return v.WriteConfigAs(filepath.Join(dir, settingsName+".yaml"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("settings.theme", "dark")
	v.SetDefault("settings.output-dir", defaultOutputDir())
	v.SetDefault("settings.format", "PNG")
	v.SetDefault("settings.naming-template", "qr_code_{index}")
	v.SetDefault("settings.default-size", 10)
	v.SetDefault("settings.debug", false)
	v.SetDefault("settings.log-to-file", false)
	v.SetDefault("settings.logs-dir", "")
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Desktop")
}
