package ingest

import (
	"errors"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the collector's YAML configuration.
type Config struct {
	Influx struct {
		URL    string `yaml:"url"`
		Token  string `yaml:"token"`
		Org    string `yaml:"org"`
		Bucket string `yaml:"bucket"`
	} `yaml:"influx"`
	Serial struct {
		Port     string `yaml:"port"`
		BaudRate int    `yaml:"baud_rate"`
	} `yaml:"serial"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Device struct {
		// ID tags every written point; defaults to "envnode0".
		ID string `yaml:"id"`
	} `yaml:"device"`
}

// DefaultBaudRate matches the device's serial transmit rate.
const DefaultBaudRate = 9600

var errNoSerialPort = errors.New("ingest: serial port not configured")

// ReadConfig loads and validates the collector configuration.
func ReadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	if cfg.Serial.Port == "" {
		return nil, errNoSerialPort
	}
	if cfg.Serial.BaudRate == 0 {
		cfg.Serial.BaudRate = DefaultBaudRate
	}
	if cfg.Device.ID == "" {
		cfg.Device.ID = "envnode0"
	}
	return cfg, nil
}

var logLevels = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

// LogLevel maps the configured level name to a slog level, defaulting to
// INFO for unknown names.
func (c *Config) LogLevel() slog.Level {
	if lvl, ok := logLevels[c.Log.Level]; ok {
		return lvl
	}
	return slog.LevelInfo
}
