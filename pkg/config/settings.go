package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/getmockd/mockapi/pkg/logging"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "MOCKAPI_"

// Setting keys.
const (
	KeyHost        = "host"
	KeyPort        = "port"
	KeyAppendSlash = "append_slash"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyLogFile     = "log_file"
	KeyMetricsPort = "metrics_port"
)

// Settings is a read-only snapshot of the server settings.
type Settings struct {
	Host        string
	Port        string
	AppendSlash bool
	LogLevel    string
	LogFormat   string
	LogFile     string
	// MetricsPort is empty when the metrics listener is disabled.
	MetricsPort string
}

// Addr returns host:port.
func (s *Settings) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// MetricsAddr returns host:metrics_port, or "" when metrics are disabled.
func (s *Settings) MetricsAddr() string {
	if s.MetricsPort == "" {
		return ""
	}
	return net.JoinHostPort(s.Host, s.MetricsPort)
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Host:      "127.0.0.1",
		Port:      "8000",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func defaults() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		KeyHost:        d.Host,
		KeyPort:        d.Port,
		KeyAppendSlash: d.AppendSlash,
		KeyLogLevel:    d.LogLevel,
		KeyLogFormat:   d.LogFormat,
		KeyLogFile:     d.LogFile,
		KeyMetricsPort: d.MetricsPort,
	}
}

// Load reads settings from path, falling back to the fallback document
// when path is empty or unreadable, then applies environment overrides.
// Problems with either document are logged and leave the defaults in
// place, so Load only fails when the defaults themselves cannot load.
func Load(path string, fallback []byte, log *slog.Logger) (*Settings, error) {
	if log == nil {
		log = logging.Nop()
	}
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// An empty path goes straight to the fallback.
	err := os.ErrNotExist
	if path != "" {
		if err = loadFile(k, path); err != nil {
			log.Warn("can't read settings file", "path", path, "error", err)
		}
	}
	if err != nil && len(fallback) > 0 {
		if err := loadBytes(k, fallback); err != nil {
			log.Error("can't read fallback settings", "error", err)
		}
	}

	// MOCKAPI_APPEND_SLASH=true -> append_slash
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	d := Default()
	return &Settings{
		Host:        stringOr(k, KeyHost, d.Host),
		Port:        stringOr(k, KeyPort, d.Port),
		AppendSlash: boolOr(k, KeyAppendSlash, d.AppendSlash),
		LogLevel:    stringOr(k, KeyLogLevel, d.LogLevel),
		LogFormat:   stringOr(k, KeyLogFormat, d.LogFormat),
		LogFile:     stringOr(k, KeyLogFile, d.LogFile),
		MetricsPort: stringOr(k, KeyMetricsPort, d.MetricsPort),
	}, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

func loadBytes(k *koanf.Koanf, data []byte) error {
	m, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return err
	}
	return k.Load(confmap.Provider(m, "."), nil)
}

// stringOr returns the non-empty string under key, or def.
func stringOr(k *koanf.Koanf, key, def string) string {
	if s, ok := k.Get(key).(string); ok && s != "" {
		return s
	}
	return def
}

// boolOr returns the bool under key, or def. Environment values arrive as
// strings and are parsed.
func boolOr(k *koanf.Koanf, key string, def bool) bool {
	switch v := k.Get(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
