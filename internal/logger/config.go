package logger

import (
	"log/slog"
	"strings"
)

// serviceName identifies this service in every log line's base attributes.
const serviceName = "loot-tally"

// Config controls handler construction in Init/InitWithWriter.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "staging", "prod"
	AddSource   bool   // include source file/line in records
}

// NewConfig builds a Config from explicit values, normally the loaded app
// configuration.
func NewConfig(level, format, service, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: service,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ProductionConfig returns the production preset: JSON records, info level,
// no source annotations.
func ProductionConfig() Config {
	return NewConfig("info", "json", serviceName, "1.0.0", "prod", false)
}

// DevelopmentConfig returns the development preset: text records, debug
// level, source annotations on.
func DevelopmentConfig() Config {
	return NewConfig("debug", "text", serviceName, "dev", "dev", true)
}

// DefaultConfig is the fallback when no explicit configuration is available.
func DefaultConfig() Config {
	return NewConfig("info", "text", serviceName, "dev", "dev", false)
}

// levelNames maps accepted level strings to slog levels.
var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// LogLevel converts the configured level string to a slog.Level, defaulting
// to info for unknown values.
func (c Config) LogLevel() slog.Level {
	if level, ok := levelNames[strings.ToLower(c.Level)]; ok {
		return level
	}
	return slog.LevelInfo
}

// IsJSON reports whether records are emitted as JSON.
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, "json")
}

// BaseAttributes returns the identity attributes attached to every record.
func (c Config) BaseAttributes() []slog.Attr {
	service := c.ServiceName
	if service == "" {
		service = serviceName
	}
	return []slog.Attr{
		slog.String("service", service),
		slog.String("version", c.Version),
		slog.String("environment", c.Environment),
	}
}
