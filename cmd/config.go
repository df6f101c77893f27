package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DBAutoMigrate runs GORM AutoMigrate on start-up.
	DBAutoMigrate bool
	JWTSecret     string

	// AutoAssignSchedule is a six-field cron expression. Empty means
	// jobs.DefaultAssignmentSchedule, "off" disables the assignment job.
	AutoAssignSchedule   string
	EventBufferSize      int
	RouteStrictStopOrder bool

	LogFormat string
	LogLevel  string
}

const AutoAssignDisabled = "off"

func (c Config) AutoAssignEnabled() bool {
	return !strings.EqualFold(strings.TrimSpace(c.AutoAssignSchedule), AutoAssignDisabled)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NewLogger builds the process logger: JSON unless LOG_FORMAT=text.
func NewLogger(c Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
