package logservice

import (
	"fmt"
	"log"
	"os"

	"github.com/jacksonbarreto/dnssecproto/internal/config"
)

type StandardLogger struct {
	idService string
	level     LogLevel
	logger    *log.Logger
}

func NewLogService(idService string) Logger {
	return &StandardLogger{
		idService: idService,
		level:     LogLevelInfo,
		logger:    log.New(os.Stdout, "", log.LstdFlags),
	}
}

func NewLogServiceDefault() Logger {
	logger := NewLogService(config.App().ID)
	logger.SetLevel(parseLevel(config.App().LogLevel))
	return logger
}

func parseLevel(name string) LogLevel {
	switch name {
	case "debug":
		return LogLevelDebug
	case "warn":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

func (l *StandardLogger) Info(format string, v ...interface{}) {
	if l.level <= LogLevelInfo {
		l.log("[INFO] ", format, v...)
	}
}

func (l *StandardLogger) Warn(format string, v ...interface{}) {
	if l.level <= LogLevelWarn {
		l.log("[WARN]", format, v...)
	}
}

func (l *StandardLogger) Error(format string, v ...interface{}) {
	if l.level <= LogLevelError {
		l.log("[ERROR]", format, v...)
	}
}

func (l *StandardLogger) Debug(format string, v ...interface{}) {
	if l.level <= LogLevelDebug {
		l.log("[DEBUG]", format, v...)
	}
}

func (l *StandardLogger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *StandardLogger) log(levelPrefix, format string, v ...interface{}) {
	formattedMessage := fmt.Sprintf(format, v...)
	l.logger.Printf("%s %s -- %s", levelPrefix, l.idService, formattedMessage)
}
