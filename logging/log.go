package logging

import (
	"os"

	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bnb-chain/ledger-pruner/config"
)

var (
	// Logger instance for quick declarative logging levels
	Logger = logging.MustGetLogger("ledger-pruner")
	// log levels that are available
	levels = map[string]logging.Level{
		"CRITICAL": logging.CRITICAL,
		"ERROR":    logging.ERROR,
		"WARNING":  logging.WARNING,
		"NOTICE":   logging.NOTICE,
		"INFO":     logging.INFO,
		"DEBUG":    logging.DEBUG,
	}
)

// InitLogger initialises the logger.
func InitLogger(cfg *config.LogConfig) {
	backends := make([]logging.Backend, 0)

	if cfg.UseConsoleLogger {
		consoleFormat := logging.MustStringFormatter(`%{time:2006-01-02 15:04:05} %{level} %{shortfunc} %{message}`)
		consoleLogger := logging.NewLogBackend(os.Stdout, "", 0)
		consoleFormatter := logging.NewBackendFormatter(consoleLogger, consoleFormat)
		consoleLoggerLeveled := logging.AddModuleLevel(consoleFormatter)
		consoleLoggerLeveled.SetLevel(levels[cfg.Level], "")
		backends = append(backends, consoleLoggerLeveled)
	}

	if cfg.UseFileLogger {
		fileLogger := logging.NewLogBackend(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxFileSizeInMB, // MaxSize is the maximum size in megabytes of the log file
			MaxBackups: cfg.MaxBackupsOfLogFiles,
			MaxAge:     cfg.MaxAgeToRetainLogFilesInDays,
			Compress:   cfg.Compress,
		}, "", 0)
		fileFormat := logging.MustStringFormatter(`%{time:2006-01-02 15:04:05} %{level} %{shortfunc} %{message}`)
		fileFormatter := logging.NewBackendFormatter(fileLogger, fileFormat)
		fileLoggerLeveled := logging.AddModuleLevel(fileFormatter)
		fileLoggerLeveled.SetLevel(levels[cfg.Level], "")
		backends = append(backends, fileLoggerLeveled)
	}

	if len(backends) == 0 {
		return
	}
	logging.SetBackend(backends...)
}
