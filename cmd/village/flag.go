package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"village/internal/config"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level %q", value)
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag   logLevelFlag
	configFlag  = flag.String("config", config.DefaultPath, "path to the YAML config")
	logFileFlag = flag.String("logfile", "", "log file, overrides log.file in the config")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "log level name: debug, info, warn or error")
}
