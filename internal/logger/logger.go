// Package logger wires zap as the process-wide logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hchen320/bestfriends/internal/config"
)

// Init builds the global zap logger from config and installs it via
// zap.ReplaceGlobals. When cfg.File is set, logs are written there with
// lumberjack rotation in addition to stdout.
func Init(cfg config.LogConfig) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	stdoutCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	core := stdoutCore
	if cfg.File != "" {
		fileSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		})
		fileCore := zapcore.NewCore(encoder, fileSyncer, level)
		core = zapcore.NewTee(stdoutCore, fileCore)
	}

	zap.ReplaceGlobals(zap.New(core, zap.AddCaller()))
	return nil
}
