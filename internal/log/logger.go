package log // import "github.com/Xunop/gutenshelf/internal/log"

import (
	"os"
	"strings"

	"github.com/Xunop/gutenshelf/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger discards everything until Setup runs, so packages can log from tests.
var Logger = zap.NewNop()

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// Setup replaces the package logger with one built from opts.
func Setup(opts *config.Options) *zap.Logger {
	Logger = NewLogger(opts)
	return Logger
}

func NewLogger(opts *config.Options) *zap.Logger {
	level := parseLevel(opts.LogLevel)
	if opts.LogFile == "" {
		return newZap(nil, level)
	}

	rotationLog := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    opts.LogFileMaxSize, // megabytes
		MaxBackups: opts.LogFileMaxBackups,
		MaxAge:     opts.LogFileMaxAge, // days
		Compress:   opts.LogCompress,
	}

	return newZap(rotationLog, level)
}

// parseLevel falls back to info for unknown or empty levels.
func parseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func newZap(rotationLog *lumberjack.Logger, level zapcore.Level) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encodeConfig)
	consoleWriter := zapcore.AddSync(os.Stdout)
	core := zapcore.NewCore(consoleEncoder, consoleWriter, level)

	if rotationLog != nil {
		fileEncoder := zapcore.NewJSONEncoder(encodeConfig)
		rotationWrite := zapcore.AddSync(rotationLog)
		rotationCore := zapcore.NewCore(fileEncoder, rotationWrite, level)
		core = zapcore.NewTee(core, rotationCore)
	}

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}
