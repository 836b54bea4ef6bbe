package logger

import (
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timestampLayout = "2006-01-02T15-04-05.000"

type Logger struct {
	appEnv  string
	appName string
	level   zap.AtomicLevel
	l       *zap.Logger
}

// NewZapLogger builds a JSON logger writing to every writer given, or to
// stdout when none is. The level starts at debug; see SetLevel.
func NewZapLogger(appName, appEnv string, writers ...io.Writer) *Logger {
	var multiWriters []zapcore.WriteSyncer

	cfg := zap.NewProductionEncoderConfig()

	cfg.EncodeTime = timeEncoder(timestampLayout, time.UTC)
	cfg.TimeKey = "timestamp"

	if len(writers) == 0 {
		multiWriters = append(multiWriters, os.Stdout)
	} else {
		for _, writer := range writers {
			multiWriters = append(multiWriters, zapcore.AddSync(writer))
		}
	}

	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.NewMultiWriteSyncer(multiWriters...),
		level,
	)

	return &Logger{
		appEnv:  appEnv,
		appName: appName,
		level:   level,
		l:       zap.New(core),
	}
}

// SetLevel changes the minimum level, e.g. "info" or "warn".
func (l *Logger) SetLevel(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)
	return nil
}

func (l *Logger) Stop() (err error) {
	if err = l.l.Sync(); err != nil {
		return
	}
	return
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(firstFields(fields)...)).Error(
		err.Error(),
		zap.String("app_env", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("error", err.Error()),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(firstFields(fields)...)).Info(
		msg,
		zap.String("app_env", l.appEnv),
		zap.String("app_name", l.appName),
		zap.Any("caller_file", file),
		zap.Any("caller_line", line),
		zap.Any("caller_func", funcName))
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(firstFields(fields)...)).Warn(
		msg,
		zap.String("app_env", l.appEnv),
		zap.String("app_name", l.appName),
		zap.Any("caller_file", file),
		zap.Any("caller_line", line),
		zap.Any("caller_func", funcName))
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(firstFields(fields)...)).Debug(
		msg,
		zap.String("app_env", l.appEnv),
		zap.String("app_name", l.appName),
		zap.Any("caller_file", file),
		zap.Any("caller_line", line),
		zap.Any("caller_func", funcName))
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.l.WithOptions(zap.Fields(firstFields(fields)...)).Fatal(
		msg,
		zap.String("app_env", l.appEnv),
		zap.String("app_name", l.appName),
		zap.Any("caller_file", file),
		zap.Any("caller_line", line),
		zap.Any("caller_func", funcName))
}

func firstFields(fields []map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	return mapToZapFields(fields[0])
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

func getRuntimeParams() (file string, line int, funcName string) {
	var ok bool
	var pc uintptr
	pc, file, line, ok = runtime.Caller(2)
	if !ok {
		file = "not_defined"
		line = 0
		funcName = "not_defined"
	} else {
		funcName = runtime.FuncForPC(pc).Name()
	}
	return
}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
