package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"airquality-dashboard/pkg/logger"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second

	_timestampLayout = "2006-01-02T15-04-05.000"
)

// SentryHook is an io.Writer that receives the JSON lines produced by
// logger.Logger and forwards error-level entries to Sentry.
type SentryHook struct {
	appEnv  string
	appName string
	capture func(*sentry.Event) *sentry.EventID
	l       *logger.Logger
}

func NewSentryHook(
	appEnv, appName string,
	isDebug bool,
	dsn string,
) *SentryHook {
	if dsn == "" {
		log.Println("Stacktracer init error: no DSN")
	}
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appEnv,
			MaxErrorDepth:    _sentryMaxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {
		log.Println("Stacktracer init error: ", err.Error())
	} else {
		log.Println("Stacktracer init success")
	}

	return &SentryHook{
		appEnv:  appEnv,
		appName: appName,
		capture: sentry.CaptureEvent,
	}
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return sentry.Flush(_sentryFlushTimeout)
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel, zapcore.DPanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

type logEntry struct {
	Level      string `json:"level"`
	AppName    string `json:"app_name"`
	AppEnv     string `json:"app_env"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	if h.appEnv != "prod" && h.appEnv != "dev" {
		return len(p), nil
	}

	t := logEntry{}
	if err := json.Unmarshal(p, &t); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] json.Unmarshal data"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(t.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}
	if len(t.Message) == 0 {
		return len(p), nil
	}

	switch level {
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		h.capture(h.buildEvent(level, t))
	}

	return len(p), nil
}

func (h *SentryHook) buildEvent(level zapcore.Level, t logEntry) *sentry.Event {
	timestamp, _ := time.ParseInLocation(_timestampLayout, t.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Extra["AppName"] = h.appName
	event.Environment = h.appEnv
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = t.Message
	event.Extra["Error"] = t.Error
	event.Extra["CallerFile"] = t.CallerFile
	event.Extra["CallerLine"] = t.CallerLine
	event.Extra["CallerFunc"] = t.CallerFunc
	event.Extra["Stack"] = t.Stack
	event.Extra["TimeStamp"] = t.Timestamp
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       t.Message,
		Value:      t.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

// report must not go through h.l at error level, that would loop back here.
func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Warning(err.Error())
		return
	}
	log.Println(err.Error())
}

func (h *SentryHook) SetLogger(l *logger.Logger) {
	if l != nil {
		h.l = l
	}
}
