package log

import (
	"context"
	"errors"
	"io"
	"sort"

	saltLog "github.com/goto/salt/log"
	"github.com/sirupsen/logrus"
)

type Logger interface {

	// Debug level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Debug(ctx context.Context, msg string, args ...interface{})

	// Info level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Info(ctx context.Context, msg string, args ...interface{})

	// Warn level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Warn(ctx context.Context, msg string, args ...interface{})

	// Error level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Error(ctx context.Context, msg string, args ...interface{})

	// Fatal level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Fatal(ctx context.Context, msg string, args ...interface{})

	// Level returns priority level for which this logger will filter logs
	Level() string

	// Writer used to print logs
	Writer() io.Writer
}

const FormatJSON = "json"

type LoggerOption func(*CtxLogger)
type metadataContextKey struct{}

type CtxLogger struct {
	log  saltLog.Logger
	keys []string
}

// NewSaltLogger returns a logrus backed salt logger, formatted as JSON when format is "json"
func NewSaltLogger(level, format string) saltLog.Logger {
	if format == FormatJSON {
		return saltLog.NewLogrus(
			saltLog.LogrusWithLevel(level),
			saltLog.LogrusWithFormatter(&logrus.JSONFormatter{}),
		)
	}
	return saltLog.NewLogrus(saltLog.LogrusWithLevel(level))
}

// NewCtxLoggerWithSaltLogger returns a logger that will add context value to the log message, wrapped with saltLog.Logger
func NewCtxLoggerWithSaltLogger(log saltLog.Logger, ctxKeys []string, opts ...LoggerOption) *CtxLogger {
	ctxLogger := &CtxLogger{log: log, keys: ctxKeys}
	for _, o := range opts {
		o(ctxLogger)
	}

	return ctxLogger
}

// NewCtxLogger returns a logger that will add context value to the log message
func NewCtxLogger(logLevel string, ctxKeys []string, opts ...LoggerOption) *CtxLogger {
	return NewCtxLoggerWithSaltLogger(NewSaltLogger(logLevel, ""), ctxKeys, opts...)
}

func (l *CtxLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log.Debug(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Info(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warn(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Error(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Fatal(ctx context.Context, msg string, args ...interface{}) {
	l.log.Fatal(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Level() string {
	return l.log.Level()
}

func (l *CtxLogger) Writer() io.Writer {
	return l.log.Writer()
}

// addCtxToArgs adds context values and metadata to the existing args slice as key/value pairs
func (l *CtxLogger) addCtxToArgs(ctx context.Context, args []interface{}) []interface{} {
	if ctx == nil {
		return args
	}

	for _, key := range l.keys {
		if val, ok := ctx.Value(key).(string); ok {
			args = append(args, key, val)
		}
	}

	if md, ok := ctx.Value(metadataContextKey{}).(map[string]interface{}); ok {
		keys := make([]string, 0, len(md))
		for k := range md {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			args = append(args, k, md[k])
		}
	}

	return args
}

// WithMetadata attaches key/value pairs to ctx that every log call made with it will carry
func WithMetadata(ctx context.Context, md map[string]interface{}) (context.Context, error) {
	existingMetadata := ctx.Value(metadataContextKey{})
	if existingMetadata == nil {
		return context.WithValue(ctx, metadataContextKey{}, md), nil
	}

	mapMd, ok := existingMetadata.(map[string]interface{})
	if !ok {
		return nil, errors.New("failed to cast existing metadata to map[string]interface{} type")
	}
	merged := make(map[string]interface{}, len(mapMd)+len(md))
	for k, v := range mapMd {
		merged[k] = v
	}
	for k, v := range md {
		merged[k] = v
	}

	return context.WithValue(ctx, metadataContextKey{}, merged), nil
}
