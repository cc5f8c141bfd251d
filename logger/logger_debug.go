//go:build debug
// +build debug

package log

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

const debugFileName = "/tmp/platconf/configure.log"

var (
	Log = logrus.New()
)

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02 15:04:05",
	})
	Log.SetLevel(logrus.DebugLevel)
}

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum log level.
	Level string
	// Format is the log format (text or json).
	Format string
	// Output is the log output file path. If empty, use stderr.
	Output string
	// Debug enables debug mode.
	Debug bool
}

func Init(config *Config) error {
	if config == nil {
		return nil
	}

	if config.Level != "" {
		level, err := logrus.ParseLevel(config.Level)
		if err != nil {
			return err
		}
		Log.SetLevel(level)
	}

	switch config.Format {
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "01-02 15:04:05",
		})
	}

	if config.Output != "" {
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		Log.SetOutput(file)
	}

	Log.SetLevel(logrus.DebugLevel)
	Log.SetReportCaller(true)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02 15:04:05",
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			_, file, _, _ := runtime.Caller(0)
			prefix := filepath.Dir(file) + "/"
			function := strings.TrimPrefix(f.Function, prefix) + "()"
			fileLine := strings.TrimPrefix(f.File, prefix) + ":" + strconv.Itoa(f.Line)
			return function, fileLine
		},
	})

	return nil
}

func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return Log.WithError(err)
}

func Debug(args ...interface{}) {
	Debugf("%v", args...)
}

// In debug builds every Debugf is duplicated to the debug file so a failed
// configure run leaves a trace even when stderr was swallowed by the build
// wrapper.
func Debugf(format string, args ...interface{}) {
	Log.Debugf(format, args...)
	fdebugf(format, args...)
}

func Info(args ...interface{}) {
	Log.Info(args...)
}

func Warn(args ...interface{}) {
	Log.Warn(args...)
}

func Error(args ...interface{}) {
	Log.Error(args...)
}

func Fatal(args ...interface{}) {
	Log.Fatal(args...)
}

func Infof(format string, args ...interface{}) {
	Log.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Log.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	Log.Fatalf(format, args...)
}

// FatalWithCode logs args at error level and terminates the process with the
// given exit status.
func FatalWithCode(code int, args ...interface{}) {
	Log.Error(args...)
	os.Exit(code)
}

func fdebugf(format string, args ...interface{}) {
	if err := os.MkdirAll(filepath.Dir(debugFileName), 0o777); err != nil {
		return
	}
	f, err := os.OpenFile(debugFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(f, "["+timestamp+"] "+format+"\n", args...)
}

// Pretty formats and logs complex structs; sizable output is truncated so a
// misbehaving String method cannot flood the debug file.
func Pretty(format string, args ...interface{}) {
	formatted := make([]interface{}, len(args))
	for i, arg := range args {
		formatted[i] = prettyFormat(arg)
	}
	Debugf(format, formatted...)
}

func prettyFormat(arg interface{}) interface{} {
	if arg == nil {
		return "<nil>"
	}

	s := pretty.Sprint(arg)
	const maxSize = 10 * 1024
	if len(s) > maxSize {
		s = s[:maxSize] + "\n... [TRUNCATED: output too large]"
	}
	return s
}
