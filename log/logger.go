// Package log provides the named, leveled loggers every package in this
// pipeline uses to report on its own stage of work (parse, traverse,
// flush, finalize) instead of writing to stdout directly.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is this package's own verbosity enum, kept distinct from
// logging.Level so callers never need to import the backend package
// directly.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// levelMap translates this package's Level into the backend's, used by
// SetLevel instead of a switch so adding a level is a one-line change.
var levelMap = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// stageFormat names the producing module and level alongside the
// message, since a single traversal run interleaves output from the
// parser, the composer, and the writer.
var stageFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is implemented by every named logger this package hands out.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger tagged with name; every call site in this
// repository names it after the package or stage it instruments
// ("compose", "usdindex", ...).
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects where every logger writes, replacing the default of
// os.Stdout. Tests that need to assert on log output call this with a
// buffer.
func SetSink(sink io.Writer) {
	raw := logging.NewLogBackend(sink, "", 0)
	formatted := logging.NewBackendFormatter(raw, stageFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.INFO, "")
	logging.SetBackend(backend)
}

// SetLevel raises or lowers the verbosity threshold applied to every
// named logger; the CLI's -v/-vv flags are the only caller outside this
// package's own init.
func SetLevel(level Level) {
	backend.SetLevel(levelMap[level], "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
