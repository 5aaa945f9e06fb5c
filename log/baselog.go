package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger is the logger shared by every package of the module. Routine events
// are logged at debug and trace level, so the default configuration is
// silent for callers that do not opt in.
var Logger *log.Logger

// Fields is the logrus field map.
type Fields = log.Fields

// BaseLogFields are attached to every entry created through WithFields.
var BaseLogFields = Fields{}

func init() {
	Logger = log.New()
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(log.InfoLevel)
}

// SetLevel changes the level of the shared logger.
func SetLevel(level log.Level) {
	Logger.SetLevel(level)
}

// SetOutput redirects the shared logger.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// WithFields returns an entry carrying BaseLogFields plus fields.
func WithFields(fields Fields) *log.Entry {
	merged := make(Fields, len(BaseLogFields)+len(fields))
	for k, v := range BaseLogFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return Logger.WithFields(merged)
}

func Tracef(format string, args ...interface{}) {
	Logger.Tracef(format, args...)
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}
