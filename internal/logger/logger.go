// Package logger provides the subsystem loggers used across the module. All
// subsystems share one logrus backend, so a single level and output apply to
// the whole process.
package logger

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SubsystemTags enumerates the subsystems that write log messages.
var SubsystemTags = struct {
	CURV, // curve construction and group law
	SIGN, // ECDSA signing and verification
	KGEN, // key generation
	ECDH, // shared secret derivation
	RAND, // random sampling
	CMD string // command line tool
}{
	CURV: "CURV",
	SIGN: "SIGN",
	KGEN: "KGEN",
	ECDH: "ECDH",
	RAND: "RAND",
	CMD:  "CMD",
}

// DefaultLevel is the level used until SetLevel is called.
const DefaultLevel = logrus.WarnLevel

var backend = newBackend()

func newBackend() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(DefaultLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return l
}

// Get returns the logger for the given subsystem tag.
func Get(tag string) *logrus.Entry {
	return backend.WithField("subsystem", tag)
}

// SetLevel sets the level of every subsystem. The level is one of the names
// understood by logrus, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	backend.SetLevel(lvl)
	return nil
}

// Level returns the current level.
func Level() logrus.Level {
	return backend.GetLevel()
}

// SetOutput redirects the output of every subsystem.
func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

// SupportedSubsystems returns a sorted slice of the supported subsystem tags.
func SupportedSubsystems() []string {
	tags := []string{
		SubsystemTags.CURV,
		SubsystemTags.SIGN,
		SubsystemTags.KGEN,
		SubsystemTags.ECDH,
		SubsystemTags.RAND,
		SubsystemTags.CMD,
	}
	sort.Strings(tags)
	return tags
}
