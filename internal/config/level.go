package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func logrusLevel(s string) (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return lvl, errors.Wrapf(err, "log level %q", s)
	}
	return lvl, nil
}
