package utils

import (
	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance, configured by bootstrap.
var Log = logrus.New()
