package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// initLogger routes diagnostics to w so stdout carries only results.
func initLogger(w io.Writer, verbose, quiet bool) {
	logrus.SetOutput(w)

	switch {
	case quiet:
		logrus.SetLevel(logrus.ErrorLevel)
	case verbose:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}
