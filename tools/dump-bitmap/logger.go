package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func setupLogging(level logrus.Level, output io.Writer) {
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Level = level
	log.Out = output
}
