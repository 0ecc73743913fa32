package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
)

// setupLogging builds the process logger
// Without debug every entry is discarded; with debug entries go to a size-rotated file,
// never to stdout or stderr since the terminal belongs to the game
func setupLogging(debug bool, path string) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	if !debug {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}
	logger.SetOutput(rotator)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	// Stray stdlib log calls from dependencies land in the same file
	log.SetOutput(rotator)
	return logger, rotator, nil
}
