package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	errorLogger  *log.Logger
	errorLogPath string
	errorLogOnce sync.Once

	debugLogger  *log.Logger
	debugLogPath string
	debugLogOnce sync.Once

	logDir = "logs"
)

func setupLogging(debug bool) {
	ts := time.Now().Format("20060102-150405")

	errorLogPath = filepath.Join(logDir, fmt.Sprintf("error-%s.log", ts))
	errorLogOnce = sync.Once{}
	errorLogger = log.New(os.Stdout, "", log.LstdFlags)
	log.SetOutput(errorLogger.Writer())

	setDebugLogging(debug)
}

// openErrorLog tees the error logger into a file the first time something
// is actually logged, so clean runs leave no empty log files behind.
func openErrorLog() {
	errorLogOnce.Do(func() {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("could not create log directory: %v", err)
			return
		}
		if f, err := os.Create(errorLogPath); err == nil {
			errorLogger.SetOutput(io.MultiWriter(os.Stdout, f))
			log.SetOutput(errorLogger.Writer())
		}
	})
}

func logError(format string, v ...interface{}) {
	if errorLogger == nil {
		return
	}
	openErrorLog()
	errorLogger.Printf(format, v...)
}

func logWarn(format string, v ...interface{}) {
	if errorLogger == nil {
		return
	}
	openErrorLog()
	errorLogger.Printf("warning: %s", fmt.Sprintf(format, v...))
}

func logDebug(format string, v ...interface{}) {
	if debugLogger == nil {
		return
	}
	debugLogOnce.Do(func() {
		if f, err := os.Create(debugLogPath); err == nil {
			debugLogger.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	})
	debugLogger.Printf(format, v...)
}

func setDebugLogging(enabled bool) {
	if enabled {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("could not create log directory: %v", err)
		}
		ts := time.Now().Format("20060102-150405")
		debugLogPath = filepath.Join(logDir, fmt.Sprintf("debug-%s.log", ts))
		debugLogOnce = sync.Once{}
		debugLogger = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		debugLogger = nil
	}
}
