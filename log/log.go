/*
   Copyright 2024 Arbor Labs

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log implements the arbor log wrapper that formats entries in
// our custom format and filters them by logging level.
package log

import (
	"io"
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

// Log levels constants
const (
	SILENT = "silent"
	ERROR  = "error"
	INFO   = "info"
	DEBUG  = "debug"
)

const flags = log.Ldate | log.Ltime | log.Lmicroseconds | log.LUTC

type logger struct {
	level string
	out   *log.Logger
}

func newLogger(namespace, lv string) *logger {
	var w io.Writer
	if lv == SILENT {
		w = io.Discard
	} else {
		w = &logutils.LevelFilter{
			Levels:   []logutils.LogLevel{"DEBUG", "INFO", "ERROR"},
			MinLevel: filterLevel(lv),
			Writer:   os.Stdout,
		}
	}
	return &logger{level: lv, out: log.New(w, namespace+": ", flags)}
}

func filterLevel(lv string) logutils.LogLevel {
	switch lv {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	default:
		return "ERROR"
	}
}

// The default logger emits at log.ERROR level.
var std = newLogger("Arbor", ERROR)

// To allow mocking we require a switchable variable.
var osExit = os.Exit

// SetLogger replaces the default logger with one using the given
// namespace prefix and minimum level (one of SILENT, ERROR, INFO or
// DEBUG).
func SetLogger(namespace, lv string) {
	std = newLogger(namespace, lv)
}

// Level returns the minimum level of the current logger.
func Level() string {
	return std.level
}

// Error is the public log function to write error events.
func Error(v ...interface{}) {
	std.out.Print(append([]interface{}{"[ERROR] "}, v...)...)
}

// Errorf is the public log function with params to write error events.
func Errorf(format string, v ...interface{}) {
	std.out.Printf("[ERROR] "+format, v...)
}

// Fatal writes an error event and stops execution.
func Fatal(v ...interface{}) {
	Error(v...)
	osExit(1)
}

// Fatalf writes a formatted error event and stops execution.
func Fatalf(format string, v ...interface{}) {
	Errorf(format, v...)
	osExit(1)
}

// Info is the public log function to write information relative to the
// usage of the arbor packages.
func Info(v ...interface{}) {
	std.out.Print(append([]interface{}{"[INFO] "}, v...)...)
}

// Infof is the public log function with params to write information
// relative to the usage of the arbor packages.
func Infof(format string, v ...interface{}) {
	std.out.Printf("[INFO] "+format, v...)
}

// Debug is the public log function to write internal debug information.
func Debug(v ...interface{}) {
	std.out.Print(append([]interface{}{"[DEBUG] "}, v...)...)
}

// Debugf is the public log function with params to write internal debug
// information.
func Debugf(format string, v ...interface{}) {
	std.out.Printf("[DEBUG] "+format, v...)
}

// GetLogger returns the underlying log.Logger instance. Useful to let
// third party modules use the same formatting options defined here.
func GetLogger() *log.Logger {
	return std.out
}
