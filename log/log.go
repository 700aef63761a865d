// Package log provides the leveled loggers used across vecnote.
package log

import (
	"io"
	"io/ioutil"
	"log"
	"os"
)

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

const tracingEnvVar = "VECNOTE_TRACE"

func init() {
	var traceHandle io.Writer = ioutil.Discard
	if os.Getenv(tracingEnvVar) != "" {
		traceHandle = os.Stderr
	}

	InitLog(traceHandle, os.Stderr, os.Stderr, os.Stderr)
}

// InitLog redirects the level loggers to the given writers.
func InitLog(traceHandle, infoHandle, warningHandle, errorHandle io.Writer) {
	Trace = log.New(traceHandle, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(infoHandle, "", 0)
	Warning = log.New(warningHandle, "WARNING: ", 0)
	Error = log.New(errorHandle, "ERROR: ", 0)
}
