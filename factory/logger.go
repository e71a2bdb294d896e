package factory

import (
	"io"
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/keepsake-backup/keepsake/writer"
	"gopkg.in/natefinch/lumberjack.v2"
)

var ApplicationLoggerStdout = writer.NewPausableWriter(os.Stdout)
var ApplicationLoggerStderr = writer.NewPausableWriter(os.Stderr)

func BuildLogger(debug bool) boshlog.Logger {
	return buildWriterLogger(ApplicationLoggerStdout, debug)
}

// BuildLoggerWithRotatingFile tees log output into a size-rotated log file in
// addition to stdout, so long-lived hosts keep a bounded operational history.
func BuildLoggerWithRotatingFile(debug bool, logFilePath string) boshlog.Logger {
	if logFilePath == "" {
		return BuildLogger(debug)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
	return buildWriterLogger(io.MultiWriter(ApplicationLoggerStdout, fileWriter), debug)
}

func buildWriterLogger(w io.Writer, debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, w)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, w)
}
