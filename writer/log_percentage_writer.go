package writer

import (
	"io"

	"github.com/keepsake-backup/keepsake/orchestrator"
)

// LogPercentageWriter samples transfer progress for diagnostic logging. It
// never influences control flow; it only reports how far a copy has come, in
// increments, so large transfers are visible in the logs without flooding them.
type LogPercentageWriter struct {
	Writer              io.Writer
	bytesWritten        int64
	logger              orchestrator.Logger
	totalSize           int64
	tag                 string
	message             string
	lastLogPercentage   int
	percentageIncrement int
}

func NewLogPercentageWriter(writer io.Writer, logger orchestrator.Logger, totalSize int64, tag, message string) *LogPercentageWriter {
	return &LogPercentageWriter{
		Writer:              writer,
		logger:              logger,
		totalSize:           totalSize,
		tag:                 tag,
		message:             message,
		percentageIncrement: 5,
	}
}

func (l *LogPercentageWriter) Write(b []byte) (int, error) {
	n, err := l.Writer.Write(b)
	if err != nil {
		return 0, err
	}

	l.bytesWritten += int64(n)
	if l.totalSize <= 0 {
		return n, nil
	}

	percentageWrittenSoFar := int((100 * l.bytesWritten) / l.totalSize)

	if l.bytesWritten > l.totalSize {
		l.logger.Info(l.tag, l.message, 100)
	} else if percentageWrittenSoFar >= l.lastLogPercentage+l.percentageIncrement {
		l.logger.Info(l.tag, l.message, percentageWrittenSoFar)
		l.lastLogPercentage = percentageWrittenSoFar
	}

	return n, nil
}
