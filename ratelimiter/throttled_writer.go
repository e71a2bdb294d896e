package ratelimiter

import (
	"io"
	"time"

	"github.com/pkg/errors"
)

const maxBytesPerSecond = 1 << 30

// ThrottledWriter paces writes to at most bytesPerSecond, sleeping off any
// debt accumulated by a burst. It is the bandwidth limit applied to artifact
// transfers so a backup run cannot saturate the link the service depends on.
type ThrottledWriter struct {
	writer         io.Writer
	bytesPerSecond int64
	windowStart    time.Time
	windowBytes    int64
}

func NewThrottledWriter(writer io.Writer, bytesPerSecond int64) (*ThrottledWriter, error) {
	if bytesPerSecond < 1 || bytesPerSecond > maxBytesPerSecond {
		return nil, errors.Errorf("bytes per second must be between 1 and %d", maxBytesPerSecond)
	}

	return &ThrottledWriter{
		writer:         writer,
		bytesPerSecond: bytesPerSecond,
	}, nil
}

func (t *ThrottledWriter) Write(b []byte) (int, error) {
	if t.windowStart.IsZero() {
		t.windowStart = time.Now()
	}

	n, err := t.writer.Write(b)
	if err != nil {
		return n, err
	}

	t.windowBytes += int64(n)
	owed := time.Duration(float64(t.windowBytes) / float64(t.bytesPerSecond) * float64(time.Second))
	elapsed := time.Since(t.windowStart)
	if owed > elapsed {
		time.Sleep(owed - elapsed)
	}

	return n, nil
}
