package writer

import (
	"bytes"
	"io"
	"sync"
)

// PausableWriter buffers writes while paused and replays them on resume, so
// interactive prompts (e.g. the SIGINT confirmation) are not interleaved with
// log output.
type PausableWriter struct {
	out    io.Writer
	buffer bytes.Buffer
	paused bool
	mutex  sync.Mutex
}

func NewPausableWriter(out io.Writer) *PausableWriter {
	return &PausableWriter{out: out}
}

func (w *PausableWriter) Write(b []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.paused {
		return w.buffer.Write(b)
	}
	return w.out.Write(b)
}

func (w *PausableWriter) Pause() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.paused = true
}

func (w *PausableWriter) Resume() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.paused = false
	_, err := io.Copy(w.out, &w.buffer)
	w.buffer.Reset()
	return err
}
