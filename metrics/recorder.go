package metrics

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/pkg/errors"
)

const lockRetryDelay = 500 * time.Millisecond

type tierRecord struct {
	Occupied int    `json:"occupied"`
	Max      int    `json:"max"`
	Status   string `json:"status"`
}

type runRecord struct {
	Timestamp   string                `json:"timestamp"`
	Severity    string                `json:"severity"`
	BytesCopied int64                 `json:"bytes_copied"`
	Tiers       map[string]tierRecord `json:"tiers"`
}

// Recorder appends one JSON line per run to a metrics file shared by
// overlapping invocations. The file is guarded by an advisory lock with a
// bounded acquisition timeout; a run that cannot get the lock in time skips
// its update instead of blocking.
type Recorder struct {
	path        string
	lockTimeout time.Duration
	nowFunc     func() time.Time
	logger      orchestrator.Logger
}

func NewRecorder(path string, lockTimeout time.Duration, nowFunc func() time.Time, logger orchestrator.Logger) *Recorder {
	if lockTimeout == 0 {
		lockTimeout = 60 * time.Second
	}
	return &Recorder{path: path, lockTimeout: lockTimeout, nowFunc: nowFunc, logger: logger}
}

func (r *Recorder) Record(summary orchestrator.RunSummary) error {
	fileLock := flock.New(r.path + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), r.lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return errors.Errorf("could not acquire metrics lock within %s, skipping metrics update", r.lockTimeout)
	}
	defer fileLock.Unlock()

	record := runRecord{
		Timestamp:   r.nowFunc().UTC().Format(time.RFC3339),
		Severity:    summary.FinalSeverity.String(),
		BytesCopied: summary.BytesCopied,
		Tiers:       map[string]tierRecord{},
	}
	for _, report := range summary.Reports {
		record.Tiers[string(report.Tier)] = tierRecord{
			Occupied: report.Occupied,
			Max:      report.Max,
			Status:   string(report.Status),
		}
	}

	line, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to serialize run metrics")
	}

	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrapf(err, "failed to open metrics file %s", r.path)
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return errors.Wrapf(err, "failed to append to metrics file %s", r.path)
	}

	r.logger.Debug("metrics", "recorded run metrics to %s", r.path)
	return nil
}
