package local

import (
	"io"
	"os"
	"path/filepath"

	"github.com/keepsake-backup/keepsake/counter"
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/keepsake-backup/keepsake/ratelimiter"
	"github.com/keepsake-backup/keepsake/writer"
	"github.com/pkg/errors"
)

// Copier mirrors an artifact and its sidecars into the secondary tier
// directory, optionally paced by a bandwidth limit.
type Copier struct {
	destDir        string
	bytesPerSecond int64
	logger         orchestrator.Logger
}

func NewCopier(destDir string, bytesPerSecond int64, logger orchestrator.Logger) Copier {
	return Copier{destDir: destDir, bytesPerSecond: bytesPerSecond, logger: logger}
}

// Copy transfers the artifact, then each discovered sidecar. Sidecar copy
// failures are logged and skipped; only an artifact-level failure fails the
// whole copy. Returns the total bytes written.
func (c Copier) Copy(artifactPath string) (int64, error) {
	countWriter, err := c.copyFile(artifactPath, true)
	if err != nil {
		return 0, err
	}
	total := countWriter

	for _, sidecar := range Sidecars(artifactPath) {
		copied, err := c.copyFile(sidecar, false)
		if err != nil {
			c.logger.Warn("copy", "failed to copy sidecar %s: %v", sidecar, err)
			continue
		}
		total += copied
	}

	return total, nil
}

func (c Copier) copyFile(sourcePath string, logProgress bool) (int64, error) {
	source, err := os.Open(sourcePath)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", sourcePath)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to stat %s", sourcePath)
	}

	destPath := filepath.Join(c.destDir, filepath.Base(sourcePath))
	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create %s", destPath)
	}
	defer dest.Close()

	var sink io.Writer = dest
	if c.bytesPerSecond > 0 {
		sink, err = ratelimiter.NewThrottledWriter(dest, c.bytesPerSecond)
		if err != nil {
			return 0, err
		}
	}

	countWriter := counter.NewCountWriter(sink)
	sink = countWriter
	if logProgress {
		sink = writer.NewLogPercentageWriter(countWriter, c.logger, info.Size(),
			"copy", "copying "+filepath.Base(sourcePath)+": %d%%")
	}

	if _, err := io.Copy(sink, source); err != nil {
		os.Remove(destPath)
		return 0, errors.Wrapf(err, "failed to copy %s to %s", sourcePath, destPath)
	}

	if err := dest.Sync(); err != nil {
		return countWriter.Count(), errors.Wrapf(err, "failed to sync %s", destPath)
	}

	return countWriter.Count(), nil
}
