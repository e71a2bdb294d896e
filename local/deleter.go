package local

import (
	"fmt"
	"os"
	"strings"

	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/pkg/errors"
)

type Deleter struct {
	logger orchestrator.Logger
}

func NewDeleter(logger orchestrator.Logger) Deleter {
	return Deleter{logger: logger}
}

// DeleteOldest removes the n oldest artifacts under dir together with their
// sidecar files. Each artifact's sidecars are deleted best-effort: a sidecar
// failure is logged but never fails the batch. The returned count covers
// artifact-level deletions that succeeded; the error is non-nil only when at
// least one artifact-level deletion failed. Asking for more artifacts than
// exist deletes everything available without error.
func (d Deleter) DeleteOldest(dir, pattern string, sidecarGlobs []string, n int) (int, error) {
	artifacts, err := ListArtifacts(dir, pattern, sidecarGlobs)
	if err != nil {
		return 0, err
	}

	if n > len(artifacts) {
		n = len(artifacts)
	}

	deleted := 0
	var failures []string
	for _, artifact := range artifacts[:n] {
		if err := os.Remove(artifact.Path); err != nil {
			d.logger.Warn("rotate", "failed to delete %s: %v", artifact.Path, err)
			failures = append(failures, fmt.Sprintf("%s: %v", artifact.Path, err))
		} else {
			deleted++
			d.logger.Debug("rotate", "deleted %s", artifact.Path)
		}

		for _, sidecar := range Sidecars(artifact.Path) {
			if err := os.Remove(sidecar); err != nil {
				d.logger.Warn("rotate", "failed to delete sidecar %s: %v", sidecar, err)
			} else {
				d.logger.Debug("rotate", "deleted sidecar %s", sidecar)
			}
		}
	}

	if len(failures) > 0 {
		return deleted, errors.Errorf("failed to delete %d artifact(s): %s",
			len(failures), strings.Join(failures, "; "))
	}
	return deleted, nil
}
