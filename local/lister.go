package local

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
)

type Artifact struct {
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
}

// ListArtifacts returns the artifacts in dir matching pattern, excluding
// sidecar files, ordered oldest first by modification time with lexical path
// order breaking ties so repeated listings are deterministic.
func ListArtifacts(dir, pattern string, sidecarGlobs []string) ([]Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	var artifacts []Artifact
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !matchesPattern(entry.Name(), pattern) || matchesAny(entry.Name(), sidecarGlobs) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %s", entry.Name())
		}

		artifacts = append(artifacts, Artifact{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		if artifacts[i].ModTime.Equal(artifacts[j].ModTime) {
			return artifacts[i].Path < artifacts[j].Path
		}
		return artifacts[i].ModTime.Before(artifacts[j].ModTime)
	})

	return artifacts, nil
}

// Sidecars returns every file sharing the artifact's base name, covering the
// checksum, metadata and metadata-checksum naming variants.
func Sidecars(artifactPath string) []string {
	sidecars, err := filepath.Glob(artifactPath + ".*")
	if err != nil {
		return nil
	}
	return sidecars
}

func matchesPattern(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	matched, err := path.Match(pattern, name)
	return err == nil && matched
}

func matchesAny(name string, globs []string) bool {
	for _, glob := range globs {
		if matchesPattern(name, glob) {
			return true
		}
	}
	return false
}
