package remote

import (
	"context"
	"path"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Object is one artifact or sidecar as reported by the remote tier. Keys are
// relative to the store's configured destination prefix.
type Object struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// Store is the remote tier reached through an external synchronization tool
// or object-storage API, reduced to the list/copy/delete primitives the
// lifecycle needs. Implementations are responsible for their own transport;
// callers bound every operation with a context deadline.
//
//counterfeiter:generate -o fakes/fake_store.go . Store
type Store interface {
	// Probe checks the destination is configured and reachable.
	Probe(ctx context.Context) error
	// List returns the objects under the destination prefix whose base name
	// matches pattern.
	List(ctx context.Context, pattern string) ([]Object, error)
	// Exists reports whether a single key is currently listable.
	Exists(ctx context.Context, key string) (bool, error)
	// Copy uploads one local file under the destination prefix, keeping its
	// base name.
	Copy(ctx context.Context, localPath string) error
	// Delete removes the given keys in one call.
	Delete(ctx context.Context, keys []string) error
}

func excludeSidecars(objects []Object, sidecarGlobs []string) []Object {
	var artifacts []Object
	for _, object := range objects {
		if matchesAny(object.Key, sidecarGlobs) {
			continue
		}
		artifacts = append(artifacts, object)
	}
	return artifacts
}

func matchesAny(key string, globs []string) bool {
	for _, glob := range globs {
		if matched, err := path.Match(glob, key); err == nil && matched {
			return true
		}
	}
	return false
}
