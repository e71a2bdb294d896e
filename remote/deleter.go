package remote

import (
	"context"
	"sort"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/pkg/errors"
)

type BatchDeleterConfig struct {
	Pattern         string
	SidecarGlobs    []string
	BatchSize       int
	ListTimeout     time.Duration
	DeleteTimeout   time.Duration
	InterBatchPause time.Duration
}

// BatchDeleter removes the oldest remote artifacts together with every
// companion object sharing their base name. Deletions are issued in
// fixed-size, individually time-bounded batches so a single call can never
// outlive the remote API's patience, with a pause between batches to stay
// clear of throttling.
type BatchDeleter struct {
	store  Store
	config BatchDeleterConfig
	clock  clock.Clock
	logger orchestrator.Logger
}

func NewBatchDeleter(store Store, config BatchDeleterConfig, clk clock.Clock, logger orchestrator.Logger) *BatchDeleter {
	if config.BatchSize <= 0 {
		config.BatchSize = 20
	}
	if config.ListTimeout == 0 {
		config.ListTimeout = 30 * time.Second
	}
	if config.DeleteTimeout == 0 {
		config.DeleteTimeout = 60 * time.Second
	}
	if config.InterBatchPause == 0 {
		config.InterBatchPause = time.Second
	}
	return &BatchDeleter{store: store, config: config, clock: clk, logger: logger}
}

// DeleteOldest deletes the n oldest remote artifacts and their sidecars.
// It returns how many of the selected artifacts were fully handed to
// successful delete batches. The deletion set is computed from a single
// listing; nothing is deleted when that listing fails, and an empty deletion
// set for a positive n is treated as a failure rather than a no-op.
func (d *BatchDeleter) DeleteOldest(n int) (int, error) {
	listCtx, cancelList := context.WithTimeout(context.Background(), d.config.ListTimeout)
	defer cancelList()

	objects, err := d.store.List(listCtx, d.config.Pattern)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list remote artifacts, aborting rotation")
	}

	artifacts := excludeSidecars(objects, d.config.SidecarGlobs)
	sort.Slice(artifacts, func(i, j int) bool {
		if artifacts[i].ModTime.Equal(artifacts[j].ModTime) {
			return artifacts[i].Key < artifacts[j].Key
		}
		return artifacts[i].ModTime.Before(artifacts[j].ModTime)
	})

	if n > len(artifacts) {
		n = len(artifacts)
	}
	selected := artifacts[:n]

	deletionSet, baseKeys := d.expandDeletionSet(selected)
	if len(deletionSet) == 0 {
		return 0, errors.New("no remote objects identified for deletion")
	}

	failedBases := map[string]bool{}
	failedBatches := 0
	batches := partition(deletionSet, d.config.BatchSize)
	for index, batch := range batches {
		if index > 0 {
			d.clock.Sleep(d.config.InterBatchPause)
		}

		deleteCtx, cancelDelete := context.WithTimeout(context.Background(), d.config.DeleteTimeout)
		err := d.store.Delete(deleteCtx, batch)
		cancelDelete()

		if err != nil {
			failedBatches++
			d.logger.Warn("rotate", "remote delete batch %d/%d failed: %v", index+1, len(batches), err)
			for _, key := range batch {
				if baseKeys[key] {
					failedBases[key] = true
				}
			}
			continue
		}
		d.logger.Debug("rotate", "remote delete batch %d/%d removed %d objects", index+1, len(batches), len(batch))
	}

	deleted := len(selected) - len(failedBases)
	if failedBatches > 0 {
		return deleted, errors.Errorf("%d of %d delete batches failed", failedBatches, len(batches))
	}
	return deleted, nil
}

// expandDeletionSet widens each selected artifact to the full group that must
// travel with it: the checksum sidecar unconditionally, the metadata sidecar
// and its own checksum when the metadata is found to exist, and any other
// object sharing the base name caught by a prefix listing.
func (d *BatchDeleter) expandDeletionSet(selected []Object) ([]string, map[string]bool) {
	var deletionSet []string
	seen := map[string]bool{}
	baseKeys := map[string]bool{}

	add := func(key string) {
		if !seen[key] {
			seen[key] = true
			deletionSet = append(deletionSet, key)
		}
	}

	for _, artifact := range selected {
		add(artifact.Key)
		baseKeys[artifact.Key] = true
		add(artifact.Key + ".sha256")

		probeCtx, cancelProbe := context.WithTimeout(context.Background(), d.config.ListTimeout)
		metadataExists, err := d.store.Exists(probeCtx, artifact.Key+".metadata")
		cancelProbe()
		if err != nil {
			d.logger.Warn("rotate", "metadata probe for %s failed: %v", artifact.Key, err)
		} else if metadataExists {
			add(artifact.Key + ".metadata")
			add(artifact.Key + ".metadata.sha256")
		}

		listCtx, cancelList := context.WithTimeout(context.Background(), d.config.ListTimeout)
		variants, err := d.store.List(listCtx, artifact.Key+"*")
		cancelList()
		if err != nil {
			d.logger.Warn("rotate", "companion listing for %s failed: %v", artifact.Key, err)
			continue
		}
		for _, variant := range variants {
			add(variant.Key)
		}
	}

	return deletionSet, baseKeys
}

func partition(keys []string, batchSize int) [][]string {
	var batches [][]string
	for batchSize < len(keys) {
		keys, batches = keys[batchSize:], append(batches, keys[0:batchSize:batchSize])
	}
	return append(batches, keys)
}
