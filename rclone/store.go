package rclone

import (
	"context"
	"encoding/json"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/keepsake-backup/keepsake/remote"
	"github.com/pkg/errors"
)

const (
	terminateGracePeriod = 5 * time.Second
	progressInterval     = 30 * time.Second
)

// Store drives an rclone-compatible synchronization tool as the cloud tier
// backend. Every invocation is bounded by the caller's context; a hung
// endpoint gets the process terminated rather than stalling the run.
type Store struct {
	runner  boshsys.CmdRunner
	binPath string
	remote  string
	bwLimit string
	logger  orchestrator.Logger
}

func NewStore(runner boshsys.CmdRunner, binPath, remoteAddress, bwLimit string, logger orchestrator.Logger) *Store {
	if binPath == "" {
		binPath = "rclone"
	}
	return &Store{
		runner:  runner,
		binPath: binPath,
		remote:  strings.TrimSuffix(remoteAddress, "/"),
		bwLimit: bwLimit,
		logger:  logger,
	}
}

func (s *Store) Probe(ctx context.Context) error {
	if s.remote == "" {
		return errors.New("remote destination is not configured")
	}
	if !s.runner.CommandExists(s.binPath) {
		return errors.Errorf("%s is not available on this host", s.binPath)
	}

	if _, err := s.run(ctx, nil, "about", s.remote); err != nil {
		return errors.Wrapf(err, "remote %s is not reachable", s.remote)
	}
	return nil
}

type listEntry struct {
	Path    string `json:"Path"`
	Name    string `json:"Name"`
	Size    int64  `json:"Size"`
	ModTime string `json:"ModTime"`
}

func (s *Store) List(ctx context.Context, pattern string) ([]remote.Object, error) {
	output, err := s.run(ctx, nil, "lsjson", "--files-only", s.remote)
	if err != nil {
		return nil, err
	}

	var entries []listEntry
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		return nil, errors.Wrap(err, "failed to parse listing output")
	}

	var objects []remote.Object
	for _, entry := range entries {
		if matched, err := path.Match(pattern, entry.Name); err != nil || !matched {
			continue
		}
		modTime, err := time.Parse(time.RFC3339Nano, entry.ModTime)
		if err != nil {
			s.logger.Debug("rclone", "unparseable timestamp %q for %s", entry.ModTime, entry.Path)
		}
		objects = append(objects, remote.Object{Key: entry.Path, Size: entry.Size, ModTime: modTime})
	}
	return objects, nil
}

// Exists probes one key. The tool reports missing paths as command failures,
// so an error here means "not confirmed", which is how callers treat it.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	output, err := s.run(ctx, nil, "lsf", s.remote+"/"+key)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

func (s *Store) Copy(ctx context.Context, localPath string) error {
	name := filepath.Base(localPath)
	args := []string{"copyto", localPath, s.remote + "/" + name}
	if s.bwLimit != "" {
		args = append(args, "--bwlimit", s.bwLimit)
	}

	done := make(chan struct{})
	defer close(done)
	go s.logSlowTransfer(name, done)

	_, err := s.run(ctx, nil, args...)
	return err
}

func (s *Store) Delete(ctx context.Context, keys []string) error {
	stdin := strings.NewReader(strings.Join(keys, "\n") + "\n")
	_, err := s.run(ctx, stdin, "delete", s.remote, "--files-from", "-")
	return err
}

func (s *Store) run(ctx context.Context, stdin io.Reader, args ...string) (string, error) {
	process, err := s.runner.RunComplexCommandAsync(boshsys.Command{
		Name:  s.binPath,
		Args:  args,
		Stdin: stdin,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to start %s", s.binPath)
	}

	select {
	case result := <-process.Wait():
		if result.Error != nil {
			return result.Stdout, errors.Wrapf(result.Error, "%s %s failed", s.binPath, args[0])
		}
		return result.Stdout, nil
	case <-ctx.Done():
		if err := process.TerminateNicely(terminateGracePeriod); err != nil {
			s.logger.Warn("rclone", "failed to terminate %s: %v", s.binPath, err)
		}
		return "", errors.Errorf("%s %s timed out", s.binPath, args[0])
	}
}

func (s *Store) logSlowTransfer(name string, done chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.logger.Info("rclone", "still transferring %s after %s", name, time.Since(start).Round(time.Second))
		}
	}
}
