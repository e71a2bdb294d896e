package remote

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/pkg/errors"
)

const probeTimeout = 30 * time.Second

// Uploader transfers one artifact to the cloud tier and reports the
// three-way outcome: verified, unverified, or failed. Verification is
// advisory; only the transfer itself can fail the upload.
type Uploader struct {
	store         Store
	verifier      *Verifier
	uploadTimeout time.Duration
	logger        orchestrator.Logger
}

// NewUploader builds an Uploader. A nil verifier skips verification, in which
// case a successful transfer is reported as verified.
func NewUploader(store Store, verifier *Verifier, uploadTimeout time.Duration, logger orchestrator.Logger) *Uploader {
	if uploadTimeout == 0 {
		uploadTimeout = 30 * time.Minute
	}
	return &Uploader{store: store, verifier: verifier, uploadTimeout: uploadTimeout, logger: logger}
}

func (u *Uploader) Upload(localPath string) (orchestrator.TransferStatus, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		return orchestrator.TransferFailed, errors.Wrapf(err, "artifact %s does not exist", localPath)
	}
	if info.Size() == 0 {
		return orchestrator.TransferFailed, errors.Errorf("artifact %s is empty", localPath)
	}

	probeCtx, cancelProbe := context.WithTimeout(context.Background(), probeTimeout)
	defer cancelProbe()
	if err := u.store.Probe(probeCtx); err != nil {
		return orchestrator.TransferFailed, errors.Wrap(err, "remote destination is not reachable")
	}

	u.logger.Info("upload", "transferring %s (%d bytes)", localPath, info.Size())
	uploadCtx, cancelUpload := context.WithTimeout(context.Background(), u.uploadTimeout)
	defer cancelUpload()
	if err := u.store.Copy(uploadCtx, localPath); err != nil {
		return orchestrator.TransferFailed, errors.Wrapf(err, "failed to transfer %s", localPath)
	}

	if u.verifier == nil {
		u.logger.Debug("upload", "verification disabled, reporting %s as transferred", localPath)
		return orchestrator.TransferVerified, nil
	}

	key := filepath.Base(localPath)
	switch u.verifier.Confirm(key) {
	case ConfirmationProbed:
		return orchestrator.TransferVerified, nil
	case ConfirmationFallback:
		return orchestrator.TransferUnverified,
			errors.Errorf("only the fallback listing could confirm %s at the destination", key)
	default:
		return orchestrator.TransferUnverified,
			errors.Errorf("could not confirm %s at the destination within the retry budget", key)
	}
}
