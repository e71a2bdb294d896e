package orchestrator

// TransferStatus is the three-way outcome of an upload. Verification is
// advisory: a transfer that succeeded but could not be confirmed within the
// retry budget is unverified, not failed, so transient listing lag in the
// remote cannot be conflated with data loss.
type TransferStatus int

const (
	TransferFailed TransferStatus = iota
	TransferVerified
	TransferUnverified
)

func (s TransferStatus) String() string {
	switch s {
	case TransferVerified:
		return "success"
	case TransferUnverified:
		return "success-unverified"
	default:
		return "failed"
	}
}

//counterfeiter:generate -o fakes/fake_local_deleter.go . LocalDeleter
type LocalDeleter interface {
	DeleteOldest(dir, pattern string, sidecarGlobs []string, n int) (int, error)
}

//counterfeiter:generate -o fakes/fake_uploader.go . Uploader
type Uploader interface {
	Upload(localPath string) (TransferStatus, error)
}

//counterfeiter:generate -o fakes/fake_remote_deleter.go . RemoteDeleter
type RemoteDeleter interface {
	DeleteOldest(n int) (int, error)
}

//counterfeiter:generate -o fakes/fake_artifact_copier.go . ArtifactCopier
type ArtifactCopier interface {
	Copy(artifactPath string) (int64, error)
}

//counterfeiter:generate -o fakes/fake_metrics_recorder.go . MetricsRecorder
type MetricsRecorder interface {
	Record(summary RunSummary) error
}
