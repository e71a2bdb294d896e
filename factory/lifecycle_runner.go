package factory

import (
	"time"

	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/dustin/go-humanize"
	"github.com/keepsake-backup/keepsake/config"
	"github.com/keepsake-backup/keepsake/local"
	"github.com/keepsake-backup/keepsake/metrics"
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/keepsake-backup/keepsake/rclone"
	"github.com/keepsake-backup/keepsake/remote"
	"github.com/keepsake-backup/keepsake/s3store"
)

// BuildLifecycleRunner assembles the full per-tier lifecycle from
// configuration: counters, the local deleter and copier, the cloud store with
// its uploader, verifier and batch deleter, and the metrics recorder.
func BuildLifecycleRunner(cfg config.Config, logger boshlog.Logger) *orchestrator.LifecycleRunner {
	policies := buildPolicies(cfg)
	counters := map[orchestrator.TierName]orchestrator.Counter{}

	if cfg.Primary.Enabled {
		counters[orchestrator.TierPrimary] = local.NewCounter(cfg.Primary.Path, cfg.ArtifactPattern, cfg.SidecarGlobs)
	}
	if cfg.Secondary.Enabled {
		counters[orchestrator.TierSecondary] = local.NewCounter(cfg.Secondary.Path, cfg.ArtifactPattern, cfg.SidecarGlobs)
	}

	var uploader orchestrator.Uploader
	var remoteDeleter orchestrator.RemoteDeleter
	if cfg.Cloud.Enabled {
		store := BuildRemoteStore(cfg, logger)
		counters[orchestrator.TierCloud] = remote.NewCounter(store, cfg.ArtifactPattern, cfg.SidecarGlobs, cfg.Cloud.ListTimeout.Unwrap())
		uploader = BuildUploader(cfg, store, logger)
		remoteDeleter = remote.NewBatchDeleter(store, remote.BatchDeleterConfig{
			Pattern:       cfg.ArtifactPattern,
			SidecarGlobs:  cfg.SidecarGlobs,
			BatchSize:     cfg.Cloud.BatchSize,
			ListTimeout:   cfg.Cloud.ListTimeout.Unwrap(),
			DeleteTimeout: cfg.Cloud.DeleteTimeout.Unwrap(),
		}, clock.NewClock(), logger)
	}

	copier := local.NewCopier(cfg.Secondary.Path, cfg.Secondary.BandwidthBytesPerSecond, logger)

	var recorder orchestrator.MetricsRecorder
	if cfg.Metrics.Path != "" {
		recorder = metrics.NewRecorder(cfg.Metrics.Path, cfg.Metrics.LockTimeout.Unwrap(), time.Now, logger)
	}

	return orchestrator.NewLifecycleRunner(
		policies,
		counters,
		local.NewDeleter(logger),
		copier,
		uploader,
		remoteDeleter,
		recorder,
		logger,
	)
}

func BuildRemoteStore(cfg config.Config, logger boshlog.Logger) remote.Store {
	if cfg.Cloud.Backend == config.BackendS3 {
		return s3store.NewStore(s3store.Config{
			Region:                  cfg.Cloud.S3.Region,
			Endpoint:                cfg.Cloud.S3.Endpoint,
			Bucket:                  cfg.Cloud.S3.Bucket,
			Prefix:                  cfg.Cloud.S3.Prefix,
			AccessKeyID:             cfg.Cloud.S3.AccessKeyID,
			SecretAccessKey:         cfg.Cloud.S3.SecretAccessKey,
			UsePathStyle:            cfg.Cloud.S3.UsePathStyle,
			BandwidthBytesPerSecond: bandwidthBytesPerSecond(cfg.Cloud.BandwidthLimit, logger),
		}, logger)
	}

	runner := boshsys.NewExecCmdRunner(logger)
	return rclone.NewStore(runner, cfg.Cloud.RcloneBinary, cfg.Cloud.Remote, cfg.Cloud.BandwidthLimit, logger)
}

// bandwidthBytesPerSecond turns the rclone-style limit ("10M") into a byte
// rate for the S3 backend. An unparseable limit is ignored with a warning
// rather than failing the run.
func bandwidthBytesPerSecond(limit string, logger boshlog.Logger) int64 {
	if limit == "" {
		return 0
	}
	parsed, err := humanize.ParseBytes(limit)
	if err != nil {
		logger.Warn("factory", "ignoring unparseable bandwidth limit %q: %s", limit, err.Error())
		return 0
	}
	return int64(parsed)
}

func BuildUploader(cfg config.Config, store remote.Store, logger boshlog.Logger) *remote.Uploader {
	var verifier *remote.Verifier
	if !cfg.Cloud.Verification.Skip {
		verifier = remote.NewVerifier(store,
			cfg.Cloud.Verification.MaxAttempts,
			cfg.Cloud.Verification.Pause.Unwrap(),
			cfg.Cloud.ListTimeout.Unwrap(),
			logger)
	}
	return remote.NewUploader(store, verifier, cfg.Cloud.UploadTimeout.Unwrap(), logger)
}

func buildPolicies(cfg config.Config) map[orchestrator.TierName]orchestrator.TierPolicy {
	return map[orchestrator.TierName]orchestrator.TierPolicy{
		orchestrator.TierPrimary: {
			Name:         orchestrator.TierPrimary,
			Enabled:      cfg.Primary.Enabled,
			Location:     cfg.Primary.Path,
			MaxArtifacts: cfg.Primary.MaxArtifacts,
			Pattern:      cfg.ArtifactPattern,
			SidecarGlobs: cfg.SidecarGlobs,
		},
		orchestrator.TierSecondary: {
			Name:         orchestrator.TierSecondary,
			Enabled:      cfg.Secondary.Enabled,
			Location:     cfg.Secondary.Path,
			MaxArtifacts: cfg.Secondary.MaxArtifacts,
			Pattern:      cfg.ArtifactPattern,
			SidecarGlobs: cfg.SidecarGlobs,
		},
		orchestrator.TierCloud: {
			Name:         orchestrator.TierCloud,
			Enabled:      cfg.Cloud.Enabled,
			Location:     cfg.Cloud.Remote,
			MaxArtifacts: cfg.Cloud.MaxArtifacts,
			Pattern:      cfg.ArtifactPattern,
			SidecarGlobs: cfg.SidecarGlobs,
		},
	}
}
