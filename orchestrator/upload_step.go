package orchestrator

type UploadStep struct {
	uploader Uploader
	logger   Logger
}

func NewUploadStep(uploader Uploader, logger Logger) Step {
	return &UploadStep{uploader: uploader, logger: logger}
}

// Run transfers the run's artifact to the cloud tier and gates the count
// cache on the outcome: both verified and unverified transfers occupy a slot,
// a failed transfer does not. Cloud rotation is still evaluated afterwards
// either way.
func (s *UploadStep) Run(session *Session) error {
	if !session.TierActive(TierCloud) {
		return nil
	}
	if session.ArtifactPath() == "" {
		session.Ledger().AddInfo(string(TierCloud), "no artifact to upload, evaluating rotation only")
		return nil
	}

	status, err := s.uploader.Upload(session.ArtifactPath())
	switch status {
	case TransferVerified:
		session.Counts().Adjust(TierCloud, 1)
		s.logger.Info("lifecycle", "uploaded and verified %s", session.ArtifactPath())
	case TransferUnverified:
		session.Counts().Adjust(TierCloud, 1)
		details := ""
		if err != nil {
			details = err.Error()
		}
		session.Ledger().AddDetailed(string(TierCloud), SeverityWarning,
			"upload verification inconclusive for "+session.ArtifactPath(), details)
		session.DegradeTier(TierCloud, TierStatusWarning)
		s.logger.Warn("lifecycle", "uploaded %s but could not verify it", session.ArtifactPath())
	default:
		details := ""
		if err != nil {
			details = err.Error()
		}
		session.Ledger().AddDetailed(string(TierCloud), SeverityWarning,
			"upload failed for "+session.ArtifactPath(), details)
		session.DegradeTier(TierCloud, TierStatusError)
		s.logger.Error("lifecycle", "upload failed for %s: %v", session.ArtifactPath(), err)
	}

	return nil
}
